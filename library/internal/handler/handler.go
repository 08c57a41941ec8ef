package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/model"
	md "github.com/Astemirdum/library-management/pkg/middleware"
	"github.com/Astemirdum/library-management/pkg/validate"
	_ "github.com/Astemirdum/library-management/swagger"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySrv LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySrv,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		md.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.SearchBooks)

	api.POST("/borrowers", h.CreateBorrower)
	api.GET("/borrowers/:cardId", h.GetBorrower)

	api.POST("/loans/checkout", h.Checkout)
	api.POST("/loans/checkin", h.CheckInMany)
	api.POST("/loans/:loanId/checkin", h.CheckIn)
	api.GET("/loans/open", h.ListOpenLoans)

	api.POST("/fines/update", h.UpdateFines)
	api.GET("/fines/summary", h.FinesSummary)
	api.POST("/fines/pay", h.PayFines)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// SearchBooks godoc
// @Summary  Search the catalog by isbn, title or author
// @Tags     books
// @Produce  json
// @Param    q     query  string true  "substring to look for"
// @Param    page  query  int    false "page number, starting at 1"
// @Param    size  query  int    false "page size"
// @Success  200 {object} model.ListBooks
// @Failure  400 {object} echo.HTTPError
// @Router   /books [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	var (
		err  error
		page int
		size int
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}

	books, err := h.librarySvc.SearchBooks(c.Request().Context(), c.QueryParam("q"), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// CreateBorrower godoc
// @Summary  Register a borrower and issue a library card
// @Tags     borrowers
// @Accept   json
// @Produce  json
// @Param    borrower body model.CreateBorrowerRequest true "borrower"
// @Success  201 {object} model.CreateBorrowerResponse
// @Failure  400,409 {object} echo.HTTPError
// @Router   /borrowers [post]
func (h *Handler) CreateBorrower(c echo.Context) error {
	var req model.CreateBorrowerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cardID, err := h.librarySvc.CreateBorrower(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, model.CreateBorrowerResponse{CardID: cardID})
}

// GetBorrower godoc
// @Summary  Borrower with open loan count and unpaid fines
// @Tags     borrowers
// @Produce  json
// @Param    cardId path string true "card id"
// @Success  200 {object} model.BorrowerDetails
// @Failure  400,404 {object} echo.HTTPError
// @Router   /borrowers/{cardId} [get]
func (h *Handler) GetBorrower(c echo.Context) error {
	borrower, err := h.librarySvc.GetBorrower(c.Request().Context(), c.Param("cardId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrower)
}

// Checkout godoc
// @Summary  Lend a book to a borrower
// @Tags     loans
// @Accept   json
// @Produce  json
// @Param    loan body model.CheckoutRequest true "book and borrower"
// @Success  201 {object} model.Loan
// @Failure  400,404,409,422 {object} echo.HTTPError
// @Router   /loans/checkout [post]
func (h *Handler) Checkout(c echo.Context) error {
	var req model.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.librarySvc.Checkout(c.Request().Context(), req.ISBN, req.CardID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

// CheckIn godoc
// @Summary  Return a book
// @Tags     loans
// @Produce  json
// @Param    loanId path int true "loan id"
// @Success  200 {object} model.Loan
// @Failure  400,404,409 {object} echo.HTTPError
// @Router   /loans/{loanId}/checkin [post]
func (h *Handler) CheckIn(c echo.Context) error {
	loanID, err := strconv.ParseInt(c.Param("loanId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("loanId is invalid"))
	}
	loan, err := h.librarySvc.CheckIn(c.Request().Context(), loanID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

// CheckInMany godoc
// @Summary  Return several books at once
// @Tags     loans
// @Accept   json
// @Produce  json
// @Param    loans body model.CheckInManyRequest true "loan ids"
// @Success  200 {array} model.CheckInResult
// @Failure  400 {object} echo.HTTPError
// @Router   /loans/checkin [post]
func (h *Handler) CheckInMany(c echo.Context) error {
	var req model.CheckInManyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.librarySvc.CheckInMany(c.Request().Context(), req.LoanIDs)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListOpenLoans godoc
// @Summary  Loans not yet returned, soonest due first
// @Tags     loans
// @Produce  json
// @Param    isbn   query string false "isbn"
// @Param    cardId query string false "card id"
// @Param    name   query string false "borrower name substring"
// @Success  200 {object} model.ListOpenLoans
// @Router   /loans/open [get]
func (h *Handler) ListOpenLoans(c echo.Context) error {
	filter := model.LoanFilter{
		ISBN:   strings.TrimSpace(c.QueryParam("isbn")),
		CardID: strings.TrimSpace(c.QueryParam("cardId")),
		Name:   strings.TrimSpace(c.QueryParam("name")),
	}
	loans, err := h.librarySvc.ListOpenLoans(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// UpdateFines godoc
// @Summary  Recompute fines of overdue loans
// @Tags     fines
// @Produce  json
// @Success  200 {object} model.UpdateFinesResult
// @Router   /fines/update [post]
func (h *Handler) UpdateFines(c echo.Context) error {
	res, err := h.librarySvc.UpdateFines(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// FinesSummary godoc
// @Summary  Fine totals per borrower
// @Tags     fines
// @Produce  json
// @Param    unpaidOnly query bool   false "only unpaid fines" default(true)
// @Param    cardId     query string false "card id"
// @Param    name       query string false "borrower name substring"
// @Success  200 {object} model.ListFineSummaries
// @Failure  400 {object} echo.HTTPError
// @Router   /fines/summary [get]
func (h *Handler) FinesSummary(c echo.Context) error {
	filter := model.FineFilter{
		UnpaidOnly: true,
		CardID:     strings.TrimSpace(c.QueryParam("cardId")),
		Name:       c.QueryParam("name"),
	}
	if unpaidParam := c.QueryParam("unpaidOnly"); unpaidParam != "" {
		unpaid, err := strconv.ParseBool(unpaidParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("unpaidOnly is invalid"))
		}
		filter.UnpaidOnly = unpaid
	}
	summary, err := h.librarySvc.FinesSummary(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// PayFines godoc
// @Summary  Pay the fines of a borrower's returned books
// @Tags     fines
// @Accept   json
// @Produce  json
// @Param    payment body model.PayFinesRequest true "borrower"
// @Success  200 {object} model.PayFinesResult
// @Failure  400,404 {object} echo.HTTPError
// @Router   /fines/pay [post]
func (h *Handler) PayFines(c echo.Context) error {
	var req model.PayFinesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.librarySvc.PayFines(c.Request().Context(), req.CardID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
