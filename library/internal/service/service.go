package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/events"
	"github.com/Astemirdum/library-management/library/internal/model"
	libraryRepo "github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/validate"
)

type Service struct {
	log    *zap.Logger
	repo   libraryRepo.Repository
	pub    events.Publisher
	policy Policy
	clock  Clock
}

func NewService(repo libraryRepo.Repository, pub events.Publisher, policy Policy, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		pub:    pub,
		policy: policy,
		clock:  realClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() time.Time {
	return dateOf(s.clock.Now().UTC())
}

func (s *Service) publish(ctx context.Context, ev events.Event) {
	ev.OccurredAt = s.clock.Now().UTC()
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.log.Warn("publish event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}

func validateCardID(cardID string) error {
	if cardID == "" {
		return errs.Validation("cardId", "required")
	}
	if !validate.CardID(cardID) {
		return errs.Validation("cardId", "must look like ID000001")
	}
	return nil
}

func (s *Service) SearchBooks(ctx context.Context, query string, page, size int) (model.ListBooks, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.ListBooks{}, errs.Validation("q", "required")
	}
	if page < 0 || size < 0 {
		return model.ListBooks{}, errs.Validation("page", "page and size must not be negative")
	}
	books, err := s.repo.SearchBooks(ctx, query, page, size)
	if err != nil {
		return model.ListBooks{}, err
	}
	if books.Items == nil {
		books.Items = []model.Book{}
	}
	return books, nil
}

func (s *Service) CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest) (string, error) {
	req.SSN = strings.TrimSpace(req.SSN)
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	req.Phone = strings.TrimSpace(req.Phone)

	for _, f := range []struct{ name, value string }{
		{"ssn", req.SSN},
		{"name", req.Name},
		{"address", req.Address},
		{"phone", req.Phone},
	} {
		if f.value == "" {
			return "", errs.Validation(f.name, "required")
		}
	}
	if !validate.SSN(req.SSN) {
		return "", errs.Validation("ssn", "must be NNN-NN-NNNN or nine digits")
	}
	req.SSN = normalizeSSN(req.SSN)

	var cardID string
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx libraryRepo.Repository) error {
		exists, err := tx.SSNExists(ctx, req.SSN)
		if err != nil {
			return err
		}
		if exists {
			return errs.Conflict(errs.ReasonDuplicateSSN)
		}
		cardID, err = tx.CreateBorrower(ctx, req)
		return err
	})
	if err != nil {
		return "", err
	}
	s.log.Info("borrower created", zap.String("cardId", cardID))
	return cardID, nil
}

// normalizeSSN stores every ssn as NNN-NN-NNNN so both accepted spellings collide on the unique key.
func normalizeSSN(ssn string) string {
	if len(ssn) == 9 {
		return fmt.Sprintf("%s-%s-%s", ssn[:3], ssn[3:5], ssn[5:])
	}
	return ssn
}

func (s *Service) GetBorrower(ctx context.Context, cardID string) (model.BorrowerDetails, error) {
	if err := validateCardID(cardID); err != nil {
		return model.BorrowerDetails{}, err
	}
	borrower, err := s.repo.GetBorrower(ctx, cardID)
	if err != nil {
		return model.BorrowerDetails{}, err
	}
	open, err := s.repo.CountOpenLoans(ctx, cardID)
	if err != nil {
		return model.BorrowerDetails{}, err
	}
	unpaid, err := s.repo.UnpaidFines(ctx, cardID)
	if err != nil {
		return model.BorrowerDetails{}, err
	}
	return model.BorrowerDetails{
		Borrower:    borrower,
		OpenLoans:   open,
		UnpaidFines: unpaid.Total,
	}, nil
}

// Checkout lends a book. The book row is locked before the borrower row, and
// all checks run under those locks so concurrent checkouts see each other.
func (s *Service) Checkout(ctx context.Context, isbn, cardID string) (model.Loan, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return model.Loan{}, errs.Validation("isbn", "required")
	}
	if err := validateCardID(cardID); err != nil {
		return model.Loan{}, err
	}

	today := s.today()
	var loan model.Loan
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx libraryRepo.Repository) error {
		if err := tx.LockBook(ctx, isbn); err != nil {
			return err
		}
		out, err := tx.IsCheckedOut(ctx, isbn)
		if err != nil {
			return err
		}
		if out {
			return errs.Conflict(errs.ReasonAlreadyCheckedOut)
		}
		if err := tx.LockBorrower(ctx, cardID); err != nil {
			return err
		}
		open, err := tx.CountOpenLoans(ctx, cardID)
		if err != nil {
			return err
		}
		unpaid, err := tx.UnpaidFines(ctx, cardID)
		if err != nil {
			return err
		}
		if err := s.policy.CheckoutDecision(open, unpaid); err != nil {
			return err
		}
		loan, err = tx.CreateLoan(ctx, model.Loan{
			ISBN:    isbn,
			CardID:  cardID,
			DateOut: today,
			DueDate: s.policy.DueDate(today),
		})
		return err
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.publish(ctx, events.Event{
		Type:    events.LoanCheckedOut,
		CardID:  loan.CardID,
		ISBN:    loan.ISBN,
		LoanID:  loan.LoanID,
		DueDate: loan.DueDate.Format(time.DateOnly),
	})
	return loan, nil
}

func (s *Service) CheckIn(ctx context.Context, loanID int64) (model.Loan, error) {
	if loanID <= 0 {
		return model.Loan{}, errs.Validation("loanId", "must be positive")
	}
	today := s.today()
	var loan model.Loan
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx libraryRepo.Repository) error {
		var err error
		loan, err = s.checkIn(ctx, tx, loanID, today)
		return err
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.publishCheckIn(ctx, loan)
	return loan, nil
}

func (s *Service) checkIn(ctx context.Context, tx libraryRepo.Repository, loanID int64, today time.Time) (model.Loan, error) {
	loan, err := tx.LockLoan(ctx, loanID)
	if err != nil {
		return model.Loan{}, err
	}
	if !loan.IsOpen() {
		return model.Loan{}, errs.Conflict(errs.ReasonAlreadyClosed)
	}
	return tx.CloseLoan(ctx, loanID, today)
}

func (s *Service) publishCheckIn(ctx context.Context, loan model.Loan) {
	s.publish(ctx, events.Event{
		Type:   events.LoanCheckedIn,
		CardID: loan.CardID,
		ISBN:   loan.ISBN,
		LoanID: loan.LoanID,
	})
}

// CheckInMany closes several loans in one transaction. Unknown and already
// closed loans are reported per id and do not fail the batch.
func (s *Service) CheckInMany(ctx context.Context, loanIDs []int64) ([]model.CheckInResult, error) {
	if len(loanIDs) == 0 {
		return nil, errs.Validation("loanIds", "required")
	}
	for _, id := range loanIDs {
		if id <= 0 {
			return nil, errs.Validation("loanIds", "must be positive")
		}
	}

	today := s.today()
	var (
		results []model.CheckInResult
		closed  []model.Loan
	)
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx libraryRepo.Repository) error {
		results = make([]model.CheckInResult, 0, len(loanIDs))
		closed = closed[:0]
		for _, id := range loanIDs {
			loan, err := s.checkIn(ctx, tx, id, today)
			switch {
			case err == nil:
				dateIn := today
				results = append(results, model.CheckInResult{LoanID: id, DateIn: &dateIn})
				closed = append(closed, loan)
			case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrConflict):
				results = append(results, model.CheckInResult{LoanID: id, Error: err.Error()})
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, loan := range closed {
		s.publishCheckIn(ctx, loan)
	}
	return results, nil
}

func (s *Service) ListOpenLoans(ctx context.Context, filter model.LoanFilter) (model.ListOpenLoans, error) {
	loans, err := s.repo.ListOpenLoans(ctx, filter)
	if err != nil {
		return model.ListOpenLoans{}, err
	}
	today := s.today()
	items := make([]model.OpenLoan, 0, len(loans))
	for _, l := range loans {
		if days := daysBetween(l.DueDate, today); days > 0 {
			l.Overdue = true
			l.DaysOverdue = days
		}
		items = append(items, l)
	}
	return model.ListOpenLoans{
		TotalElements: len(items),
		Items:         items,
	}, nil
}

// UpdateFines recomputes fines of every overdue loan. Paid fines are left alone
// and unchanged amounts are not counted, so a rerun on the same day reports zeros.
func (s *Service) UpdateFines(ctx context.Context) (model.UpdateFinesResult, error) {
	today := s.today()
	var res model.UpdateFinesResult
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx libraryRepo.Repository) error {
		res = model.UpdateFinesResult{}
		loans, err := tx.OverdueLoans(ctx, today)
		if err != nil {
			return err
		}
		res.Processed = len(loans)
		for _, l := range loans {
			if l.FinePaid() {
				continue
			}
			owed := s.policy.Owed(l.DueDate, l.DateIn, today)
			if !l.HasFine() {
				if !owed.IsPositive() {
					continue
				}
				if err := tx.InsertFine(ctx, l.LoanID, owed); err != nil {
					return err
				}
				res.Inserted++
				continue
			}
			if owed.Equal(l.FineAmount.Decimal) {
				continue
			}
			if err := tx.UpdateFineAmount(ctx, l.LoanID, owed); err != nil {
				return err
			}
			res.Updated++
		}
		return nil
	})
	if err != nil {
		return model.UpdateFinesResult{}, err
	}

	s.log.Info("fines updated",
		zap.Int("processed", res.Processed),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated))
	if res.Inserted+res.Updated > 0 {
		s.publish(ctx, events.Event{
			Type:     events.FinesUpdated,
			Inserted: res.Inserted,
			Updated:  res.Updated,
		})
	}
	return res, nil
}

func (s *Service) FinesSummary(ctx context.Context, filter model.FineFilter) (model.ListFineSummaries, error) {
	filter.Name = strings.TrimSpace(filter.Name)
	summary, err := s.repo.FinesSummary(ctx, filter)
	if err != nil {
		return model.ListFineSummaries{}, err
	}
	if summary == nil {
		summary = []model.FineSummary{}
	}
	return model.ListFineSummaries{
		TotalElements: len(summary),
		Items:         summary,
	}, nil
}

// PayFines settles the unpaid fines of closed loans. Fines of loans still out stay unpaid.
func (s *Service) PayFines(ctx context.Context, cardID string) (model.PayFinesResult, error) {
	if err := validateCardID(cardID); err != nil {
		return model.PayFinesResult{}, err
	}
	var rows int64
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx libraryRepo.Repository) error {
		if err := tx.LockBorrower(ctx, cardID); err != nil {
			return err
		}
		var err error
		rows, err = tx.PayFines(ctx, cardID)
		return err
	})
	if err != nil {
		return model.PayFinesResult{}, err
	}
	if rows > 0 {
		s.publish(ctx, events.Event{
			Type:   events.FinesPaid,
			CardID: cardID,
			Rows:   rows,
		})
	}
	return model.PayFinesResult{CardID: cardID, RowsUpdated: rows}, nil
}
