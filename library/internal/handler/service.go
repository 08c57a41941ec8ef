package handler

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	SearchBooks(ctx context.Context, query string, page, size int) (model.ListBooks, error)

	CreateBorrower(ctx context.Context, req model.CreateBorrowerRequest) (string, error)
	GetBorrower(ctx context.Context, cardID string) (model.BorrowerDetails, error)

	Checkout(ctx context.Context, isbn, cardID string) (model.Loan, error)
	CheckIn(ctx context.Context, loanID int64) (model.Loan, error)
	CheckInMany(ctx context.Context, loanIDs []int64) ([]model.CheckInResult, error)
	ListOpenLoans(ctx context.Context, filter model.LoanFilter) (model.ListOpenLoans, error)

	UpdateFines(ctx context.Context) (model.UpdateFinesResult, error)
	FinesSummary(ctx context.Context, filter model.FineFilter) (model.ListFineSummaries, error)
	PayFines(ctx context.Context, cardID string) (model.PayFinesResult, error)
}

var _ LibraryService = (*service.Service)(nil)
