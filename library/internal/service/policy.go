package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-management/library/config"
	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
)

// Policy is the lending rule set. Its methods are pure and never touch storage.
type Policy struct {
	LoanPeriodDays int
	MaxOpenLoans   int
	FineRate       decimal.Decimal
}

func NewPolicy(cfg config.Circulation) Policy {
	return Policy{
		LoanPeriodDays: cfg.LoanPeriodDays,
		MaxOpenLoans:   cfg.MaxOpenLoans,
		FineRate:       cfg.FineRatePerDay,
	}
}

func (p Policy) DueDate(dateOut time.Time) time.Time {
	return dateOut.AddDate(0, 0, p.LoanPeriodDays)
}

// CheckoutDecision returns a policy violation when a borrower holding openLoans
// loans and the given unpaid fines must not take another book.
func (p Policy) CheckoutDecision(openLoans int, unpaid model.UnpaidFines) error {
	if openLoans >= p.MaxOpenLoans {
		return errs.PolicyViolation(errs.ReasonLoanLimitExceeded)
	}
	if unpaid.Count > 0 {
		return errs.PolicyViolation(errs.ReasonUnpaidFines)
	}
	return nil
}

// Owed is the fine for a loan due on due and returned on dateIn, or still out on today.
func (p Policy) Owed(due time.Time, dateIn *time.Time, today time.Time) decimal.Decimal {
	end := today
	if dateIn != nil {
		end = *dateIn
	}
	days := daysBetween(due, end)
	if days <= 0 {
		return decimal.Zero
	}
	return p.FineRate.Mul(decimal.NewFromInt(int64(days))).Round(2)
}

func daysBetween(from, to time.Time) int {
	return int(dateOf(to).Sub(dateOf(from)).Hours() / 24)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
