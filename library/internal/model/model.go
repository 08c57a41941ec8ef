package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Book struct {
	ISBN  string `json:"isbn" db:"isbn"`
	Title string `json:"title" db:"title"`
	// Authors is a comma separated, alphabetically sorted list.
	Authors    string  `json:"authors" db:"authors"`
	CheckedOut bool    `json:"checkedOut" db:"checked_out"`
	BorrowerID *string `json:"borrowerId" db:"borrower_id"`
}

type Borrower struct {
	CardID  string `json:"cardId" db:"card_id"`
	SSN     string `json:"ssn" db:"ssn"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
	Phone   string `json:"phone" db:"phone"`
}

type BorrowerDetails struct {
	Borrower    `json:",inline"`
	OpenLoans   int             `json:"openLoans"`
	UnpaidFines decimal.Decimal `json:"unpaidFines"`
}

type CreateBorrowerRequest struct {
	SSN     string `json:"ssn" validate:"required,ssn"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

type CreateBorrowerResponse struct {
	CardID string `json:"cardId"`
}

type Loan struct {
	LoanID  int64      `json:"loanId" db:"loan_id"`
	ISBN    string     `json:"isbn" db:"isbn"`
	CardID  string     `json:"cardId" db:"card_id"`
	DateOut time.Time  `json:"dateOut" db:"date_out"`
	DueDate time.Time  `json:"dueDate" db:"due_date"`
	DateIn  *time.Time `json:"dateIn" db:"date_in"`
}

func (l Loan) IsOpen() bool { return l.DateIn == nil }

type CheckoutRequest struct {
	ISBN   string `json:"isbn" validate:"required"`
	CardID string `json:"cardId" validate:"required,cardid"`
}

type CheckInManyRequest struct {
	LoanIDs []int64 `json:"loanIds" validate:"required,min=1,dive,gt=0"`
}

type CheckInResult struct {
	LoanID int64      `json:"loanId"`
	DateIn *time.Time `json:"dateIn,omitempty"`
	Error  string     `json:"error,omitempty"`
}

type LoanFilter struct {
	ISBN   string
	CardID string
	// Name is a case-insensitive substring of the borrower name.
	Name string
}

type OpenLoan struct {
	LoanID       int64     `json:"loanId" db:"loan_id"`
	ISBN         string    `json:"isbn" db:"isbn"`
	Title        string    `json:"title" db:"title"`
	CardID       string    `json:"cardId" db:"card_id"`
	BorrowerName string    `json:"borrowerName" db:"borrower_name"`
	DateOut      time.Time `json:"dateOut" db:"date_out"`
	DueDate      time.Time `json:"dueDate" db:"due_date"`
	Overdue      bool      `json:"overdue" db:"-"`
	DaysOverdue  int       `json:"daysOverdue" db:"-"`
}

type ListOpenLoans struct {
	TotalElements int        `json:"totalElements"`
	Items         []OpenLoan `json:"items"`
}

// OverdueLoan is a loan that is or was overdue, joined with its fine if one exists.
type OverdueLoan struct {
	LoanID     int64               `db:"loan_id"`
	DueDate    time.Time           `db:"due_date"`
	DateIn     *time.Time          `db:"date_in"`
	FineAmount decimal.NullDecimal `db:"fine_amt"`
	Paid       *bool               `db:"paid"`
}

func (o OverdueLoan) HasFine() bool { return o.FineAmount.Valid }

func (o OverdueLoan) FinePaid() bool { return o.Paid != nil && *o.Paid }

type UnpaidFines struct {
	Count int             `db:"cnt"`
	Total decimal.Decimal `db:"total"`
}

type UpdateFinesResult struct {
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Processed int `json:"processed"`
}

type FineFilter struct {
	UnpaidOnly bool
	CardID     string
	Name       string
}

type FineSummary struct {
	CardID       string          `json:"cardId" db:"card_id"`
	BorrowerName string          `json:"borrowerName" db:"borrower_name"`
	TotalFine    decimal.Decimal `json:"totalFine" db:"total_fine"`
}

type ListFineSummaries struct {
	TotalElements int           `json:"totalElements"`
	Items         []FineSummary `json:"items"`
}

type PayFinesRequest struct {
	CardID string `json:"cardId" validate:"required,cardid"`
}

type PayFinesResult struct {
	CardID      string `json:"cardId"`
	RowsUpdated int64  `json:"rowsUpdated"`
}

// FinesUpdateCommand is the message that asks the service to run the fines sweep.
type FinesUpdateCommand struct {
	RequestedBy string    `json:"requestedBy"`
	RequestedAt time.Time `json:"requestedAt"`
}
