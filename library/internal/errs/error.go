package errs

import (
	"errors"
	"fmt"
)

// Kinds of expected, caller-recoverable failures. Match with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrPolicyViolation = errors.New("policy violation")
	ErrValidation      = errors.New("validation failed")
)

const (
	EntityBook     = "book"
	EntityBorrower = "borrower"
	EntityLoan     = "loan"
)

const (
	ReasonAlreadyCheckedOut = "book is already checked out"
	ReasonAlreadyClosed     = "loan is already checked in"
	ReasonDuplicateSSN      = "a borrower with this ssn already exists"
	ReasonLoanLimitExceeded = "borrower has reached the maximum number of open loans"
	ReasonUnpaidFines       = "borrower has unpaid fines"
)

type Error struct {
	kind error
	// Subject is the entity for NotFound and the field for Validation.
	Subject string
	Reason  string
}

func (e *Error) Error() string {
	switch e.kind {
	case ErrNotFound:
		return fmt.Sprintf("%s not found", e.Subject)
	case ErrValidation:
		return fmt.Sprintf("%s: %s", e.Subject, e.Reason)
	default:
		return fmt.Sprintf("%s: %s", e.kind, e.Reason)
	}
}

func (e *Error) Unwrap() error { return e.kind }

func (e *Error) Kind() error { return e.kind }

func NotFound(entity string) error {
	return &Error{kind: ErrNotFound, Subject: entity}
}

func Conflict(reason string) error {
	return &Error{kind: ErrConflict, Reason: reason}
}

func PolicyViolation(reason string) error {
	return &Error{kind: ErrPolicyViolation, Reason: reason}
}

func Validation(field, reason string) error {
	return &Error{kind: ErrValidation, Subject: field, Reason: reason}
}

// Reason returns the reason of a domain error, or "" for anything else.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
