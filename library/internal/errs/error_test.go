package errs_test

import (
	"fmt"
	"testing"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{"not found", errs.NotFound(errs.EntityBook), errs.ErrNotFound, "book not found"},
		{"conflict", errs.Conflict(errs.ReasonAlreadyCheckedOut), errs.ErrConflict, "conflict: book is already checked out"},
		{"policy", errs.PolicyViolation(errs.ReasonUnpaidFines), errs.ErrPolicyViolation, "policy violation: borrower has unpaid fines"},
		{"validation", errs.Validation("cardId", "must look like ID000001"), errs.ErrValidation, "cardId: must look like ID000001"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tt.err, tt.kind)
			require.EqualError(t, tt.err, tt.message)

			wrapped := fmt.Errorf("checkout: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.kind)
		})
	}
}

func TestReason(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("tx: %w", errs.PolicyViolation(errs.ReasonLoanLimitExceeded))
	require.Equal(t, errs.ReasonLoanLimitExceeded, errs.Reason(err))
	require.Empty(t, errs.Reason(fmt.Errorf("connection refused")))
	require.NotErrorIs(t, errs.NotFound(errs.EntityLoan), errs.ErrConflict)
}
