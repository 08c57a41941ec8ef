package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContains(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{in: "smith", want: "%smith%"},
		{in: "100%", want: `%100\%%`},
		{in: "a_b", want: `%a\_b%`},
		{in: `c:\`, want: `%c:\\%`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, contains(tt.in), tt.in)
	}
}

func TestBookFilter(t *testing.T) {
	t.Parallel()
	query, args, err := qb.Select("b.isbn").From(booksTableName + " b").Where(bookFilter("tolkien")).ToSql()
	require.NoError(t, err)

	require.Contains(t, query, "b.isbn ILIKE $1")
	require.Contains(t, query, "b.title ILIKE $2")
	require.Contains(t, query, "a2.name ilike $3")
	require.Equal(t, []interface{}{"%tolkien%", "%tolkien%", "%tolkien%"}, args)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, true},
		{"deadlock wrapped", fmt.Errorf("tx: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), true},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, false},
		{"plain", fmt.Errorf("connection reset"), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestConstraintViolated(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: borrowerSSNKey})

	require.True(t, constraintViolated(err, pgerrcode.UniqueViolation, borrowerSSNKey))
	require.False(t, constraintViolated(err, pgerrcode.UniqueViolation, openLoanIsbnIndex))
	require.False(t, constraintViolated(err, pgerrcode.ForeignKeyViolation, borrowerSSNKey))
}

func TestWithTx_Nested(t *testing.T) {
	t.Parallel()
	r := &repository{log: zap.NewNop(), inTx: true}

	var called bool
	err := r.WithTx(context.Background(), func(_ context.Context, tx Repository) error {
		called = true
		require.Same(t, r, tx)
		return nil
	})
	require.NoError(t, err)
	require.True(t, called)
}
