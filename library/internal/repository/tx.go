package repository

import (
	"context"
	"math/rand"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type TxFunc func(ctx context.Context, tx Repository) error

const (
	txMaxAttempts  = 5
	txBaseDelay    = 10 * time.Millisecond
	txJitterFactor = 0.3
)

func (r *repository) WithTx(ctx context.Context, fn TxFunc) error {
	if r.inTx {
		return fn(ctx, r)
	}

	var err error
	for attempt := 0; attempt < txMaxAttempts; attempt++ {
		if attempt > 0 {
			delay := txBaseDelay * time.Duration(1<<(attempt-1))
			delay += time.Duration(rand.Float64() * float64(delay) * txJitterFactor) //nolint:gosec
			r.log.Warn("retrying transaction", zap.Int("attempt", attempt), zap.Error(err))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err = pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
			return fn(ctx, &repository{db: tx, log: r.log, inTx: true})
		})
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return errors.Wrap(err, "transaction retries exhausted")
}

// isRetryable reports whether the transaction lost a race and can be replayed as is.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	}
	return false
}
