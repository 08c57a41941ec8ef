package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	ok := func() error { return nil }
	fail := func() error { return errors.New("broker down") }

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	cb := New(Config{
		RecordLength:     4,
		Timeout:          time.Second,
		Percentile:       0.5,
		RecoveryRequests: 2,
	}).(*circuitBreaker)
	cb.now = func() time.Time { return now }

	require.NoError(t, cb.Call(ok))
	require.Error(t, cb.Call(fail))
	require.Equal(t, Closed, cb.State())

	require.Error(t, cb.Call(fail))
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(ok), ErrOpenCB)

	now = now.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	cb := New(Config{RecordLength: 2, Timeout: time.Second, Percentile: 0.5, RecoveryRequests: 3}).(*circuitBreaker)
	cb.now = func() time.Time { return now }

	require.Error(t, cb.Call(func() error { return errors.New("x") }))
	require.Equal(t, Open, cb.State())

	now = now.Add(2 * time.Second)
	require.Error(t, cb.Call(func() error { return errors.New("still down") }))
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
}
