package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("", WithLogLevel(zapcore.DebugLevel), WithWriteTimeout(time.Minute))
	require.NoError(t, err)

	require.Equal(t, 14, cfg.Circulation.LoanPeriodDays)
	require.Equal(t, 3, cfg.Circulation.MaxOpenLoans)
	require.Equal(t, "0.25", cfg.Circulation.FineRatePerDay.String())
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.False(t, cfg.Kafka.Enabled())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	err := os.WriteFile(path, []byte(`
server:
  port: "9090"
circulation:
  loanPeriodDays: 21
  fineRatePerDay: "0.50"
`), 0o600)
	require.NoError(t, err)

	t.Setenv("LOAN_PERIOD_DAYS", "7")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")

	cfg, err := load(path)
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 7, cfg.Circulation.LoanPeriodDays)
	require.Equal(t, "0.5", cfg.Circulation.FineRatePerDay.String())
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("MAX_OPEN_LOANS", "0")

	_, err := load("")
	require.ErrorContains(t, err, "MAX_OPEN_LOANS")
}
