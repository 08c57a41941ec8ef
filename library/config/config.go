package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Astemirdum/library-management/pkg/kafka"
	"github.com/Astemirdum/library-management/pkg/logger"
	"github.com/Astemirdum/library-management/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

// Circulation holds the lending policy knobs.
type Circulation struct {
	LoanPeriodDays int             `yaml:"loanPeriodDays" envconfig:"LOAN_PERIOD_DAYS"`
	MaxOpenLoans   int             `yaml:"maxOpenLoans" envconfig:"MAX_OPEN_LOANS"`
	FineRatePerDay decimal.Decimal `yaml:"fineRatePerDay" envconfig:"FINE_RATE_PER_DAY"`
}

type Config struct {
	Server      HTTPServer   `yaml:"server"`
	Database    postgres.DB  `yaml:"db"`
	Kafka       kafka.Config `yaml:"kafka"`
	Log         logger.Log   `yaml:"log"`
	Circulation Circulation  `yaml:"circulation"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from the optional CONFIG_FILE and then the environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := load(os.Getenv("CONFIG_FILE"), ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func defaults() Config {
	return Config{
		Server: HTTPServer{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: postgres.DB{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			DBName:  "library",
			SSLMode: "disable",
		},
		Log: logger.Log{LogLevel: zapcore.InfoLevel},
		Circulation: Circulation{
			LoanPeriodDays: 14,
			MaxOpenLoans:   3,
			FineRatePerDay: decimal.RequireFromString("0.25"),
		},
	}
}

// load layers defaults, options, the yaml file and the environment, later ones winning.
func load(path string, ops ...Option) (*Config, error) {
	config := defaults()
	for _, op := range ops {
		op(&config)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(raw, &config); err != nil {
			return nil, errors.Wrap(err, "parse config file")
		}
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.Wrap(err, "envconfig")
	}
	if err := config.Circulation.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c Circulation) validate() error {
	switch {
	case c.LoanPeriodDays <= 0:
		return errors.New("LOAN_PERIOD_DAYS must be positive")
	case c.MaxOpenLoans <= 0:
		return errors.New("MAX_OPEN_LOANS must be positive")
	case c.FineRatePerDay.IsNegative():
		return errors.New("FINE_RATE_PER_DAY must not be negative")
	}
	return nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
