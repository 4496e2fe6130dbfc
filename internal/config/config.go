package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address       string        `env:"RUN_ADDRESS"    envDefault:"localhost:8080"`
	LedgerAddress string        `env:"LEDGER_ADDRESS" envDefault:"localhost:5000/api"`
	Database      string        `env:"DATABASE_URI"   envDefault:""`
	LogLvl        string        `env:"LOG_LVL"        envDefault:"info"`
	SessionTTL    time.Duration `env:"SESSION_TTL"    envDefault:"30m"`
	DedupeWindow  time.Duration `env:"DEDUPE_WINDOW"  envDefault:"10s"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT"   envDefault:"15s"`
}

func New() *Config {
	cfg := &Config{}

	// a missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "can't load .env:", err)
	}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LedgerAddress, "r", cfg.LedgerAddress, "ledger service base address")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN, empty keeps the submission journal in memory")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.DurationVar(&cfg.SessionTTL, "s", cfg.SessionTTL, "idle session lifetime")
	flag.DurationVar(&cfg.DedupeWindow, "w", cfg.DedupeWindow, "duplicate payout submission window")
	flag.DurationVar(&cfg.HTTPTimeout, "t", cfg.HTTPTimeout, "ledger request timeout")
	flag.Parse()

	if !strings.HasPrefix(cfg.LedgerAddress, "http://") && !strings.HasPrefix(cfg.LedgerAddress, "https://") {
		cfg.LedgerAddress = "http://" + cfg.LedgerAddress
	}
	cfg.LedgerAddress = strings.TrimRight(cfg.LedgerAddress, "/")

	return cfg
}
