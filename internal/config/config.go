package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Storage  Storage
	Telegram Telegram
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// Storage names the data files. Relative names are resolved against Dir.
type Storage struct {
	Dir         string `env:"DATA_DIR" envDefault:"."`
	UsersFile   string `env:"USERS_FILE" envDefault:"users.dat"`
	IncomeFile  string `env:"INCOME_FILE" envDefault:"myincome.bin"`
	ExpenseFile string `env:"EXPENSE_FILE" envDefault:"myexpense.bin"`
	RecordFile  string `env:"RECORD_FILE" envDefault:"record.bin"`
}

type Telegram struct {
	Token   string `env:"TG_TOKEN"`
	Timeout int    `env:"TG_TIMEOUT" envDefault:"60"`
	Debug   bool   `env:"TG_DEBUG" envDefault:"false"`
}

// Load reads an optional .env file from the working directory and then parses
// the environment. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config, load .env: %w", err)
	}
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config, parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	files := map[string]string{
		"USERS_FILE":   c.Storage.UsersFile,
		"INCOME_FILE":  c.Storage.IncomeFile,
		"EXPENSE_FILE": c.Storage.ExpenseFile,
		"RECORD_FILE":  c.Storage.RecordFile,
	}
	for name, file := range files {
		if file == "" {
			return fmt.Errorf("config, %s is empty", name)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config, LOG_LEVEL: %w", err)
	}
	return nil
}

// Path resolves a data file name against Dir.
func (s Storage) Path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(s.Dir, file)
}
