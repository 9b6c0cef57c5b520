package main

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"easybj/server/report"
)

type Config struct {
	Port      string   `env:"PORT" envDefault:"8080"`
	Precision int      `env:"EASYBJ_PRECISION" envDefault:"4"`
	Tables    []string `env:"EASYBJ_TABLES" envSeparator:","`
	UseColor  string   `env:"USE_COLOR"`
	NoColor   string   `env:"NO_COLOR"`
	Lang      string   `env:"EASYBJ_LANG" envDefault:"en"`
}

// loadConfig reads an optional .env, then the process environment.
func loadConfig() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Tables = trimNames(cfg.Tables)
	return cfg, nil
}

// splitNames reads a comma separated list of table names. An empty list
// means every table.
func splitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return trimNames(strings.Split(s, ","))
}

func trimNames(names []string) []string {
	for i, n := range names {
		names[i] = strings.TrimSpace(n)
	}
	return names
}

func (c Config) Color() bool {
	return c.NoColor == "" && strings.TrimSpace(c.UseColor) != "0"
}

// Language falls back to English on a tag it cannot parse.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.English
	}
	return tag
}

func (c Config) reportOptions() report.Options {
	return report.Options{Precision: c.Precision, Color: c.Color(), Lang: c.Language()}
}
