package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Backend BackendConfigs `toml:"backend"`
	Advisor AdvisorConfigs `toml:"advisor"`
	Earn    EarnConfigs    `toml:"earn"`
	Lottery LotteryConfigs `toml:"lottery"`
	Session SessionConfigs `toml:"session"`
}

type BackendConfigs struct {
	// Domains are tried in random order until one answers.
	Domains []string `toml:"domains"`
}

type AdvisorConfigs struct {
	Domain    string `toml:"domain"`
	APIKey    string `toml:"api_key"`
	IdeaModel string `toml:"idea_model"`
	ChatModel string `toml:"chat_model"`
}

type EarnConfigs struct {
	// DefaultCooldown is used when the backend reports a zero remaining time
	// after a successful click.
	DefaultCooldown int `toml:"default_cooldown"`

	// WithdrawMinimum is the least last-month coin balance that can be
	// withdrawn.
	WithdrawMinimum float64 `toml:"withdraw_minimum"`

	// CoinsPerYuan converts withdrawn coins into yuan.
	CoinsPerYuan float64 `toml:"coins_per_yuan"`

	// LogWindow bounds the in-memory coin log.
	LogWindow int `toml:"log_window"`
}

type LotteryConfigs struct {
	TicketPrice       float64 `toml:"ticket_price"`
	MaxTicketsPerDraw int     `toml:"max_tickets_per_draw"`
	PollIntervalSec   int     `toml:"poll_interval_sec"`
}

func (c LotteryConfigs) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSec) * time.Second
}

type SessionConfigs struct {
	Path string `toml:"path"`
}

func Default() Configs {
	return Configs{
		Env: "prod",
		Backend: BackendConfigs{
			Domains: []string{"https://fxbzymqsusze.sealoshzh.site"},
		},
		Advisor: AdvisorConfigs{
			Domain:    "https://generativelanguage.googleapis.com",
			IdeaModel: "gemini-3-flash-preview",
			ChatModel: "gemini-3-pro-preview",
		},
		Earn: EarnConfigs{
			DefaultCooldown: 10,
			WithdrawMinimum: 1000,
			CoinsPerYuan:    1000,
			LogWindow:       50,
		},
		Lottery: LotteryConfigs{
			TicketPrice:       1000,
			MaxTicketsPerDraw: 10,
			PollIntervalSec:   30,
		},
	}
}

// Load builds the configuration from defaults, then the TOML file at path if
// given, then environment overrides.
func Load(path string) (Configs, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if backend := os.Getenv("GQLM_BACKEND"); backend != "" {
		cfg.Backend.Domains = []string{backend}
	}

	if key := os.Getenv("GQLM_ADVISOR_KEY"); key != "" {
		cfg.Advisor.APIKey = key
	}

	if env := os.Getenv("GQLM_ENV"); env != "" {
		cfg.Env = env
	}

	return cfg, nil
}
