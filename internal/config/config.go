package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	PlayerKindAsk      = "ask"
	PlayerKindHuman    = "human"
	PlayerKindComputer = "computer"
)

type Config struct {
	LogLevel string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info"`
	Players  Players       `yaml:"players"`
	BotDelay time.Duration `yaml:"bot-delay" env:"BOT_DELAY" env-default:"800ms"`
	RandSeed int64         `yaml:"rand-seed" env:"RAND_SEED" env-default:"0"`
}

type Players struct {
	X string `yaml:"x" env:"PLAYER_X" env-default:"ask" validate:"oneof=ask human computer"`
	O string `yaml:"o" env:"PLAYER_O" env-default:"ask" validate:"oneof=ask human computer"`
}

// MustLoad - load all configurations from the config file and environment.
// The file is optional; without it the environment and defaults apply.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("read config env: %w", err)
		}
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return config, nil
}

// IsResolved reports whether both sides are pinned to human or computer, so
// the interactive game-type menu can be skipped.
func (that *Players) IsResolved() bool {
	return that.X != PlayerKindAsk && that.O != PlayerKindAsk
}
