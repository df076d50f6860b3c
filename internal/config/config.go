package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Width     uint32 `yaml:"width" env:"TICTACTOE_BOARD_WIDTH" env-default:"3"`
	Height    uint32 `yaml:"height" env:"TICTACTOE_BOARD_HEIGHT" env-default:"3"`
	RunLength int    `yaml:"run-length" env:"TICTACTOE_RUN_LENGTH" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file, or from the environment alone when there is no such file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.RuleSet().Validate(); err != nil {
		return nil, fmt.Errorf("bad board config: %w", err)
	}

	return config, nil
}

func (that *Config) RuleSet() entity.RuleSet {
	return entity.RuleSet{
		Width:     that.Board.Width,
		Height:    that.Board.Height,
		RunLength: that.Board.RunLength,
	}
}
