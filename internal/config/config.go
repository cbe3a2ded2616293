package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Engine   Engine   `yaml:"engine"`
	Audit    Audit    `yaml:"audit"`
	SelfPlay SelfPlay `yaml:"self-play"`
}

type Engine struct {
	Horizon      int    `yaml:"horizon" env:"ENGINE_HORIZON" env-default:"5"`
	ComputerMark string `yaml:"computer-mark" env:"ENGINE_COMPUTER_MARK" env-default:"O"`
}

// env-default only fills zero values, so the switches below are phrased as Skip.

type Audit struct {
	Skip bool `yaml:"skip" env:"AUDIT_SKIP"`
}

type SelfPlay struct {
	Skip bool `yaml:"skip" env:"SELF_PLAY_SKIP"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
