package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Quiz       QuizConfig       `mapstructure:"quiz"`
	Onboarding OnboardingConfig `mapstructure:"onboarding"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type QuizConfig struct {
	Seed          int64  `mapstructure:"seed"`
	BankFile      string `mapstructure:"bank_file"`
	PracticeCount int    `mapstructure:"practice_count"`
}

type OnboardingConfig struct {
	RedirectDelay time.Duration `mapstructure:"redirect_delay"`
}

const envPrefix = "QUIZCTL"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)

	v.SetDefault("quiz.seed", 0)
	v.SetDefault("quiz.bank_file", "")
	v.SetDefault("quiz.practice_count", 5)

	v.SetDefault("onboarding.redirect_delay", 900*time.Millisecond)
}

// LoadConfig reads quizctl.yaml from path (a file, or a directory to search;
// empty means the working directory), then QUIZCTL_* environment variables,
// then overrides, each layer winning over the previous one. A missing
// config file is not an error.
func LoadConfig(path string, overrides map[string]interface{}) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		v.SetConfigFile(path)
	} else {
		if path == "" {
			path = "."
		}
		v.AddConfigPath(path)
		v.SetConfigName("quizctl")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Quiz.PracticeCount <= 0 {
		return nil, fmt.Errorf("quiz.practice_count must be positive, got %d", cfg.Quiz.PracticeCount)
	}
	if cfg.Onboarding.RedirectDelay < 0 {
		return nil, fmt.Errorf("onboarding.redirect_delay must not be negative")
	}

	return &cfg, nil
}
