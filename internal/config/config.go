package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const app = "cv-builder"

// Config holds every runtime knob of the server. Values come from an
// optional cv-builder.yaml plus CVB_* environment variables, env taking
// precedence.
type Config struct {
	Port        string `mapstructure:"port"`
	DatabaseURL string `mapstructure:"database-url"`

	// WorkDir is where per-session compile workspaces are created.
	// Empty means the system temp directory.
	WorkDir      string        `mapstructure:"work-dir"`
	LatexCommand string        `mapstructure:"latex-command"`
	LatexTimeout time.Duration `mapstructure:"latex-timeout"`

	// StrictStyle rejects unknown template styles instead of silently
	// rendering single-column.
	StrictStyle bool `mapstructure:"strict-style"`
	// Placeholders substitutes generic text for missing resume fields.
	Placeholders bool `mapstructure:"placeholders"`

	Gemini *GeminiConfig `mapstructure:"gemini"`

	Debug bool `mapstructure:"debug"`
	JSON  bool `mapstructure:"json"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api-key"`
	Model  string `mapstructure:"model"`
}

// Load reads the config file if present and overlays environment
// variables. A missing file is fine; a malformed one is not.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("latex-command", "pdflatex")
	v.SetDefault("latex-timeout", 30*time.Second)
	v.SetDefault("placeholders", true)
	v.SetDefault("gemini.model", "gemini-2.0-flash")

	v.SetConfigName(app)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.BindEnv("port", "CVB_PORT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("database-url", "CVB_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("work-dir", "CVB_WORK_DIR"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("latex-command", "CVB_LATEX_COMMAND"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("latex-timeout", "CVB_LATEX_TIMEOUT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("strict-style", "CVB_STRICT_STYLE"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("placeholders", "CVB_PLACEHOLDERS"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("gemini.api-key", "CVB_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("gemini.model", "CVB_GEMINI_MODEL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("debug", "CVB_DEBUG"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("json", "CVB_JSON"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
