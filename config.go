package favicon

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/caarlos0/env/v11"
)

// ICOMode selects how the favicon.ico images are produced.
type ICOMode string

const (
	// ICORendered bundles the size-tuned render of every ICO size.
	ICORendered ICOMode = "rendered"

	// ICOResample downscales the 64px render to every ICO size.
	ICOResample ICOMode = "resample"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ICOMode) UnmarshalText(text []byte) error {
	switch mode := ICOMode(text); mode {
	case ICORendered, ICOResample:
		*m = mode
		return nil
	default:
		return fmt.Errorf("unknown ico mode %q", text)
	}
}

// Config controls where assets are written and what the manifest says.
// Every field can be set from the environment.
type Config struct {
	OutDir          string     `env:"FAVICON_OUT_DIR"          envDefault:"assets/favicon"`
	Name            string     `env:"FAVICON_NAME"             envDefault:"Mushroom Lab"`
	ShortName       string     `env:"FAVICON_SHORT_NAME"       envDefault:"MushroomLab"`
	IconBase        string     `env:"FAVICON_ICON_BASE"        envDefault:"/assets/favicon"`
	ThemeColor      string     `env:"FAVICON_THEME_COLOR"      envDefault:"#0b0e12"`
	BackgroundColor string     `env:"FAVICON_BACKGROUND_COLOR" envDefault:"#0b0e12"`
	Display         string     `env:"FAVICON_DISPLAY"          envDefault:"standalone"`
	ICOMode         ICOMode    `env:"FAVICON_ICO_MODE"         envDefault:"rendered"`
	LogLevel        slog.Level `env:"FAVICON_LOG_LEVEL"        envDefault:"info"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadConfigFrom reads the configuration from environ instead of the
// process environment.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// DefaultConfig returns the configuration with every default applied.
func DefaultConfig() Config {
	cfg, err := LoadConfigFrom(nil)
	if err != nil {
		panic(err)
	}
	return cfg
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.OutDir == "" {
		return errors.New("config: output directory is empty")
	}
	if c.Name == "" || c.ShortName == "" {
		return errors.New("config: name and short name are required")
	}
	if !hexColorPattern.MatchString(c.ThemeColor) {
		return fmt.Errorf("config: invalid theme color %q", c.ThemeColor)
	}
	if !hexColorPattern.MatchString(c.BackgroundColor) {
		return fmt.Errorf("config: invalid background color %q", c.BackgroundColor)
	}
	if c.ICOMode != ICORendered && c.ICOMode != ICOResample {
		return fmt.Errorf("config: unknown ico mode %q", c.ICOMode)
	}
	return nil
}
