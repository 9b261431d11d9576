package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/formkit-go/formkit/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*cfg)

type cfg struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

func defaultCfg() *cfg {
	return &cfg{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
}

func WithLevel(l slog.Level) Option {
	return func(c *cfg) { c.level = l }
}

// WithFormat sets output format. Panics on an unknown format so that a
// misconfigured logger fails at startup instead of at first log call.
func WithFormat(f Format) Option {
	return func(c *cfg) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("logger: invalid format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *cfg) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *cfg) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// New creates a slog.Logger with the given options. Defaults are text
// format at info level on stderr.
func New(opts ...Option) *slog.Logger {
	c := defaultCfg()
	for _, opt := range opts {
		opt(c)
	}

	handlerOpts := &slog.HandlerOptions{Level: c.level}

	var handler slog.Handler
	switch c.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(c.output, handlerOpts)
	default:
		handler = slog.NewTextHandler(c.output, handlerOpts)
	}

	if len(c.attrs) > 0 {
		handler = handler.WithAttrs(c.attrs)
	}
	return slog.New(handler)
}

// envConfig maps the logger's environment surface.
type envConfig struct {
	Level  string `env:"FORMKIT_LOG_LEVEL" envDefault:"info"`
	Format string `env:"FORMKIT_LOG_FORMAT" envDefault:"text"`
}

// NewFromEnv creates a logger configured from FORMKIT_LOG_LEVEL and
// FORMKIT_LOG_FORMAT, falling back to defaults for unset or unknown values.
// Extra options are applied after the environment and take precedence.
func NewFromEnv(opts ...Option) (*slog.Logger, error) {
	var ec envConfig
	if err := config.Load(&ec); err != nil {
		return nil, err
	}

	envOpts := []Option{WithLevel(parseLevel(ec.Level))}
	switch Format(strings.ToLower(ec.Format)) {
	case FormatJSON:
		envOpts = append(envOpts, WithFormat(FormatJSON))
	default:
		envOpts = append(envOpts, WithFormat(FormatText))
	}

	return New(append(envOpts, opts...)...), nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
