package engine

import (
	"log/slog"
	"time"

	"github.com/formkit-go/formkit/pkg/config"
)

// DefaultDebounce is the delay applied to debounced submissions when no
// other duration is configured.
const DefaultDebounce = 500 * time.Millisecond

// Option configures engine creation.
type Option func(*options)

type options struct {
	debounceFor             time.Duration
	hideFailedOnEmptySubmit bool
	considerNoInputAsValid  bool
	log                     *slog.Logger
}

func defaultOptions() options {
	return options{
		debounceFor: DefaultDebounce,
		log:         slog.Default(),
	}
}

// WithDebounceFor sets the trailing delay for debounced submissions.
// Non-positive durations are ignored.
func WithDebounceFor(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounceFor = d
		}
	}
}

// WithHideFailedValidationOnEmptySubmit empties DisplayedValidationResults
// when the last submitted input was empty, so a field the user cleared does
// not keep shouting about its rules. ValidationResults is unaffected.
func WithHideFailedValidationOnEmptySubmit() Option {
	return func(o *options) {
		o.hideFailedOnEmptySubmit = true
	}
}

// WithConsiderNoInputAsValid makes an engine that has never run report
// InputValid as true. Without it, an untouched engine is invalid until its
// first evaluation.
func WithConsiderNoInputAsValid() Option {
	return func(o *options) {
		o.considerNoInputAsValid = true
	}
}

// WithLogger sets the logger used for diagnostics. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// envOptions maps the engine's environment configuration surface.
type envOptions struct {
	Debounce                          time.Duration `env:"FORMKIT_DEBOUNCE" envDefault:"500ms"`
	HideFailedValidationOnEmptySubmit bool          `env:"FORMKIT_HIDE_FAILED_ON_EMPTY_SUBMIT" envDefault:"false"`
	ConsiderNoInputAsValid            bool          `env:"FORMKIT_CONSIDER_NO_INPUT_AS_VALID" envDefault:"false"`
}

// OptionsFromEnv builds engine options from FORMKIT_DEBOUNCE,
// FORMKIT_HIDE_FAILED_ON_EMPTY_SUBMIT and FORMKIT_CONSIDER_NO_INPUT_AS_VALID.
// Explicit options passed to New after these take precedence.
func OptionsFromEnv() ([]Option, error) {
	var ec envOptions
	if err := config.Load(&ec); err != nil {
		return nil, err
	}

	opts := []Option{WithDebounceFor(ec.Debounce)}
	if ec.HideFailedValidationOnEmptySubmit {
		opts = append(opts, WithHideFailedValidationOnEmptySubmit())
	}
	if ec.ConsiderNoInputAsValid {
		opts = append(opts, WithConsiderNoInputAsValid())
	}
	return opts, nil
}
