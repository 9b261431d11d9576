package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration struct
// based on `env` field tags. A .env file in the working directory is loaded
// once per process before the first parse; a missing file is not an error.
//
// Example:
//
//	type Options struct {
//		Debounce time.Duration `env:"FORMKIT_DEBOUNCE" envDefault:"500ms"`
//		Verbose  bool          `env:"FORMKIT_VERBOSE" envDefault:"false"`
//	}
//
//	var opts Options
//	if err := config.Load(&opts); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Useful for configuration
// without which the caller cannot meaningfully start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
