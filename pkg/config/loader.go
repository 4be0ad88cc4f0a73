package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	cache  = map[string]any{}
	envled sync.Once
)

// Load parses environment variables into the provided struct based on `env`
// field tags. The first call loads a .env file if one exists; each struct
// type is parsed once per process and cached afterwards, so configuration is
// immutable shared state for the process lifetime.
//
//	type JWTConfig struct {
//		Secret string        `env:"JWT_SECRET,required"`
//		TTL    time.Duration `env:"JWT_TTL" envDefault:"168h"`
//	}
//
//	var cfg JWTConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	envled.Do(func() {
		// The .env file is optional; absence is not an error.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cache[key] = *v
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads one or more env files into the process environment. Later
// files take precedence over earlier ones.
func LoadEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Overload(path); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}

// ResetCache clears cached configuration. Intended for tests only.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	cache = map[string]any{}
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
