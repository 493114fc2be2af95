package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse is returned when environment variables can't be parsed into the target struct.
var ErrParse = errors.New("failed to parse environment config")

var (
	loadEnvOnce sync.Once
	cache       sync.Map // reflect.Type -> cached value
	mu          sync.Mutex
)

// Load fills cfg from the environment. Each type is parsed once and cached;
// later calls copy the cached value.
func Load[T any](cfg *T) error {
	loadEnvOnce.Do(func() {
		// A missing .env file is fine; real environment variables still apply.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(cfg).Elem()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParse, fmt.Errorf("%s: %w", typ, err))
	}

	cache.Store(typ, parsed)
	*cfg = parsed
	return nil
}

// MustLoad is like Load but panics on failure. Use it during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
