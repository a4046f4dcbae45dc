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
	ErrParsingConfig = errors.New("failed to parse environment into config")
	ErrNilPointer    = errors.New("nil pointer provided to config loader")
	ErrLoadingEnv    = errors.New("failed to load env file")
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache       sync.Map // reflect.Type -> *entry
	dotenvOnce  sync.Once
	dotenvFiles = []string{".env"}
)

// LoadEnv reads the given dotenv files into the process environment without
// overriding variables that are already set. Missing files are an error here,
// unlike the implicit .env read done by Load.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// Load parses the environment into v. Each config type is parsed once per
// process; later calls copy the cached value.
//
//	var cfg struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() { _ = godotenv.Load(dotenvFiles...) })

	e, _ := cache.LoadOrStore(reflect.TypeFor[T](), &entry{})
	ent := e.(*entry)
	ent.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = cfg
	})
	if ent.err != nil {
		return ent.err
	}
	*v = ent.value.(T)
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Parse reads the environment into a fresh T, bypassing the cache.
func Parse[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Reset drops every cached config. Tests use it after changing the environment.
func Reset() {
	cache.Range(func(k, _ any) bool {
		cache.Delete(k)
		return true
	})
}
