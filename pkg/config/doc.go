// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with caarlos0/env tags. Load reads an
// optional .env file once through godotenv, parses the struct and caches the
// result per type:
//
//	type Config struct {
//		Addr          string        `env:"HTTP_ADDR" envDefault:":8080"`
//		SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig and can be tested with errors.Is.
package config
