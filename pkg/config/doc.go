// Package config loads typed configuration from environment variables.
//
// Struct fields are described with caarlos0/env tags. The first call to Load
// reads a `.env` file from the working directory if one exists (variables
// already set in the environment win), then parses the environment into the
// struct. Each configuration type is parsed once and cached; later calls for
// the same type return the cached copy.
//
//	type Config struct {
//		Addr     string `env:"ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadEnvFiles loads additional dotenv files explicitly, for example a
// per-environment file selected at startup.
package config
