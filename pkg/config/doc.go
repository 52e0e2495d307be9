// Package config loads environment-driven configuration into tagged
// structs.
//
// Packages that expose settings declare a Config struct with `env` tags and
// let callers populate it through Load. A `.env` file in the working
// directory is picked up automatically on the first Load; explicit files can
// be layered with LoadEnv.
//
//	var cfg executor.Config
//	config.MustLoad(&cfg)
package config
