// Package config loads configuration structs from environment variables
// using `env` struct tags, with optional .env file support for local
// development.
//
// The loader is deliberately stateless apart from the one-time .env load:
// every Load call re-reads the environment, so tests can vary variables
// with t.Setenv without fighting a hidden cache.
package config
