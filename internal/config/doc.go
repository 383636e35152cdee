// Package config handles configuration loading and validation from
// environment variables and an optional config file. It provides type-safe
// access to the server and database settings the application needs while
// keeping configuration details separate from business logic.
package config
