// Package config provides Postgres connection configuration for the example
// billing application, with one constructor per supported database adapter:
// pgxpool, database/sql and sqlx.
package config
