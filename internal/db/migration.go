package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies pending migrations for the users table.
func Migrate(cfg Config) error {
	schema := cfg.Schema
	if schema == "" {
		schema = "public"
	}

	conn, err := sql.Open("pgx", cfg.Url)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer conn.Close()

	// A single connection keeps the search_path set below for goose.
	conn.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}

	ident := pgx.Identifier{schema}.Sanitize()
	if _, err := conn.Exec("CREATE SCHEMA IF NOT EXISTS " + ident); err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}
	if _, err := conn.Exec("SET search_path TO " + ident); err != nil {
		return fmt.Errorf("set search_path %s: %w", schema, err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	slog.Info("Database migrations completed", "schema", schema)
	return nil
}
