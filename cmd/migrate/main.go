package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"basegraph.app/planboard/common/logger"
	"basegraph.app/planboard/core/config"
	"basegraph.app/planboard/core/db/migrations"
)

const usage = "usage: migrate [up|down|status|version]"

func main() {
	ctx := context.Background()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg)

	if err := run(ctx, cfg.DB.DSN, command); err != nil {
		slog.ErrorContext(ctx, "migration failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, command string) error {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer conn.Close()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}

	switch command {
	case "up":
		if err := goose.UpContext(ctx, conn, "."); err != nil {
			return err
		}
	case "down":
		if err := goose.DownContext(ctx, conn, "."); err != nil {
			return err
		}
	case "status":
		return goose.StatusContext(ctx, conn, ".")
	case "version":
	default:
		return fmt.Errorf("unknown command %q; %s", command, usage)
	}

	version, err := goose.GetDBVersionContext(ctx, conn)
	if err != nil {
		return fmt.Errorf("reading version: %w", err)
	}
	slog.InfoContext(ctx, "database migrated", "command", command, "version", version)
	return nil
}
