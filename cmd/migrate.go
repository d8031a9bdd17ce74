// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/communityhub/portal/migrations"
)

// migrateCmd applies the embedded schema: roles, profiles, households,
// checkout intents, donations and the intake tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Run the embedded database migrations. Without arguments all pending migrations are applied.`,
	Args:  migrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		target := int64(-1)
		if len(args) == 2 {
			target, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("unknown format %q", format)
		}

		return migrate(cmd.Context(), dsn, command, target, &migrationOutput{json: format == "json", w: cmd.OutOrStdout()})
	},
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) == 2 {
			return fmt.Errorf("%s takes no version", args[0])
		}
	case "down":
		if len(args) == 2 {
			if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("unknown migration command %q", args[0])
	}

	return nil
}

func init() {
	migrateCmd.Flags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("--dsn or the DSN environment variable is required")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %v", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database is not reachable: %v", err)
	}

	return db, nil
}

func migrate(ctx context.Context, dsn, command string, target int64, out *migrationOutput) error {
	db, err := openMigrationDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if out.json {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		return out.applied(results)
	case "down":
		if target < 0 {
			result, err := provider.Down(ctx)
			if err != nil {
				return err
			}
			return out.applied([]*goose.MigrationResult{result})
		}
		results, err := provider.DownTo(ctx, target)
		if err != nil {
			return err
		}
		return out.applied(results)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		return out.status(statuses)
	case "check":
		return checkPending(ctx, provider, out)
	}

	return nil
}

// checkPending fails when migrations are pending so deploy jobs can gate on it.
func checkPending(ctx context.Context, provider *goose.Provider, out *migrationOutput) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, verr := provider.GetDBVersion(ctx)

	if out.json {
		status := "ok"
		switch {
		case pending:
			status = "pending"
		case verr != nil:
			status = "unknown"
		}
		return json.NewEncoder(out.w).Encode(map[string]interface{}{"status": status, "version": current})
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}
	if verr != nil {
		fmt.Fprintln(out.w, "database is up to date")
		return nil
	}

	fmt.Fprintf(out.w, "database is up to date (version %d)\n", current)
	return nil
}

type migrationOutput struct {
	json bool
	w    io.Writer
}

func (o *migrationOutput) applied(results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if o.json {
		return json.NewEncoder(o.w).Encode(map[string]interface{}{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(o.w, "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
	if len(results) == 0 {
		fmt.Fprintln(o.w, "no migrations to apply")
	}
	return nil
}

func (o *migrationOutput) status(statuses []*goose.MigrationStatus) error {
	if o.json {
		return json.NewEncoder(o.w).Encode(statuses)
	}

	w := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "APPLIED AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}
	return w.Flush()
}
