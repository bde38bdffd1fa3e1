package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/rentalease/app/repositories/mongostore"
	"github.com/shashiranjanraj/rentalease/config"
	"github.com/shashiranjanraj/rentalease/database/seeders"
	"github.com/shashiranjanraj/rentalease/internal/server"
	"github.com/shashiranjanraj/rentalease/pkg/database"
	"github.com/shashiranjanraj/rentalease/pkg/migration"
)

// withMigrator opens the SQL database and hands fn a runner over every
// registered migration.
func withMigrator(out io.Writer, fn func(*migration.Runner) error) error {
	if err := config.Load(); err != nil {
		return err
	}
	db, err := database.Connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	return fn(migration.New(db, migration.Registered(), out))
}

func isMongo() bool {
	_ = config.Load()
	return config.DatabaseDriver() == database.DriverMongo
}

// rentalease migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if isMongo() {
			db, disconnect, err := database.ConnectMongo(ctx)
			if err != nil {
				return err
			}
			defer disconnect(context.Background())

			if err := mongostore.EnsureIndexes(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Mongo indexes ensured.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Running migrations…")
		return withMigrator(cmd.OutOrStdout(), (*migration.Runner).Run)
	},
}

// rentalease migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if isMongo() {
			return fmt.Errorf("migrate:rollback is not supported for DB_DRIVER=%s", database.DriverMongo)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Rolling back last batch…")
		return withMigrator(cmd.OutOrStdout(), (*migration.Runner).Rollback)
	},
}

// rentalease migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if isMongo() {
			return fmt.Errorf("migrate:status is not supported for DB_DRIVER=%s", database.DriverMongo)
		}
		return withMigrator(cmd.OutOrStdout(), (*migration.Runner).Status)
	},
}

// rentalease seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		store, err := server.OpenStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close(context.Background())

		fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
		return seeders.RunAll(cmd.Context(), store.Repos, cmd.OutOrStdout())
	},
}
