package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/mines/internal/config"
	"github.com/vancomm/mines/internal/database"
)

func init() {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the postgres records schema up to date",
		Long: `Apply pending migrations to the postgres records database. Connection
settings come from DATABASE_URL or the POSTGRES_* variables.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	url, err := config.DbURL()
	if err != nil {
		return err
	}
	version, dirty, err := database.MigrateVersion(url, database.Migrations)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
	return nil
}
