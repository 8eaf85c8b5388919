package main

import (
	"github.com/bandhub/band-management-backend/database"
	"github.com/bandhub/band-management-backend/routes"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}
		if err := database.Migrate(db, routes.Models()...); err != nil {
			return err
		}
		log.Info("database migrations completed")
		return nil
	},
}
