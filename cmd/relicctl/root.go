package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"relic-search/internal/config"
	"relic-search/internal/database"
	"relic-search/internal/services/relic"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "relicctl",
	Short:         "Operator tools for the relic search service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
			log.Printf("Could not load %s: %v", envFile, err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading configuration")
}

// openService connects to the configured database. The returned cleanup closes the pool.
func openService() (*relic.Service, func(), error) {
	cfg := config.Load()
	db, err := database.Initialize(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	svc := relic.NewService(relic.NewStore(db, cfg.Database.QueryTimeout))
	return svc, func() { closeDB(db) }, nil
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		log.Printf("close database: %v", err)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func newContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
