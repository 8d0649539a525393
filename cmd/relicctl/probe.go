package main

import (
	"fmt"
	"time"

	"relic-search/internal/services/probe"

	"github.com/spf13/cobra"
)

var (
	probeURL     string
	probeTimeout time.Duration
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check a running server's /api/health endpoint",
	RunE:  runProbe,
}

func init() {
	probeCmd.Flags().StringVar(&probeURL, "url", "http://localhost:3001", "Base URL of the relic search server")
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", 5*time.Second, "Request timeout")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	health, err := probe.NewClient(probeURL, probeTimeout).Health(newContext(cmd))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", health.Status, health.Message)
	return nil
}
