package main

import (
	"os"

	"github.com/spf13/cobra"

	"lineup/internal/interfaces/cli/migrate"
	"lineup/internal/interfaces/cli/seed"
	"lineup/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lineup",
		Short: "Lineup - virtual queue management for walk-in services",
		Long:  `Lineup runs virtual waiting queues for walk-in service points: customers book numbered tickets, staff call them to counters, and daily reports summarize throughput and wait times.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
