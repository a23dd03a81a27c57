package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineup/internal/infrastructure/config"
	"lineup/internal/infrastructure/database"
	"lineup/internal/infrastructure/persistence/seeds"
	"lineup/internal/shared/logger"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the service catalog",
		Long:  `Load services and counters from a YAML file into the database. Rows are matched by service code and counter name, so re-running the seed is safe.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "./configs/seed.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	seedData, err := seeds.LoadCatalogSeed(file)
	if err != nil {
		return err
	}

	log.Infow("seeding catalog",
		"file", file,
		"services", len(seedData.Services),
		"counters", len(seedData.Counters))

	if err := seeds.SeedCatalog(database.Get(), seedData); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("catalog seeded successfully")
	return nil
}
