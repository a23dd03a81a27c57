package seeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"lineup/internal/infrastructure/persistence/models"
	"lineup/internal/shared/id"
)

// CatalogSeed is the YAML layout for bootstrapping a site's service
// catalog and counters.
type CatalogSeed struct {
	Services []ServiceSeed `yaml:"services"`
	Counters []CounterSeed `yaml:"counters"`
}

type ServiceSeed struct {
	Name             string `yaml:"name"`
	Code             string `yaml:"code"`
	Description      string `yaml:"description"`
	AvgHandleSeconds uint   `yaml:"avg_handle_seconds"`
}

type CounterSeed struct {
	Name string `yaml:"name"`
}

// LoadCatalogSeed parses a catalog seed file.
func LoadCatalogSeed(path string) (*CatalogSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed CatalogSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return &seed, nil
}

// SeedCatalog inserts the services and counters from the seed file.
// Existing rows are matched by service code and counter name, so the
// seed can be re-run without duplicating the catalog.
func SeedCatalog(db *gorm.DB, seed *CatalogSeed) error {
	for _, svc := range seed.Services {
		if svc.Name == "" || svc.Code == "" {
			return fmt.Errorf("service seed requires both name and code")
		}

		handle := svc.AvgHandleSeconds
		if handle == 0 {
			handle = 180
		}

		model := models.ServiceModel{
			SID:              id.MustGenerateWithPrefix(id.PrefixService, id.DefaultLength),
			Name:             svc.Name,
			Code:             svc.Code,
			Description:      svc.Description,
			AvgHandleSeconds: handle,
			Active:           true,
			Version:          1,
		}
		if err := db.FirstOrCreate(&model, models.ServiceModel{Code: svc.Code}).Error; err != nil {
			return fmt.Errorf("failed to seed service %q: %w", svc.Code, err)
		}
	}

	for _, ctr := range seed.Counters {
		if ctr.Name == "" {
			return fmt.Errorf("counter seed requires a name")
		}

		model := models.CounterModel{
			SID:     id.MustGenerateWithPrefix(id.PrefixCounter, id.DefaultLength),
			Name:    ctr.Name,
			Active:  true,
			Version: 1,
		}
		if err := db.FirstOrCreate(&model, models.CounterModel{Name: ctr.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed counter %q: %w", ctr.Name, err)
		}
	}

	return nil
}
