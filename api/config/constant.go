package config

import (
	"fmt"
	"strings"
)

const (
	// ProdDbId is the identifier of the production Supabase project
	ProdDbId = "startupstack-prod"
)

// CheckNotProdDB returns an error if the configured database URL contains ProdDbId.
// This should be called at the start of any test that interacts with the database.
func CheckNotProdDB(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DatabaseURL is not configured")
	}
	if strings.Contains(cfg.DatabaseURL, ProdDbId) {
		return fmt.Errorf("tests aborted: DatabaseURL contains production identifier %s", ProdDbId)
	}
	return nil
}
