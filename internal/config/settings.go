package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/handiism/osuap/internal/catalog"
)

// Settings holds generator configuration shared by every player.
type Settings struct {
	// Catalog settings
	CatalogSources       []string `json:"catalog_sources"`
	CatalogMaxRetries    int      `json:"catalog_max_retries"`
	CatalogRetryCooldown float64  `json:"catalog_retry_cooldown"`
	CatalogRetryExponent float64  `json:"catalog_retry_exponent"`

	// Output settings
	OutputPath     string `json:"output_path"`
	SlotDataFormat string `json:"slot_data_format"` // {player}, {seed}
	ReportFormat   string `json:"report_format"`    // table, markdown, csv, html

	// Generation
	MaxConcurrentPlayers int `json:"max_concurrent_players"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		CatalogMaxRetries:    7,
		CatalogRetryCooldown: 0.2,
		CatalogRetryExponent: 4.0,

		OutputPath:     "output",
		SlotDataFormat: "{player}.json",
		ReportFormat:   "table",

		MaxConcurrentPlayers: 4,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToRetryPolicy converts settings to the catalog loader's RetryPolicy.
func (s *Settings) ToRetryPolicy() catalog.RetryPolicy {
	return catalog.RetryPolicy{
		MaxRetries: s.CatalogMaxRetries,
		Cooldown:   s.CatalogRetryCooldown,
		Exponent:   s.CatalogRetryExponent,
	}
}
