// Package config holds the explicit runtime configuration for sync runs.
// Credentials and identifiers are read from the environment once at startup
// and passed around as a value, never consulted ambiently.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config carries every credential and identifier a sync binary may need.
// Which fields are mandatory depends on the binary; use the Require* helpers
// after Load.
type Config struct {
	// GoogleCredentialsFile is the path to the service-account JSON key. The
	// spreadsheets must be shared with that service account.
	GoogleCredentialsFile string `envconfig:"GOOGLE_CREDENTIALS"`

	// SpreadsheetID identifies the daily timesheet document.
	SpreadsheetID string `envconfig:"SPREADSHEET_ID"`

	// YearlySpreadsheetID identifies the document holding the yearly hours
	// sheets; defaults to the timesheet document.
	YearlySpreadsheetID string `envconfig:"YEARLY_SPREADSHEET_ID"`

	// TogglAPIToken authenticates against the Toggl Track API.
	TogglAPIToken string `envconfig:"TOGGL_API_KEY"`

	// TogglClients restricts the project catalog to these Toggl clients.
	TogglClients []string `envconfig:"TOGGL_CLIENTS" default:"Development,Clients"`

	// LedgerSpreadsheetID identifies the transaction ledger document.
	LedgerSpreadsheetID string `envconfig:"LEDGER_SPREADSHEET_ID"`

	// LedgerSheet is the worksheet name inside the ledger document.
	LedgerSheet string `envconfig:"LEDGER_SHEET" default:"Transactions"`

	// TeamDir is the directory holding employees.yaml and customers/.
	TeamDir string `envconfig:"TEAM_DIR" default:"database"`
}

// MissingError lists required environment values that are absent. It is
// fatal at startup.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Vars, ", "))
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	if cfg.YearlySpreadsheetID == "" {
		cfg.YearlySpreadsheetID = cfg.SpreadsheetID
	}
	return &cfg, nil
}

// RequireHours validates the values the timesheet sync needs.
func (c *Config) RequireHours() error {
	return c.require(map[string]string{
		"GOOGLE_CREDENTIALS": c.GoogleCredentialsFile,
		"SPREADSHEET_ID":     c.SpreadsheetID,
		"TOGGL_API_KEY":      c.TogglAPIToken,
	})
}

// RequireLedger validates the values the transaction sync needs.
func (c *Config) RequireLedger() error {
	return c.require(map[string]string{
		"GOOGLE_CREDENTIALS":    c.GoogleCredentialsFile,
		"LEDGER_SPREADSHEET_ID": c.LedgerSpreadsheetID,
	})
}

// RequireReport validates the values the yearly hours report needs.
func (c *Config) RequireReport() error {
	return c.require(map[string]string{
		"GOOGLE_CREDENTIALS": c.GoogleCredentialsFile,
		"SPREADSHEET_ID":     c.SpreadsheetID,
	})
}

func (c *Config) require(vars map[string]string) error {
	var missing []string
	for name, value := range vars {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingError{Vars: missing}
	}
	return nil
}
