// Package config loads the surveyor configuration from the environment,
// with optional defaults and tunables from ~/.surveyor/config.toml.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
)

// Environment variable names. Environment values override the config file.
const (
	EnvFormID           = "FORM_ID"
	EnvCSVPath          = "CSV_PATH"
	EnvGmailCredentials = "GMAIL_CREDENTIALS_PATH"
	EnvCredentialsFile  = "CREDENTIALS_FILE"
	EnvProjectID        = "PROJECT_ID"
	EnvTokenPath        = "TOKEN_PATH"
)

// DefaultReminderDelay is how long after distribution reminders come due.
const DefaultReminderDelay = 72 * time.Hour

// Config holds every setting the pipeline reads. All keys are enumerated
// here rather than fetched ad hoc so a run fails fast and completely.
type Config struct {
	// FormID reuses an existing form. Optional: only distribute-only runs
	// need it, a full run creates its own form.
	FormID string

	// CSVPath locates the recipient list.
	CSVPath string

	// GmailCredentialsPath locates the OAuth client secret used for Gmail.
	GmailCredentialsPath string

	// CredentialsFile locates the OAuth client secret used for the Forms,
	// Drive and Docs APIs.
	CredentialsFile string

	// ProjectID names the Google Cloud project owning the credentials.
	ProjectID string

	// TokenPath is where the OAuth token cache lives.
	// Defaults to ~/.surveyor/token.json.
	TokenPath string

	// DataDir is where the reminder database lives. Empty means the
	// store's default location.
	DataDir string

	// ReminderDelay is how long after distribution reminders come due.
	ReminderDelay time.Duration
}

// Load reads configuration from the environment, falling back to the given
// config store (may be nil) for unset keys and tunables.
func Load(store driven.ConfigStore) (*Config, error) {
	cfg := &Config{
		FormID:               lookup(store, EnvFormID, "form_id"),
		CSVPath:              lookup(store, EnvCSVPath, "csv_path"),
		GmailCredentialsPath: lookup(store, EnvGmailCredentials, "gmail_credentials_path"),
		CredentialsFile:      lookup(store, EnvCredentialsFile, "credentials_file"),
		ProjectID:            lookup(store, EnvProjectID, "project_id"),
		TokenPath:            lookup(store, EnvTokenPath, "token_path"),
		ReminderDelay:        DefaultReminderDelay,
	}

	if cfg.TokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve default token path: %w", err)
		}
		cfg.TokenPath = home + "/.surveyor/token.json"
	}

	if store != nil {
		cfg.DataDir = store.GetString("data_dir")
		if hours := store.GetInt("reminder_delay_hours"); hours > 0 {
			cfg.ReminderDelay = time.Duration(hours) * time.Hour
		}
	}

	return cfg, nil
}

// lookup reads an environment variable, falling back to the config store key.
func lookup(store driven.ConfigStore, envKey, fileKey string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if store != nil {
		return store.GetString(fileKey)
	}
	return ""
}

// Validate checks that every required key is present. All missing keys are
// reported together so a misconfigured run fails once, not key by key.
func (c *Config) Validate() error {
	var missing []string
	if c.CSVPath == "" {
		missing = append(missing, EnvCSVPath)
	}
	if c.GmailCredentialsPath == "" {
		missing = append(missing, EnvGmailCredentials)
	}
	if c.CredentialsFile == "" {
		missing = append(missing, EnvCredentialsFile)
	}
	if c.ProjectID == "" {
		missing = append(missing, EnvProjectID)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateForDistribution additionally requires a form ID, which
// distribute-only runs cannot derive from a fresh build.
func (c *Config) ValidateForDistribution() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.FormID == "" {
		return fmt.Errorf("%w: %s", domain.ErrMissingConfig, EnvFormID)
	}
	return nil
}
