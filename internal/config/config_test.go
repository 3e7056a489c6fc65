package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/surveyor-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvCSVPath, "/tmp/recipients.csv")
	t.Setenv(EnvGmailCredentials, "/tmp/gmail.json")
	t.Setenv(EnvCredentialsFile, "/tmp/creds.json")
	t.Setenv(EnvProjectID, "surveyautomation-465119")
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvFormID, EnvCSVPath, EnvGmailCredentials,
		EnvCredentialsFile, EnvProjectID, EnvTokenPath,
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	setRequiredEnv(t)
	t.Setenv(EnvFormID, "form-abc")
	t.Setenv(EnvTokenPath, "/tmp/token.json")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "form-abc", cfg.FormID)
	assert.Equal(t, "/tmp/recipients.csv", cfg.CSVPath)
	assert.Equal(t, "/tmp/gmail.json", cfg.GmailCredentialsPath)
	assert.Equal(t, "/tmp/creds.json", cfg.CredentialsFile)
	assert.Equal(t, "surveyautomation-465119", cfg.ProjectID)
	assert.Equal(t, "/tmp/token.json", cfg.TokenPath)
	assert.Equal(t, DefaultReminderDelay, cfg.ReminderDelay)
}

func TestLoad_DefaultTokenPath(t *testing.T) {
	clearEnv(t)
	setRequiredEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Contains(t, cfg.TokenPath, ".surveyor/token.json")
}

func TestLoad_FileFallbackAndTunables(t *testing.T) {
	clearEnv(t)

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("csv_path", "/from/file.csv"))
	require.NoError(t, store.Set("reminder_delay_hours", 24))
	require.NoError(t, store.Set("data_dir", "/var/lib/surveyor"))

	// Environment wins over the file.
	t.Setenv(EnvCSVPath, "/from/env.csv")

	cfg, err := Load(store)
	require.NoError(t, err)

	assert.Equal(t, "/from/env.csv", cfg.CSVPath)
	assert.Equal(t, 24*time.Hour, cfg.ReminderDelay)
	assert.Equal(t, "/var/lib/surveyor", cfg.DataDir)
}

func TestValidate_ReportsAllMissingKeys(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingConfig)

	// Every missing key appears in one error.
	for _, key := range []string{EnvCSVPath, EnvGmailCredentials, EnvCredentialsFile, EnvProjectID} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestValidate_Complete(t *testing.T) {
	cfg := &Config{
		CSVPath:              "/tmp/r.csv",
		GmailCredentialsPath: "/tmp/g.json",
		CredentialsFile:      "/tmp/c.json",
		ProjectID:            "p",
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidateForDistribution_RequiresFormID(t *testing.T) {
	cfg := &Config{
		CSVPath:              "/tmp/r.csv",
		GmailCredentialsPath: "/tmp/g.json",
		CredentialsFile:      "/tmp/c.json",
		ProjectID:            "p",
	}

	err := cfg.ValidateForDistribution()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvFormID)

	cfg.FormID = "form-abc"
	assert.NoError(t, cfg.ValidateForDistribution())
}
