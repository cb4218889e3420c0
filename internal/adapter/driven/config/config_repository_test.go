package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	repo := NewConfigRepository()
	path := writeConfig(t, "config.toml", `
default_preset = "entire-range"
persian_digits = true
excluded_users = ["u3"]

[user_names]
u1 = "Alice Admin"
`)

	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "entire-range", cfg.DefaultPreset)
	assert.True(t, cfg.PersianDigits)
	assert.Equal(t, []string{"u3"}, cfg.ExcludedUsers)
	assert.Equal(t, "Alice Admin", cfg.UserNames["u1"])
}

func TestLoadConfigFileYAML(t *testing.T) {
	repo := NewConfigRepository()
	path := writeConfig(t, "config.yaml", `
default_preset: this-week
report_name: usage
report_type:
  - csv
  - pdf
user_names:
  u2: Bob
`)

	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "this-week", cfg.DefaultPreset)
	assert.Equal(t, "usage", cfg.ReportName)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
	assert.Equal(t, "Bob", cfg.UserNames["u2"])
}

func TestLoadConfigFileJSON(t *testing.T) {
	repo := NewConfigRepository()
	path := writeConfig(t, "config.json", `{"default_preset": "last-3-months", "dir": "/tmp/reports"}`)

	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "last-3-months", cfg.DefaultPreset)
	assert.Equal(t, "/tmp/reports", cfg.Dir)
}

func TestLoadConfigFileErrors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(writeConfig(t, "config.ini", "a=b"))
	assert.ErrorContains(t, err, "unsupported config file format")

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")
}
