package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: unit-test-secret
database:
  path: data/test.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "campusinfo", cfg.App.Name)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "Booking Requests", cfg.Exports.SheetName)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TEST_JWT_SECRET", "expanded-secret")

	path := writeConfig(t, `
auth:
  jwt_secret: ${TEST_JWT_SECRET}
database:
  path: data/test.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-secret", cfg.Auth.JWTSecret)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	path := writeConfig(t, `
database:
  path: data/test.db
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "jwt secret")
}

func TestLoadRejectsPlaceholderSecret(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: CHANGE_ME
database:
  path: data/test.db
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBackupWithoutPath(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: unit-test-secret
database:
  path: data/test.db
backup:
  enabled: true
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "storage_path")
}
