package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"campusinfo/internal/config"
	"campusinfo/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformBackup(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "campusinfo.db")
	backupDir := filepath.Join(dir, "backups")

	logger := zerolog.Nop()
	db, err := NewDB(dbPath, &logger)
	require.NoError(t, err)
	defer db.Close()

	seedUser(t, db, "S-1001", models.RoleStudent)

	svc := NewBackupService(dbPath, config.BackupConfig{
		Enabled:     true,
		StoragePath: backupDir,
	}, &logger)
	require.NoError(t, svc.PerformBackup())

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// The snapshot is itself a usable database.
	snapshot, err := NewDB(filepath.Join(backupDir, entries[0].Name()), &logger)
	require.NoError(t, err)
	defer snapshot.Close()

	users, err := snapshot.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
