package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/mocks"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		BackupDir:      t.TempDir(),
		BackupTimeout:  5 * time.Second,
		RestoreTimeout: 5 * time.Second,
	}
}

func validSnapshot() *domain.Snapshot {
	userID := uuid.New()
	pkgID := uuid.New()
	return &domain.Snapshot{
		Users:           []domain.User{{ID: userID, Email: "a@b.co", Name: "A"}},
		ServicePackages: []domain.ServicePackage{{ID: pkgID, Name: "Basic"}},
		Orders: []domain.Order{{
			ID:          uuid.New(),
			OrderNumber: "ORD-1-AAAAAAAAA",
			UserID:      userID,
			PackageID:   pkgID,
		}},
		Timestamp: time.Now().UTC(),
	}
}

func TestBackupFileName(t *testing.T) {
	ts := time.Date(2025, 8, 31, 10, 15, 4, 0, time.UTC)
	name := backupFileName(ts)
	assert.Equal(t, "backup-2025-08-31T10-15-04Z.json", name)
	assert.True(t, isBackupName(name))
}

func TestIsBackupNameRejectsTraversal(t *testing.T) {
	assert.False(t, isBackupName("../secrets.json"))
	assert.False(t, isBackupName("backup-../../etc/passwd.json"))
	assert.False(t, isBackupName("backup-x/../../y.json"))
	assert.False(t, isBackupName("notes.txt"))
	assert.True(t, isBackupName("backup-2025-01-01T00-00-00Z.json"))
}

func TestCreateWritesSnapshotFile(t *testing.T) {
	cfg := testConfig(t)
	repo := new(mocks.BackupRepository)
	repo.On("DumpAll", mock.Anything).Return(validSnapshot(), nil)

	svc := NewService(repo, cfg)

	file, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.True(t, isBackupName(file.Name))

	data, err := os.ReadFile(filepath.Join(cfg.BackupDir, file.Name))
	require.NoError(t, err)
	assert.Equal(t, file.Size, int64(len(data)))

	var decoded domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Users, 1)
	assert.Len(t, decoded.Orders, 1)
}

func TestRestoreRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	repo := new(mocks.BackupRepository)
	repo.On("DumpAll", mock.Anything).Return(validSnapshot(), nil)
	repo.On("RestoreAll", mock.Anything, mock.AnythingOfType("*domain.Snapshot")).Return(nil)

	svc := NewService(repo, cfg)

	file, err := svc.Create(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Restore(context.Background(), file.Name))
	repo.AssertCalled(t, "RestoreAll", mock.Anything, mock.Anything)
}

func TestRestoreMissingFile(t *testing.T) {
	svc := NewService(new(mocks.BackupRepository), testConfig(t))

	err := svc.Restore(context.Background(), "backup-2025-01-01T00-00-00Z.json")
	assert.ErrorIs(t, err, domain.ErrBackupNotFound)
}

func TestRestoreMalformedDocumentAborts(t *testing.T) {
	cfg := testConfig(t)
	name := "backup-2025-01-01T00-00-00Z.json"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.BackupDir, name), []byte("{not json"), 0o644))

	repo := new(mocks.BackupRepository)
	svc := NewService(repo, cfg)

	err := svc.Restore(context.Background(), name)
	assert.ErrorIs(t, err, domain.ErrInvalidBackup)
	repo.AssertNotCalled(t, "RestoreAll", mock.Anything, mock.Anything)
}

func TestRestoreDanglingOrderReferenceAborts(t *testing.T) {
	cfg := testConfig(t)
	snapshot := validSnapshot()
	snapshot.Orders[0].UserID = uuid.New() // not in the snapshot's users

	data, err := json.Marshal(snapshot)
	require.NoError(t, err)
	name := "backup-2025-01-01T00-00-00Z.json"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.BackupDir, name), data, 0o644))

	repo := new(mocks.BackupRepository)
	svc := NewService(repo, cfg)

	err = svc.Restore(context.Background(), name)
	assert.ErrorIs(t, err, domain.ErrInvalidBackup)
	repo.AssertNotCalled(t, "RestoreAll", mock.Anything, mock.Anything)
}

func TestListSortsNewestFirst(t *testing.T) {
	cfg := testConfig(t)
	old := filepath.Join(cfg.BackupDir, "backup-2024-01-01T00-00-00Z.json")
	recent := filepath.Join(cfg.BackupDir, "backup-2025-01-01T00-00-00Z.json")
	require.NoError(t, os.WriteFile(old, []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(recent, []byte("{}"), 0o644))
	past := time.Now().Add(-24 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	svc := NewService(new(mocks.BackupRepository), cfg)

	backups, err := svc.List()
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, "backup-2025-01-01T00-00-00Z.json", backups[0].Name)
}

func TestDeleteBackup(t *testing.T) {
	cfg := testConfig(t)
	name := "backup-2025-01-01T00-00-00Z.json"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.BackupDir, name), []byte("{}"), 0o644))

	svc := NewService(new(mocks.BackupRepository), cfg)

	require.NoError(t, svc.Delete(name))
	assert.ErrorIs(t, svc.Delete(name), domain.ErrBackupNotFound)
}
