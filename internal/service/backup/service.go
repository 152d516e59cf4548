package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
)

// Service writes full-database snapshots to JSON files on disk and restores
// from them. At most one dump or restore runs at a time; a second request
// while one is in flight fails fast with domain.ErrBackupInProgress.
type Service interface {
	Create(ctx context.Context) (*domain.BackupFile, error)
	List() ([]domain.BackupFile, error)
	Read(name string) ([]byte, error)
	Restore(ctx context.Context, name string) error
	Delete(name string) error
}

type service struct {
	backupRepo repository.BackupRepository
	cfg        *config.Config
	mu         sync.Mutex
}

func NewService(backupRepo repository.BackupRepository, cfg *config.Config) Service {
	return &service{
		backupRepo: backupRepo,
		cfg:        cfg,
	}
}

func (s *service) Create(ctx context.Context) (*domain.BackupFile, error) {
	if !s.mu.TryLock() {
		return nil, domain.ErrBackupInProgress
	}
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.BackupTimeout)
	defer cancel()

	snapshot, err := s.backupRepo.DumpAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to dump database: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.BackupDir, 0o755); err != nil {
		return nil, err
	}

	name := backupFileName(snapshot.Timestamp)
	path := filepath.Join(s.cfg.BackupDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}

	return &domain.BackupFile{
		Name:      name,
		Size:      int64(len(data)),
		CreatedAt: snapshot.Timestamp,
	}, nil
}

func (s *service) List() ([]domain.BackupFile, error) {
	entries, err := os.ReadDir(s.cfg.BackupDir)
	if os.IsNotExist(err) {
		return []domain.BackupFile{}, nil
	}
	if err != nil {
		return nil, err
	}

	backups := make([]domain.BackupFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isBackupName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, domain.BackupFile{
			Name:      entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime().UTC(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

func (s *service) Read(name string) ([]byte, error) {
	if !isBackupName(name) {
		return nil, domain.ErrBackupNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.cfg.BackupDir, name))
	if os.IsNotExist(err) {
		return nil, domain.ErrBackupNotFound
	}
	return data, err
}

func (s *service) Restore(ctx context.Context, name string) error {
	if !s.mu.TryLock() {
		return domain.ErrBackupInProgress
	}
	defer s.mu.Unlock()

	data, err := s.Read(name)
	if err != nil {
		return err
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}
	if err := validateSnapshot(&snapshot); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RestoreTimeout)
	defer cancel()

	return s.backupRepo.RestoreAll(ctx, &snapshot)
}

func (s *service) Delete(name string) error {
	if !isBackupName(name) {
		return domain.ErrBackupNotFound
	}

	err := os.Remove(filepath.Join(s.cfg.BackupDir, name))
	if os.IsNotExist(err) {
		return domain.ErrBackupNotFound
	}
	return err
}

// validateSnapshot checks the document before anything is deleted, so a
// malformed backup never leaves the database half-restored. Orders must
// reference users and packages that exist inside the same snapshot.
func validateSnapshot(snapshot *domain.Snapshot) error {
	if snapshot.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", domain.ErrInvalidBackup)
	}

	users := make(map[uuid.UUID]bool, len(snapshot.Users))
	for _, u := range snapshot.Users {
		if u.ID == uuid.Nil || u.Email == "" {
			return fmt.Errorf("%w: user with empty id or email", domain.ErrInvalidBackup)
		}
		users[u.ID] = true
	}

	packages := make(map[uuid.UUID]bool, len(snapshot.ServicePackages))
	for _, p := range snapshot.ServicePackages {
		if p.ID == uuid.Nil {
			return fmt.Errorf("%w: package with empty id", domain.ErrInvalidBackup)
		}
		packages[p.ID] = true
	}

	for _, o := range snapshot.Orders {
		if o.ID == uuid.Nil || o.OrderNumber == "" {
			return fmt.Errorf("%w: order with empty id or number", domain.ErrInvalidBackup)
		}
		if !users[o.UserID] {
			return fmt.Errorf("%w: order %s references unknown user %s", domain.ErrInvalidBackup, o.OrderNumber, o.UserID)
		}
		if !packages[o.PackageID] {
			return fmt.Errorf("%w: order %s references unknown package %s", domain.ErrInvalidBackup, o.OrderNumber, o.PackageID)
		}
	}

	return nil
}

// backup-2025-08-31T10-15-04Z.json
func backupFileName(ts time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(ts.UTC().Format(time.RFC3339))
	return "backup-" + stamp + ".json"
}

// isBackupName doubles as the path-traversal guard for user-supplied names.
func isBackupName(name string) bool {
	return strings.HasPrefix(name, "backup-") &&
		strings.HasSuffix(name, ".json") &&
		!strings.ContainsAny(name, "/\\") &&
		!strings.Contains(name, "..")
}
