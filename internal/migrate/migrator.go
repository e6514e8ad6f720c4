// Package migrate converts legacy CSV partitions into the JSON
// month-document format. Runs are idempotent: a partition whose JSON
// target already exists is skipped untouched, so an interrupted migration
// can simply be run again.
package migrate

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"go-sweldo/internal/compensation"
	"go-sweldo/internal/store"

	"go.uber.org/zap"
)

var csvPartitionPattern = regexp.MustCompile(`^(\d{4})_(\d{1,2})_(compensation|backup)\.csv$`)

type Stats struct {
	Migrated int
	Skipped  int
	Failed   int
}

func (s *Stats) add(other Stats) {
	s.Migrated += other.Migrated
	s.Skipped += other.Skipped
	s.Failed += other.Failed
}

// Migrator rewrites legacy partitions through the file store. It never
// deletes a source CSV; CleanupCSV is a separate explicit step.
type Migrator struct {
	fs *store.FileStore
}

func NewMigrator(fs *store.FileStore) *Migrator {
	return &Migrator{fs: fs}
}

// MigrateAll migrates every employee directory under the data dir.
func (m *Migrator) MigrateAll(ctx context.Context) (Stats, error) {
	entries, err := os.ReadDir(m.fs.BaseDir())
	if err != nil {
		if os.IsNotExist(err) {
			return Stats{}, nil
		}
		return Stats{}, err
	}

	var stats Stats
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		empStats, err := m.MigrateEmployee(ctx, entry.Name())
		if err != nil {
			return stats, err
		}
		stats.add(empStats)
	}
	return stats, nil
}

// MigrateEmployee converts every legacy CSV partition in one employee
// directory. A malformed file counts as failed and the migration moves on.
func (m *Migrator) MigrateEmployee(ctx context.Context, employeeID string) (Stats, error) {
	dir := filepath.Join(m.fs.BaseDir(), employeeID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Stats{}, nil
		}
		return Stats{}, err
	}

	var stats Stats
	for _, entry := range entries {
		parts := csvPartitionPattern.FindStringSubmatch(entry.Name())
		if parts == nil {
			continue
		}
		year, _ := strconv.Atoi(parts[1])
		month, _ := strconv.Atoi(parts[2])
		kind := store.Kind(parts[3])

		migrated, err := m.migratePartition(ctx, employeeID, year, month, kind)
		if err != nil {
			zap.L().Warn("partition migration failed",
				zap.String("employeeId", employeeID),
				zap.String("file", entry.Name()),
				zap.Error(err))
			stats.Failed++
			continue
		}
		if migrated {
			stats.Migrated++
		} else {
			stats.Skipped++
		}
	}
	return stats, nil
}

func (m *Migrator) migratePartition(ctx context.Context, employeeID string, year, month int, kind store.Kind) (bool, error) {
	exists, err := m.fs.Exists(ctx, employeeID, year, month, kind)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil // already migrated
	}

	data, err := m.fs.ReadCSV(employeeID, year, month, kind)
	if err != nil {
		return false, err
	}

	switch kind {
	case store.KindCompensation:
		comps := compensation.ParseCompensationCSV(data, employeeID, year, month)
		if err := m.fs.Save(ctx, employeeID, year, month, kind, comps); err != nil {
			return false, err
		}
	case store.KindBackup:
		doc := compensation.ParseBackupCSV(data, employeeID, year, month)
		if err := m.fs.Save(ctx, employeeID, year, month, kind, doc); err != nil {
			return false, err
		}
	}
	return true, nil
}

// CleanupCSV removes legacy CSVs whose JSON target exists. Deliberately
// separate from migration so an operator can verify the JSON first.
func (m *Migrator) CleanupCSV(ctx context.Context, employeeID string) (int, error) {
	dir := filepath.Join(m.fs.BaseDir(), employeeID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		parts := csvPartitionPattern.FindStringSubmatch(entry.Name())
		if parts == nil {
			continue
		}
		year, _ := strconv.Atoi(parts[1])
		month, _ := strconv.Atoi(parts[2])
		kind := store.Kind(parts[3])

		exists, err := m.fs.Exists(ctx, employeeID, year, month, kind)
		if err != nil {
			return removed, err
		}
		if !exists {
			continue // never remove the only copy
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
