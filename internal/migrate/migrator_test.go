package migrate_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-sweldo/internal/compensation"
	"go-sweldo/internal/migrate"
	"go-sweldo/internal/store"

	"github.com/stretchr/testify/assert"
)

func writeCSV(t *testing.T, base, employeeID, name, content string) {
	t.Helper()
	dir := filepath.Join(base, employeeID)
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func compensationCSVRow(day string) string {
	cols := make([]string, 24)
	cols[0] = "EMP-1"
	cols[1] = "2025"
	cols[2] = "7"
	cols[3] = day
	cols[4] = "Regular"
	cols[5] = "500"
	cols[16] = "0"
	cols[17] = "0"
	return strings.Join(cols, ",")
}

func TestMigrator_MigrateAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success and idempotent rerun", func(t *testing.T) {
		base := t.TempDir()
		writeCSV(t, base, "EMP-1", "2025_7_compensation.csv", compensationCSVRow("15")+"\n"+compensationCSVRow("16"))
		writeCSV(t, base, "EMP-1", "2025_7_backup.csv", "1722470400000,15,Holiday,600")
		writeCSV(t, base, "EMP-2", "2024_12_compensation.csv", strings.Replace(compensationCSVRow("3"), "EMP-1", "EMP-2", 1))
		// unrelated files are ignored
		writeCSV(t, base, "EMP-1", "notes.txt", "keep me")

		fs := store.NewFileStore(base)
		m := migrate.NewMigrator(fs)

		stats, err := m.MigrateAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, stats.Migrated)
		assert.Equal(t, 0, stats.Skipped)
		assert.Equal(t, 0, stats.Failed)

		data, err := fs.Load(ctx, "EMP-1", 2025, 7, store.KindCompensation)
		assert.NoError(t, err)
		var comps []compensation.DayCompensation
		assert.NoError(t, json.Unmarshal(data, &comps))
		assert.Len(t, comps, 2)
		assert.Equal(t, 15, comps[0].Day)

		data, err = fs.Load(ctx, "EMP-1", 2025, 7, store.KindBackup)
		assert.NoError(t, err)
		var doc compensation.BackupMonth
		assert.NoError(t, json.Unmarshal(data, &doc))
		assert.Len(t, doc.Backups, 1)

		// a second run touches nothing
		stats, err = m.MigrateAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, stats.Migrated)
		assert.Equal(t, 3, stats.Skipped)

		// the source CSVs are still in place
		_, err = os.Stat(filepath.Join(base, "EMP-1", "2025_7_compensation.csv"))
		assert.NoError(t, err)
	})

	t.Run("missing data dir is empty work", func(t *testing.T) {
		m := migrate.NewMigrator(store.NewFileStore(filepath.Join(t.TempDir(), "nope")))

		stats, err := m.MigrateAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, migrate.Stats{}, stats)
	})
}

func TestMigrator_CleanupCSV(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	writeCSV(t, base, "EMP-1", "2025_7_compensation.csv", compensationCSVRow("15"))
	writeCSV(t, base, "EMP-1", "2025_8_compensation.csv", compensationCSVRow("2"))

	fs := store.NewFileStore(base)
	m := migrate.NewMigrator(fs)

	// only the July partition has been migrated
	_, err := m.MigrateEmployee(ctx, "EMP-1")
	assert.NoError(t, err)
	assert.NoError(t, fs.Delete(ctx, "EMP-1", 2025, 8, store.KindCompensation))

	removed, err := m.CleanupCSV(ctx, "EMP-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(filepath.Join(base, "EMP-1", "2025_7_compensation.csv"))
	assert.True(t, os.IsNotExist(err))

	// the August CSV is the only copy and must survive
	_, err = os.Stat(filepath.Join(base, "EMP-1", "2025_8_compensation.csv"))
	assert.NoError(t, err)

	removed, err = m.CleanupCSV(ctx, "EMP-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
}
