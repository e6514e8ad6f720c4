package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go-sweldo/internal/store"

	"github.com/stretchr/testify/assert"
)

type doc struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestFileStore_SaveLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("success round trip", func(t *testing.T) {
		fs := store.NewFileStore(t.TempDir())

		saved := []doc{{Name: "a", Value: 1.5}, {Name: "b", Value: 2}}
		err := fs.Save(ctx, "EMP-1", 2025, 8, store.KindCompensation, saved)
		assert.NoError(t, err)

		data, err := fs.Load(ctx, "EMP-1", 2025, 8, store.KindCompensation)
		assert.NoError(t, err)

		var loaded []doc
		assert.NoError(t, json.Unmarshal(data, &loaded))
		assert.Equal(t, saved, loaded)
	})

	t.Run("partition path layout", func(t *testing.T) {
		base := t.TempDir()
		fs := store.NewFileStore(base)

		err := fs.Save(ctx, "EMP-1", 2025, 8, store.KindPayroll, []doc{})
		assert.NoError(t, err)

		_, err = os.Stat(filepath.Join(base, "EMP-1", "2025_8_payroll.json"))
		assert.NoError(t, err)
	})

	t.Run("negative missing partition", func(t *testing.T) {
		fs := store.NewFileStore(t.TempDir())

		_, err := fs.Load(ctx, "EMP-1", 2025, 8, store.KindCompensation)
		assert.ErrorIs(t, err, store.ErrPartitionNotFound)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		base := t.TempDir()
		fs := store.NewFileStore(base)

		assert.NoError(t, fs.Save(ctx, "EMP-1", 2025, 8, store.KindShort, []doc{{Name: "x"}}))

		entries, err := os.ReadDir(filepath.Join(base, "EMP-1"))
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestFileStore_ExistsDelete(t *testing.T) {
	ctx := context.Background()
	fs := store.NewFileStore(t.TempDir())

	exists, err := fs.Exists(ctx, "EMP-1", 2025, 8, store.KindLoan)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, fs.Save(ctx, "EMP-1", 2025, 8, store.KindLoan, []doc{}))

	exists, err = fs.Exists(ctx, "EMP-1", 2025, 8, store.KindLoan)
	assert.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, fs.Delete(ctx, "EMP-1", 2025, 8, store.KindLoan))

	exists, err = fs.Exists(ctx, "EMP-1", 2025, 8, store.KindLoan)
	assert.NoError(t, err)
	assert.False(t, exists)

	// deleting an absent partition is not an error
	assert.NoError(t, fs.Delete(ctx, "EMP-1", 2025, 8, store.KindLoan))
}

func TestFileStore_Global(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	fs := store.NewFileStore(base)

	_, err := fs.LoadGlobal(ctx, "employees")
	assert.ErrorIs(t, err, store.ErrPartitionNotFound)

	saved := []doc{{Name: "global"}}
	assert.NoError(t, fs.SaveGlobal(ctx, "employees", saved))

	_, err = os.Stat(filepath.Join(base, "employees.json"))
	assert.NoError(t, err)

	data, err := fs.LoadGlobal(ctx, "employees")
	assert.NoError(t, err)

	var loaded []doc
	assert.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, saved, loaded)
}

func TestFileStore_ReadCSV(t *testing.T) {
	base := t.TempDir()
	fs := store.NewFileStore(base)

	_, err := fs.ReadCSV("EMP-1", 2025, 7, store.KindCompensation)
	assert.ErrorIs(t, err, store.ErrPartitionNotFound)

	dir := filepath.Join(base, "EMP-1")
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	content := []byte("a,b,c\n")
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "2025_7_compensation.csv"), content, 0o644))

	data, err := fs.ReadCSV("EMP-1", 2025, 7, store.KindCompensation)
	assert.NoError(t, err)
	assert.Equal(t, content, data)
}
