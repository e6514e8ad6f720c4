package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists one JSON document per employee per month per kind:
//
//	<baseDir>/<employeeID>/<year>_<month>_<kind>.json
//
// Legacy CSV partitions live beside the JSON files with the same stem; the
// reading repositories decide per partition whether to fall back to CSV,
// never a process-wide format flag.
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

func (s *FileStore) BaseDir() string {
	return s.baseDir
}

// JSONPath returns the partition's JSON document path.
func (s *FileStore) JSONPath(employeeID string, year, month int, kind Kind) string {
	return filepath.Join(s.baseDir, employeeID, fmt.Sprintf("%d_%d_%s.json", year, month, kind))
}

// CSVPath returns the legacy CSV path for the same partition.
func (s *FileStore) CSVPath(employeeID string, year, month int, kind Kind) string {
	return filepath.Join(s.baseDir, employeeID, fmt.Sprintf("%d_%d_%s.csv", year, month, kind))
}

// ReadCSV reads a legacy CSV partition. Repositories call this only after
// the JSON partition turned out to be absent.
func (s *FileStore) ReadCSV(employeeID string, year, month int, kind Kind) ([]byte, error) {
	data, err := os.ReadFile(s.CSVPath(employeeID, year, month, kind))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPartitionNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStore) Load(ctx context.Context, employeeID string, year, month int, kind Kind) ([]byte, error) {
	data, err := os.ReadFile(s.JSONPath(employeeID, year, month, kind))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPartitionNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStore) Save(ctx context.Context, employeeID string, year, month int, kind Kind, doc any) error {
	return s.writeJSON(s.JSONPath(employeeID, year, month, kind), doc)
}

func (s *FileStore) Delete(ctx context.Context, employeeID string, year, month int, kind Kind) error {
	err := os.Remove(s.JSONPath(employeeID, year, month, kind))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) Exists(ctx context.Context, employeeID string, year, month int, kind Kind) (bool, error) {
	_, err := os.Stat(s.JSONPath(employeeID, year, month, kind))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *FileStore) LoadGlobal(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPartitionNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStore) SaveGlobal(ctx context.Context, name string, doc any) error {
	return s.writeJSON(filepath.Join(s.baseDir, name+".json"), doc)
}

// writeJSON writes through a temp file plus rename so a crash mid-write
// never leaves a truncated partition behind.
func (s *FileStore) writeJSON(path string, doc any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}
