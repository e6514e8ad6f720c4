package compensation

import (
	"context"
	"encoding/json"
	"errors"

	"go-sweldo/internal/store"
)

// LegacyReader reads legacy CSV partitions. Only the file backend has one;
// the remote document store never held CSV.
type LegacyReader interface {
	ReadCSV(employeeID string, year, month int, kind store.Kind) ([]byte, error)
}

//go:generate mockgen -source=compensation_repo.go -destination=mock/compensation_repo_mock.go -package=mock
type Repository interface {
	LoadCompensations(ctx context.Context, employeeID string, year, month int) ([]DayCompensation, error)
	SaveCompensations(ctx context.Context, employeeID string, year, month int, comps []DayCompensation) error
	LoadAttendance(ctx context.Context, employeeID string, year, month int) ([]AttendanceDay, error)
	SaveAttendance(ctx context.Context, employeeID string, year, month int, days []AttendanceDay) error
	LoadBackups(ctx context.Context, employeeID string, year, month int) (*BackupMonth, error)
	SaveBackups(ctx context.Context, employeeID string, year, month int, doc *BackupMonth) error
}

type repository struct {
	store  store.RecordStore
	legacy LegacyReader // nil when the backend has no CSV history
}

func NewRepository(s store.RecordStore, legacy LegacyReader) Repository {
	return &repository{store: s, legacy: legacy}
}

// LoadCompensations reads the JSON partition, falling back to the legacy
// CSV sibling when the JSON document is absent. The format decision is per
// partition by presence, never a process-wide flag.
func (r *repository) LoadCompensations(ctx context.Context, employeeID string, year, month int) ([]DayCompensation, error) {
	data, err := r.store.Load(ctx, employeeID, year, month, store.KindCompensation)
	if err != nil {
		if !errors.Is(err, store.ErrPartitionNotFound) {
			return nil, err
		}
		if r.legacy == nil {
			return nil, nil
		}
		csvData, csvErr := r.legacy.ReadCSV(employeeID, year, month, store.KindCompensation)
		if csvErr != nil {
			if errors.Is(csvErr, store.ErrPartitionNotFound) {
				return nil, nil
			}
			return nil, csvErr
		}
		return ParseCompensationCSV(csvData, employeeID, year, month), nil
	}

	var comps []DayCompensation
	if err := json.Unmarshal(data, &comps); err != nil {
		return nil, err
	}
	return comps, nil
}

func (r *repository) SaveCompensations(ctx context.Context, employeeID string, year, month int, comps []DayCompensation) error {
	return r.store.Save(ctx, employeeID, year, month, store.KindCompensation, comps)
}

func (r *repository) LoadAttendance(ctx context.Context, employeeID string, year, month int) ([]AttendanceDay, error) {
	data, err := r.store.Load(ctx, employeeID, year, month, store.KindAttendance)
	if err != nil {
		if errors.Is(err, store.ErrPartitionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var days []AttendanceDay
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (r *repository) SaveAttendance(ctx context.Context, employeeID string, year, month int, days []AttendanceDay) error {
	return r.store.Save(ctx, employeeID, year, month, store.KindAttendance, days)
}

func (r *repository) LoadBackups(ctx context.Context, employeeID string, year, month int) (*BackupMonth, error) {
	data, err := r.store.Load(ctx, employeeID, year, month, store.KindBackup)
	if err != nil {
		if errors.Is(err, store.ErrPartitionNotFound) {
			return &BackupMonth{EmployeeID: employeeID, Year: year, Month: month}, nil
		}
		return nil, err
	}

	var doc BackupMonth
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) SaveBackups(ctx context.Context, employeeID string, year, month int, doc *BackupMonth) error {
	return r.store.Save(ctx, employeeID, year, month, store.KindBackup, doc)
}
