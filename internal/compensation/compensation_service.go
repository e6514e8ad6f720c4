package compensation

import (
	"context"
	"sort"
	"time"

	compensationerrors "go-sweldo/internal/compensation/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=compensation_service.go -destination=mock/compensation_service_mock.go -package=mock
type Service interface {
	GetMonth(ctx context.Context, employeeID string, year, month int) ([]DayCompensation, error)
	// SaveOrUpdate merges the batch into the partition and appends one
	// backup entry covering every field that changed.
	SaveOrUpdate(ctx context.Context, employeeID string, year, month int, comps []DayCompensation) error
	GetBackups(ctx context.Context, employeeID string, year, month int) (*BackupMonth, error)
	// Revert overlays the audited old values for one day back onto the
	// current record and re-saves it, producing a fresh backup entry.
	Revert(ctx context.Context, employeeID string, year, month, day int, changes []FieldChange) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) GetMonth(ctx context.Context, employeeID string, year, month int) ([]DayCompensation, error) {
	if month < 1 || month > 12 {
		return nil, compensationerrors.ErrInvalidMonth
	}
	return s.repo.LoadCompensations(ctx, employeeID, year, month)
}

func (s *service) SaveOrUpdate(ctx context.Context, employeeID string, year, month int, comps []DayCompensation) error {
	if month < 1 || month > 12 {
		return compensationerrors.ErrInvalidMonth
	}

	seen := make(map[int]bool, len(comps))
	for _, c := range comps {
		if seen[c.Day] {
			return compensationerrors.ErrDuplicateDay
		}
		seen[c.Day] = true
	}

	existing, err := s.repo.LoadCompensations(ctx, employeeID, year, month)
	if err != nil {
		return err
	}

	byDay := make(map[int]*DayCompensation, len(existing))
	for i := range existing {
		byDay[existing[i].Day] = &existing[i]
	}

	var changes []FieldChange
	merged := append([]DayCompensation(nil), existing...)
	for _, next := range comps {
		next.EmployeeID = employeeID
		next.Year = year
		next.Month = month

		prev := byDay[next.Day]
		changes = append(changes, diffCompensation(prev, next)...)

		if prev != nil {
			for i := range merged {
				if merged[i].Day == next.Day {
					merged[i] = next
					break
				}
			}
		} else {
			merged = append(merged, next)
		}
	}
	sort.Slice(merged, func(a, b int) bool { return merged[a].Day < merged[b].Day })

	if err := s.repo.SaveCompensations(ctx, employeeID, year, month, merged); err != nil {
		return err
	}

	if len(changes) == 0 {
		return nil
	}

	// A lost audit entry is less harmful than a lost pay record, so a
	// backup write failure never rolls back the save above.
	if err := s.appendBackup(ctx, employeeID, year, month, changes); err != nil {
		zap.L().Warn("backup write failed",
			zap.String("employeeId", employeeID),
			zap.Int("year", year), zap.Int("month", month),
			zap.Error(err))
	}
	return nil
}

func (s *service) appendBackup(ctx context.Context, employeeID string, year, month int, changes []FieldChange) error {
	doc, err := s.repo.LoadBackups(ctx, employeeID, year, month)
	if err != nil {
		return err
	}
	doc.Backups = append(doc.Backups, BackupEntry{
		Timestamp: s.now().UTC(),
		Changes:   changes,
	})
	return s.repo.SaveBackups(ctx, employeeID, year, month, doc)
}

func (s *service) GetBackups(ctx context.Context, employeeID string, year, month int) (*BackupMonth, error) {
	if month < 1 || month > 12 {
		return nil, compensationerrors.ErrInvalidMonth
	}
	return s.repo.LoadBackups(ctx, employeeID, year, month)
}

func (s *service) Revert(ctx context.Context, employeeID string, year, month, day int, changes []FieldChange) error {
	existing, err := s.repo.LoadCompensations(ctx, employeeID, year, month)
	if err != nil {
		return err
	}

	var current *DayCompensation
	for i := range existing {
		if existing[i].Day == day {
			current = &existing[i]
			break
		}
	}
	if current == nil {
		return compensationerrors.ErrDayNotFound
	}

	reverted := *current
	for _, ch := range changes {
		if ch.Day != day {
			continue
		}
		// nil old values (legacy migrations) carry no information to restore
		if ch.OldValue == nil {
			continue
		}
		applyFieldValue(&reverted, ch.Field, ch.OldValue)
	}

	// re-save through the normal path so the revert is itself audited
	return s.SaveOrUpdate(ctx, employeeID, year, month, []DayCompensation{reverted})
}
