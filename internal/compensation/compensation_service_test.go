package compensation_test

import (
	"context"
	"errors"
	"testing"

	"go-sweldo/internal/compensation"
	compensationerrors "go-sweldo/internal/compensation/errors"

	"github.com/stretchr/testify/assert"
)

type fakeCompensationRepo struct {
	loadCompensationsFn func(ctx context.Context, employeeID string, year, month int) ([]compensation.DayCompensation, error)
	saveCompensationsFn func(ctx context.Context, employeeID string, year, month int, comps []compensation.DayCompensation) error
	loadAttendanceFn    func(ctx context.Context, employeeID string, year, month int) ([]compensation.AttendanceDay, error)
	saveAttendanceFn    func(ctx context.Context, employeeID string, year, month int, days []compensation.AttendanceDay) error
	loadBackupsFn       func(ctx context.Context, employeeID string, year, month int) (*compensation.BackupMonth, error)
	saveBackupsFn       func(ctx context.Context, employeeID string, year, month int, doc *compensation.BackupMonth) error
}

func (f *fakeCompensationRepo) LoadCompensations(ctx context.Context, employeeID string, year, month int) ([]compensation.DayCompensation, error) {
	if f.loadCompensationsFn != nil {
		return f.loadCompensationsFn(ctx, employeeID, year, month)
	}
	return nil, nil
}

func (f *fakeCompensationRepo) SaveCompensations(ctx context.Context, employeeID string, year, month int, comps []compensation.DayCompensation) error {
	if f.saveCompensationsFn != nil {
		return f.saveCompensationsFn(ctx, employeeID, year, month, comps)
	}
	return nil
}

func (f *fakeCompensationRepo) LoadAttendance(ctx context.Context, employeeID string, year, month int) ([]compensation.AttendanceDay, error) {
	if f.loadAttendanceFn != nil {
		return f.loadAttendanceFn(ctx, employeeID, year, month)
	}
	return nil, nil
}

func (f *fakeCompensationRepo) SaveAttendance(ctx context.Context, employeeID string, year, month int, days []compensation.AttendanceDay) error {
	if f.saveAttendanceFn != nil {
		return f.saveAttendanceFn(ctx, employeeID, year, month, days)
	}
	return nil
}

func (f *fakeCompensationRepo) LoadBackups(ctx context.Context, employeeID string, year, month int) (*compensation.BackupMonth, error) {
	if f.loadBackupsFn != nil {
		return f.loadBackupsFn(ctx, employeeID, year, month)
	}
	return &compensation.BackupMonth{EmployeeID: employeeID, Year: year, Month: month}, nil
}

func (f *fakeCompensationRepo) SaveBackups(ctx context.Context, employeeID string, year, month int, doc *compensation.BackupMonth) error {
	if f.saveBackupsFn != nil {
		return f.saveBackupsFn(ctx, employeeID, year, month, doc)
	}
	return nil
}

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func TestCompensationService_SaveOrUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success new day", func(t *testing.T) {
		repo := &fakeCompensationRepo{}
		svc := compensation.NewService(repo)

		var savedComps []compensation.DayCompensation
		repo.saveCompensationsFn = func(ctx context.Context, employeeID string, year, month int, comps []compensation.DayCompensation) error {
			assert.Equal(t, "EMP-1", employeeID)
			assert.Equal(t, 2025, year)
			assert.Equal(t, 8, month)
			savedComps = comps
			return nil
		}

		var savedBackups *compensation.BackupMonth
		repo.saveBackupsFn = func(ctx context.Context, employeeID string, year, month int, doc *compensation.BackupMonth) error {
			savedBackups = doc
			return nil
		}

		err := svc.SaveOrUpdate(ctx, "EMP-1", 2025, 8, []compensation.DayCompensation{
			{Day: 5, DayType: compensation.DayTypeRegular, DailyRate: 500, OvertimePay: f64(100)},
		})

		assert.NoError(t, err)
		assert.Len(t, savedComps, 1)
		assert.Equal(t, "EMP-1", savedComps[0].EmployeeID)
		assert.Equal(t, 2025, savedComps[0].Year)
		assert.Equal(t, 8, savedComps[0].Month)

		assert.NotNil(t, savedBackups)
		assert.Len(t, savedBackups.Backups, 1)
		entry := savedBackups.Backups[0]
		assert.False(t, entry.Timestamp.IsZero())

		fields := make(map[string]compensation.FieldChange)
		for _, ch := range entry.Changes {
			fields[ch.Field] = ch
		}
		assert.Contains(t, fields, "overtimePay")
		assert.Nil(t, fields["overtimePay"].OldValue)
		assert.Equal(t, 100.0, fields["overtimePay"].NewValue)
	})

	t.Run("success merge keeps other days sorted", func(t *testing.T) {
		repo := &fakeCompensationRepo{}
		svc := compensation.NewService(repo)

		repo.loadCompensationsFn = func(ctx context.Context, employeeID string, year, month int) ([]compensation.DayCompensation, error) {
			return []compensation.DayCompensation{
				{EmployeeID: "EMP-1", Year: 2025, Month: 8, Day: 3, DayType: compensation.DayTypeRegular, DailyRate: 500},
				{EmployeeID: "EMP-1", Year: 2025, Month: 8, Day: 10, DayType: compensation.DayTypeRegular, DailyRate: 500, OvertimePay: f64(100)},
			}, nil
		}

		var savedComps []compensation.DayCompensation
		repo.saveCompensationsFn = func(ctx context.Context, employeeID string, year, month int, comps []compensation.DayCompensation) error {
			savedComps = comps
			return nil
		}

		var savedBackups *compensation.BackupMonth
		repo.saveBackupsFn = func(ctx context.Context, employeeID string, year, month int, doc *compensation.BackupMonth) error {
			savedBackups = doc
			return nil
		}

		err := svc.SaveOrUpdate(ctx, "EMP-1", 2025, 8, []compensation.DayCompensation{
			{Day: 10, DayType: compensation.DayTypeRegular, DailyRate: 500, OvertimePay: f64(150)},
			{Day: 7, DayType: compensation.DayTypeRegular, DailyRate: 500},
		})

		assert.NoError(t, err)
		assert.Len(t, savedComps, 3)
		assert.Equal(t, []int{3, 7, 10}, []int{savedComps[0].Day, savedComps[1].Day, savedComps[2].Day})
		assert.Equal(t, 150.0, *savedComps[2].OvertimePay)

		// day 10 changed one field; day 7 is new
		assert.Len(t, savedBackups.Backups, 1)
		var day10 []compensation.FieldChange
		for _, ch := range savedBackups.Backups[0].Changes {
			if ch.Day == 10 {
				day10 = append(day10, ch)
			}
		}
		assert.Len(t, day10, 1)
		assert.Equal(t, "overtimePay", day10[0].Field)
		assert.Equal(t, 100.0, day10[0].OldValue)
		assert.Equal(t, 150.0, day10[0].NewValue)
	})

	t.Run("no backup entry when nothing changed", func(t *testing.T) {
		repo := &fakeCompensationRepo{}
		svc := compensation.NewService(repo)

		existing := compensation.DayCompensation{
			EmployeeID: "EMP-1", Year: 2025, Month: 8, Day: 5,
			DayType: compensation.DayTypeRegular, DailyRate: 500,
		}
		repo.loadCompensationsFn = func(ctx context.Context, employeeID string, year, month int) ([]compensation.DayCompensation, error) {
			return []compensation.DayCompensation{existing}, nil
		}

		backupsWritten := false
		repo.saveBackupsFn = func(ctx context.Context, employeeID string, year, month int, doc *compensation.BackupMonth) error {
			backupsWritten = true
			return nil
		}

		err := svc.SaveOrUpdate(ctx, "EMP-1", 2025, 8, []compensation.DayCompensation{existing})

		assert.NoError(t, err)
		assert.False(t, backupsWritten)
	})

	t.Run("backup write failure does not fail the save", func(t *testing.T) {
		repo := &fakeCompensationRepo{}
		svc := compensation.NewService(repo)

		saved := false
		repo.saveCompensationsFn = func(ctx context.Context, employeeID string, year, month int, comps []compensation.DayCompensation) error {
			saved = true
			return nil
		}
		repo.saveBackupsFn = func(ctx context.Context, employeeID string, year, month int, doc *compensation.BackupMonth) error {
			return errors.New("disk full")
		}

		err := svc.SaveOrUpdate(ctx, "EMP-1", 2025, 8, []compensation.DayCompensation{
			{Day: 5, DayType: compensation.DayTypeRegular, DailyRate: 500},
		})

		assert.NoError(t, err)
		assert.True(t, saved)
	})

	t.Run("negative duplicate day in batch", func(t *testing.T) {
		svc := compensation.NewService(&fakeCompensationRepo{})

		err := svc.SaveOrUpdate(ctx, "EMP-1", 2025, 8, []compensation.DayCompensation{
			{Day: 5, DayType: compensation.DayTypeRegular},
			{Day: 5, DayType: compensation.DayTypeHoliday},
		})

		assert.ErrorIs(t, err, compensationerrors.ErrDuplicateDay)
	})

	t.Run("negative invalid month", func(t *testing.T) {
		svc := compensation.NewService(&fakeCompensationRepo{})

		err := svc.SaveOrUpdate(ctx, "EMP-1", 2025, 13, nil)
		assert.ErrorIs(t, err, compensationerrors.ErrInvalidMonth)
	})
}

func TestCompensationService_Revert(t *testing.T) {
	ctx := context.Background()

	t.Run("success restores audited old values", func(t *testing.T) {
		repo := &fakeCompensationRepo{}
		svc := compensation.NewService(repo)

		repo.loadCompensationsFn = func(ctx context.Context, employeeID string, year, month int) ([]compensation.DayCompensation, error) {
			return []compensation.DayCompensation{
				{EmployeeID: "EMP-1", Year: 2025, Month: 8, Day: 5,
					DayType: compensation.DayTypeRegular, DailyRate: 500,
					OvertimePay: f64(150), Notes: str("adjusted")},
			}, nil
		}

		var savedComps []compensation.DayCompensation
		repo.saveCompensationsFn = func(ctx context.Context, employeeID string, year, month int, comps []compensation.DayCompensation) error {
			savedComps = comps
			return nil
		}

		backupsWritten := false
		repo.saveBackupsFn = func(ctx context.Context, employeeID string, year, month int, doc *compensation.BackupMonth) error {
			backupsWritten = true
			return nil
		}

		err := svc.Revert(ctx, "EMP-1", 2025, 8, 5, []compensation.FieldChange{
			{Day: 5, Field: "overtimePay", OldValue: 100.0, NewValue: 150.0},
			// nil old values carry nothing to restore
			{Day: 5, Field: "notes", OldValue: nil, NewValue: "adjusted"},
			// changes for other days are ignored
			{Day: 6, Field: "dailyRate", OldValue: 400.0, NewValue: 500.0},
		})

		assert.NoError(t, err)
		assert.Len(t, savedComps, 1)
		assert.Equal(t, 100.0, *savedComps[0].OvertimePay)
		assert.Equal(t, "adjusted", *savedComps[0].Notes)
		assert.Equal(t, 500.0, savedComps[0].DailyRate)

		// the revert itself is audited
		assert.True(t, backupsWritten)
	})

	t.Run("negative day not found", func(t *testing.T) {
		svc := compensation.NewService(&fakeCompensationRepo{})

		err := svc.Revert(ctx, "EMP-1", 2025, 8, 5, nil)
		assert.ErrorIs(t, err, compensationerrors.ErrDayNotFound)
	})
}

func TestCompensationService_GetMonth(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeCompensationRepo{}
		repo.loadCompensationsFn = func(ctx context.Context, employeeID string, year, month int) ([]compensation.DayCompensation, error) {
			return []compensation.DayCompensation{{Day: 1}}, nil
		}
		svc := compensation.NewService(repo)

		comps, err := svc.GetMonth(ctx, "EMP-1", 2025, 8)
		assert.NoError(t, err)
		assert.Len(t, comps, 1)
	})

	t.Run("negative invalid month", func(t *testing.T) {
		svc := compensation.NewService(&fakeCompensationRepo{})

		_, err := svc.GetMonth(ctx, "EMP-1", 2025, 0)
		assert.ErrorIs(t, err, compensationerrors.ErrInvalidMonth)
	})
}
