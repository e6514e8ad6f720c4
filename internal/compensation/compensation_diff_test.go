package compensation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestDiffCompensation(t *testing.T) {
	t.Run("new record reports only populated fields", func(t *testing.T) {
		next := DayCompensation{
			Day:         5,
			DayType:     DayTypeRegular,
			DailyRate:   500,
			OvertimePay: fptr(100),
		}

		changes := diffCompensation(nil, next)

		byField := make(map[string]FieldChange)
		for _, ch := range changes {
			byField[ch.Field] = ch
		}

		assert.Contains(t, byField, "dayType")
		assert.Contains(t, byField, "dailyRate")
		assert.Contains(t, byField, "overtimePay")
		assert.NotContains(t, byField, "notes")
		assert.NotContains(t, byField, "grossPay")

		ot := byField["overtimePay"]
		assert.Equal(t, 5, ot.Day)
		assert.Nil(t, ot.OldValue)
		assert.Equal(t, 100.0, ot.NewValue)
	})

	t.Run("only changed fields reported", func(t *testing.T) {
		prev := DayCompensation{Day: 5, DayType: DayTypeRegular, DailyRate: 500, OvertimePay: fptr(100)}
		next := DayCompensation{Day: 5, DayType: DayTypeRegular, DailyRate: 500, OvertimePay: fptr(150)}

		changes := diffCompensation(&prev, next)

		assert.Len(t, changes, 1)
		assert.Equal(t, "overtimePay", changes[0].Field)
		assert.Equal(t, 100.0, changes[0].OldValue)
		assert.Equal(t, 150.0, changes[0].NewValue)
	})

	t.Run("clearing a pointer field is a change", func(t *testing.T) {
		prev := DayCompensation{Day: 5, DayType: DayTypeRegular, Notes: sptr("late bus")}
		next := DayCompensation{Day: 5, DayType: DayTypeRegular}

		changes := diffCompensation(&prev, next)

		assert.Len(t, changes, 1)
		assert.Equal(t, "notes", changes[0].Field)
		assert.Equal(t, "late bus", changes[0].OldValue)
		assert.Nil(t, changes[0].NewValue)
	})

	t.Run("identical records produce no changes", func(t *testing.T) {
		prev := DayCompensation{Day: 5, DayType: DayTypeHoliday, DailyRate: 600, HolidayBonus: fptr(600)}
		next := prev

		assert.Empty(t, diffCompensation(&prev, next))
	})
}

func TestApplyFieldValue(t *testing.T) {
	c := DayCompensation{Day: 5, DayType: DayTypeRegular, OvertimePay: fptr(150)}

	applyFieldValue(&c, "overtimePay", 100.0)
	assert.Equal(t, 100.0, *c.OvertimePay)

	applyFieldValue(&c, "overtimePay", nil)
	assert.Nil(t, c.OvertimePay)

	applyFieldValue(&c, "dayType", DayTypeHoliday)
	assert.Equal(t, DayTypeHoliday, c.DayType)

	applyFieldValue(&c, "notes", "till recount")
	assert.Equal(t, "till recount", *c.Notes)

	// unknown fields from newer backup documents are ignored
	before := c
	applyFieldValue(&c, "somethingElse", 1.0)
	assert.Equal(t, before, c)
}
