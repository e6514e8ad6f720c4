package compensation

// Typed field-by-field comparison of DayCompensation records. The legacy
// implementation compared serialized snapshots, which is key-order
// sensitive and hides type coercions ("0" vs 0); this diff goes field by
// field against the declared shape instead.

type fieldDef struct {
	name string
	get  func(*DayCompensation) any
	set  func(*DayCompensation, any)
}

func f64ptr(v any) *float64 {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return &x
	case int:
		f := float64(x)
		return &f
	}
	return nil
}

func strptr(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func boolptr(v any) *bool {
	if b, ok := v.(bool); ok {
		return &b
	}
	return nil
}

func derefF(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func derefS(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func derefB(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}

// compFields enumerates every mutable field on DayCompensation, keyed by
// its json name. The key fields (employeeId, year, month, day) are not
// listed; they identify the record rather than describe it.
var compFields = []fieldDef{
	{"dayType", func(c *DayCompensation) any { return c.DayType }, func(c *DayCompensation, v any) {
		if s, ok := v.(string); ok {
			c.DayType = s
		}
	}},
	{"dailyRate", func(c *DayCompensation) any { return c.DailyRate }, func(c *DayCompensation, v any) {
		if f, ok := v.(float64); ok {
			c.DailyRate = f
		}
	}},
	{"hoursWorked", func(c *DayCompensation) any { return derefF(c.HoursWorked) }, func(c *DayCompensation, v any) { c.HoursWorked = f64ptr(v) }},
	{"overtimeMinutes", func(c *DayCompensation) any { return derefF(c.OvertimeMinutes) }, func(c *DayCompensation, v any) { c.OvertimeMinutes = f64ptr(v) }},
	{"overtimePay", func(c *DayCompensation) any { return derefF(c.OvertimePay) }, func(c *DayCompensation, v any) { c.OvertimePay = f64ptr(v) }},
	{"undertimeMinutes", func(c *DayCompensation) any { return derefF(c.UndertimeMinutes) }, func(c *DayCompensation, v any) { c.UndertimeMinutes = f64ptr(v) }},
	{"undertimeDeduction", func(c *DayCompensation) any { return derefF(c.UndertimeDeduction) }, func(c *DayCompensation, v any) { c.UndertimeDeduction = f64ptr(v) }},
	{"lateMinutes", func(c *DayCompensation) any { return derefF(c.LateMinutes) }, func(c *DayCompensation, v any) { c.LateMinutes = f64ptr(v) }},
	{"lateDeduction", func(c *DayCompensation) any { return derefF(c.LateDeduction) }, func(c *DayCompensation, v any) { c.LateDeduction = f64ptr(v) }},
	{"holidayBonus", func(c *DayCompensation) any { return derefF(c.HolidayBonus) }, func(c *DayCompensation, v any) { c.HolidayBonus = f64ptr(v) }},
	{"leaveType", func(c *DayCompensation) any { return derefS(c.LeaveType) }, func(c *DayCompensation, v any) { c.LeaveType = strptr(v) }},
	{"leavePay", func(c *DayCompensation) any { return derefF(c.LeavePay) }, func(c *DayCompensation, v any) { c.LeavePay = f64ptr(v) }},
	{"nightDifferentialHours", func(c *DayCompensation) any { return c.NightDifferentialHours }, func(c *DayCompensation, v any) {
		if f, ok := v.(float64); ok {
			c.NightDifferentialHours = f
		}
	}},
	{"nightDifferentialPay", func(c *DayCompensation) any { return c.NightDifferentialPay }, func(c *DayCompensation, v any) {
		if f, ok := v.(float64); ok {
			c.NightDifferentialPay = f
		}
	}},
	{"grossPay", func(c *DayCompensation) any { return derefF(c.GrossPay) }, func(c *DayCompensation, v any) { c.GrossPay = f64ptr(v) }},
	{"deductions", func(c *DayCompensation) any { return derefF(c.Deductions) }, func(c *DayCompensation, v any) { c.Deductions = f64ptr(v) }},
	{"netPay", func(c *DayCompensation) any { return derefF(c.NetPay) }, func(c *DayCompensation, v any) { c.NetPay = f64ptr(v) }},
	{"manualOverride", func(c *DayCompensation) any { return derefB(c.ManualOverride) }, func(c *DayCompensation, v any) { c.ManualOverride = boolptr(v) }},
	{"notes", func(c *DayCompensation) any { return derefS(c.Notes) }, func(c *DayCompensation, v any) { c.Notes = strptr(v) }},
	{"absence", func(c *DayCompensation) any { return derefB(c.Absence) }, func(c *DayCompensation, v any) { c.Absence = boolptr(v) }},
}

// diffCompensation returns one FieldChange per field that differs between
// prev and next. A nil prev means the record is wholly new and every
// populated field is reported with a nil old value.
func diffCompensation(prev *DayCompensation, next DayCompensation) []FieldChange {
	var changes []FieldChange
	for _, fd := range compFields {
		newVal := fd.get(&next)

		var oldVal any
		if prev != nil {
			oldVal = fd.get(prev)
		}

		if prev == nil && newVal == nil {
			continue
		}
		if oldVal == newVal {
			continue
		}
		changes = append(changes, FieldChange{
			Day:      next.Day,
			Field:    fd.name,
			OldValue: oldVal,
			NewValue: newVal,
		})
	}
	return changes
}

// applyFieldValue overlays one audited value onto the record. Unknown
// field names are ignored so old backup documents stay loadable.
func applyFieldValue(c *DayCompensation, field string, value any) {
	for _, fd := range compFields {
		if fd.name == field {
			fd.set(c, value)
			return
		}
	}
}
