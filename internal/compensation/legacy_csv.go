package compensation

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Legacy flat-file layout. One row per day, no header, fixed columns:
//
//	employeeId, year, month, day, dayType, dailyRate, hoursWorked,
//	overtimeMinutes, overtimePay, undertimeMinutes, undertimeDeduction,
//	lateMinutes, lateDeduction, holidayBonus, leaveType, leavePay,
//	nightDifferentialHours, nightDifferentialPay, grossPay, deductions,
//	netPay, manualOverride, notes, absence
//
// Backup rows carry a unix-millis timestamp and a day, then the same field
// columns; old values were never recorded in this format.

const compensationCSVColumns = 24

func parseOptFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseOptString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseOptBool(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// ParseCompensationCSV decodes a legacy compensation partition. Malformed
// or empty rows are skipped with a warning; one bad row never fails the
// partition.
func ParseCompensationCSV(data []byte, employeeID string, year, month int) []DayCompensation {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		zap.L().Warn("legacy compensation partition unreadable",
			zap.String("employeeId", employeeID),
			zap.Int("year", year), zap.Int("month", month),
			zap.Error(err))
		return nil
	}

	var comps []DayCompensation
	for i, row := range rows {
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		if len(row) < compensationCSVColumns {
			zap.L().Warn("legacy compensation row skipped",
				zap.String("employeeId", employeeID),
				zap.Int("row", i), zap.Int("columns", len(row)))
			continue
		}

		day, err := strconv.Atoi(row[3])
		if err != nil || day < 1 || day > 31 {
			zap.L().Warn("legacy compensation row has invalid day",
				zap.String("employeeId", employeeID),
				zap.Int("row", i), zap.String("day", row[3]))
			continue
		}

		comps = append(comps, DayCompensation{
			EmployeeID:             employeeID,
			Year:                   year,
			Month:                  month,
			Day:                    day,
			DayType:                row[4],
			DailyRate:              parseFloat(row[5]),
			HoursWorked:            parseOptFloat(row[6]),
			OvertimeMinutes:        parseOptFloat(row[7]),
			OvertimePay:            parseOptFloat(row[8]),
			UndertimeMinutes:       parseOptFloat(row[9]),
			UndertimeDeduction:     parseOptFloat(row[10]),
			LateMinutes:            parseOptFloat(row[11]),
			LateDeduction:          parseOptFloat(row[12]),
			HolidayBonus:           parseOptFloat(row[13]),
			LeaveType:              parseOptString(row[14]),
			LeavePay:               parseOptFloat(row[15]),
			NightDifferentialHours: parseFloat(row[16]),
			NightDifferentialPay:   parseFloat(row[17]),
			GrossPay:               parseOptFloat(row[18]),
			Deductions:             parseOptFloat(row[19]),
			NetPay:                 parseOptFloat(row[20]),
			ManualOverride:         parseOptBool(row[21]),
			Notes:                  parseOptString(row[22]),
			Absence:                parseOptBool(row[23]),
		})
	}

	sort.Slice(comps, func(a, b int) bool { return comps[a].Day < comps[b].Day })
	return comps
}

// ParseBackupCSV decodes a legacy backup partition, grouping rows by their
// timestamp column into one BackupEntry per unique timestamp. Old values
// are unrecoverable from this format and recorded as nil.
func ParseBackupCSV(data []byte, employeeID string, year, month int) *BackupMonth {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		zap.L().Warn("legacy backup partition unreadable",
			zap.String("employeeId", employeeID),
			zap.Int("year", year), zap.Int("month", month),
			zap.Error(err))
		return &BackupMonth{EmployeeID: employeeID, Year: year, Month: month}
	}

	// field columns start after timestamp and day
	fieldNames := make([]string, len(compFields))
	for i, fd := range compFields {
		fieldNames[i] = fd.name
	}

	grouped := make(map[int64][]FieldChange)
	seen := make(map[int64]bool)
	var order []int64
	for i, row := range rows {
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		if len(row) < 2 {
			zap.L().Warn("legacy backup row skipped",
				zap.String("employeeId", employeeID), zap.Int("row", i))
			continue
		}

		ts, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			zap.L().Warn("legacy backup row has invalid timestamp",
				zap.String("employeeId", employeeID),
				zap.Int("row", i), zap.String("timestamp", row[0]))
			continue
		}
		day, err := strconv.Atoi(row[1])
		if err != nil {
			zap.L().Warn("legacy backup row has invalid day",
				zap.String("employeeId", employeeID),
				zap.Int("row", i), zap.String("day", row[1]))
			continue
		}

		// grouped[ts] only exists once a row contributes a field, so the
		// seen set is tracked separately or an all-empty row would let a
		// later row register the same timestamp twice
		if !seen[ts] {
			seen[ts] = true
			order = append(order, ts)
		}
		for col := 2; col < len(row) && col-2 < len(fieldNames); col++ {
			if row[col] == "" {
				continue
			}
			grouped[ts] = append(grouped[ts], FieldChange{
				Day:      day,
				Field:    fieldNames[col-2],
				OldValue: nil,
				NewValue: row[col],
			})
		}
	}

	doc := &BackupMonth{EmployeeID: employeeID, Year: year, Month: month}
	for _, ts := range order {
		doc.Backups = append(doc.Backups, BackupEntry{
			Timestamp: time.UnixMilli(ts).UTC(),
			Changes:   grouped[ts],
		})
	}
	return doc
}
