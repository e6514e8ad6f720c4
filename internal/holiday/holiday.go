// Package holiday answers the single question absence counting needs:
// is this calendar date a holiday. The calendar is a JSON list of
// YYYY-MM-DD dates; a missing file means no holidays.
package holiday

import (
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"
)

type Service interface {
	IsHoliday(date time.Time) bool
}

type service struct {
	dates map[string]struct{}
}

const dateLayout = "2006-01-02"

// NewService loads the holiday calendar from path. An absent or unreadable
// file is logged and treated as an empty calendar, never a startup failure.
func NewService(path string) Service {
	s := &service{dates: make(map[string]struct{})}
	if path == "" {
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.L().Warn("holiday calendar unreadable", zap.String("path", path), zap.Error(err))
		}
		return s
	}

	var dates []string
	if err := json.Unmarshal(data, &dates); err != nil {
		zap.L().Warn("holiday calendar malformed", zap.String("path", path), zap.Error(err))
		return s
	}

	for _, d := range dates {
		if _, err := time.Parse(dateLayout, d); err != nil {
			zap.L().Warn("holiday calendar entry skipped", zap.String("date", d))
			continue
		}
		s.dates[d] = struct{}{}
	}
	return s
}

func (s *service) IsHoliday(date time.Time) bool {
	_, ok := s.dates[date.Format(dateLayout)]
	return ok
}

// Fixed returns a calendar built from explicit dates, for tests and
// embedding hosts that manage their own holiday list.
func Fixed(dates ...time.Time) Service {
	s := &service{dates: make(map[string]struct{})}
	for _, d := range dates {
		s.dates[d.Format(dateLayout)] = struct{}{}
	}
	return s
}
