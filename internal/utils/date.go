package utils

import (
	"fmt"
	"time"

	"github.com/suchimauz/goodx-diary-web/internal/config"
)

func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate парсит дату вида 2024-03-01 в таймзоне из конфига, если не удается, то пробует RFC3339
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.ParseInLocation("2006-01-02", str, config.TimeZone)
	if err != nil {
		parsedDate, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
		}
		parsedDate = parsedDate.In(config.TimeZone)
	}

	return StartCurrentDay(parsedDate), nil
}

// ParseClock парсит время дня вида 09:30 (или 9:30 AM) и возвращает часы и минуты
func ParseClock(str string) (int, int, error) {
	for _, layout := range []string{"15:04", "15:04:05", "3:04 PM", "3:04PM"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("failed to parse time of day: %q", str)
}
