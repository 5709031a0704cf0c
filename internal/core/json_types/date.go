package json_types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/suchimauz/goodx-diary-web/internal/config"
)

const (
	LocalDateTimeLayout = "2006-01-02T15:04:05"
	DateLayout          = "2006-01-02"
)

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// GoodX отдает время без таймзоны, считаем его локальным для практики
	if err != nil {
		parsedDate, err = time.ParseInLocation(LocalDateTimeLayout, str, config.TimeZone)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02 15:04:05", str, config.TimeZone)
			if err != nil {
				// Если не удалось, пробуем как дату без времени
				parsedDate, err = time.ParseInLocation(DateLayout, str, config.TimeZone)
				if err != nil {
					return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
				}
			}
		}
	}

	return parsedDate, nil
}

func unquote(data []byte) (string, error) {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return "", err
	}
	return str, nil
}

// LocalDateTime - дата со временем в формате GoodX, без таймзоны
type LocalDateTime struct {
	Date time.Time
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Date: t}
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	str, err := unquote(data)
	if err != nil {
		return err
	}

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = LocalDateTime{Date: parsedDate}
	return nil
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(t.Date.In(config.TimeZone).Format(LocalDateTimeLayout))
}

func (t LocalDateTime) IsZero() bool {
	return t.Date.IsZero()
}

type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	str, err := unquote(data)
	if err != nil {
		return err
	}

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = Date{Date: parsedDate}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(t.Date.Format(DateLayout))
}

func (t Date) String() string {
	if t.Date.IsZero() {
		return ""
	}
	return t.Date.Format(DateLayout)
}
