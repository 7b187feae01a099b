package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (без даты и таймзоны)
// Используется для времени начала/конца бронирований и окон доступности
type TimeString string

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time is out of 24h range")
)

const timeLayout = "15:04"

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" и валидирует её
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", ErrTimeOutOfRange
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток
// Для невалидных значений возвращает 0 (значения должны валидироваться при создании)
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes возвращает время через minutes минут
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.Minutes() + minutes)
}

// MinutesUntil возвращает количество минут от t до other
// Отрицательное значение означает, что other раньше t
func (t TimeString) MinutesUntil(other TimeString) int {
	return other.Minutes() - t.Minutes()
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает TEXT ("10:00") и TIME ("10:00:00") представления Postgres
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeFormat, src)
	}

	// Postgres TIME возвращает "HH:MM:SS" - обрезаем секунды
	if len(raw) > 5 {
		raw = raw[:5]
	}

	ts, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// MarshalJSON реализует json.Marshaler
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON реализует json.Unmarshaler с валидацией формата
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ts, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
