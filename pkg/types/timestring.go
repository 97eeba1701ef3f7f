package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM
const timeLayout = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString время суток в формате "HH:MM"
// Используется для wall-clock времени, не привязанного к дате (шаблоны расписания)
type TimeString string

// NewTimeString создает TimeString из time.Time (берет только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return ErrInvalidTimeString
	}
	return nil
}

// IsZero сообщает, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, ErrInvalidTimeString
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes вперед
// Выход за границу суток считается ошибкой
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := m + minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, minutes)
	}
	// 24:00 представляем как конец суток
	if total == 24*60 {
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore сообщает, что t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter сообщает, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// At привязывает время суток к дате в указанной локации,
// возвращая абсолютный момент времени
func (t TimeString) At(date time.Time, loc *time.Location) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, loc), nil
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из колонки TIME
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	// PostgreSQL отдает TIME как "HH:MM:SS", обрезаем секунды
	if len(s) > 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
