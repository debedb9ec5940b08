package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeFormat is the wall-clock layout used across the service.
const timeFormat = "15:04"

var (
	// ErrInvalidTimeString is returned for values that are not "HH:MM"
	ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")
)

// TimeString is a wall-clock time of day in fixed-width "HH:MM" (24-hour) form.
// Because every value is zero-padded, lexicographic comparison of the underlying
// strings matches chronological order; all comparison methods rely on that
// property, so the format must never be relaxed.
type TimeString string

// NewTimeString builds a TimeString from a time.Time, dropping the date part.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString parses an "HH:MM" string into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	// Re-format so "9:05" never slips through as-is.
	return TimeString(t.Format(timeFormat)), nil
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a zero-padded "HH:MM" time.
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if parsed.Format(timeFormat) != string(t) {
		return fmt.Errorf("%w: %q is not zero-padded", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// MinutesUntil returns the signed number of minutes from t to other.
// A negative result means other is earlier than t.
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	to, err := other.Minutes()
	if err != nil {
		return 0, err
	}
	return to - from, nil
}

// AddMinutes returns a new TimeString shifted by the given number of minutes.
// Shifting outside the current day is an error.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q%+dm is outside the day", ErrInvalidTimeString, string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		// TIME columns arrive as time.Time with some drivers.
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
	return t.Validate()
}
