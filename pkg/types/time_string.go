package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// timeLayout формат времени слота в виде строки "HH:MM"
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrInvalidTimeRange возвращается при некорректном формате диапазона времени
	ErrInvalidTimeRange = errors.New("invalid time range format, expected HH:MM-HH:MM")
)

// TimeString represents a wall-clock time of day as a "HH:MM" string.
// It is stored and compared as a string, so zero-padding is mandatory:
// "09:00" is valid, "9:00" is not.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates a "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	// time.Parse принимает "9:00", но канонический вид требует ведущий ноль,
	// иначе строковое сравнение времён ломается
	if parsed.Format(timeLayout) != string(t) {
		return fmt.Errorf("%w: %q is not zero-padded", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the underlying "HH:MM" string.
func (t TimeString) String() string {
	return string(t)
}

// Trimmed returns the value with surrounding whitespace removed.
func (t TimeString) Trimmed() TimeString {
	return TimeString(strings.TrimSpace(string(t)))
}

// IsBefore returns true if t is strictly earlier than other.
// Valid "HH:MM" strings compare correctly lexicographically.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// TimeRange пара (начало, конец) слота, например 09:00-10:00
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// ParseTimeRange parses a "HH:MM-HH:MM" string into a TimeRange.
// Both parts are trimmed and validated, and Start must be strictly
// before End.
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}

	start, err := NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: start: %v", ErrInvalidTimeRange, err)
	}

	end, err := NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: end: %v", ErrInvalidTimeRange, err)
	}

	if !start.IsBefore(end) {
		return TimeRange{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, start, end)
	}

	return TimeRange{Start: start, End: end}, nil
}

// String returns the canonical "HH:MM-HH:MM" form.
func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
