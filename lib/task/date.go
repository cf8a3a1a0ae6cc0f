// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the canonical, locale-independent date form.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time of day or time zone. The zero
// value is not a valid date; use a nil *Date for "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given year, month, and day. Values
// are not normalized; use ParseDate for untrusted input.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in the canonical YYYY-MM-DD form. Surrounding
// whitespace is ignored. Impossible dates such as 2025-02-30 are
// rejected.
func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, &ValidationError{Field: FieldDeadline, Value: value,
			Reason: "must be a date in YYYY-MM-DD form"}
	}
	return DateOf(parsed), nil
}

// String returns the canonical YYYY-MM-DD form.
func (date Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year, int(date.Month), date.Day)
}

// Time returns midnight UTC at the start of the date.
func (date Date) Time() time.Time {
	return time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, time.UTC)
}

// Format renders the date with a time layout, for locale-specific
// display (e.g. "02.01.2006").
func (date Date) Format(layout string) string {
	return date.Time().Format(layout)
}

// Before reports whether date is strictly earlier than other.
func (date Date) Before(other Date) bool {
	return date.Time().Before(other.Time())
}

// MarshalText implements encoding.TextMarshaler so dates serialize as
// their canonical string in JSON, YAML, and CBOR alike.
func (date Date) MarshalText() ([]byte, error) {
	return []byte(date.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (date *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*date = parsed
	return nil
}
