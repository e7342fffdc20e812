package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TimestampLayout is the DD/MM/YY HH:MM:SS layout used for created_at and
// updated_at.
const TimestampLayout = "02/01/06 15:04:05"

// Now is the clock used to stamp notes. Tests replace it.
var Now = time.Now

// FormatTimestamp renders t in TimestampLayout using local wall-clock time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// ParseTimestamp parses a value produced by FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.Local)
}

func timestamp() string {
	return FormatTimestamp(Now())
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest, after trimming surrounding whitespace: "  aNA maría " -> "Ana María".
func TitleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}
