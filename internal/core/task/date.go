package task

import (
	"strings"
	"time"
)

const (
	// RecordDateLayout is the ISO-8601 calendar date accepted on input and
	// written to the storage file.
	RecordDateLayout = "2006-01-02"
	// DisplayDateLayout renders dates for the user, e.g. "2 Dec 2024".
	DisplayDateLayout = "2 Jan 2006"
)

// ParseDate parses an ISO-8601 calendar date such as "2024-12-02".
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(RecordDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return d, nil
}

func FormatDisplayDate(d time.Time) string { return d.Format(DisplayDateLayout) }

func FormatRecordDate(d time.Time) string { return d.Format(RecordDateLayout) }
