// Package dateparse parses the flexible ISO-8601-like date strings accepted
// by the timeline API.
package dateparse

import (
	"fmt"
	"strings"
	"time"
)

// fallbackLayouts are tried after the timezone-aware RFC 3339 forms.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse converts a date string into a UTC instant. A trailing literal "Z"
// and an explicit "+00:00" offset are equivalent.
func Parse(dateString string) (time.Time, error) {
	if dateString == "" {
		return time.Time{}, fmt.Errorf("date string cannot be empty")
	}

	s := dateString
	if strings.HasSuffix(s, "Z") {
		s = s[:len(s)-1] + "+00:00"
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date string: %s. Use ISO 8601 format (e.g., '2024-01-01T12:00:00' or '2024-01-01T12:00:00Z')", dateString)
}
