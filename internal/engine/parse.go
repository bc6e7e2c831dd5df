package engine

import (
	"strings"
	"time"
)

// dueDateLayouts are the accepted due-date formats, tried in order. The first
// is the format browsers emit from datetime-local inputs, which is what the
// persisted data carries.
var dueDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDueDate parses a stored due-date string in local time. It returns
// ok=false for an empty or unparseable value; callers treat those tasks as
// having no reminder.
func ParseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
