package units

import (
	"strings"
	"time"

	"github.com/micutio/navkit/internal/l10n"
)

const (
	millisPerSecond  = 1000
	secondsPerMinute = 60
	secondsPerDay    = 86400
	secondsBucket    = 10
)

// FormatDuration renders a duration given in milliseconds. Only the largest non-zero unit and,
// for days and hours, the next smaller one are shown: "2 days 3 hours", "1 hour 1 minute",
// "5 minutes". Seconds appear only for durations below one minute and are floored to a multiple
// of ten. Zero renders as "0 minutes" and negative input as the empty string.
func (f *Formatter) FormatDuration(millis int64) string {
	if millis < 0 {
		return ""
	}

	if millis == 0 {
		return f.quantity(0, "time.minute")
	}

	total := millis / millisPerSecond
	days := total / secondsPerDay
	hours := total % secondsPerDay / secondsPerHour
	minutes := total % secondsPerHour / secondsPerMinute
	seconds := total % secondsPerMinute

	switch {
	case days > 0:
		return f.pair(days, "time.day", hours, "time.hour")
	case hours > 0:
		return f.pair(hours, "time.hour", minutes, "time.minute")
	case minutes > 0:
		return f.quantity(minutes, "time.minute")
	default:
		return f.quantity(seconds/secondsBucket*secondsBucket, "time.second")
	}
}

func (f *Formatter) pair(major int64, majorKey string, minor int64, minorKey string) string {
	if minor == 0 {
		return f.quantity(major, majorKey)
	}

	return f.quantity(major, majorKey) + " " + f.quantity(minor, minorKey)
}

func (f *Formatter) quantity(count int64, key string) string {
	return f.printer.Sprintf("%d", count) + " " + l10n.Plural(f.catalog, count, key)
}

// timestampLayouts are tried in order by ParseTimestamp.
var timestampLayouts = []string{ //nolint:gochecknoglobals // constant list
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp parses the date formats found in route files. The boolean is false when the
// string matches none of them.
func ParseTimestamp(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// FormatArrival renders a wall clock time in the locale's clock layout.
func (f *Formatter) FormatArrival(t time.Time) string {
	return t.Format(f.catalog.Lookup("time.clock"))
}
