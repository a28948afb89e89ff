package atis

import "time"

// TimestampLayout is MM-DD-YYYY HH:MM:SS
const TimestampLayout = "01-02-2006 15:04:05"

// NormalizeType expands the provider's short ATIS type codes
func NormalizeType(t string) string {
	switch t {
	case "dep":
		return "departure"
	case "arr":
		return "arrival"
	default:
		return t
	}
}

// FormatTimestamp renders t in its own location
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
