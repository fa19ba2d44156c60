// Package uiutil holds small presentation helpers shared by the template
// func maps. Everything here is pure formatting; no template types leak in.
package uiutil

import (
	"strconv"
	"time"
)

const friendlyLayout = "Jan 2, 2006 3:04 PM"

// FormatFriendlyDateTime renders t in local time using a short readable
// layout. Zero times render as the empty string.
func FormatFriendlyDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(friendlyLayout)
}

// FriendlyRelativeTime describes how long ago t was, in the coarsest unit
// that still reads naturally. Anything older than a week falls back to the
// absolute timestamp; future times read as "just now".
func FriendlyRelativeTime(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return pluralize(int(diff.Hours()/24), "day")
	default:
		return FormatFriendlyDateTime(t)
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return strconv.Itoa(n) + " " + unit + "s ago"
}
