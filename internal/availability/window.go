// Package availability gates date-keyed content by a sliding window. The
// policy runs before any store or generation access: generation is costly and
// must never fire for an out-of-window date.
package availability

import "time"

type State int

const (
	// Locked: the date is in the future; no read or generation.
	Locked State = iota
	// Available: within the window; proceed to the store and, on a miss,
	// lazy generation.
	Available
	// Expired: older than the retention window; the record may still exist
	// but is treated as inaccessible.
	Expired
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Available:
		return "available"
	case Expired:
		return "expired"
	}
	return "unknown"
}

// DefaultRetentionDays is how far back devotionals stay readable.
const DefaultRetentionDays = 365

// Evaluate returns the window state of date relative to today. Both are
// normalized to day granularity first, so time-of-day never shifts the
// boundary.
func Evaluate(date, today time.Time, retentionDays int) State {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	d := truncateToDay(date)
	t := truncateToDay(today)

	daysDiff := int(d.Sub(t).Hours() / 24)
	switch {
	case daysDiff > 0:
		return Locked
	case daysDiff < -retentionDays:
		return Expired
	default:
		return Available
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
