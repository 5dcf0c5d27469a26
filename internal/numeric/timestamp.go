package numeric

import "time"

const timestampLayout = "2006-01-02 15:04:05.000"

// Timestamp renders now in the "YYYY-MM-DD HH:MM:SS.mmm" format every
// persistence record is stamped with.
func Timestamp(now time.Time) string {
	return now.Format(timestampLayout)
}
