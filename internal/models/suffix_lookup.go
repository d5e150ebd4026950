package models

import "time"

// SuffixLookup is the running number of candidate checks for one suffix
// that ended with a given outcome.
type SuffixLookup struct {
	Suffix     string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
