// Package schedule partitions scheduled shows around a reference instant.
package schedule

import "time"

// Scheduled is anything with a start time.
type Scheduled interface {
	StartTime() time.Time
}

// Split partitions items into past and upcoming relative to now. An item is
// upcoming only when it starts strictly after now; both results keep the
// input order and are never nil.
func Split[T Scheduled](items []T, now time.Time) (past, upcoming []T) {
	past = []T{}
	upcoming = []T{}
	for _, item := range items {
		if item.StartTime().After(now) {
			upcoming = append(upcoming, item)
		} else {
			past = append(past, item)
		}
	}
	return past, upcoming
}
