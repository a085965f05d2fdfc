package entity

import "time"

// fixedClock is a TimeProvider pinned to a single instant
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

var testClock = fixedClock{t: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
