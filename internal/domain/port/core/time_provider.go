package core

import "time"

// TimeProvider abstracts the clock so period and expiry logic is testable
type TimeProvider interface {
	Now() time.Time
}
