package ports

import "time"

// Clock supplies the current time. Every elapsed computation and every
// threshold check reads it, so tests can drive time by hand.
type Clock interface {
	Now() time.Time
}
