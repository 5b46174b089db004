package service

import "time"

// Clock returns the current time. Services compare expiries in UTC.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

func (c Clock) now() time.Time {
	if c == nil {
		return utcNow()
	}
	return c().UTC()
}
