package service

import "time"

// Option tunes the services built by New.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the source of "now" used for upload dates, overdue
// checks and monthly counts.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
