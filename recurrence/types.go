// Package recurrence expands RRULE-based recurrence of parsed calendar
// records into concrete occurrences. It is a consumer of the codec, not part
// of it: records go through package ical first, then through an Engine here.
package recurrence

import "time"

// Info carries the recurrence-related fields of a record.
type Info struct {
	// RRule is the recurrence rule in wire form, without the "RRULE:" prefix.
	RRule string
	// RDates are additional occurrence start times.
	RDates []time.Time
	// ExDates are excluded occurrence start times.
	ExDates []time.Time
}

// Master is the first occurrence the rule expands from.
type Master struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of one occurrence.
func (m Master) Duration() time.Duration {
	return m.End.Sub(m.Start)
}

// Occurrence is one concrete instance of a recurring record.
type Occurrence struct {
	Start time.Time
	End   time.Time
}

// Options bounds expansion so an unbounded rule cannot run away.
type Options struct {
	// MaxOccurrences caps the number of expanded occurrences; 0 means the
	// default cap.
	MaxOccurrences int
	// MaxSpan caps how far past the requested range start the expansion
	// looks; 0 means the default.
	MaxSpan time.Duration
}

// DefaultOptions are safe bounds for interactive calendar views.
var DefaultOptions = Options{
	MaxOccurrences: 1000,
	MaxSpan:        2 * 365 * 24 * time.Hour,
}

func (o Options) withDefaults() Options {
	if o.MaxOccurrences <= 0 {
		o.MaxOccurrences = DefaultOptions.MaxOccurrences
	}
	if o.MaxSpan <= 0 {
		o.MaxSpan = DefaultOptions.MaxSpan
	}
	return o
}
