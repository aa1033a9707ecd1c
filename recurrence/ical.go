package recurrence

import (
	"time"

	"github.com/cyp0633/libvdir/ical"
)

// FromEvent derives the master occurrence and recurrence info from a parsed
// event. ok is false when the event has no start time and therefore cannot
// recur.
func FromEvent(e ical.Event) (master Master, info Info, ok bool) {
	if e.Start == nil {
		return Master{}, Info{}, false
	}
	master.Start = *e.Start
	switch {
	case e.End != nil:
		master.End = *e.End
	case e.AllDay:
		master.End = master.Start.AddDate(0, 0, 1)
	default:
		master.End = master.Start
	}
	info = Info{RRule: e.RRule, RDates: e.RDates, ExDates: e.ExDates}
	return master, info, true
}

// FromTodo derives the master occurrence and recurrence info from a parsed
// todo. The due time stands in for a missing start; a todo with neither
// cannot be placed on a timeline.
func FromTodo(td ical.Todo) (master Master, info Info, ok bool) {
	switch {
	case td.Start != nil:
		master.Start = *td.Start
		master.End = *td.Start
		if td.Due != nil && td.Due.After(master.Start) {
			master.End = *td.Due
		}
	case td.Due != nil:
		master.Start = *td.Due
		master.End = *td.Due
	default:
		return Master{}, Info{}, false
	}
	info = Info{RRule: td.RRule}
	return master, info, true
}

// EventOccurrences is a convenience wrapper over Expand for parsed events.
func (e *Engine) EventOccurrences(ev ical.Event, rangeStart, rangeEnd time.Time) ([]Occurrence, error) {
	master, info, ok := FromEvent(ev)
	if !ok {
		return nil, nil
	}
	return e.Expand(master, info, rangeStart, rangeEnd)
}
