// Package ical implements the iCalendar VEVENT and VTODO codecs (RFC 5545)
// on the same engine as package vcard: a byte-exact generator and a tolerant
// best-effort parser. Generators emit bare components, one BEGIN/END pair
// per record; the parser also accepts components wrapped in a VCALENDAR
// stream and skips the wrapper lines.
package ical

import "time"

// Event is a VEVENT record.
type Event struct {
	// Summary is the SUMMARY property, required for generation.
	Summary     string
	Description string
	Location    string

	// Start and End map to DTSTART/DTEND. With AllDay set they are emitted
	// as VALUE=DATE values and the time of day is ignored.
	Start  *time.Time
	End    *time.Time
	AllDay bool

	Status       EventStatus
	Transparency Transparency
	Categories   []string
	URL          string
	Geo          *Geo

	// RRule is the recurrence rule in wire form, without the "RRULE:"
	// prefix, e.g. "FREQ=WEEKLY;BYDAY=MO". RDates add occurrences beyond
	// the rule, ExDates remove them.
	RRule   string
	RDates  []time.Time
	ExDates []time.Time

	Organizer string
	Attendees []Attendee
	Alarms    []Alarm

	// Wire metadata. UID is generated when absent; Timestamp (DTSTAMP) is
	// stamped by the generator and recovered by the parser.
	UID       string
	Timestamp *time.Time
	Sequence  int
	ProdID    string
}

// Todo is a VTODO record.
type Todo struct {
	// Summary is the SUMMARY property, required for generation.
	Summary     string
	Description string

	Status TodoStatus
	// Priority is the RFC 5545 1..9 scale; zero means unset and is omitted.
	Priority int

	Start     *time.Time
	Due       *time.Time
	Completed *time.Time
	// PercentComplete is 0..100; zero is treated as unset and omitted.
	PercentComplete int

	Categories []string
	RRule      string
	Alarms     []Alarm

	UID       string
	Timestamp *time.Time
	ProdID    string
}

// Geo is a WGS 84 coordinate pair carried by the GEO property.
type Geo struct {
	Latitude  float64
	Longitude float64
}

// Attendee is one ATTENDEE property entry. Address is the calendar user
// address without the mailto: prefix.
type Attendee struct {
	Address    string
	CommonName string
	Role       AttendeeRole
	Status     PartStat
	RSVP       bool
}

// Alarm is a nested VALARM component.
type Alarm struct {
	Action      AlarmAction
	Trigger     Trigger
	Description string
}

// TriggerUnit is the single unit an alarm trigger is expressed in.
type TriggerUnit string

const (
	TriggerDays    TriggerUnit = "days"
	TriggerHours   TriggerUnit = "hours"
	TriggerMinutes TriggerUnit = "minutes"
	TriggerSeconds TriggerUnit = "seconds"
)

// Trigger is a relative alarm trigger; Before means the alarm fires before
// the anchor time (emitted with a leading minus).
type Trigger struct {
	Value  int
	Unit   TriggerUnit
	Before bool
}

// EventParseResult is the outcome of parsing a VEVENT document.
type EventParseResult struct {
	Events []Event
	Errors []string
}

// TodoParseResult is the outcome of parsing a VTODO document.
type TodoParseResult struct {
	Todos  []Todo
	Errors []string
}
