package ical

import "strings"

// Enumerated property values are open string unions, as in package vcard:
// canonical RFC 5545 values get constants and a Known check, anything else
// passes through verbatim.

// EventStatus is the VEVENT STATUS value.
type EventStatus string

const (
	EventTentative EventStatus = "TENTATIVE"
	EventConfirmed EventStatus = "CONFIRMED"
	EventCancelled EventStatus = "CANCELLED"
)

func (s EventStatus) Known() bool {
	switch s {
	case EventTentative, EventConfirmed, EventCancelled:
		return true
	}
	return false
}

// TodoStatus is the VTODO STATUS value.
type TodoStatus string

const (
	TodoNeedsAction TodoStatus = "NEEDS-ACTION"
	TodoInProcess   TodoStatus = "IN-PROCESS"
	TodoCompleted   TodoStatus = "COMPLETED"
	TodoCancelled   TodoStatus = "CANCELLED"
)

func (s TodoStatus) Known() bool {
	switch s {
	case TodoNeedsAction, TodoInProcess, TodoCompleted, TodoCancelled:
		return true
	}
	return false
}

// AlarmAction is the VALARM ACTION value.
type AlarmAction string

const (
	AlarmDisplay AlarmAction = "DISPLAY"
	AlarmAudio   AlarmAction = "AUDIO"
	AlarmEmail   AlarmAction = "EMAIL"
)

func (a AlarmAction) Known() bool {
	switch a {
	case AlarmDisplay, AlarmAudio, AlarmEmail:
		return true
	}
	return false
}

// AttendeeRole is the ATTENDEE ROLE parameter value.
type AttendeeRole string

const (
	RoleChair          AttendeeRole = "CHAIR"
	RoleRequired       AttendeeRole = "REQ-PARTICIPANT"
	RoleOptional       AttendeeRole = "OPT-PARTICIPANT"
	RoleNonParticipant AttendeeRole = "NON-PARTICIPANT"
)

func (r AttendeeRole) Known() bool {
	switch r {
	case RoleChair, RoleRequired, RoleOptional, RoleNonParticipant:
		return true
	}
	return false
}

// PartStat is the ATTENDEE PARTSTAT parameter value.
type PartStat string

const (
	PartStatNeedsAction PartStat = "NEEDS-ACTION"
	PartStatAccepted    PartStat = "ACCEPTED"
	PartStatDeclined    PartStat = "DECLINED"
	PartStatTentative   PartStat = "TENTATIVE"
	PartStatDelegated   PartStat = "DELEGATED"
)

func (p PartStat) Known() bool {
	switch p {
	case PartStatNeedsAction, PartStatAccepted, PartStatDeclined, PartStatTentative, PartStatDelegated:
		return true
	}
	return false
}

// Transparency is the VEVENT TRANSP value.
type Transparency string

const (
	TranspOpaque      Transparency = "OPAQUE"
	TranspTransparent Transparency = "TRANSPARENT"
)

func (t Transparency) Known() bool {
	return t == TranspOpaque || t == TranspTransparent
}

// normUpper uppercases a wire value for enum comparison.
func normUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
