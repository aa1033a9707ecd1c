package ical

import (
	"strings"
	"testing"
	"time"

	"github.com/cyp0633/libvdir/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = func() time.Time {
	return time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
}

func fixedID(id string) Option {
	return WithIDGenerator(idgen.Func(func() string { return id }))
}

func TestGenerateEventMinimal(t *testing.T) {
	out, err := GenerateEvent(Event{Summary: "Standup"},
		WithClock(testClock), fixedID("0000-1111"))
	require.NoError(t, err)

	want := strings.Join([]string{
		"BEGIN:VEVENT",
		"VERSION:2.0",
		"SUMMARY:Standup",
		"UID:urn:uuid:0000-1111",
		"DTSTAMP:20240603T093000Z",
		"END:VEVENT",
	}, "\r\n") + "\r\n"
	assert.Equal(t, want, out)
}

func TestGenerateEventFullSurface(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	rdate := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)
	exdate := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	e := Event{
		Summary:      "Weekly Meeting",
		Description:  "Agenda:\n- progress, blockers; risks",
		Location:     "Room 4",
		Start:        &start,
		End:          &end,
		Status:       EventConfirmed,
		Transparency: TranspOpaque,
		Categories:   []string{"work", "a,b"},
		URL:          "https://example.com/agenda",
		Geo:          &Geo{Latitude: 48.8566, Longitude: 2.3522},
		RRule:        "FREQ=WEEKLY;BYDAY=MO",
		RDates:       []time.Time{rdate},
		ExDates:      []time.Time{exdate},
		Organizer:    "manager@example.com",
		Attendees: []Attendee{{
			Address: "dev@example.com", CommonName: "Dev One",
			Role: RoleRequired, Status: PartStatNeedsAction, RSVP: true,
		}},
		Alarms:   []Alarm{{Action: AlarmDisplay, Trigger: Trigger{Value: 10, Unit: TriggerMinutes, Before: true}, Description: "starting soon"}},
		UID:      "urn:uuid:meet-1",
		Sequence: 2,
	}

	out, err := GenerateEvent(e, WithClock(testClock), WithProdID("-//libvdir//EN"))
	require.NoError(t, err)

	assert.Contains(t, out, `DESCRIPTION:Agenda:\n- progress\, blockers\; risks`+"\r\n")
	assert.Contains(t, out, "DTSTART:20240610T090000Z\r\n")
	assert.Contains(t, out, "DTEND:20240610T100000Z\r\n")
	assert.Contains(t, out, "STATUS:CONFIRMED\r\n")
	assert.Contains(t, out, "TRANSP:OPAQUE\r\n")
	assert.Contains(t, out, `CATEGORIES:work,a\,b`+"\r\n")
	assert.Contains(t, out, "GEO:48.856600;2.352200\r\n")
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY;BYDAY=MO\r\n")
	assert.Contains(t, out, "RDATE:20240612T090000Z\r\n")
	assert.Contains(t, out, "EXDATE:20240701T090000Z\r\n")
	assert.Contains(t, out, "ORGANIZER:mailto:manager@example.com\r\n")
	// 95 characters long, folded at 75 with a space-prefixed continuation.
	assert.Contains(t, out, "ATTENDEE;CN=Dev One;ROLE=REQ-PARTICIPANT;PARTSTAT=NEEDS-ACTION;RSVP=TRUE:ma\r\n ilto:dev@example.com\r\n")
	assert.Contains(t, out, "BEGIN:VALARM\r\nACTION:DISPLAY\r\nTRIGGER:-PT10M\r\nDESCRIPTION:starting soon\r\nEND:VALARM\r\n")
	assert.Contains(t, out, "SEQUENCE:2\r\n")
	assert.Contains(t, out, "PRODID:-//libvdir//EN\r\n")
}

func TestGenerateEventAllDay(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)
	out, err := GenerateEvent(Event{Summary: "Holiday", Start: &day, End: &next, AllDay: true},
		WithClock(testClock), fixedID("id"))
	require.NoError(t, err)
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240610\r\n")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240611\r\n")
}

func TestGenerateEventAllDayDateLists(t *testing.T) {
	// RDATE/EXDATE follow DTSTART's value type so they match occurrences.
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)
	out, err := GenerateEvent(Event{
		Summary: "Holiday",
		Start:   &day, End: &next, AllDay: true,
		RRule:   "FREQ=YEARLY",
		RDates:  []time.Time{time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)},
		ExDates: []time.Time{time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
	}, WithClock(testClock), fixedID("id"))
	require.NoError(t, err)
	assert.Contains(t, out, "RDATE;VALUE=DATE:20241224\r\n")
	assert.Contains(t, out, "EXDATE;VALUE=DATE:20250610\r\n")
	assert.NotContains(t, out, "EXDATE:2025")
}

func TestGenerateEventOmitsMalformedRRule(t *testing.T) {
	out, err := GenerateEvent(Event{Summary: "X", RRule: "FREQ=NEVERLY"},
		WithClock(testClock), fixedID("id"))
	require.NoError(t, err)
	assert.NotContains(t, out, "RRULE")
}

func TestGenerateTodoMinimal(t *testing.T) {
	out, err := GenerateTodo(Todo{Summary: "Water plants"},
		WithClock(testClock), fixedID("0000-1111"))
	require.NoError(t, err)

	want := strings.Join([]string{
		"BEGIN:VTODO",
		"VERSION:2.0",
		"SUMMARY:Water plants",
		"UID:urn:uuid:0000-1111",
		"DTSTAMP:20240603T093000Z",
		"END:VTODO",
	}, "\r\n") + "\r\n"
	assert.Equal(t, want, out)
}

func TestGenerateTodoFullSurface(t *testing.T) {
	due := time.Date(2024, 6, 20, 17, 0, 0, 0, time.UTC)
	completed := time.Date(2024, 6, 19, 12, 0, 0, 0, time.UTC)
	td := Todo{
		Summary:         "File taxes",
		Description:     "gather docs first",
		Status:          TodoInProcess,
		Priority:        1,
		Due:             &due,
		Completed:       &completed,
		PercentComplete: 60,
		Categories:      []string{"finance"},
		RRule:           "FREQ=YEARLY",
		Alarms:          []Alarm{{Trigger: Trigger{Value: 1, Unit: TriggerDays, Before: true}}},
		UID:             "urn:uuid:todo-1",
	}
	out, err := GenerateTodo(td, WithClock(testClock))
	require.NoError(t, err)

	assert.Contains(t, out, "STATUS:IN-PROCESS\r\n")
	assert.Contains(t, out, "PRIORITY:1\r\n")
	assert.Contains(t, out, "DUE:20240620T170000Z\r\n")
	assert.Contains(t, out, "COMPLETED:20240619T120000Z\r\n")
	assert.Contains(t, out, "PERCENT-COMPLETE:60\r\n")
	assert.Contains(t, out, "RRULE:FREQ=YEARLY\r\n")
	// Alarm action defaults to DISPLAY.
	assert.Contains(t, out, "BEGIN:VALARM\r\nACTION:DISPLAY\r\nTRIGGER:-P1D\r\nEND:VALARM\r\n")
}

func TestGenerateMissingSummary(t *testing.T) {
	_, err := GenerateEvent(Event{Location: "nowhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUMMARY")

	_, err = GenerateTodo(Todo{})
	require.Error(t, err)
}

func TestGenerateSkipsAndReports(t *testing.T) {
	out, err := GenerateTodos([]Todo{
		{Summary: "Good"},
		{},
	}, WithClock(testClock), fixedID("id"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "todo 1")
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VTODO"))
}

func TestGenerateDocumentShape(t *testing.T) {
	events := []Event{{Summary: "One"}, {Summary: "Two"}, {Summary: "Three"}}
	out, err := GenerateEvents(events, WithClock(testClock), fixedID("id"))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, 3, strings.Count(out, "END:VEVENT"))
	assert.Less(t, strings.Index(out, "SUMMARY:One"), strings.Index(out, "SUMMARY:Three"))

	empty, err := GenerateEvents(nil)
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestGenerateFoldsLongLines(t *testing.T) {
	e := Event{Summary: "X", Description: strings.Repeat("B", 200)}
	out, err := GenerateEvent(e, WithClock(testClock), fixedID("id"))
	require.NoError(t, err)
	for _, physical := range strings.Split(out, "\r\n") {
		assert.LessOrEqual(t, len(physical), 75)
	}
}

func TestGenerateSkipsUnencodableAlarm(t *testing.T) {
	e := Event{Summary: "X", Alarms: []Alarm{{Trigger: Trigger{Value: 0, Unit: TriggerMinutes}}}}
	out, err := GenerateEvent(e, WithClock(testClock), fixedID("id"))
	require.NoError(t, err)
	assert.NotContains(t, out, "VALARM")
}
