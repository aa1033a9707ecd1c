package ical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripFullEvent(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	rdate := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)
	exdate := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	stamp := testClock()
	orig := Event{
		Summary:      "Weekly Meeting",
		Description:  "multi\nline, with; punctuation",
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
		Attendees: []Attendee{
			{Address: "dev@example.com", CommonName: "Dev One", Role: RoleRequired, Status: PartStatNeedsAction, RSVP: true},
			{Address: "qa@example.com", Role: AttendeeRole("X-OBSERVER")},
		},
		Alarms: []Alarm{
			{Action: AlarmDisplay, Trigger: Trigger{Value: 10, Unit: TriggerMinutes, Before: true}, Description: "soon"},
		},
		UID:       "urn:uuid:meet-1",
		Timestamp: &stamp,
		Sequence:  2,
		ProdID:    "-//libvdir//EN",
	}

	out, err := GenerateEvent(orig, WithClock(testClock))
	require.NoError(t, err)

	result := ParseEvents(out)
	require.Empty(t, result.Errors)
	require.Len(t, result.Events, 1)
	got := result.Events[0]

	require.NotNil(t, got.Start)
	assert.True(t, got.Start.Equal(start))
	require.NotNil(t, got.End)
	assert.True(t, got.End.Equal(end))
	require.NotNil(t, got.Timestamp)
	assert.True(t, got.Timestamp.Equal(stamp))
	require.Len(t, got.RDates, 1)
	assert.True(t, got.RDates[0].Equal(rdate))
	require.Len(t, got.ExDates, 1)
	assert.True(t, got.ExDates[0].Equal(exdate))
	got.Start, got.End, got.Timestamp = orig.Start, orig.End, orig.Timestamp
	got.RDates, got.ExDates = orig.RDates, orig.ExDates

	assert.Equal(t, orig, got)
}

func TestRoundTripAllDayEvent(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)
	orig := Event{Summary: "Holiday", Start: &day, End: &next, AllDay: true, UID: "urn:uuid:h"}

	out, err := GenerateEvent(orig, WithClock(testClock))
	require.NoError(t, err)
	result := ParseEvents(out)
	require.Empty(t, result.Errors)
	require.Len(t, result.Events, 1)
	got := result.Events[0]
	assert.True(t, got.AllDay)
	assert.True(t, got.Start.Equal(day))
	assert.True(t, got.End.Equal(next))
}

func TestRoundTripFullTodo(t *testing.T) {
	due := time.Date(2024, 6, 20, 17, 0, 0, 0, time.UTC)
	stamp := testClock()
	orig := Todo{
		Summary:         "File taxes",
		Description:     "gather docs; receipts, forms",
		Status:          TodoNeedsAction,
		Priority:        3,
		Due:             &due,
		PercentComplete: 25,
		Categories:      []string{"finance"},
		RRule:           "FREQ=YEARLY",
		Alarms:          []Alarm{{Action: AlarmDisplay, Trigger: Trigger{Value: 1, Unit: TriggerDays, Before: true}}},
		UID:             "urn:uuid:todo-1",
		Timestamp:       &stamp,
	}

	out, err := GenerateTodo(orig, WithClock(testClock))
	require.NoError(t, err)
	result := ParseTodos(out)
	require.Empty(t, result.Errors)
	require.Len(t, result.Todos, 1)
	got := result.Todos[0]

	require.NotNil(t, got.Due)
	assert.True(t, got.Due.Equal(due))
	require.NotNil(t, got.Timestamp)
	assert.True(t, got.Timestamp.Equal(stamp))
	got.Due, got.Timestamp = orig.Due, orig.Timestamp

	assert.Equal(t, orig, got)
}

func TestRoundTripAutoUID(t *testing.T) {
	out, err := GenerateTodo(Todo{Summary: "X"}, WithClock(testClock))
	require.NoError(t, err)
	result := ParseTodos(out)
	require.Len(t, result.Todos, 1)
	assert.Contains(t, result.Todos[0].UID, "urn:uuid:")
}

func TestRoundTripCompoundTriggerLosesLowerUnits(t *testing.T) {
	// Documented lossy behavior: the day component wins.
	result := ParseTodos(icsDoc("VTODO",
		"SUMMARY:X",
		"BEGIN:VALARM",
		"TRIGGER:-P1DT2H",
		"END:VALARM",
	))
	require.Len(t, result.Todos, 1)
	require.Len(t, result.Todos[0].Alarms, 1)
	assert.Equal(t, Trigger{Value: 1, Unit: TriggerDays, Before: true}, result.Todos[0].Alarms[0].Trigger)
}
