package ical

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cyp0633/libvdir/idgen"
	"github.com/cyp0633/libvdir/internal/contentline"
	"github.com/cyp0633/libvdir/internal/text"
	"github.com/teambition/rrule-go"
)

// GenerateEvents renders events as bare VEVENT components in input order.
// Records with no Summary are skipped and reported through the joined error;
// the returned text still contains every record that generated cleanly.
func GenerateEvents(events []Event, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	var b strings.Builder
	var errs []error
	for i, e := range events {
		out, err := generateEvent(e, cfg)
		if err != nil {
			errs = append(errs, fmt.Errorf("event %d: %w", i, err))
			continue
		}
		b.WriteString(out)
	}
	return b.String(), errors.Join(errs...)
}

// GenerateEvent renders a single VEVENT component.
func GenerateEvent(e Event, opts ...Option) (string, error) {
	return generateEvent(e, newConfig(opts))
}

// GenerateTodos renders todos as bare VTODO components in input order, with
// the same skip-and-report contract as GenerateEvents.
func GenerateTodos(todos []Todo, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	var b strings.Builder
	var errs []error
	for i, td := range todos {
		out, err := generateTodo(td, cfg)
		if err != nil {
			errs = append(errs, fmt.Errorf("todo %d: %w", i, err))
			continue
		}
		b.WriteString(out)
	}
	return b.String(), errors.Join(errs...)
}

// GenerateTodo renders a single VTODO component.
func GenerateTodo(t Todo, opts ...Option) (string, error) {
	return generateTodo(t, newConfig(opts))
}

func generateEvent(e Event, cfg config) (string, error) {
	if e.Summary == "" {
		return "", errors.New("missing SUMMARY")
	}

	var w contentline.Writer
	w.Line("BEGIN", nil, "VEVENT")
	w.Line("VERSION", nil, "2.0")
	w.Text("SUMMARY", e.Summary)
	w.Text("DESCRIPTION", e.Description)
	w.Text("LOCATION", e.Location)
	writeDateTime(&w, "DTSTART", e.Start, e.AllDay)
	writeDateTime(&w, "DTEND", e.End, e.AllDay)
	w.Text("STATUS", string(e.Status))
	w.Text("TRANSP", string(e.Transparency))
	writeCategories(&w, e.Categories)
	if e.URL != "" {
		w.Line("URL", nil, e.URL)
	}
	if e.Geo != nil {
		w.Line("GEO", nil, text.FormatGeoPair(text.Geo{Latitude: e.Geo.Latitude, Longitude: e.Geo.Longitude}))
	}
	writeRRule(&w, e.RRule, cfg)
	writeDates(&w, "RDATE", e.RDates, e.AllDay)
	writeDates(&w, "EXDATE", e.ExDates, e.AllDay)
	if e.Organizer != "" {
		w.Line("ORGANIZER", nil, userAddress(e.Organizer))
	}
	for _, a := range e.Attendees {
		writeAttendee(&w, a)
	}
	for _, a := range e.Alarms {
		writeAlarm(&w, a)
	}
	writeStamp(&w, e.UID, cfg)
	if e.Sequence > 0 {
		w.Line("SEQUENCE", nil, strconv.Itoa(e.Sequence))
	}
	writeProdID(&w, e.ProdID, cfg)
	w.Line("END", nil, "VEVENT")
	return w.String(), nil
}

func generateTodo(t Todo, cfg config) (string, error) {
	if t.Summary == "" {
		return "", errors.New("missing SUMMARY")
	}

	var w contentline.Writer
	w.Line("BEGIN", nil, "VTODO")
	w.Line("VERSION", nil, "2.0")
	w.Text("SUMMARY", t.Summary)
	w.Text("DESCRIPTION", t.Description)
	w.Text("STATUS", string(t.Status))
	if t.Priority >= 1 && t.Priority <= 9 {
		w.Line("PRIORITY", nil, strconv.Itoa(t.Priority))
	}
	writeDateTime(&w, "DTSTART", t.Start, false)
	writeDateTime(&w, "DUE", t.Due, false)
	writeDateTime(&w, "COMPLETED", t.Completed, false)
	if t.PercentComplete >= 1 && t.PercentComplete <= 100 {
		w.Line("PERCENT-COMPLETE", nil, strconv.Itoa(t.PercentComplete))
	}
	writeCategories(&w, t.Categories)
	writeRRule(&w, t.RRule, cfg)
	for _, a := range t.Alarms {
		writeAlarm(&w, a)
	}
	writeStamp(&w, t.UID, cfg)
	writeProdID(&w, t.ProdID, cfg)
	w.Line("END", nil, "VTODO")
	return w.String(), nil
}

func writeProdID(w *contentline.Writer, prodID string, cfg config) {
	if cfg.prodID != "" {
		prodID = cfg.prodID
	}
	w.Text("PRODID", prodID)
}

func writeDateTime(w *contentline.Writer, name string, t *time.Time, allDay bool) {
	if t == nil {
		return
	}
	if allDay {
		w.Line(name, []contentline.Param{{Name: "VALUE", Value: "DATE"}}, text.FormatICalDate(*t))
		return
	}
	w.Line(name, nil, text.FormatICalDateTime(*t))
}

// writeDates emits one RDATE/EXDATE line per instant, in the same value type
// as the event's DTSTART so exclusions and additions match occurrences.
func writeDates(w *contentline.Writer, name string, dates []time.Time, allDay bool) {
	for _, d := range dates {
		if allDay {
			w.Line(name, []contentline.Param{{Name: "VALUE", Value: "DATE"}}, text.FormatICalDate(d))
			continue
		}
		w.Line(name, nil, text.FormatICalDateTime(d))
	}
}

func writeCategories(w *contentline.Writer, categories []string) {
	if len(categories) == 0 {
		return
	}
	escaped := make([]string, len(categories))
	for i, c := range categories {
		escaped[i] = text.Escape(c)
	}
	w.Line("CATEGORIES", nil, strings.Join(escaped, ","))
}

// writeRRule validates the rule before emitting; a malformed rule is
// omitted rather than corrupting the output.
func writeRRule(w *contentline.Writer, rule string, cfg config) {
	if rule == "" {
		return
	}
	if _, err := rrule.StrToROption(rule); err != nil {
		cfg.logger.Debug("omitting malformed RRULE", "rrule", rule, "error", err)
		return
	}
	w.Line("RRULE", nil, rule)
}

func writeAttendee(w *contentline.Writer, a Attendee) {
	if a.Address == "" {
		return
	}
	var params []contentline.Param
	if a.CommonName != "" {
		params = append(params, contentline.Param{Name: "CN", Value: a.CommonName})
	}
	if a.Role != "" {
		params = append(params, contentline.Param{Name: "ROLE", Value: string(a.Role)})
	}
	if a.Status != "" {
		params = append(params, contentline.Param{Name: "PARTSTAT", Value: string(a.Status)})
	}
	if a.RSVP {
		params = append(params, contentline.Param{Name: "RSVP", Value: "TRUE"})
	}
	w.Line("ATTENDEE", params, userAddress(a.Address))
}

func writeAlarm(w *contentline.Writer, a Alarm) {
	trigger := text.Duration{Value: a.Trigger.Value, Unit: text.DurationUnit(a.Trigger.Unit), Before: a.Trigger.Before}.String()
	if trigger == "" {
		// A trigger the codec cannot encode makes the whole alarm
		// meaningless; skip the block.
		return
	}
	action := a.Action
	if action == "" {
		action = AlarmDisplay
	}
	w.Line("BEGIN", nil, "VALARM")
	w.Text("ACTION", string(action))
	w.Line("TRIGGER", nil, trigger)
	w.Text("DESCRIPTION", a.Description)
	w.Line("END", nil, "VALARM")
}

// writeStamp emits UID (generated when absent) and a fresh DTSTAMP; an
// input Timestamp is wire metadata, always restamped on export.
func writeStamp(w *contentline.Writer, uid string, cfg config) {
	if uid == "" {
		uid = idgen.URN(cfg.ids.NewID())
	}
	w.Line("UID", nil, uid)
	w.Line("DTSTAMP", nil, text.FormatICalDateTime(cfg.now()))
}

// userAddress prefixes a bare email with mailto: so the emitted value is a
// proper calendar user address URI.
func userAddress(addr string) string {
	if strings.Contains(addr, "@") && !strings.Contains(addr, ":") {
		return "mailto:" + addr
	}
	return addr
}
