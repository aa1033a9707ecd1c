package ical

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cyp0633/libvdir/internal/contentline"
	"github.com/cyp0633/libvdir/internal/text"
	"github.com/teambition/rrule-go"
)

// ParseEvents reads VEVENT components from an iCalendar document,
// best-effort: structural problems drop only the affected component, an
// unparsable field drops only that field, and unknown properties are
// skipped. VCALENDAR wrapper lines are tolerated and PRODID is recovered
// from the component when present.
func ParseEvents(content string, opts ...Option) EventParseResult {
	cfg := newConfig(opts)
	records, errs := contentline.Scan(content, "VEVENT")

	result := EventParseResult{Errors: errs}
	for i, rec := range records {
		e, recErrs := parseEvent(rec, i, cfg)
		result.Errors = append(result.Errors, recErrs...)
		if e != nil {
			result.Events = append(result.Events, *e)
		}
	}
	return result
}

// ParseTodos reads VTODO components with the same contract as ParseEvents.
func ParseTodos(content string, opts ...Option) TodoParseResult {
	cfg := newConfig(opts)
	records, errs := contentline.Scan(content, "VTODO")

	result := TodoParseResult{Errors: errs}
	for i, rec := range records {
		td, recErrs := parseTodo(rec, i, cfg)
		result.Errors = append(result.Errors, recErrs...)
		if td != nil {
			result.Todos = append(result.Todos, *td)
		}
	}
	return result
}

func parseEvent(rec contentline.Record, index int, cfg config) (*Event, []string) {
	var e Event
	var errs []string
	fieldErr := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("event %d: ", index)+fmt.Sprintf(format, args...))
	}

	body, alarms, alarmErrs := splitAlarms(rec.Lines, "event", index)
	errs = append(errs, alarmErrs...)
	e.Alarms = alarms

	for _, line := range body {
		value := text.Unescape(line.Value)
		switch line.Name {
		case "VERSION", "CALSCALE", "METHOD":
			// Stream-level metadata, nothing to keep.
		case "SUMMARY":
			e.Summary = value
		case "DESCRIPTION":
			e.Description = value
		case "LOCATION":
			e.Location = value
		case "DTSTART":
			if t, ok := text.ParseDateTime(value).Get(); ok {
				e.Start = &t
				if line.HasParam("VALUE", "DATE") {
					e.AllDay = true
				}
			} else {
				fieldErr("invalid DTSTART %q", value)
			}
		case "DTEND":
			if t, ok := text.ParseDateTime(value).Get(); ok {
				e.End = &t
			} else {
				fieldErr("invalid DTEND %q", value)
			}
		case "STATUS":
			e.Status = EventStatus(normUpper(value))
		case "TRANSP":
			e.Transparency = Transparency(normUpper(value))
		case "CATEGORIES":
			e.Categories = append(e.Categories, parseCategories(line.Value)...)
		case "URL":
			e.URL = line.Value
		case "GEO":
			if g, ok := text.ParseGeo(value).Get(); ok {
				e.Geo = &Geo{Latitude: g.Latitude, Longitude: g.Longitude}
			} else {
				fieldErr("invalid GEO %q", value)
			}
		case "RRULE":
			if _, err := rrule.StrToROption(line.Value); err != nil {
				fieldErr("invalid RRULE %q: %v", line.Value, err)
				continue
			}
			e.RRule = line.Value
		case "RDATE":
			for _, part := range strings.Split(line.Value, ",") {
				if t, ok := text.ParseDateTime(part).Get(); ok {
					e.RDates = append(e.RDates, t)
				} else {
					fieldErr("invalid RDATE %q", part)
				}
			}
		case "EXDATE":
			for _, part := range strings.Split(line.Value, ",") {
				if t, ok := text.ParseDateTime(part).Get(); ok {
					e.ExDates = append(e.ExDates, t)
				} else {
					fieldErr("invalid EXDATE %q", part)
				}
			}
		case "ORGANIZER":
			e.Organizer = stripMailto(line.Value)
		case "ATTENDEE":
			e.Attendees = append(e.Attendees, Attendee{
				Address:    stripMailto(line.Value),
				CommonName: line.Param("CN"),
				Role:       AttendeeRole(normUpper(line.Param("ROLE"))),
				Status:     PartStat(normUpper(line.Param("PARTSTAT"))),
				RSVP:       strings.EqualFold(line.Param("RSVP"), "TRUE"),
			})
		case "UID":
			e.UID = line.Value
		case "DTSTAMP", "LAST-MODIFIED":
			if t, ok := text.ParseDateTime(value).Get(); ok {
				if e.Timestamp == nil || line.Name == "DTSTAMP" {
					e.Timestamp = &t
				}
			} else {
				fieldErr("invalid %s %q", line.Name, value)
			}
		case "SEQUENCE":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				e.Sequence = n
			} else {
				fieldErr("invalid SEQUENCE %q", value)
			}
		case "PRODID":
			e.ProdID = value
		default:
			cfg.logger.Debug("skipping unknown VEVENT property", "name", line.Name)
		}
	}

	if e.Summary == "" {
		errs = append(errs, fmt.Sprintf("event %d: missing SUMMARY, record dropped", index))
		return nil, errs
	}
	return &e, errs
}

func parseTodo(rec contentline.Record, index int, cfg config) (*Todo, []string) {
	var td Todo
	var errs []string
	fieldErr := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf("todo %d: ", index)+fmt.Sprintf(format, args...))
	}

	body, alarms, alarmErrs := splitAlarms(rec.Lines, "todo", index)
	errs = append(errs, alarmErrs...)
	td.Alarms = alarms

	for _, line := range body {
		value := text.Unescape(line.Value)
		switch line.Name {
		case "VERSION", "CALSCALE", "METHOD":
		case "SUMMARY":
			td.Summary = value
		case "DESCRIPTION":
			td.Description = value
		case "STATUS":
			td.Status = TodoStatus(normUpper(value))
		case "PRIORITY":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 9 {
				td.Priority = n
			} else {
				fieldErr("invalid PRIORITY %q", value)
			}
		case "DTSTART":
			if t, ok := text.ParseDateTime(value).Get(); ok {
				td.Start = &t
			} else {
				fieldErr("invalid DTSTART %q", value)
			}
		case "DUE":
			if t, ok := text.ParseDateTime(value).Get(); ok {
				td.Due = &t
			} else {
				fieldErr("invalid DUE %q", value)
			}
		case "COMPLETED":
			if t, ok := text.ParseDateTime(value).Get(); ok {
				td.Completed = &t
			} else {
				fieldErr("invalid COMPLETED %q", value)
			}
		case "PERCENT-COMPLETE":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 100 {
				td.PercentComplete = n
			} else {
				fieldErr("invalid PERCENT-COMPLETE %q", value)
			}
		case "CATEGORIES":
			td.Categories = append(td.Categories, parseCategories(line.Value)...)
		case "RRULE":
			if _, err := rrule.StrToROption(line.Value); err != nil {
				fieldErr("invalid RRULE %q: %v", line.Value, err)
				continue
			}
			td.RRule = line.Value
		case "UID":
			td.UID = line.Value
		case "DTSTAMP", "LAST-MODIFIED":
			if t, ok := text.ParseDateTime(value).Get(); ok {
				if td.Timestamp == nil || line.Name == "DTSTAMP" {
					td.Timestamp = &t
				}
			} else {
				fieldErr("invalid %s %q", line.Name, value)
			}
		case "PRODID":
			td.ProdID = value
		default:
			cfg.logger.Debug("skipping unknown VTODO property", "name", line.Name)
		}
	}

	if td.Summary == "" {
		errs = append(errs, fmt.Sprintf("todo %d: missing SUMMARY, record dropped", index))
		return nil, errs
	}
	return &td, errs
}

// splitAlarms separates nested VALARM blocks from the component body. A
// VALARM with an unusable TRIGGER is dropped with an error; other alarm
// properties are best-effort like everything else.
func splitAlarms(lines []contentline.Line, kind string, index int) ([]contentline.Line, []Alarm, []string) {
	var body []contentline.Line
	var alarms []Alarm
	var errs []string

	inAlarm := false
	var current Alarm
	triggerOK := false
	for _, line := range lines {
		switch {
		case line.Name == "BEGIN" && strings.EqualFold(line.Value, "VALARM"):
			inAlarm = true
			current = Alarm{}
			triggerOK = false
		case line.Name == "END" && strings.EqualFold(line.Value, "VALARM"):
			inAlarm = false
			if !triggerOK {
				errs = append(errs, fmt.Sprintf("%s %d: VALARM with missing or invalid TRIGGER, alarm dropped", kind, index))
				continue
			}
			if current.Action == "" {
				current.Action = AlarmDisplay
			}
			alarms = append(alarms, current)
		case inAlarm:
			switch line.Name {
			case "ACTION":
				current.Action = AlarmAction(normUpper(line.Value))
			case "TRIGGER":
				if d, ok := text.ParseDuration(line.Value).Get(); ok {
					current.Trigger = Trigger{Value: d.Value, Unit: TriggerUnit(d.Unit), Before: d.Before}
					triggerOK = true
				}
			case "DESCRIPTION":
				current.Description = text.Unescape(line.Value)
			}
		default:
			body = append(body, line)
		}
	}
	return body, alarms, errs
}

// parseCategories splits a CATEGORIES value on unescaped commas.
func parseCategories(raw string) []string {
	var out []string
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			b.WriteByte(raw[i])
			if i+1 < len(raw) {
				i++
				b.WriteByte(raw[i])
			}
		case ',':
			out = append(out, text.Unescape(b.String()))
			b.Reset()
		default:
			b.WriteByte(raw[i])
		}
	}
	if b.Len() > 0 {
		out = append(out, text.Unescape(b.String()))
	}
	return out
}

func stripMailto(v string) string {
	if len(v) >= 7 && strings.EqualFold(v[:7], "mailto:") {
		return v[7:]
	}
	return v
}
