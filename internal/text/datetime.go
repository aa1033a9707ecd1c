package text

import (
	"time"

	"github.com/samber/mo"
)

// Wire layouts. vCard carries extended forms, iCalendar the basic ones.
const (
	LayoutDate          = "2006-01-02"
	LayoutTimestamp     = "2006-01-02T15:04:05Z"
	LayoutICalDate      = "20060102"
	LayoutICalDateTime  = "20060102T150405Z"
	layoutICalLocalTime = "20060102T150405"
)

// FormatDate renders a calendar date in the extended form used by vCard
// BDAY/ANNIVERSARY.
func FormatDate(t time.Time) string {
	return t.Format(LayoutDate)
}

// FormatTimestamp renders a UTC timestamp in the canonical form used by REV.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(LayoutTimestamp)
}

// FormatICalDateTime renders a UTC date-time in the basic form used by
// DTSTART/DTEND/DUE/DTSTAMP.
func FormatICalDateTime(t time.Time) string {
	return t.UTC().Format(LayoutICalDateTime)
}

// FormatICalDate renders a date-only value (VALUE=DATE properties).
func FormatICalDate(t time.Time) string {
	return t.Format(LayoutICalDate)
}

var dateTimeLayouts = []string{
	LayoutTimestamp,
	"2006-01-02T15:04:05",
	LayoutICalDateTime,
	layoutICalLocalTime,
	LayoutDate,
	LayoutICalDate,
}

// ParseDateTime accepts any of the wire date/date-time forms, basic or
// extended, with or without a trailing Z. Unrecognized input yields None.
func ParseDateTime(s string) mo.Option[time.Time] {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return mo.Some(t)
		}
	}
	return mo.None[time.Time]()
}

// ParseDate accepts date-only values (extended or basic form).
func ParseDate(s string) mo.Option[time.Time] {
	for _, layout := range []string{LayoutDate, LayoutICalDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return mo.Some(t)
		}
	}
	return mo.None[time.Time]()
}
