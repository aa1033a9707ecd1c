package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// DurationUnit is the single time unit a Duration is expressed in.
type DurationUnit string

const (
	UnitDays    DurationUnit = "days"
	UnitHours   DurationUnit = "hours"
	UnitMinutes DurationUnit = "minutes"
	UnitSeconds DurationUnit = "seconds"
)

// Duration is a single-unit ISO-8601 duration as carried by TRIGGER and
// related properties. Before reports a leading minus sign (alarm fires
// before the anchor time).
type Duration struct {
	Value  int
	Unit   DurationUnit
	Before bool
}

// FormatDuration renders a positive single-unit duration, e.g. PT5M or P2D.
// Non-positive values and unknown units yield the empty string.
func FormatDuration(value int, unit DurationUnit) string {
	if value <= 0 {
		return ""
	}
	switch unit {
	case UnitDays:
		return fmt.Sprintf("P%dD", value)
	case UnitHours:
		return fmt.Sprintf("PT%dH", value)
	case UnitMinutes:
		return fmt.Sprintf("PT%dM", value)
	case UnitSeconds:
		return fmt.Sprintf("PT%dS", value)
	}
	return ""
}

// String renders the duration in wire form, with a leading minus when Before
// is set.
func (d Duration) String() string {
	s := FormatDuration(d.Value, d.Unit)
	if s == "" {
		return ""
	}
	if d.Before {
		return "-" + s
	}
	return s
}

// ParseDuration parses P[n]D / PT[n]H / PT[n]M / PT[n]S forms, with an
// optional leading sign. Compound durations such as P1DT2H are accepted but
// only the highest-priority component present is reported (day over hour
// over minute over second); the remainder is discarded. This mirrors the
// long-standing export behavior and is intentionally lossy.
func ParseDuration(s string) mo.Option[Duration] {
	s = strings.TrimSpace(s)
	if s == "" {
		return mo.None[Duration]()
	}
	before := false
	switch s[0] {
	case '-':
		before = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if len(s) < 3 || s[0] != 'P' {
		return mo.None[Duration]()
	}
	s = s[1:]

	datePart := s
	timePart := ""
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		datePart, timePart = s[:i], s[i+1:]
	}

	if v, ok := component(datePart, 'D'); ok {
		return mo.Some(Duration{Value: v, Unit: UnitDays, Before: before})
	}
	for _, c := range []struct {
		suffix byte
		unit   DurationUnit
	}{{'H', UnitHours}, {'M', UnitMinutes}, {'S', UnitSeconds}} {
		if v, ok := component(timePart, c.suffix); ok {
			return mo.Some(Duration{Value: v, Unit: c.unit, Before: before})
		}
	}
	return mo.None[Duration]()
}

// component extracts the integer preceding suffix in a duration segment,
// e.g. component("2H30M", 'M') == 30.
func component(s string, suffix byte) (int, bool) {
	end := strings.IndexByte(s, suffix)
	if end < 0 {
		return 0, false
	}
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	if start > 0 && s[start-1] == '-' {
		return 0, false
	}
	v, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
