package recurrence

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// Engine expands and queries recurrence. It holds only configuration and is
// safe for concurrent use.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with default expansion bounds.
func NewEngine() *Engine {
	return &Engine{opts: DefaultOptions}
}

// NewEngineWithOptions creates an engine with custom bounds.
func NewEngineWithOptions(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults()}
}

// Validate reports whether rule is a well-formed RRULE value. The empty
// string is valid (no recurrence).
func Validate(rule string) error {
	if rule == "" {
		return nil
	}
	if _, err := rrule.StrToROption(rule); err != nil {
		return fmt.Errorf("invalid RRULE %q: %w", rule, err)
	}
	return nil
}

// Expand returns every occurrence of the record overlapping
// [rangeStart, rangeEnd], in chronological order: the master occurrence,
// RRULE expansions and RDATEs, minus ExDates, bounded by the engine options.
func (e *Engine) Expand(master Master, info Info, rangeStart, rangeEnd time.Time) ([]Occurrence, error) {
	duration := master.Duration()
	// Dedupe on the instant: the master start usually shows up again in the
	// RRULE expansion.
	starts := map[int64]time.Time{}

	add := func(start time.Time) {
		if isExcluded(start, info.ExDates) {
			return
		}
		end := start.Add(duration)
		if start.After(rangeEnd) || end.Before(rangeStart) {
			return
		}
		starts[start.UnixNano()] = start
	}

	add(master.Start)
	for _, rdate := range info.RDates {
		add(rdate)
	}

	if info.RRule != "" {
		expanded, err := e.expandRule(master.Start, info.RRule, rangeStart, rangeEnd)
		if err != nil {
			return nil, err
		}
		for _, start := range expanded {
			add(start)
		}
	}

	occurrences := make([]Occurrence, 0, len(starts))
	for _, start := range starts {
		occurrences = append(occurrences, Occurrence{Start: start, End: start.Add(duration)})
	}
	sort.Slice(occurrences, func(i, j int) bool {
		return occurrences[i].Start.Before(occurrences[j].Start)
	})
	if len(occurrences) > e.opts.MaxOccurrences {
		occurrences = occurrences[:e.opts.MaxOccurrences]
	}
	return occurrences, nil
}

// HasOccurrenceInRange reports whether any occurrence overlaps the range,
// without materializing the full expansion. The master and RDATEs are
// checked first as a fast path.
func (e *Engine) HasOccurrenceInRange(master Master, info Info, rangeStart, rangeEnd time.Time) (bool, error) {
	duration := master.Duration()
	overlaps := func(start time.Time) bool {
		return !start.After(rangeEnd) && !start.Add(duration).Before(rangeStart)
	}

	if overlaps(master.Start) && !isExcluded(master.Start, info.ExDates) {
		return true, nil
	}
	for _, rdate := range info.RDates {
		if overlaps(rdate) && !isExcluded(rdate, info.ExDates) {
			return true, nil
		}
	}
	if info.RRule == "" {
		return false, nil
	}

	expanded, err := e.expandRule(master.Start, info.RRule, rangeStart, rangeEnd)
	if err != nil {
		return false, err
	}
	for _, start := range expanded {
		if !isExcluded(start, info.ExDates) {
			return true, nil
		}
	}
	return false, nil
}

// expandRule evaluates the RRULE between the clamped range bounds.
// rrule-go's Between is inclusive of start and, with inc set, of end.
func (e *Engine) expandRule(masterStart time.Time, rule string, rangeStart, rangeEnd time.Time) ([]time.Time, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid RRULE %q: %w", rule, err)
	}
	opt.Dtstart = masterStart.UTC()
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("invalid RRULE %q: %w", rule, err)
	}

	if limit := rangeStart.Add(e.opts.MaxSpan); rangeEnd.After(limit) {
		rangeEnd = limit
	}
	occurrences := r.Between(rangeStart, rangeEnd, true)
	if len(occurrences) > e.opts.MaxOccurrences {
		occurrences = occurrences[:e.opts.MaxOccurrences]
	}
	return occurrences, nil
}

// isExcluded checks the EXDATE list, matching either the exact instant or,
// for date-only exclusions at midnight UTC, any occurrence on that day.
func isExcluded(t time.Time, exdates []time.Time) bool {
	for _, ex := range exdates {
		if t.Equal(ex) {
			return true
		}
		if ex.Hour() == 0 && ex.Minute() == 0 && ex.Second() == 0 && ex.Location() == time.UTC {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			if day.Equal(ex) {
				return true
			}
		}
	}
	return false
}
