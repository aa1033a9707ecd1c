package contentline

import (
	"fmt"
	"strings"

	"github.com/cyp0633/libvdir/internal/text"
)

// Record is one BEGIN/END-delimited block of content lines. Lines belonging
// to nested components (VALARM inside a VEVENT) are kept in order, with the
// nested BEGIN/END markers included, so format parsers can group them.
type Record struct {
	Kind  string
	Lines []Line
}

// scanner states. SCANNING is both initial and terminal; malformed input
// simply fails to transition and is reported.
type scanState int

const (
	stateScanning scanState = iota
	stateInRecord
)

// Scan unfolds doc and splits it into records of the given kind (e.g.
// "VCARD", "VEVENT"). Content outside a matching BEGIN/END pair is skipped;
// a BEGIN with no END discards that record only. The returned error strings
// describe structural and tokenization problems in document order.
func Scan(doc, kind string) ([]Record, []string) {
	kind = strings.ToUpper(kind)
	var (
		records []Record
		errs    []string
		current Record
		state   = stateScanning
		depth   = 0
	)

	for _, raw := range splitLines(text.Unfold(doc)) {
		if raw == "" {
			continue
		}
		line, err := ParseLine(raw)
		if err != nil {
			if state == stateInRecord {
				errs = append(errs, fmt.Sprintf("%s %d: %v", strings.ToLower(kind), len(records), err))
			}
			continue
		}

		switch state {
		case stateScanning:
			switch {
			case line.Name == "BEGIN" && strings.EqualFold(line.Value, kind):
				state = stateInRecord
				depth = 0
				current = Record{Kind: kind}
			case line.Name == "END" && strings.EqualFold(line.Value, kind):
				errs = append(errs, fmt.Sprintf("unmatched END:%s", kind))
			default:
				// Wrapper lines (BEGIN:VCALENDAR, calendar-level VERSION,
				// other component kinds) are not ours to parse.
			}
		case stateInRecord:
			switch {
			case line.Name == "BEGIN" && strings.EqualFold(line.Value, kind):
				errs = append(errs, fmt.Sprintf("%s %d: BEGIN:%s before END:%s, record discarded", strings.ToLower(kind), len(records), kind, kind))
				current = Record{Kind: kind}
				depth = 0
			case line.Name == "BEGIN":
				depth++
				current.Lines = append(current.Lines, line)
			case line.Name == "END" && strings.EqualFold(line.Value, kind) && depth == 0:
				records = append(records, current)
				state = stateScanning
			case line.Name == "END":
				if depth > 0 {
					depth--
				}
				current.Lines = append(current.Lines, line)
			default:
				current.Lines = append(current.Lines, line)
			}
		}
	}

	if state == stateInRecord {
		errs = append(errs, fmt.Sprintf("%s %d: BEGIN:%s with no END:%s, record discarded", strings.ToLower(kind), len(records), kind, kind))
	}
	return records, errs
}

// splitLines splits on CRLF or bare LF and drops trailing CR remnants.
func splitLines(doc string) []string {
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}
