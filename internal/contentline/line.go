// Package contentline implements the wire-level property grammar shared by
// vCard and iCalendar: tokenizing a logical content line into name,
// parameters and raw value, encoding the reverse direction, and splitting a
// whole document into BEGIN/END-delimited records.
package contentline

import (
	"fmt"
	"strings"
)

// Line is one tokenized content line: NAME[;PARAM=VALUE...]:VALUE.
// Value is the raw (still escaped) value; callers unescape before any
// type-specific parsing.
type Line struct {
	// Group is the optional "item1."-style group prefix, without the dot.
	Group  string
	Name   string
	Params map[string][]string
	Value  string
}

// Param returns the first value of the named parameter, or "" when absent.
// Parameter names are matched case-insensitively (they are stored uppercased).
func (l Line) Param(name string) string {
	vs := l.Params[strings.ToUpper(name)]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// HasParam reports whether the named parameter carries the given value,
// compared case-insensitively.
func (l Line) HasParam(name, value string) bool {
	for _, v := range l.Params[strings.ToUpper(name)] {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// ParseLine tokenizes a single unfolded content line. The name and parameter
// names are uppercased; parameter values keep their case with surrounding
// double quotes removed. Comma-separated parameter values are split.
func ParseLine(raw string) (Line, error) {
	nameEnd := -1
	valueStart := -1
	inQuotes := false
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '"':
			inQuotes = !inQuotes
		case ';':
			if !inQuotes && nameEnd < 0 {
				nameEnd = i
			}
		case ':':
			if !inQuotes {
				if nameEnd < 0 {
					nameEnd = i
				}
				valueStart = i + 1
			}
		}
		if valueStart >= 0 {
			break
		}
	}
	if valueStart < 0 {
		return Line{}, fmt.Errorf("no value separator in line %q", raw)
	}

	line := Line{
		Name:   strings.ToUpper(strings.TrimSpace(raw[:nameEnd])),
		Params: map[string][]string{},
		Value:  raw[valueStart:],
	}
	if line.Name == "" {
		return Line{}, fmt.Errorf("empty property name in line %q", raw)
	}
	if dot := strings.IndexByte(line.Name, '.'); dot > 0 {
		line.Group = line.Name[:dot]
		line.Name = line.Name[dot+1:]
	}

	for _, param := range splitUnquoted(raw[nameEnd:valueStart-1], ';') {
		if param == "" {
			continue
		}
		name, value, found := strings.Cut(param, "=")
		if !found {
			// vCard 2.1 style bare parameter, treat as TYPE.
			name, value = "TYPE", name
		}
		name = strings.ToUpper(strings.TrimSpace(name))
		for _, v := range splitUnquoted(value, ',') {
			line.Params[name] = append(line.Params[name], strings.Trim(v, `"`))
		}
	}
	return line, nil
}

// splitUnquoted splits s on sep, ignoring separators inside double quotes.
func splitUnquoted(s string, sep byte) []string {
	var parts []string
	start := 0
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case sep:
			if !inQuotes {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// Param is one encoded parameter; order is preserved on output.
type Param struct {
	Name  string
	Value string
}

// Encode assembles a content line from its parts. Parameter values
// containing a colon, semicolon or comma are double-quoted. The value is
// appended verbatim; escaping is the caller's concern.
func Encode(name string, params []Param, value string) string {
	var b strings.Builder
	b.WriteString(name)
	for _, p := range params {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		if strings.ContainsAny(p.Value, ":;,") {
			b.WriteByte('"')
			b.WriteString(p.Value)
			b.WriteByte('"')
		} else {
			b.WriteString(p.Value)
		}
	}
	b.WriteByte(':')
	b.WriteString(value)
	return b.String()
}
