// Package text implements the low-level value codecs shared by the vCard and
// iCalendar formats: TEXT escaping, line folding, and the date, duration and
// geo value grammars. All parsers here are total: malformed input yields an
// empty mo.Option, never a panic or an error.
package text

import "strings"

// Escape escapes a TEXT value for inclusion in a property line. Backslash is
// escaped first so the substitutions for semicolon, comma and newline never
// double-escape. Empty input yields empty output.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// SplitStructured splits a compound property value (N, ADR, ORG) on
// unescaped semicolons and unescapes each component.
func SplitStructured(s string) []string {
	var parts []string
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteByte(s[i])
			if i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			}
		case ';':
			parts = append(parts, Unescape(b.String()))
			b.Reset()
		default:
			b.WriteByte(s[i])
		}
	}
	return append(parts, Unescape(b.String()))
}

// JoinStructured escapes each component and joins them with semicolons,
// dropping trailing empty components.
func JoinStructured(components ...string) string {
	last := len(components)
	for last > 0 && components[last-1] == "" {
		last--
	}
	escaped := make([]string, last)
	for i := 0; i < last; i++ {
		escaped[i] = Escape(components[i])
	}
	return strings.Join(escaped, ";")
}

// Unescape reverses Escape. Escaped backslashes are resolved last so that a
// literal `\\` is not mistaken for the prefix of another escape sequence.
func Unescape(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		case ';', ',', '\\':
			b.WriteByte(s[i])
		default:
			// Unknown escape, keep it verbatim.
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
