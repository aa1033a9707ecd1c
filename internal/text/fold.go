package text

import "strings"

// MaxLineLength is the RFC 5545/6350 folding limit for a physical line.
const MaxLineLength = 75

// Fold splits a logical line into physical lines no longer than max
// codepoints, joined by CRLF. Continuation lines start with a single space
// and therefore carry max-1 codepoints of payload. Folding happens on rune
// boundaries so a multi-byte UTF-8 sequence is never split.
func Fold(line string, max int) string {
	if max <= 1 {
		max = MaxLineLength
	}
	runes := []rune(line)
	if len(runes) <= max {
		return line
	}
	var b strings.Builder
	b.WriteString(string(runes[:max]))
	rest := runes[max:]
	for len(rest) > 0 {
		n := max - 1
		if n > len(rest) {
			n = len(rest)
		}
		b.WriteString("\r\n ")
		b.WriteString(string(rest[:n]))
		rest = rest[n:]
	}
	return b.String()
}

// Unfold removes folding from an entire document: any CRLF (or bare LF)
// immediately followed by a space or tab is a continuation and is dropped
// together with the whitespace octet.
func Unfold(doc string) string {
	var b strings.Builder
	b.Grow(len(doc))
	for i := 0; i < len(doc); i++ {
		c := doc[i]
		if c == '\r' && i+2 < len(doc) && doc[i+1] == '\n' && (doc[i+2] == ' ' || doc[i+2] == '\t') {
			i += 2
			continue
		}
		if c == '\n' && i+1 < len(doc) && (doc[i+1] == ' ' || doc[i+1] == '\t') {
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
