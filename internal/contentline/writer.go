package contentline

import (
	"strings"

	"github.com/cyp0633/libvdir/internal/text"
)

// Writer accumulates folded, CRLF-terminated property lines.
type Writer struct {
	b strings.Builder
}

// Line encodes, folds and appends one property line.
func (w *Writer) Line(name string, params []Param, value string) {
	w.b.WriteString(text.Fold(Encode(name, params, value), text.MaxLineLength))
	w.b.WriteString("\r\n")
}

// Text appends an escaped TEXT property, omitting it entirely when the
// value is empty.
func (w *Writer) Text(name, value string) {
	if value == "" {
		return
	}
	w.Line(name, nil, text.Escape(value))
}

func (w *Writer) String() string { return w.b.String() }
