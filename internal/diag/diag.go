// Package diag carries generator findings anchored to source positions
// and renders them in the conventional file:line:col form.
package diag

import (
	"fmt"
	"go/token"
	"sort"
	"strings"
)

// Diagnostic is one finding tied to the declaration that caused it.
type Diagnostic struct {
	Pos token.Position
	Msg string
}

// Errorf builds a Diagnostic from a printf-style message.
func Errorf(pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Error renders the diagnostic as "file.go:12:2: message". A diagnostic
// without a valid position renders as the bare message.
func (d Diagnostic) Error() string {
	if !d.Pos.IsValid() {
		return d.Msg
	}
	return d.Pos.String() + ": " + d.Msg
}

// List accumulates diagnostics across declarations.
type List []Diagnostic

// Add appends a diagnostic built from a printf-style message.
func (l *List) Add(pos token.Position, format string, args ...any) {
	*l = append(*l, Errorf(pos, format, args...))
}

// Append merges another list into l.
func (l *List) Append(other List) {
	*l = append(*l, other...)
}

// Err returns the list as an error, or nil when it is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Error renders all diagnostics, one per line.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, d := range l {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

// Sort orders the list by file, then line, then column. Diagnostics
// without a position sort first within their file group.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i].Pos, l[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}
