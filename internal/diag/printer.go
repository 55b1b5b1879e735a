package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	posSprint   = color.New(color.Bold).SprintFunc()
	labelSprint = color.New(color.FgRed).SprintFunc()
)

// Printer writes diagnostics to a sink, coloring them when the sink is
// an interactive terminal.
type Printer struct {
	out     io.Writer
	colored bool
}

// NewPrinter returns a printer writing to out. The caller decides
// whether color is appropriate for the destination.
func NewPrinter(out io.Writer, colored bool) *Printer {
	return &Printer{out: out, colored: colored}
}

// Print writes one diagnostic followed by a newline.
func (p *Printer) Print(d Diagnostic) {
	pos := ""
	if d.Pos.IsValid() {
		pos = d.Pos.String() + ": "
	}
	label := "error: "
	if p.colored {
		pos = posSprint(pos)
		label = labelSprint(label)
	}
	fmt.Fprintf(p.out, "%s%s%s\n", pos, label, d.Msg)
}

// PrintAll sorts and writes every diagnostic in the list.
func (p *Printer) PrintAll(l List) {
	l.Sort()
	for _, d := range l {
		p.Print(d)
	}
}
