package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// StatusPrinter writes the one-line outcome of a validation run.
// Colors are only emitted when the destination is a terminal.
type StatusPrinter struct {
	out *termenv.Output
}

// NewStatusPrinter creates a printer writing to w.
func NewStatusPrinter(w io.Writer) *StatusPrinter {
	return &StatusPrinter{out: termenv.NewOutput(w)}
}

// Success prints msg in green.
func (p *StatusPrinter) Success(msg string) {
	s := p.out.String(msg).Foreground(p.out.Color("#22c55e"))
	fmt.Fprintln(p.out, s)
}

// Failure prints "<prefix>: <err>" with the prefix in bold red.
func (p *StatusPrinter) Failure(prefix string, err error) {
	s := p.out.String(prefix + ":").Bold().Foreground(p.out.Color("#ef4444"))
	fmt.Fprintf(p.out, "%s %v\n", s, err)
}
