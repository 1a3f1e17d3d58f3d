// Package present renders the startup banner and colored status lines.
// Coloring degrades to plain text automatically on terminals without
// color support.
package present

import (
	"io"

	"github.com/gookit/color"
)

const banner = `
╔══════════════════════════════════════════╗
║             QR Forge  v2.0.0             ║
╚══════════════════════════════════════════╝
`

// Printer writes user-facing status output.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner prints the static startup banner once.
func (p *Printer) Banner() {
	color.Fprintf(p.w, "<cyan>%s</>\n", banner)
}

// Successf prints a green success line.
func (p *Printer) Successf(format string, args ...any) {
	color.Fprintf(p.w, "<green>✓ "+format+"</>\n", args...)
}

// Errorf prints a red failure line.
func (p *Printer) Errorf(format string, args ...any) {
	color.Fprintf(p.w, "<red>✗ "+format+"</>\n", args...)
}

// Infof prints a yellow informational line.
func (p *Printer) Infof(format string, args ...any) {
	color.Fprintf(p.w, "<yellow>"+format+"</>\n", args...)
}

// Saved reports a written output file.
func (p *Printer) Saved(path string) {
	color.Fprintf(p.w, "<green>✓ Saved:</> <cyan>%s</>\n", path)
}

// Result reports one decoded payload.
func (p *Printer) Result(text string) {
	color.Fprintf(p.w, "<green>Content:</> %s\n", text)
}

// Field prints an indented name/value detail line.
func (p *Printer) Field(name, value string) {
	color.Fprintf(p.w, "   %s: <cyan>%s</>\n", name, value)
}
