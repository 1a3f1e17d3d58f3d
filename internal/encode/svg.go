package encode

import (
	"fmt"
	"image/color"
	"strings"
)

// renderSVG draws one rect per dark module over a solid background. The
// bitmap already carries the quiet-zone border added by the encoder.
func renderSVG(bitmap [][]bool, scale int, fg, bg color.RGBA) []byte {
	size := len(bitmap) * scale

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", size, size, size, size)
	fmt.Fprintf(&b, "  <rect width=\"%d\" height=\"%d\" fill=\"%s\"/>\n", size, size, hexColor(bg))
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			fmt.Fprintf(&b, "  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\"/>\n",
				x*scale, y*scale, scale, scale, hexColor(fg))
		}
	}
	b.WriteString("</svg>\n")
	return []byte(b.String())
}
