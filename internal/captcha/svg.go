// Package captcha renders human-verification challenges as SVG images.
package captcha

import (
	"bytes"
	"fmt"
	"html"
	"math/rand/v2"
)

const (
	defaultWidth  = 150
	defaultHeight = 50
	noiseLines    = 7
	charSpacing   = 25
	charOffset    = 20
)

// ContentType is the media type of rendered challenges.
const ContentType = "image/svg+xml"

// Renderer draws a code as distorted SVG text over noise lines.
type Renderer struct {
	Width  int
	Height int
	intN   func(n int) int
}

// NewRenderer returns a 150x50 renderer backed by math/rand/v2.
func NewRenderer() *Renderer {
	return &Renderer{Width: defaultWidth, Height: defaultHeight, intN: rand.IntN}
}

// between returns a random int in [lo, hi].
func (r *Renderer) between(lo, hi int) int {
	return lo + r.intN(hi-lo+1)
}

func (r *Renderer) color(lo, hi int) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", r.between(lo, hi), r.between(lo, hi), r.between(lo, hi))
}

// Render returns the SVG document for code.
func (r *Renderer) Render(code string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" style="background-color: #f0f0f0; border-radius: 5px;">`,
		r.Width, r.Height)

	for i := 0; i < noiseLines; i++ {
		fmt.Fprintf(&buf, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d" />`,
			r.between(0, r.Width), r.between(0, r.Height),
			r.between(0, r.Width), r.between(0, r.Height),
			r.color(150, 220), r.between(1, 2))
	}

	for i, ch := range []rune(code) {
		x := charOffset + i*charSpacing
		y := r.between(30, 40)
		rotate := r.between(-20, 20)
		fmt.Fprintf(&buf, `<text x="%d" y="%d" font-family="Arial, sans-serif" font-size="%d" fill="%s" transform="rotate(%d, %d, %d)">%s</text>`,
			x, y, r.between(24, 30), r.color(0, 100), rotate, x, y, html.EscapeString(string(ch)))
	}

	buf.WriteString(`</svg>`)
	return buf.Bytes()
}
