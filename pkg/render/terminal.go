package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	fcolor "github.com/fatih/color"

	"github.com/opd-ai/go-lander/pkg/geom"
)

// TerminalCanvas provides a simple ASCII rendering for terminals. Each cell
// stands for cellW x cellH pixels and takes the glyph of the last fill that
// covers its center.
type TerminalCanvas struct {
	cols   int
	rows   int
	cellW  float64
	cellH  float64
	buffer [][]rune
	glyphs map[color.RGBA]rune
	styles map[rune]*fcolor.Color
}

// DefaultGlyphs maps the lander palette to letters.
var DefaultGlyphs = map[color.RGBA]rune{
	{R: 0xff, A: 0xff}:                   'A',
	{A: 0xff}:                            '#',
	{B: 0xff, A: 0xff}:                   '=',
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}: ' ',
}

// NewTerminalCanvas creates a cols x rows canvas covering cols*cellW by
// rows*cellH pixels. Colors missing from glyphs draw as '*'.
func NewTerminalCanvas(cols, rows int, cellW, cellH float64, glyphs map[color.RGBA]rune) *TerminalCanvas {
	if glyphs == nil {
		glyphs = DefaultGlyphs
	}
	buffer := make([][]rune, rows)
	for i := range buffer {
		buffer[i] = []rune(strings.Repeat(" ", cols))
	}
	return &TerminalCanvas{
		cols:   cols,
		rows:   rows,
		cellW:  cellW,
		cellH:  cellH,
		buffer: buffer,
		glyphs: glyphs,
	}
}

// Size returns the pixel size the canvas stands for.
func (t *TerminalCanvas) Size() geom.Size {
	return geom.Size{Width: float64(t.cols) * t.cellW, Height: float64(t.rows) * t.cellH}
}

func (t *TerminalCanvas) glyph(c color.Color) rune {
	if g, ok := t.glyphs[toRGBA(c)]; ok {
		return g
	}
	return '*'
}

// Clear implements Clearer.
func (t *TerminalCanvas) Clear(c color.Color) error {
	g := t.glyph(c)
	for y := range t.buffer {
		for x := range t.buffer[y] {
			t.buffer[y][x] = g
		}
	}
	return nil
}

// FillRect implements Canvas.
func (t *TerminalCanvas) FillRect(r geom.Rect, c color.Color) error {
	r = r.Canon()
	g := t.glyph(c)
	t.each(func(x, y int, center geom.Vector2D) {
		if center.X >= r.X && center.X < r.X+r.W && center.Y >= r.Y && center.Y < r.Y+r.H {
			t.buffer[y][x] = g
		}
	})
	return nil
}

// FillPolygon implements Canvas.
func (t *TerminalCanvas) FillPolygon(points geom.Polygon, c color.Color) error {
	if len(points) < 3 {
		return nil
	}
	g := t.glyph(c)
	t.each(func(x, y int, center geom.Vector2D) {
		if points.Contains(center) {
			t.buffer[y][x] = g
		}
	})
	return nil
}

func (t *TerminalCanvas) each(f func(x, y int, center geom.Vector2D)) {
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			f(x, y, geom.Vector2D{
				X: (float64(x) + 0.5) * t.cellW,
				Y: (float64(y) + 0.5) * t.cellH,
			})
		}
	}
}

// String returns the framed buffer.
func (t *TerminalCanvas) String() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", t.cols) + "+\n"
	sb.WriteString(border)
	for _, row := range t.buffer {
		sb.WriteString("|")
		sb.WriteString(string(row))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// Colorize makes Present print glyph with the given terminal attributes,
// whether or not w is a terminal.
func (t *TerminalCanvas) Colorize(glyph rune, attrs ...fcolor.Attribute) {
	if t.styles == nil {
		t.styles = make(map[rune]*fcolor.Color)
	}
	c := fcolor.New(attrs...)
	c.EnableColor()
	t.styles[glyph] = c
}

// ColorizeDefaults styles the DefaultGlyphs in their palette colors.
func (t *TerminalCanvas) ColorizeDefaults() {
	t.Colorize('A', fcolor.FgHiRed, fcolor.Bold)
	t.Colorize('#', fcolor.FgHiBlack)
	t.Colorize('=', fcolor.FgHiBlue, fcolor.Bold)
}

// Present writes the framed buffer to w, styling colorized glyphs.
func (t *TerminalCanvas) Present(w io.Writer) error {
	if len(t.styles) == 0 {
		_, err := fmt.Fprint(w, t.String())
		return err
	}

	var sb strings.Builder
	border := "+" + strings.Repeat("-", t.cols) + "+\n"
	sb.WriteString(border)
	for _, row := range t.buffer {
		sb.WriteString("|")
		for x := 0; x < len(row); {
			end := x + 1
			for end < len(row) && row[end] == row[x] {
				end++
			}
			run := string(row[x:end])
			if style, ok := t.styles[row[x]]; ok {
				run = style.Sprint(run)
			}
			sb.WriteString(run)
			x = end
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	_, err := fmt.Fprint(w, sb.String())
	return err
}
