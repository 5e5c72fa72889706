package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell is one composited character cell of a TermSurface.
type Cell struct {
	Color color.NRGBA
	Size  float64 // largest circle radius that touched the cell, in cells
	Lit   bool
}

// TermSurface maps a virtual pixel canvas onto a terminal grid. Each cell
// covers CellW x CellH virtual pixels; circles are composited per cell and
// written to the screen by Present.
type TermSurface struct {
	Screen     tcell.Screen
	CellW      float64
	CellH      float64
	Background color.NRGBA

	cols, rows int
	cells      []Cell
}

func NewTermSurface(screen tcell.Screen, cellW, cellH float64) *TermSurface {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	t := &TermSurface{
		Screen:     screen,
		CellW:      cellW,
		CellH:      cellH,
		Background: color.NRGBA{A: 255},
	}
	t.Sync()
	return t
}

// Sync re-reads the terminal size. Call it after a resize event.
func (t *TermSurface) Sync() {
	t.cols, t.rows = t.Screen.Size()
	if t.cols < 0 {
		t.cols = 0
	}
	if t.rows < 0 {
		t.rows = 0
	}
	t.cells = make([]Cell, t.cols*t.rows)
}

// Canvas returns the virtual pixel size covered by the grid.
func (t *TermSurface) Canvas() (width, height int) {
	return int(float64(t.cols) * t.CellW), int(float64(t.rows) * t.CellH)
}

func (t *TermSurface) Clear() {
	for i := range t.cells {
		t.cells[i] = Cell{Color: t.Background}
	}
}

func (t *TermSurface) FillCircle(x, y, r float64, fill color.Color, alpha float64) {
	w, h := t.Canvas()
	if !Visible(x, y, r, w, h) {
		return
	}
	c := Paint(fill, alpha)
	if c.A == 0 {
		return
	}

	col0 := int(math.Floor((x - r) / t.CellW))
	col1 := int(math.Floor((x + r) / t.CellW))
	row0 := int(math.Floor((y - r) / t.CellH))
	row1 := int(math.Floor((y + r) / t.CellH))
	size := r / t.CellW

	for row := max(row0, 0); row <= min(row1, t.rows-1); row++ {
		for col := max(col0, 0); col <= min(col1, t.cols-1); col++ {
			cell := &t.cells[row*t.cols+col]
			cell.Color = blend(cell.Color, c)
			cell.Lit = true
			if size > cell.Size {
				cell.Size = size
			}
		}
	}
}

// Cell returns the composited cell at col,row.
func (t *TermSurface) Cell(col, row int) Cell {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return Cell{}
	}
	return t.cells[row*t.cols+col]
}

// Present writes the composited grid to the screen. Call Show on the screen
// to flush it, after drawing any text on top.
func (t *TermSurface) Present() {
	bg := tcell.NewRGBColor(int32(t.Background.R), int32(t.Background.G), int32(t.Background.B))
	blank := tcell.StyleDefault.Background(bg)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			cell := t.cells[row*t.cols+col]
			if !cell.Lit {
				t.Screen.SetContent(col, row, ' ', nil, blank)
				continue
			}
			fg := tcell.NewRGBColor(int32(cell.Color.R), int32(cell.Color.G), int32(cell.Color.B))
			t.Screen.SetContent(col, row, Glyph(cell.Size), nil, blank.Foreground(fg))
		}
	}
}

// Glyph picks a character whose ink roughly matches a circle radius in cells.
func Glyph(size float64) rune {
	switch {
	case size < 0.15:
		return '·'
	case size < 0.35:
		return '•'
	case size < 0.6:
		return '●'
	default:
		return '█'
	}
}

// blend composites src over an opaque dst.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}
