package render

import (
	"image"
	"image/color"
	"math"
	"unicode/utf8"

	"git.lost.host/meutraa/handbeat/internal/game"
)

type Cell struct {
	Ch rune
	Fg color.RGBA
	Bg color.RGBA // transparent uses the terminal background
}

var blank = Cell{Ch: ' '}

// Canvas maps the game's screen space onto a grid of terminal cells.
type Canvas struct {
	width, height float64
	cols, rows    int
	cells         []Cell
}

func NewCanvas(width, height float64, cols, rows int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.Resize(cols, rows)
	return c
}

func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]Cell, cols*rows)
	c.Clear()
}

func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank
	}
}

func (c *Canvas) At(col, row int) Cell {
	if !c.inside(col, row) {
		return blank
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

// cellSize is the extent of one cell in screen space.
func (c *Canvas) cellSize() (float64, float64) {
	return c.width / float64(c.cols), c.height / float64(c.rows)
}

// Cell returns the cell containing a screen space point.
func (c *Canvas) Cell(p game.Point) (col, row int) {
	if c.cols == 0 || c.rows == 0 {
		return -1, -1
	}
	sx, sy := c.cellSize()
	return int(math.Floor(p.X / sx)), int(math.Floor(p.Y / sy))
}

func (c *Canvas) centre(col, row int) game.Point {
	sx, sy := c.cellSize()
	return game.Point{X: (float64(col) + 0.5) * sx, Y: (float64(row) + 0.5) * sy}
}

func (c *Canvas) set(col, row int, ch rune, fg color.RGBA) {
	if !c.inside(col, row) {
		return
	}
	cell := &c.cells[row*c.cols+col]
	cell.Ch = ch
	cell.Fg = fg
}

// Circle draws a circle outline, or a disc when filled. A circle smaller
// than a cell still marks the cell holding its centre.
func (c *Canvas) Circle(centre game.Point, radius float64, ch rune, fg color.RGBA, filled bool) {
	if c.cols == 0 || c.rows == 0 || radius < 0 {
		return
	}
	sx, sy := c.cellSize()
	half := math.Max(sx, sy) / 2

	minCol, minRow := c.Cell(game.Point{X: centre.X - radius - half, Y: centre.Y - radius - half})
	maxCol, maxRow := c.Cell(game.Point{X: centre.X + radius + half, Y: centre.Y + radius + half})
	for row := max(minRow, 0); row <= min(maxRow, c.rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, c.cols-1); col++ {
			d := c.centre(col, row).Distance(centre)
			if (filled && d <= radius) || (!filled && math.Abs(d-radius) <= half) {
				c.set(col, row, ch, fg)
			}
		}
	}

	if radius < half {
		col, row := c.Cell(centre)
		c.set(col, row, ch, fg)
	}
}

// Text writes s from a cell position, clipped to the canvas.
func (c *Canvas) Text(col, row int, s string, fg color.RGBA) {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		c.set(col, row, r, fg)
		s = s[size:]
		col++
	}
}

// Background samples an image behind every cell, dimmed so notes stay
// readable over a camera frame.
func (c *Canvas) Background(img image.Image) {
	if nil == img {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	for row := 0; row < c.rows; row++ {
		y := b.Min.Y + row*b.Dy()/c.rows
		for col := 0; col < c.cols; col++ {
			x := b.Min.X + col*b.Dx()/c.cols
			r, g, bl, _ := img.At(x, y).RGBA()
			c.cells[row*c.cols+col].Bg = color.RGBA{uint8(r >> 10), uint8(g >> 10), uint8(bl >> 10), 255}
		}
	}
}
