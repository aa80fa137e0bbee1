package render

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

type TcellRenderer struct {
	screen      tcell.Screen
	canvas      *Canvas
	decorations decorations
}

func NewTcellRenderer(screen tcell.Screen, width, height float64) *TcellRenderer {
	return &TcellRenderer{
		screen: screen,
		canvas: NewCanvas(width, height, 0, 0),
	}
}

func (r *TcellRenderer) Init() error {
	if err := r.screen.Init(); nil != err {
		return fmt.Errorf("unable to initialize screen: %w", err)
	}
	r.screen.HideCursor()
	r.screen.Clear()
	r.canvas.Resize(r.screen.Size())
	return nil
}

func (r *TcellRenderer) Deinit() error {
	r.screen.Fini()
	return nil
}

func (r *TcellRenderer) Canvas() *Canvas {
	return r.canvas
}

func (r *TcellRenderer) AddDecoration(col, row int, content string, c color.RGBA, frames int) {
	r.decorations.add(col, row, content, c, frames)
}

// Flush hands the canvas to tcell, which does its own diffing.
func (r *TcellRenderer) Flush() error {
	r.decorations.tick(r.canvas)

	cols, rows := r.canvas.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := r.canvas.At(col, row)
			r.screen.SetContent(col, row, cell.Ch, nil, style(cell))
		}
	}
	r.screen.Show()
	r.canvas.Clear()

	if w, h := r.screen.Size(); w != cols || h != rows {
		r.canvas.Resize(w, h)
		r.screen.Sync()
	}
	return nil
}

func style(cell Cell) tcell.Style {
	s := tcell.StyleDefault
	if cell.Ch != ' ' {
		s = s.Foreground(rgb(cell.Fg))
	}
	if cell.Bg.A != 0 {
		s = s.Background(rgb(cell.Bg))
	}
	return s
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
