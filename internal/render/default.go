package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultRenderer draws with ANSI escapes, writing only the cells that
// changed since the previous frame.
type DefaultRenderer struct {
	out          io.Writer
	fd           int
	restoreState *term.State
	size         func() (int, int, error)

	canvas      *Canvas
	previous    []Cell
	buffer      bytes.Buffer
	decorations decorations
}

func NewDefaultRenderer(width, height float64) *DefaultRenderer {
	fd := int(os.Stdout.Fd())
	return &DefaultRenderer{
		out:    os.Stdout,
		fd:     fd,
		size:   func() (int, int, error) { return term.GetSize(fd) },
		canvas: NewCanvas(width, height, 0, 0),
	}
}

func (r *DefaultRenderer) Init() error {
	state, err := term.MakeRaw(r.fd)
	if nil != err {
		return fmt.Errorf("unable to make terminal raw: %w", err)
	}
	r.restoreState = state

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return r.resize()
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out, "%s%s%s",
		"\033[0m",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

func (r *DefaultRenderer) Canvas() *Canvas {
	return r.canvas
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, c color.RGBA, frames int) {
	r.decorations.add(col, row, content, c, frames)
}

// resize follows the terminal, forcing a full redraw when it changed.
func (r *DefaultRenderer) resize() error {
	cols, rows, err := r.size()
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	if c, rw := r.canvas.Size(); c == cols && rw == rows {
		return nil
	}
	r.canvas.Resize(cols, rows)
	r.previous = nil
	r.buffer.WriteString("\033[0m\033[2J")
	return nil
}

// Flush draws the decorations, writes the changed cells and clears the
// canvas for the next frame.
func (r *DefaultRenderer) Flush() error {
	r.decorations.tick(r.canvas)

	cols, rows := r.canvas.Size()
	full := len(r.previous) != cols*rows
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := r.canvas.At(col, row)
			if !full && r.previous[row*cols+col] == cell {
				continue
			}
			if full && cell == blank {
				continue
			}
			r.fill(row, col, cell)
		}
	}
	if full {
		r.previous = make([]Cell, cols*rows)
	}
	copy(r.previous, r.canvas.cells)
	r.canvas.Clear()

	_, err := r.out.Write(r.buffer.Bytes())
	r.buffer.Reset()
	if nil != err {
		return fmt.Errorf("unable to write frame: %w", err)
	}
	// A failed size query keeps the current size
	_ = r.resize()
	return nil
}

// fill writes one cell, terminal rows and columns start at 1.
func (r *DefaultRenderer) fill(row, column int, cell Cell) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row + 1))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column + 1))
	r.buffer.WriteString("H")
	if cell.Bg.A != 0 {
		r.color(48, cell.Bg)
	}
	if cell.Ch != ' ' {
		r.color(38, cell.Fg)
	}
	r.buffer.WriteRune(cell.Ch)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) color(layer int, c color.RGBA) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(layer))
	r.buffer.WriteString(";2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
}
