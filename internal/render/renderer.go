package render

import (
	"context"
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Canvas() *Canvas
	AddDecoration(col, row int, content string, c color.RGBA, frames int)
	Flush() error
}

type decoration struct {
	X, Y    int
	Content string
	Color   color.RGBA
	Frames  int // remaining frames until removed
}

type decorations []*decoration

func (d *decorations) add(col, row int, content string, c color.RGBA, frames int) {
	*d = append(*d, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Color:   c,
		Frames:  frames,
	})
}

// tick draws the live decorations onto the canvas and drops the expired.
func (d *decorations) tick(canvas *Canvas) {
	nd := make(decorations, 0, len(*d))
	for _, dec := range *d {
		if dec.Frames <= 0 {
			continue
		}
		canvas.Text(dec.X, dec.Y, dec.Content, dec.Color)
		dec.Frames--
		nd = append(nd, dec)
	}
	*d = nd
}

// Loop calls frame once per period until it returns false or ctx ends.
// A frame that overruns its period is followed immediately by the next.
func Loop(ctx context.Context, period time.Duration, frame func(now time.Time) bool) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if nil != ctx.Err() {
			return
		}

		now := time.Now()
		if !frame(now) {
			return
		}
		timer.Reset(time.Until(now.Add(period)))
	}
}
