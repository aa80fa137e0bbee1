package tracking

import (
	"image"
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
)

// Frame is one camera capture with the hands found in it.
type Frame struct {
	Time  time.Time
	Hands []game.Hand
	Image image.Image // Optional camera raster
}

// Source hands out the latest frame, if one is available this tick.
type Source interface {
	NextFrame() (Frame, bool)
}

// Estimator finds hands in a frame.
type Estimator interface {
	Detect(f Frame) []game.Hand
}

// Landmarks uses the hands a pose sidecar already found in the frame.
type Landmarks struct {
	Mirror bool
}

func (l *Landmarks) Detect(f Frame) []game.Hand {
	if !l.Mirror {
		return f.Hands
	}
	hands := make([]game.Hand, len(f.Hands))
	for i, h := range f.Hands {
		hands[i] = h.Mirror()
	}
	return hands
}

// None never has a frame.
type None struct{}

func (None) NextFrame() (Frame, bool) {
	return Frame{}, false
}
