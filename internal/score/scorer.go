package score

import (
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
)

type Scorer interface {
	// Judge the hands against the live notes, in spawn order
	Judge(notes []game.Note, hands []game.Hand, now time.Time) Result

	// Distance from a joint in screen space to the centre of a note
	Distance(joint game.Point, note *game.Note) float64
}

type Hit struct {
	Note      game.Note
	Judgement game.Judgement
	Hand      int           // Index of the hand that hit
	Joint     game.Point    // Screen position of the tracked joint
	Age       time.Duration // Time between spawn and hit
}

type Result struct {
	Score int // Points gained
	Combo int // Combo gained
	Hits  []Hit
}

func (r *Result) IDs() []uint64 {
	ids := make([]uint64, len(r.Hits))
	for i, h := range r.Hits {
		ids[i] = h.Note.ID
	}
	return ids
}
