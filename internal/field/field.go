package field

import (
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
)

// Visible is a note as it should be drawn this frame.
type Visible struct {
	Note  game.Note
	Outer float64 // Displayed outer radius
	Ring  game.Ring
}

type Frame struct {
	Visible []Visible
	Expired []game.Note // Notes removed this frame without being hit
}

// Field owns the live notes, in spawn order.
type Field struct {
	notes       []game.Note
	shrink      time.Duration
	maxLifetime time.Duration
	band        float64
}

func New(t game.Tuning) *Field {
	return &Field{
		shrink:      t.ShrinkDuration,
		maxLifetime: t.MaxLifetime,
		band:        t.Band,
	}
}

func (f *Field) Add(n game.Note) {
	f.notes = append(f.notes, n)
}

// Notes must not be modified by the caller.
func (f *Field) Notes() []game.Note {
	return f.notes
}

func (f *Field) Len() int {
	return len(f.notes)
}

func (f *Field) Clear() {
	f.notes = nil
}

// Remove drops notes by ID and returns how many were live.
func (f *Field) Remove(ids ...uint64) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	nn := make([]game.Note, 0, len(f.notes))
	for _, n := range f.notes {
		if _, ok := drop[n.ID]; ok {
			continue
		}
		nn = append(nn, n)
	}
	removed := len(f.notes) - len(nn)
	f.notes = nn
	return removed
}

// Update advances every note to now. Notes whose outer ring has collapsed,
// or that outlived the lifetime bound, are removed and reported as expired.
func (f *Field) Update(now time.Time) Frame {
	var frame Frame
	var expired []uint64

	for _, n := range f.notes {
		age := n.Age(now)
		if age > f.maxLifetime || age >= f.shrink {
			expired = append(expired, n.ID)
			frame.Expired = append(frame.Expired, n)
			continue
		}

		outer := n.OuterRadiusAt(age, f.shrink)
		frame.Visible = append(frame.Visible, Visible{
			Note:  n,
			Outer: outer,
			Ring:  n.RingAt(outer, f.band),
		})
	}

	f.Remove(expired...)
	return frame
}
