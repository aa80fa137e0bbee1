package spawn

import (
	"math"
	"math/rand"
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
)

// Cursor remembers the previous spawn so loud passages can be chained into
// a stream of notes moving in one direction.
type Cursor struct {
	LastSpawn time.Time
	Position  game.Point
	Direction game.Point // Each axis is -1 or +1
}

type Spawner struct {
	tuning game.Tuning
	rng    *rand.Rand
	cursor Cursor
	nextID uint64
}

func New(tuning game.Tuning, rng *rand.Rand) *Spawner {
	return &Spawner{
		tuning: tuning,
		rng:    rng,
	}
}

func (s *Spawner) Cursor() Cursor {
	return s.cursor
}

// Reset forgets the previous spawn. Note IDs keep increasing.
func (s *Spawner) Reset() {
	s.cursor = Cursor{}
}

// Tick is called once a frame while playing and returns the note to spawn,
// if any.
func (s *Spawner) Tick(now time.Time, amplitude float64) (game.Note, bool) {
	gap := now.Sub(s.cursor.LastSpawn)
	if gap <= s.tuning.MinInterval || math.Abs(amplitude) <= s.tuning.Threshold {
		return game.Note{}, false
	}

	if gap < s.tuning.ChainWindow {
		s.chain()
	} else {
		s.scatter()
	}

	s.nextID++
	s.cursor.LastSpawn = now
	return game.NewNote(s.nextID, s.cursor.Position, amplitude, &s.tuning, now), true
}

// scatter starts a new chain at a random position and direction.
func (s *Spawner) scatter() {
	s.cursor.Direction = game.Point{X: s.sign(), Y: s.sign()}
	s.cursor.Position = game.Point{
		X: float64(s.rng.Intn(int(s.tuning.Width))),
		Y: float64(s.rng.Intn(int(s.tuning.Height))),
	}
}

func (s *Spawner) chain() {
	p := s.cursor.Position
	p.X = wrap(p.X+s.cursor.Direction.X*s.tuning.ChainOffset, s.tuning.Width, s.tuning.WrapInset)
	p.Y = wrap(p.Y+s.cursor.Direction.Y*s.tuning.ChainOffset, s.tuning.Height, s.tuning.WrapInset)
	s.cursor.Position = p
}

func (s *Spawner) sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// wrap brings a coordinate that left [0, size) back in, inset from the edge
// it re-enters from rather than flush against it.
func wrap(v, size, inset float64) float64 {
	if v >= size {
		return inset
	}
	if v < 0 {
		return size - inset
	}
	return v
}
