package game

import (
	"math"
	"time"
)

type Point struct {
	X, Y float64
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Note is a target spawned from the waveform. It is a value and is never
// mutated after creation; the shrinking outer ring is derived from its age.
type Note struct {
	ID          uint64
	Position    Point     // Centre in screen space
	OuterRadius float64   // Radius of the outer ring at spawn
	InnerRadius float64   // The target ring the outer ring shrinks towards
	SpawnTime   time.Time // When the note was spawned
}

func NewNote(id uint64, position Point, amplitude float64, t *Tuning, now time.Time) Note {
	outer := math.Abs(amplitude)*t.RadiusScale + t.RadiusBase
	return Note{
		ID:          id,
		Position:    position,
		OuterRadius: outer,
		InnerRadius: outer * t.InnerRatio,
		SpawnTime:   now,
	}
}

// Age is clamped to zero so a note never grows.
func (n Note) Age(now time.Time) time.Duration {
	age := now.Sub(n.SpawnTime)
	if age < 0 {
		return 0
	}
	return age
}

// OuterRadiusAt returns the displayed outer radius after elapsed time.
// It reaches zero at shrink and goes negative after.
func (n Note) OuterRadiusAt(elapsed, shrink time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return n.OuterRadius * (1 - float64(elapsed)/float64(shrink))
}

// Ring classifies the outer ring against the inner ring for feedback.
type Ring uint8

const (
	Early    Ring = iota // The outer ring is still larger than the target
	OnTarget             // Within the band around the inner ring
	Late                 // Smaller than the target
)

func (n Note) RingAt(outer, band float64) Ring {
	switch {
	case n.InnerRadius-band < outer && outer < n.InnerRadius+band:
		return OnTarget
	case n.InnerRadius < outer:
		return Early
	default:
		return Late
	}
}
