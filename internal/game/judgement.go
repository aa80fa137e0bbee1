package game

import "time"

type Judgement uint8

const (
	Miss Judgement = iota
	Good
	Great
)

var Judgements = []Judgement{Great, Good, Miss}

func (j Judgement) String() string {
	switch j {
	case Great:
		return "Great"
	case Good:
		return "Good"
	default:
		return "Miss"
	}
}

// Classify grades a hit by how long after spawn it landed. Hits just before
// the outer ring collapses are Great, every other hit is Good.
func (t *Tuning) Classify(age time.Duration) Judgement {
	if age >= t.ShrinkDuration-t.GreatWindow && age < t.ShrinkDuration {
		return Great
	}
	return Good
}

func (t *Tuning) Points(j Judgement) int {
	switch j {
	case Great:
		return t.GreatPoints
	case Good:
		return t.GoodPoints
	}
	return 0
}
