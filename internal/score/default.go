package score

import (
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
)

type DefaultScorer struct {
	Tuning game.Tuning
}

func (s *DefaultScorer) Distance(joint game.Point, note *game.Note) float64 {
	return joint.Distance(note.Position)
}

func (s *DefaultScorer) Judge(notes []game.Note, hands []game.Hand, now time.Time) Result {
	var result Result
	if len(notes) == 0 {
		return result
	}

	judged := make(map[uint64]bool)
	for h, hand := range hands {
		joint, ok := hand.Joint(s.Tuning.Joint)
		if !ok {
			continue
		}
		joint = joint.Scale(s.Tuning.Width, s.Tuning.Height)

		for i := range notes {
			note := &notes[i]
			// Already taken by an earlier hand this frame
			if judged[note.ID] {
				continue
			}
			if s.Distance(joint, note) >= note.InnerRadius+s.Tuning.HitMargin {
				continue
			}

			age := note.Age(now)
			judgement := s.Tuning.Classify(age)
			judged[note.ID] = true

			result.Score += s.Tuning.Points(judgement)
			result.Combo++
			result.Hits = append(result.Hits, Hit{
				Note:      *note,
				Judgement: judgement,
				Hand:      h,
				Joint:     joint,
				Age:       age,
			})
		}
	}
	return result
}
