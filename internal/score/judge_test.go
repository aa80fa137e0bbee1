package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
	"git.lost.host/meutraa/handbeat/internal/testdata"
)

var centre = game.Point{X: 400, Y: 300}

func setup() (*DefaultScorer, time.Time, game.Note) {
	s := &DefaultScorer{Tuning: game.DefaultTuning()}
	t0 := time.Now()
	return s, t0, game.NewNote(1, centre, 0.5, &s.Tuning, t0)
}

// Scenario 2
func TestJudgeGreat(t *testing.T) {
	s, t0, n := setup()
	now := t0.Add(s.Tuning.ShrinkDuration - 200*time.Millisecond)

	r := s.Judge([]game.Note{n}, []game.Hand{testdata.HandAt(centre, &s.Tuning)}, now)
	if r.Score != 500 || r.Combo != 1 || len(r.Hits) != 1 {
		t.Fatalf("expected a single great, got %+v", r)
	}
	if r.Hits[0].Judgement != game.Great {
		t.Fatalf("expected great, got %v", r.Hits[0].Judgement)
	}
	if ids := r.IDs(); len(ids) != 1 || ids[0] != n.ID {
		t.Fatalf("unexpected judged ids %v", ids)
	}
}

// Scenario 3
func TestJudgeGood(t *testing.T) {
	s, t0, n := setup()
	r := s.Judge([]game.Note{n}, []game.Hand{testdata.HandAt(centre, &s.Tuning)}, t0.Add(time.Second))
	if r.Score != 100 || r.Combo != 1 || r.Hits[0].Judgement != game.Good {
		t.Fatalf("expected a single good, got %+v", r)
	}
	if r.Hits[0].Age != time.Second {
		t.Fatalf("expected age 1s, got %v", r.Hits[0].Age)
	}
}

func TestJudgeRadius(t *testing.T) {
	s, t0, n := setup()
	now := t0.Add(time.Second)

	// Offsets that survive normalization exactly
	tests := map[float64]bool{
		0:  true,
		25: true,
		50: false,
	}
	for dx, hit := range tests {
		hand := testdata.HandAt(game.Point{X: centre.X + dx, Y: centre.Y}, &s.Tuning)
		r := s.Judge([]game.Note{n}, []game.Hand{hand}, now)
		if (len(r.Hits) == 1) != hit {
			t.Errorf("offset %v: expected hit %v, got %+v", dx, hit, r)
		}
	}

	hand := testdata.HandAt(game.Point{X: centre.X + 50, Y: centre.Y}, &s.Tuning)
	s.Tuning.HitMargin = 15
	if r := s.Judge([]game.Note{n}, []game.Hand{hand}, now); len(r.Hits) != 0 {
		t.Fatal("a joint exactly on the edge is outside")
	}
	s.Tuning.HitMargin = 20
	if r := s.Judge([]game.Note{n}, []game.Hand{hand}, now); len(r.Hits) != 1 {
		t.Fatal("expected the margin to widen the hit zone")
	}
}

func TestJudgeSingleCredit(t *testing.T) {
	s, t0, n := setup()
	hand := testdata.HandAt(centre, &s.Tuning)

	r := s.Judge([]game.Note{n}, []game.Hand{hand, hand}, t0.Add(time.Second))
	if len(r.Hits) != 1 || r.Score != 100 || r.Combo != 1 {
		t.Fatalf("two hands on one note should score once, got %+v", r)
	}
	if r.Hits[0].Hand != 0 {
		t.Fatal("the first hand should take the credit")
	}
}

func TestJudgeOneHandManyNotes(t *testing.T) {
	s, t0, n := setup()
	other := game.NewNote(2, centre, 0.9, &s.Tuning, t0.Add(-2700*time.Millisecond))
	far := game.NewNote(3, game.Point{X: 10, Y: 10}, 0.9, &s.Tuning, t0)

	r := s.Judge([]game.Note{n, other, far}, []game.Hand{testdata.HandAt(centre, &s.Tuning)}, t0.Add(100*time.Millisecond))
	if len(r.Hits) != 2 || r.Score != 600 || r.Combo != 2 {
		t.Fatalf("expected a good and a great, got %+v", r)
	}
	if r.Hits[0].Note.ID != 1 || r.Hits[1].Note.ID != 2 {
		t.Fatal("hits should follow spawn order")
	}
}

func TestJudgeJoint(t *testing.T) {
	s, t0, n := setup()
	hand := testdata.Hand(0, 0)
	hand[game.JointMiddleFingerBase] = game.Point{X: 0.5, Y: 0.5}

	if r := s.Judge([]game.Note{n}, []game.Hand{hand}, t0); len(r.Hits) != 0 {
		t.Fatal("the fingertip is away from the note")
	}
	s.Tuning.Joint = game.JointMiddleFingerBase
	if r := s.Judge([]game.Note{n}, []game.Hand{hand}, t0); len(r.Hits) != 1 {
		t.Fatal("expected the configured joint to be tracked")
	}
}

func TestJudgeNothing(t *testing.T) {
	s, t0, n := setup()
	if r := s.Judge(nil, []game.Hand{testdata.HandAt(centre, &s.Tuning)}, t0); len(r.Hits) != 0 || r.Score != 0 {
		t.Fatal("no notes, nothing to judge")
	}
	if r := s.Judge([]game.Note{n}, nil, t0); len(r.Hits) != 0 {
		t.Fatal("no hands, nothing to judge")
	}
	if r := s.Judge([]game.Note{n}, []game.Hand{{{X: 0.5, Y: 0.5}}}, t0); len(r.Hits) != 0 {
		t.Fatal("a hand without the tracked joint cannot hit")
	}
}

func BenchmarkJudge(b *testing.B) {
	s := &DefaultScorer{Tuning: game.DefaultTuning()}
	t0 := time.Now()
	notes := make([]game.Note, 64)
	for i := range notes {
		notes[i] = game.NewNote(uint64(i+1), game.Point{X: float64(i * 10), Y: 300}, 0.5, &s.Tuning, t0)
	}
	hands := []game.Hand{testdata.Hand(0.9, 0.9), testdata.Hand(0.1, 0.1)}
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		s.Judge(notes, hands, t0.Add(time.Second))
	}
}
