package score

import (
	"math"
	"testing"
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
)

func TestStats(t *testing.T) {
	s := NewStats()
	shrink := 3 * time.Second

	if m, sd := s.MeanStdDev(); m != 0 || sd != 0 {
		t.Fatal("expected zero stats without hits")
	}

	s.Record(&Hit{Judgement: game.Great, Age: 2800 * time.Millisecond}, shrink)
	if m, sd := s.MeanStdDev(); m != -200*time.Millisecond || sd != 0 {
		t.Fatalf("unexpected single hit stats %v %v", m, sd)
	}

	s.Record(&Hit{Judgement: game.Good, Age: 2600 * time.Millisecond}, shrink)
	s.Miss()
	s.Miss()

	m, sd := s.MeanStdDev()
	if m != -300*time.Millisecond {
		t.Fatalf("expected mean -300ms, got %v", m)
	}
	expected := math.Sqrt2 * 100
	if math.Abs(float64(sd)/float64(time.Millisecond)-expected) > 0.001 {
		t.Fatalf("expected stdev %vms, got %v", expected, sd)
	}
	if s.Count(game.Great) != 1 || s.Count(game.Good) != 1 || s.Count(game.Miss) != 2 || s.Hits() != 2 {
		t.Fatal("unexpected counts")
	}

	s.Reset()
	if s.Hits() != 0 || s.Count(game.Miss) != 0 {
		t.Fatal("reset left counts behind")
	}
}
