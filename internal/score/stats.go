package score

import (
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
	"gonum.org/v1/gonum/stat"
)

// Stats counts judgements and tracks how far hits land from the moment the
// outer ring collapses. Negative offsets are early.
type Stats struct {
	counts  map[game.Judgement]int
	offsets []float64 // Milliseconds
}

func NewStats() *Stats {
	return &Stats{counts: make(map[game.Judgement]int)}
}

func (s *Stats) Record(hit *Hit, shrink time.Duration) {
	s.counts[hit.Judgement]++
	s.offsets = append(s.offsets, float64(hit.Age-shrink)/float64(time.Millisecond))
}

func (s *Stats) Miss() {
	s.counts[game.Miss]++
}

func (s *Stats) Count(j game.Judgement) int {
	return s.counts[j]
}

func (s *Stats) Hits() int {
	return len(s.offsets)
}

// MeanStdDev of the hit offsets. The deviation needs two hits.
func (s *Stats) MeanStdDev() (mean, stdev time.Duration) {
	switch len(s.offsets) {
	case 0:
		return 0, 0
	case 1:
		return ms(s.offsets[0]), 0
	}
	m, sd := stat.MeanStdDev(s.offsets, nil)
	return ms(m), ms(sd)
}

func (s *Stats) Reset() {
	s.counts = make(map[game.Judgement]int)
	s.offsets = s.offsets[:0]
}

func ms(v float64) time.Duration {
	return time.Duration(v * float64(time.Millisecond))
}
