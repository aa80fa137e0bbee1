package game

// ScoreState is the running score of a session.
type ScoreState struct {
	Score int
	Combo int
}

func (s *ScoreState) Hit(points int) {
	s.Score += points
	s.Combo++
}

func (s *ScoreState) Miss() {
	s.Combo = 0
}

func (s *ScoreState) Reset() {
	s.Score = 0
	s.Combo = 0
}
