package session

import (
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
)

// Sink is one playback of the song.
type Sink interface {
	Play() error
	Stop()
	SetVolume(v float64)
	IsPlaying() bool
	Position() time.Duration
}

type Effects interface {
	Play(j game.Judgement)
}
