package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"git.lost.host/meutraa/handbeat/internal/field"
	"git.lost.host/meutraa/handbeat/internal/game"
	"git.lost.host/meutraa/handbeat/internal/score"
	"git.lost.host/meutraa/handbeat/internal/spawn"
	"git.lost.host/meutraa/handbeat/internal/waveform"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotStartable = errors.New("a session is already running")

// State is the whole mutable state of a session.
type State struct {
	Phase          game.Phase
	CountdownStart time.Time
	MusicStart     time.Time
	Score          game.ScoreState
	ID             uuid.UUID
}

// Frame is everything the renderer needs from one step.
type Frame struct {
	Phase     game.Phase
	Countdown string
	Notes     []field.Visible
	Hits      []score.Hit
	Misses    int
	Score     game.ScoreState
	Err       error // Playback failed and the session was reset
}

// Controller drives a session through its phases. Every method except the
// delayed audio start runs on the caller's goroutine.
type Controller struct {
	tuning  game.Tuning
	log     *zap.Logger
	sampler *waveform.Sampler
	spawner *spawn.Spawner
	field   *field.Field
	scorer  score.Scorer
	stats   *score.Stats
	effects Effects

	// The muted transport is the rhythm clock; the track is what is heard.
	transport Sink
	track     Sink

	state State

	after    func(time.Duration) <-chan time.Time
	cancel   context.CancelFunc
	pending  sync.WaitGroup
	failures chan error
}

type Option func(*Controller)

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

func WithEffects(e Effects) Option {
	return func(c *Controller) { c.effects = e }
}

func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.spawner = spawn.New(c.tuning, rng) }
}

func WithScorer(s score.Scorer) Option {
	return func(c *Controller) { c.scorer = s }
}

func New(tuning game.Tuning, sampler *waveform.Sampler, transport, track Sink, options ...Option) *Controller {
	c := &Controller{
		tuning:    tuning,
		log:       zap.NewNop(),
		sampler:   sampler,
		spawner:   spawn.New(tuning, rand.New(rand.NewSource(time.Now().UnixNano()))),
		field:     field.New(tuning),
		scorer:    &score.DefaultScorer{Tuning: tuning},
		stats:     score.NewStats(),
		transport: transport,
		track:     track,
		after:     time.After,
		failures:  make(chan error, 1),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Stats() *score.Stats {
	return c.stats
}

func (c *Controller) Field() *field.Field {
	return c.field
}

// Start begins the countdown. It only works from Idle or Ended.
func (c *Controller) Start(now time.Time) error {
	switch c.state.Phase {
	case game.Countdown, game.Playing:
		return ErrNotStartable
	}

	c.halt()
	c.field.Clear()
	c.spawner.Reset()
	c.stats.Reset()
	c.state = State{
		Phase:          game.Countdown,
		CountdownStart: now,
		ID:             uuid.New(),
	}
	c.log.Info("countdown", zap.Stringer("session", c.state.ID))
	return nil
}

// Step runs one frame. Hands are only judged when tracked is true, that is
// when a camera frame was available this tick.
func (c *Controller) Step(now time.Time, hands []game.Hand, tracked bool) Frame {
	var frame Frame

	select {
	case err := <-c.failures:
		frame.Err = c.fail(err)
	default:
	}

	switch c.state.Phase {
	case game.Countdown:
		step := int(now.Sub(c.state.CountdownStart) / time.Second)
		if step < len(c.tuning.Countdown) {
			frame.Countdown = c.tuning.Countdown[step]
		} else if err := c.play(now); nil != err {
			frame.Err = c.fail(err)
		}
	case game.Playing:
		if !c.transport.IsPlaying() {
			c.state.Phase = game.Ended
			c.log.Info("ended",
				zap.Stringer("session", c.state.ID),
				zap.Int("score", c.state.Score.Score),
				zap.Int("great", c.stats.Count(game.Great)),
				zap.Int("good", c.stats.Count(game.Good)),
				zap.Int("miss", c.stats.Count(game.Miss)),
			)
			break
		}
		c.spawn(now)
	}

	update := c.field.Update(now)
	for range update.Expired {
		// Once per expired note, not once per frame
		c.state.Score.Miss()
		c.stats.Miss()
	}
	frame.Misses = len(update.Expired)

	if c.state.Phase == game.Playing && tracked {
		result := c.scorer.Judge(c.field.Notes(), hands, now)
		c.field.Remove(result.IDs()...)
		for i := range result.Hits {
			hit := &result.Hits[i]
			c.state.Score.Hit(c.tuning.Points(hit.Judgement))
			c.stats.Record(hit, c.tuning.ShrinkDuration)
			if nil != c.effects {
				c.effects.Play(hit.Judgement)
			}
		}
		frame.Hits = result.Hits
		frame.Notes = visible(update.Visible, result.Hits)
	} else {
		frame.Notes = update.Visible
	}

	frame.Phase = c.state.Phase
	frame.Score = c.state.Score
	return frame
}

func (c *Controller) spawn(now time.Time) {
	amplitude, ok := c.sampler.SampleAt(c.transport.Position())
	if !ok {
		return
	}
	if note, ok := c.spawner.Tick(now, amplitude); ok {
		c.field.Add(note)
		c.log.Debug("spawn",
			zap.Uint64("note", note.ID),
			zap.Float64("x", note.Position.X),
			zap.Float64("y", note.Position.Y),
			zap.Float64("radius", note.OuterRadius),
		)
	}
}

// play starts the muted transport now and the audible track after the
// compensation delay.
func (c *Controller) play(now time.Time) error {
	c.transport.SetVolume(0)
	if err := c.transport.Play(); nil != err {
		return fmt.Errorf("unable to start transport: %w", err)
	}
	c.state.Phase = game.Playing
	c.state.MusicStart = now

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.pending.Add(1)
	go c.delayedStart(ctx, c.after(c.tuning.CompensationDelay))

	c.log.Info("playing", zap.Stringer("session", c.state.ID), zap.Duration("delay", c.tuning.CompensationDelay))
	return nil
}

// delayedStart only touches the track, never game state.
func (c *Controller) delayedStart(ctx context.Context, fire <-chan time.Time) {
	defer c.pending.Done()

	select {
	case <-ctx.Done():
		return
	case <-fire:
	}
	if nil != ctx.Err() {
		return
	}

	c.track.SetVolume(c.tuning.Volume)
	if err := c.track.Play(); nil != err {
		select {
		case c.failures <- fmt.Errorf("unable to start track: %w", err):
		default:
		}
	}
}

// halt cancels a pending delayed start, waits for it to finish and stops
// both playbacks.
func (c *Controller) halt() {
	if nil != c.cancel {
		c.cancel()
		c.cancel = nil
	}
	c.pending.Wait()
	c.track.Stop()
	c.transport.Stop()

	// Drop a failure from a session that is being replaced
	select {
	case <-c.failures:
	default:
	}
}

func (c *Controller) fail(err error) error {
	c.log.Error("playback failed", zap.Stringer("session", c.state.ID), zap.Error(err))
	c.halt()
	c.field.Clear()
	c.spawner.Reset()
	c.state.Phase = game.Idle
	return err
}

func (c *Controller) Close() {
	c.halt()
}

// visible drops the notes hit this frame.
func visible(notes []field.Visible, hits []score.Hit) []field.Visible {
	if len(hits) == 0 {
		return notes
	}
	hit := make(map[uint64]bool, len(hits))
	for _, h := range hits {
		hit[h.Note.ID] = true
	}
	vs := make([]field.Visible, 0, len(notes))
	for _, v := range notes {
		if !hit[v.Note.ID] {
			vs = append(vs, v)
		}
	}
	return vs
}
