package main

import (
	"context"
	"fmt"
	"image/color"
	"math/rand"
	"strings"
	"time"

	"git.lost.host/meutraa/handbeat/internal/audio"
	"git.lost.host/meutraa/handbeat/internal/config"
	"git.lost.host/meutraa/handbeat/internal/game"
	"git.lost.host/meutraa/handbeat/internal/input"
	"git.lost.host/meutraa/handbeat/internal/render"
	"git.lost.host/meutraa/handbeat/internal/session"
	"git.lost.host/meutraa/handbeat/internal/theme"
	"git.lost.host/meutraa/handbeat/internal/tracking"
	"git.lost.host/meutraa/handbeat/internal/waveform"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Frames a judgement stays on screen, half a second at 60hz
const decorationFrames = 30

type Program struct {
	Renderer  render.Renderer
	Theme     theme.Theme
	Input     input.Source
	Source    tracking.Source
	Estimator tracking.Estimator
	Session   *session.Controller

	tuning  game.Tuning
	log     *zap.Logger
	closers []func() error

	hands  []game.Hand
	status string
	err    error
}

func (p *Program) Init(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	p.tuning = cfg.Tuning()
	p.log = log
	p.Theme = &theme.DefaultTheme{}

	// The waveform drives spawning, the beep buffer is what is heard
	var provider waveform.Provider = &waveform.DefaultProvider{}
	wave, err := provider.Load(cfg.Song)
	if nil != err {
		return err
	}
	sampler := waveform.NewSampler(wave.Samples, cfg.SampleRate, cfg.SampleScale)
	log.Info("loaded waveform",
		zap.String("song", cfg.Song),
		zap.Int("samples", sampler.Len()),
		zap.Int("rate", wave.SampleRate),
		zap.Int("channels", wave.Channels),
		zap.Duration("spawning", sampler.Duration()),
	)

	buffer, err := audio.Load(cfg.Song)
	if nil != err {
		return fmt.Errorf("unable to load audio: %w", err)
	}
	if err := audio.Init(buffer.Format()); nil != err {
		return err
	}
	effects, err := audio.LoadEffects(map[game.Judgement]string{
		game.Great: cfg.GreatSound,
		game.Good:  cfg.GoodSound,
	})
	if nil != err {
		return err
	}

	if err := p.openSource(ctx, cfg); nil != err {
		return err
	}
	p.Estimator = &tracking.Landmarks{Mirror: cfg.Mirror}

	if err := p.openDisplay(cfg); nil != err {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("spawn seed", zap.Int64("seed", seed))

	p.Session = session.New(p.tuning, sampler, audio.NewTrack(buffer), audio.NewTrack(buffer),
		session.WithLogger(log),
		session.WithEffects(effects),
		session.WithRand(rand.New(rand.NewSource(seed))),
	)
	p.closers = append(p.closers, func() error {
		p.Session.Close()
		return nil
	})
	return nil
}

func (p *Program) openSource(ctx context.Context, cfg *config.Config) error {
	switch {
	case cfg.Landmarks == "":
		p.log.Warn("no landmark source, hands will not be tracked")
		p.Source = tracking.None{}
	case strings.HasPrefix(cfg.Landmarks, "ws://"), strings.HasPrefix(cfg.Landmarks, "wss://"):
		feed, err := tracking.Dial(ctx, cfg.Landmarks, cfg.MaxAge, p.log)
		if nil != err {
			return err
		}
		p.Source = feed
		p.closers = append(p.closers, feed.Close)
	default:
		replay, err := tracking.LoadReplay(cfg.Landmarks, cfg.MaxAge)
		if nil != err {
			return fmt.Errorf("unable to load replay: %w", err)
		}
		p.log.Info("loaded replay", zap.String("file", cfg.Landmarks), zap.Int("messages", replay.Len()))
		p.Source = replay
	}
	return nil
}

func (p *Program) openDisplay(cfg *config.Config) error {
	switch cfg.Display {
	case config.DisplayTcell:
		screen, err := tcell.NewScreen()
		if nil != err {
			return fmt.Errorf("unable to create screen: %w", err)
		}
		p.Renderer = render.NewTcellRenderer(screen, p.tuning.Width, p.tuning.Height)
		if err := p.Renderer.Init(); nil != err {
			return err
		}
		p.closers = append(p.closers, p.Renderer.Deinit)
		terminal := input.NewTerminal(screen)
		p.Input = terminal
		p.closers = append(p.closers, terminal.Close)
	default:
		keys, err := input.OpenKeyboard()
		if nil != err {
			return err
		}
		p.Input = keys
		p.closers = append(p.closers, keys.Close)

		p.Renderer = render.NewDefaultRenderer(p.tuning.Width, p.tuning.Height)
		if err := p.Renderer.Init(); nil != err {
			return err
		}
		p.closers = append(p.closers, p.Renderer.Deinit)
	}
	return nil
}

// Deinit releases everything Init opened, newest first.
func (p *Program) Deinit() error {
	var first error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); nil != err && nil == first {
			first = err
		}
	}
	p.closers = nil
	return first
}

// Frame runs one tick of the game loop, returning false to quit.
func (p *Program) Frame(now time.Time) bool {
	for _, action := range p.Input.Poll() {
		switch action {
		case input.Quit:
			return false
		case input.Start:
			if err := p.Session.Start(now); nil != err {
				p.log.Debug("start ignored", zap.Error(err))
				continue
			}
			p.status = ""
		}
	}

	var background *tracking.Frame
	f, tracked := p.Source.NextFrame()
	if tracked {
		p.hands = p.Estimator.Detect(f)
		background = &f
	} else {
		p.hands = nil
	}

	frame := p.Session.Step(now, p.hands, tracked)
	if nil != frame.Err {
		p.status = frame.Err.Error()
	}

	p.Render(frame, background)
	if err := p.Renderer.Flush(); nil != err {
		p.err = err
		return false
	}
	return true
}

func (p *Program) Render(frame session.Frame, camera *tracking.Frame) {
	canvas := p.Renderer.Canvas()
	cols, rows := canvas.Size()
	th := p.Theme

	if nil != camera {
		canvas.Background(camera.Image)
	}

	for _, v := range frame.Notes {
		canvas.Circle(v.Note.Position, v.Outer, th.RingSym(), th.Ring(v.Ring), false)
		canvas.Circle(v.Note.Position, v.Note.InnerRadius, th.InnerSym(), th.Inner(), true)
	}

	for _, hand := range p.hands {
		joint, ok := hand.Joint(p.tuning.Joint)
		if !ok {
			continue
		}
		canvas.Circle(joint.Scale(p.tuning.Width, p.tuning.Height), 20, th.JointSym(), th.Joint(), true)
	}

	for _, hit := range frame.Hits {
		text := hit.Judgement.String() + "!"
		col, row := canvas.Cell(hit.Note.Position)
		p.Renderer.AddDecoration(col-len(text)/2, row, text, th.Judgement(hit.Judgement), decorationFrames)
	}

	canvas.Text(1, 0, fmt.Sprintf("Score: %v", frame.Score.Score), th.Text())
	if frame.Score.Combo > 0 {
		canvas.Text(1, 1, fmt.Sprintf("%vcombo!!", frame.Score.Combo), th.Judgement(game.Great))
	}

	switch frame.Phase {
	case game.Countdown:
		centred(canvas, cols/2, rows/2, frame.Countdown, th.Text())
	case game.Idle:
		centred(canvas, cols/2, rows/2, "Press enter to start", th.Text())
	case game.Ended:
		centred(canvas, cols/2, rows/2, "Press enter to play again", th.Text())
	}

	p.renderStats(canvas, cols)
	if p.status != "" {
		canvas.Text(1, rows-1, p.status, th.Judgement(game.Miss))
	}
}

func (p *Program) renderStats(canvas *render.Canvas, cols int) {
	stats := p.Session.Stats()
	col := cols - 20
	for i, j := range game.Judgements {
		canvas.Text(col, i, fmt.Sprintf("%6s: %6v", j, stats.Count(j)), p.Theme.Judgement(j))
	}
	mean, stdev := stats.MeanStdDev()
	canvas.Text(col, len(game.Judgements), fmt.Sprintf("  Mean: %6v", mean.Milliseconds()), p.Theme.Text())
	canvas.Text(col, len(game.Judgements)+1, fmt.Sprintf(" Stdev: %6v", stdev.Milliseconds()), p.Theme.Text())
}

func centred(canvas *render.Canvas, col, row int, text string, c color.RGBA) {
	canvas.Text(col-len(text)/2, row, text, c)
}
