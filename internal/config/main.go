package config

import (
	"errors"
	"fmt"
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	DisplayANSI  = "ansi"
	DisplayTcell = "tcell"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Song        string
	SampleScale time.Duration
	SampleRate  float64
	RefreshRate float64
	Display     string
	Landmarks   string
	MaxAge      time.Duration
	Mirror      bool
	GreatSound  string
	GoodSound   string
	LogFile     string
	LogLevel    string
	Seed        int64

	tuning game.Tuning
}

func (c *Config) Tuning() game.Tuning {
	return c.tuning
}

// FramePeriod is the fixed step of the game loop.
func (c *Config) FramePeriod() time.Duration {
	return time.Duration(float64(time.Second) / c.RefreshRate)
}

func Parse(args []string) (*Config, error) {
	c := &Config{tuning: game.DefaultTuning()}
	t := &c.tuning

	app := kingpin.New("handbeat", "Hit the shrinking circles with your hands to the beat of a song.")
	app.Version("0.1.0")
	app.Arg("song", "WAV file to play").Required().ExistingFileVar(&c.Song)

	app.Flag("width", "Screen space width").Default("800").Float64Var(&t.Width)
	app.Flag("height", "Screen space height").Default("600").Float64Var(&t.Height)
	app.Flag("threshold", "Amplitude required to spawn a note").Default("0.3").Short('t').Float64Var(&t.Threshold)
	app.Flag("sample-scale", "Playback time mapped onto one second of samples").Default("1500ms").DurationVar(&c.SampleScale)
	app.Flag("sample-rate", "Samples per sample-scale").Default("44100").Float64Var(&c.SampleRate)
	app.Flag("min-interval", "Minimum gap between spawns").Default("1s").DurationVar(&t.MinInterval)
	app.Flag("chain-window", "Spawns within this gap continue a chain").Default("1400ms").DurationVar(&t.ChainWindow)
	app.Flag("chain-offset", "Distance between chained notes").Default("100").Float64Var(&t.ChainOffset)
	app.Flag("wrap-inset", "Where a chain re-enters the screen").Default("100").Float64Var(&t.WrapInset)
	app.Flag("shrink", "Time for a ring to collapse").Default("3s").Short('s').DurationVar(&t.ShrinkDuration)
	app.Flag("max-lifetime", "Hard limit on how long a note may live").Default("60s").DurationVar(&t.MaxLifetime)
	app.Flag("great-window", "Hits this close to collapse are great").Default("500ms").Short('g').DurationVar(&t.GreatWindow)
	app.Flag("hit-margin", "Extra radius around the inner circle").Default("0").Short('m').Float64Var(&t.HitMargin)
	app.Flag("joint", "Hand landmark used to hit notes").Default("8").Short('j').IntVar(&t.Joint)
	app.Flag("band", "Half width of the on-target ring band").Default("20").Float64Var(&t.Band)
	app.Flag("delay", "Audio latency compensation").Default("3s").Short('d').DurationVar(&t.CompensationDelay)
	app.Flag("volume", "Music volume").Default("0.1").Short('v').Float64Var(&t.Volume)
	app.Flag("refresh-rate", "Game loop rate").Default("60").Short('R').Float64Var(&c.RefreshRate)
	app.Flag("display", "Terminal backend").Default(DisplayANSI).EnumVar(&c.Display, DisplayANSI, DisplayTcell)
	app.Flag("landmarks", "Landmark websocket URL or .jsonl replay file").Short('l').StringVar(&c.Landmarks)
	app.Flag("max-age", "Landmarks older than this are ignored").Default("200ms").DurationVar(&c.MaxAge)
	app.Flag("mirror", "Mirror landmarks horizontally").BoolVar(&c.Mirror)
	app.Flag("great-sound", "Sound played on a great hit").ExistingFileVar(&c.GreatSound)
	app.Flag("good-sound", "Sound played on a good hit").ExistingFileVar(&c.GoodSound)
	app.Flag("log-file", "Write logs to this file").StringVar(&c.LogFile)
	app.Flag("log-level", "Log level").Default("info").StringVar(&c.LogLevel)
	app.Flag("seed", "Spawn position seed, 0 uses the clock").Int64Var(&c.Seed)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	if err := c.validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	t := c.tuning
	switch {
	case t.Width < 1 || t.Height < 1:
		return fmt.Errorf("%w: screen must be at least one unit wide and high", ErrInvalid)
	case t.Threshold < 0:
		return fmt.Errorf("%w: threshold must not be negative", ErrInvalid)
	case c.SampleScale <= 0 || c.SampleRate <= 0:
		return fmt.Errorf("%w: sample scale and rate must be positive", ErrInvalid)
	case t.ShrinkDuration <= 0:
		return fmt.Errorf("%w: shrink must be positive", ErrInvalid)
	case t.GreatWindow < 0 || t.GreatWindow > t.ShrinkDuration:
		return fmt.Errorf("%w: great window must be within the shrink duration", ErrInvalid)
	case t.MaxLifetime < t.ShrinkDuration:
		return fmt.Errorf("%w: max lifetime must not be shorter than shrink", ErrInvalid)
	case t.Joint < 0 || t.Joint >= game.Landmarks:
		return fmt.Errorf("%w: joint must be between 0 and %v", ErrInvalid, game.Landmarks-1)
	case t.HitMargin < 0 || t.Band < 0:
		return fmt.Errorf("%w: hit margin and band must not be negative", ErrInvalid)
	case t.CompensationDelay < 0:
		return fmt.Errorf("%w: delay must not be negative", ErrInvalid)
	case t.Volume < 0:
		return fmt.Errorf("%w: volume must not be negative", ErrInvalid)
	case c.RefreshRate <= 0:
		return fmt.Errorf("%w: refresh rate must be positive", ErrInvalid)
	}
	return nil
}
