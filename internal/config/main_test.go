package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
)

func song(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "song.wav")
	if err := os.WriteFile(path, nil, 0o644); nil != err {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	path := song(t)
	c, err := Parse([]string{path})
	if nil != err {
		t.Fatal("unable to parse", err)
	}
	if c.Song != path || c.Display != DisplayANSI || c.SampleScale != 1500*time.Millisecond || c.SampleRate != 44100 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.FramePeriod() != time.Second/60 {
		t.Fatalf("expected a 60Hz frame period, got %v", c.FramePeriod())
	}

	got, want := c.Tuning(), game.DefaultTuning()
	if got.Threshold != want.Threshold || got.ShrinkDuration != want.ShrinkDuration ||
		got.ChainWindow != want.ChainWindow || got.Joint != want.Joint ||
		got.CompensationDelay != want.CompensationDelay || got.Volume != want.Volume ||
		len(got.Countdown) != len(want.Countdown) {
		t.Fatalf("expected default tuning, got %+v", got)
	}
}

func TestFlags(t *testing.T) {
	c, err := Parse([]string{
		song(t),
		"-t", "0.5",
		"--shrink", "2s",
		"--great-window", "250ms",
		"--joint", "9",
		"--hit-margin", "20",
		"--display", "tcell",
		"--landmarks", "ws://localhost:8765",
		"--mirror",
		"--seed", "42",
	})
	if nil != err {
		t.Fatal("unable to parse", err)
	}
	tuning := c.Tuning()
	if tuning.Threshold != 0.5 || tuning.ShrinkDuration != 2*time.Second ||
		tuning.GreatWindow != 250*time.Millisecond || tuning.Joint != game.JointMiddleFingerBase ||
		tuning.HitMargin != 20 {
		t.Fatalf("unexpected tuning %+v", tuning)
	}
	if c.Display != DisplayTcell || c.Landmarks != "ws://localhost:8765" || !c.Mirror || c.Seed != 42 {
		t.Fatalf("unexpected config %+v", c)
	}
}

var invalid = map[string][]string{
	"joint":        {"--joint", "21"},
	"great window": {"--great-window", "4s"},
	"lifetime":     {"--max-lifetime", "1s"},
	"refresh":      {"--refresh-rate", "0"},
	"screen":       {"--width", "0"},
	"narrow":       {"--width", "0.5"},
	"flat":         {"--height", "0.9"},
	"threshold":    {"--threshold=-1"},
}

func TestInvalid(t *testing.T) {
	path := song(t)
	for name, args := range invalid {
		if _, err := Parse(append([]string{path}, args...)); !errors.Is(err, ErrInvalid) {
			t.Errorf("%v: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string][]string{
		"no song":      {},
		"missing song": {filepath.Join(t.TempDir(), "missing.wav")},
		"display":      {song(t), "--display", "opengl"},
		"duration":     {song(t), "--shrink", "soon"},
	}
	for name, args := range tests {
		if _, err := Parse(args); nil == err {
			t.Errorf("%v: expected an error", name)
		}
	}
}
