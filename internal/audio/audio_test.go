package audio

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/handbeat/internal/game"
	"git.lost.host/meutraa/handbeat/internal/testdata"
	"github.com/faiface/beep/effects"
)

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.wav")
	if err := testdata.WriteWAV(file, 8000, make([]int, 4000)); nil != err {
		t.Fatal("unable to write wav", err)
	}

	buffer, err := Load(file)
	if nil != err {
		t.Fatal("unable to load", err)
	}
	if buffer.Len() != 4000 {
		t.Fatalf("expected 4000 samples, got %v", buffer.Len())
	}

	track := NewTrack(buffer)
	if d := track.Duration(); d != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %v", d)
	}
	if p := track.Position(); p != 0 {
		t.Fatalf("expected position 0 before playing, got %v", p)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.wav")); nil == err {
		t.Fatal("expected an error for a missing file")
	}
}

func TestPlayWithoutSpeaker(t *testing.T) {
	track := NewTrack(nil)
	if err := track.Play(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if track.IsPlaying() {
		t.Fatal("a failed track should not be playing")
	}
	track.SetVolume(0.5)
	track.Stop()
	if track.IsPlaying() {
		t.Fatal("a stopped track should not be playing")
	}
}

var gainTests = map[float64]float64{
	1:    0,
	0.5:  -1,
	0.25: -2,
	2:    1,
}

func TestSetGain(t *testing.T) {
	for gain, expected := range gainTests {
		v := &effects.Volume{Base: 2}
		setGain(v, gain)
		if v.Silent || math.Abs(v.Volume-expected) > 1e-9 {
			t.Errorf("gain %v: expected %v, got %v (silent %v)", gain, expected, v.Volume, v.Silent)
		}
	}
	v := &effects.Volume{Base: 2}
	setGain(v, 0)
	if !v.Silent {
		t.Fatal("zero gain should be silent")
	}
}

func TestLoadEffects(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "great.wav")
	if err := testdata.WriteWAV(file, 8000, make([]int, 800)); nil != err {
		t.Fatal("unable to write wav", err)
	}

	e, err := LoadEffects(map[game.Judgement]string{game.Great: file, game.Good: ""})
	if nil != err {
		t.Fatal("unable to load effects", err)
	}
	if _, ok := e.sounds[game.Great]; !ok {
		t.Fatal("expected the great sound")
	}
	if _, ok := e.sounds[game.Good]; ok {
		t.Fatal("an empty path should be skipped")
	}
	// Without a speaker this is a no-op
	e.Play(game.Great)

	if _, err := LoadEffects(map[game.Judgement]string{game.Good: filepath.Join(dir, "good.ogg")}); nil == err {
		t.Fatal("expected an error for an unsupported sound")
	}
}
