package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var (
	ErrNotInitialized = errors.New("speaker not initialized")
	ErrEmpty          = errors.New("track has no audio")
)

var (
	initialized atomic.Bool
	rate        beep.SampleRate
)

// Init opens the speaker at the song's sample rate with a buffer of one
// frame at 60hz.
func Init(format beep.Format) error {
	if initialized.Load() {
		return nil
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to initialize speaker: %w", err)
	}
	rate = format.SampleRate
	initialized.Store(true)
	return nil
}

// Load decodes a whole wav file into memory so several tracks can play it.
func Load(file string) (*beep.Buffer, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// Track is one playback of a buffered song with its own volume.
type Track struct {
	buffer *beep.Buffer

	stream beep.StreamSeeker
	ctrl   *beep.Ctrl
	volume *effects.Volume
	gain   float64

	playing    atomic.Bool
	generation atomic.Uint64
}

func NewTrack(buffer *beep.Buffer) *Track {
	return &Track{buffer: buffer, gain: 1}
}

// Play starts the track from the beginning, replacing any earlier playback.
func (t *Track) Play() error {
	if !initialized.Load() {
		return ErrNotInitialized
	}
	if nil == t.buffer || t.buffer.Len() == 0 {
		return ErrEmpty
	}
	t.Stop()

	speaker.Lock()
	gen := t.generation.Load()
	t.stream = t.buffer.Streamer(0, t.buffer.Len())
	t.volume = &effects.Volume{Streamer: t.stream, Base: 2}
	setGain(t.volume, t.gain)
	t.ctrl = &beep.Ctrl{Streamer: t.volume}
	ctrl := t.ctrl
	speaker.Unlock()

	t.playing.Store(true)
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		// A stopped or restarted track must not clear the newer playback
		if t.generation.Load() == gen {
			t.playing.Store(false)
		}
	})))
	return nil
}

func (t *Track) Stop() {
	t.generation.Add(1)
	t.playing.Store(false)
	if !initialized.Load() {
		t.ctrl = nil
		return
	}
	speaker.Lock()
	if nil != t.ctrl {
		t.ctrl.Streamer = nil
	}
	speaker.Unlock()
}

// SetVolume takes a linear gain, 0 is silent.
func (t *Track) SetVolume(v float64) {
	if !initialized.Load() {
		t.gain = v
		return
	}
	speaker.Lock()
	t.gain = v
	if nil != t.volume {
		setGain(t.volume, v)
	}
	speaker.Unlock()
}

func (t *Track) IsPlaying() bool {
	return t.playing.Load()
}

// Position is how far the current playback has progressed.
func (t *Track) Position() time.Duration {
	if !initialized.Load() || nil == t.stream {
		return 0
	}
	speaker.Lock()
	p := t.stream.Position()
	speaker.Unlock()
	return t.buffer.Format().SampleRate.D(p)
}

func (t *Track) Duration() time.Duration {
	if nil == t.buffer {
		return 0
	}
	return t.buffer.Format().SampleRate.D(t.buffer.Len())
}

func setGain(v *effects.Volume, gain float64) {
	v.Silent = gain <= 0
	if v.Silent {
		v.Volume = 0
		return
	}
	v.Volume = math.Log2(gain)
}
