package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/handbeat/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Effects plays a short sound for each judgement.
type Effects struct {
	sounds map[game.Judgement]*beep.Buffer
}

// LoadEffects decodes mp3 or wav files and resamples them to the speaker.
// Missing paths are skipped.
func LoadEffects(files map[game.Judgement]string) (*Effects, error) {
	e := &Effects{sounds: make(map[game.Judgement]*beep.Buffer)}
	for j, file := range files {
		if file == "" {
			continue
		}
		buffer, err := loadEffect(file)
		if nil != err {
			return nil, fmt.Errorf("unable to load %v sound: %w", j, err)
		}
		e.sounds[j] = buffer
	}
	return e, nil
}

func loadEffect(file string) (*beep.Buffer, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported sound %v", file)
	}
	if nil != err {
		f.Close()
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	target := format
	if initialized.Load() && rate != format.SampleRate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
		target.SampleRate = rate
	}
	buffer := beep.NewBuffer(target)
	buffer.Append(s)
	return buffer, nil
}

func (e *Effects) Play(j game.Judgement) {
	buffer, ok := e.sounds[j]
	if !ok || !initialized.Load() {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}
