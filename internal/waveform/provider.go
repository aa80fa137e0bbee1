package waveform

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

var ErrInvalidFile = errors.New("not a wav file")

// Waveform is the decoded amplitude envelope of a song. Samples are
// interleaved across channels and normalized to [-1, 1].
type Waveform struct {
	Samples    []float64
	SampleRate int
	Channels   int
	BitDepth   int
}

type Provider interface {
	Load(file string) (*Waveform, error)
}

type DefaultProvider struct{}

func (p *DefaultProvider) Load(file string) (*Waveform, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, fmt.Errorf("unable to open %v: %w", file, err)
	}
	defer f.Close()

	w, err := Decode(f)
	if nil != err {
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	return w, nil
}

func Decode(r io.ReadSeeker) (*Waveform, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrInvalidFile
	}
	buf, err := decoder.FullPCMBuffer()
	if nil != err {
		return nil, err
	}

	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = int(decoder.BitDepth)
	}
	if depth == 0 {
		return nil, fmt.Errorf("unknown bit depth: %w", ErrInvalidFile)
	}

	return &Waveform{
		Samples:    normalize(buf.Data, depth),
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		BitDepth:   depth,
	}, nil
}

func normalize(data []int, depth int) []float64 {
	samples := make([]float64, len(data))
	// 8 bit wav is unsigned
	if depth == 8 {
		for i, v := range data {
			samples[i] = clamp(float64(v-128) / 128)
		}
		return samples
	}
	factor := float64(int64(1) << (depth - 1))
	for i, v := range data {
		samples[i] = clamp(float64(v) / factor)
	}
	return samples
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
