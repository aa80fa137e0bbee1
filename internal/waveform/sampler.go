package waveform

import "time"

// Sampler indexes a waveform by elapsed playback time.
//
// The index is elapsed / scale * rate. With scale at one second this is the
// true sample position; the default scale is longer so notes are sparser
// than the audio and the scale works as a density knob.
type Sampler struct {
	samples []float64
	rate    float64
	scale   time.Duration
}

func NewSampler(samples []float64, rate float64, scale time.Duration) *Sampler {
	return &Sampler{
		samples: samples,
		rate:    rate,
		scale:   scale,
	}
}

func (s *Sampler) Index(elapsed time.Duration) int {
	return int(float64(elapsed) / float64(s.scale) * s.rate)
}

// SampleAt returns false once elapsed runs past the end of the waveform.
func (s *Sampler) SampleAt(elapsed time.Duration) (float64, bool) {
	if elapsed < 0 || s.scale <= 0 {
		return 0, false
	}
	i := s.Index(elapsed)
	if i >= len(s.samples) {
		return 0, false
	}
	return s.samples[i], true
}

func (s *Sampler) Len() int {
	return len(s.samples)
}

// Duration is the elapsed time at which SampleAt runs out.
func (s *Sampler) Duration() time.Duration {
	if s.rate <= 0 {
		return 0
	}
	return time.Duration(float64(len(s.samples)) / s.rate * float64(s.scale))
}
