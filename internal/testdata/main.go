package testdata

import (
	"fmt"
	"os"
	"strings"

	"git.lost.host/meutraa/handbeat/internal/game"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Constant returns n samples of the same amplitude.
func Constant(n int, amplitude float64) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = amplitude
	}
	return samples
}

// Hand returns a hand with every joint at the given normalized position.
func Hand(x, y float64) game.Hand {
	h := make(game.Hand, game.Landmarks)
	for i := range h {
		h[i] = game.Point{X: x, Y: y}
	}
	return h
}

// HandAt places the hand so the tracked joint lands on a screen position.
func HandAt(p game.Point, t *game.Tuning) game.Hand {
	return Hand(p.X/t.Width, p.Y/t.Height)
}

// WriteWAV writes 16 bit mono PCM.
func WriteWAV(path string, sampleRate int, samples []int) error {
	f, err := os.Create(path)
	if nil != err {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); nil != err {
		return err
	}
	return enc.Close()
}

// Message renders a landmark message the way the pose sidecar sends it.
func Message(ms float64, hands ...game.Hand) string {
	hs := make([]string, len(hands))
	for i, h := range hands {
		ps := make([]string, len(h))
		for j, p := range h {
			ps[j] = fmt.Sprintf("[%v,%v]", p.X, p.Y)
		}
		hs[i] = "[" + strings.Join(ps, ",") + "]"
	}
	return fmt.Sprintf(`{"t":%v,"hands":[%v]}`, ms, strings.Join(hs, ","))
}
