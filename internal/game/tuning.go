package game

import "time"

// Tuning holds every constant of the timing and judgement engine.
type Tuning struct {
	Width, Height float64 // Screen space

	// Spawning
	Threshold   float64       // Amplitude magnitude that must be exceeded
	MinInterval time.Duration // Minimum gap between two spawns
	ChainWindow time.Duration // Spawns before this gap continue the previous chain
	ChainOffset float64       // Distance between chained notes
	WrapInset   float64       // Where a chain re-enters after leaving the screen

	// Note geometry
	RadiusBase  float64
	RadiusScale float64
	InnerRatio  float64

	// Lifecycle
	ShrinkDuration time.Duration
	MaxLifetime    time.Duration
	Band           float64 // Half width of the on-target ring band

	// Judging
	GreatWindow time.Duration
	HitMargin   float64
	Joint       int
	GreatPoints int
	GoodPoints  int

	// Session
	Countdown         []string
	CompensationDelay time.Duration
	Volume            float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Width:             800,
		Height:            600,
		Threshold:         0.3,
		MinInterval:       1000 * time.Millisecond,
		ChainWindow:       1400 * time.Millisecond,
		ChainOffset:       100,
		WrapInset:         100,
		RadiusBase:        300,
		RadiusScale:       100,
		InnerRatio:        0.1,
		ShrinkDuration:    3 * time.Second,
		MaxLifetime:       60 * time.Second,
		Band:              20,
		GreatWindow:       500 * time.Millisecond,
		HitMargin:         0,
		Joint:             JointIndexTip,
		GreatPoints:       500,
		GoodPoints:        100,
		Countdown:         []string{"3", "2", "1", "START!"},
		CompensationDelay: 3 * time.Second,
		Volume:            0.1,
	}
}
