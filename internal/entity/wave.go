package entity

import "math"

// Wave is one control point of the water surface outline.
type Wave struct {
	X         float64
	Amplitude float64
	Frequency float64
	Phase     float64
}

// NewWaves spreads WaveCount control points evenly across width.
func NewWaves(r Rand, width float64) []Wave {
	waves := make([]Wave, WaveCount)
	for i := range waves {
		waves[i] = Wave{
			X:         float64(i) * width / WaveCount,
			Amplitude: r.Float64()*WaveAmplitudeVar + WaveAmplitudeMin,
			Frequency: r.Float64()*WaveFreqVar + WaveFreqMin,
			Phase:     r.Float64() * math.Pi * 2,
		}
	}
	return waves
}

// Y is the surface height at this control point on the given frame.
func (w Wave) Y(waterline float64, frame int) float64 {
	return waterline + math.Sin(float64(frame)*w.Frequency+w.Phase)*w.Amplitude
}
