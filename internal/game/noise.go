package game

import "github.com/aquilax/go-perlin"

// Perlin shape parameters. Two octaves keep the field smooth enough for
// drift/wander without visible graininess.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 2
)

// NoiseField is a seeded 3D coherent-noise source. At(x, y, t) is a pure
// function of its arguments returning a value in [-1, 1]; the time axis
// animates the field for ambient drift and agent wander.
type NoiseField struct {
	p *perlin.Perlin
}

func NewNoiseField(seed uint64) *NoiseField {
	return &NoiseField{p: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, int64(seed))}
}

func (n *NoiseField) At(x, y, t float64) float64 {
	// Perlin amplitude shrinks with octave count; rescale and clamp to [-1,1].
	return clampF(n.p.Noise3D(x, y, t)*1.6, -1, 1)
}
