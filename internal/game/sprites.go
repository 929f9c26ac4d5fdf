package game

import (
	"image"
	"image/color"
	"math"
	"sync/atomic"
)

type SpriteClass int

const (
	SpriteJelly SpriteClass = iota
	SpriteRock
	spriteClassCount
)

// SpriteProvider composes entity bitmaps off the simulation thread. The sim
// and renderer never wait on it: Sprite returns nil until a bitmap is ready,
// and the renderer falls back to procedural shapes in the meantime. A bitmap
// that never arrives is fine; one that arrives is picked up silently.
type SpriteProvider struct {
	sprites [spriteClassCount]atomic.Pointer[image.RGBA]
}

func NewSpriteProvider(seed uint64) *SpriteProvider {
	sp := &SpriteProvider{}
	go func() {
		sp.sprites[SpriteJelly].Store(composeJellySprite(seed))
		sp.sprites[SpriteRock].Store(composeRockSprite(seed ^ 0x50C4))
	}()
	return sp
}

// Sprite returns the bitmap for a class, or nil while it is still pending.
func (sp *SpriteProvider) Sprite(class SpriteClass) *image.RGBA {
	if class < 0 || class >= spriteClassCount {
		return nil
	}
	return sp.sprites[class].Load()
}

const spriteSize = 128

// composeJellySprite paints a soft translucent bell with trailing arms.
func composeJellySprite(seed uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spriteSize, spriteSize))
	c := float64(spriteSize) / 2
	r := NewRand(seed | 1)
	phase := r.RangeF(0, 2*math.Pi)
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			dx := (float64(x) - c) / c
			dy := (float64(y) - c) / c
			d := math.Hypot(dx, dy)
			if d > 1 {
				continue
			}
			// Bell: upper half dome, fading toward the rim.
			a := 0.0
			if dy < 0.1 {
				a = clampF(1.0-d*1.2, 0, 1)
			} else {
				// Arms: vertical wisps below the bell.
				wave := math.Sin(dx*9+phase) * 0.5
				if math.Abs(dx*3-wave) < 0.35 {
					a = clampF((1.0-dy)*0.5, 0, 1)
				}
			}
			if a <= 0 {
				continue
			}
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(180 * a), G: uint8(120 * a), B: uint8(255 * a),
				A: uint8(255 * a),
			})
		}
	}
	return img
}

// composeRockSprite paints an irregular mottled boulder disc.
func composeRockSprite(seed uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spriteSize, spriteSize))
	c := float64(spriteSize) / 2
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			dx := (float64(x) - c) / c
			dy := (float64(y) - c) / c
			d := math.Hypot(dx, dy)
			// Noisy rim makes the disc read as rock rather than a circle.
			rim := 0.92 + 0.08*float64(int64(hash2D(seed, x/6, y/6)%100))/100.0*0.8
			if d > rim {
				continue
			}
			shade := 120 + int(hash2D(seed^0x7EC, x/4, y/4)%60)
			// Light from the upper left.
			lit := clampF(1.0-(dx*0.3+dy*0.3+d*0.4), 0.35, 1)
			v := uint8(float64(shade) * lit)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: uint8(float64(v) * 0.92), A: 255})
		}
	}
	return img
}
