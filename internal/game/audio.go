package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// AudioSink receives one-way simulation events. The simulation never waits
// on it and fires each event exactly once per corresponding occurrence; a
// nil or silent sink is always acceptable.
type AudioSink interface {
	ChargeStart()
	ChargeUpdate(level, max float64)
	ChargeStop()
	Shoot(power float64) // power in 0..1
	Hit()
	Explosion()
	RockHit()
	Win()
	Lose()
}

// Synth is a procedural AudioSink on an oto context. Every effect is
// generated sample-by-sample on demand; playback is fire-and-forget.
type Synth struct {
	ctx   *oto.Context
	ready chan struct{}

	chargePlayer oto.Player

	// Limits simultaneous explosion sounds to avoid speaker clipping.
	activeExplosions int32
}

func NewSynth() (*Synth, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &Synth{ctx: ctx, ready: ready}, nil
}

func (s *Synth) isReady() bool {
	if s == nil || s.ctx == nil {
		return false
	}
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// loopReader replays its buffer forever; used for the charge hum.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.pos:])
		n += c
		r.pos += c
		if r.pos >= len(r.data) {
			r.pos = 0
		}
	}
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func (s *Synth) play(samples []byte, volume float64) {
	if len(samples) == 0 {
		return
	}
	go func() {
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(clampF(volume, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// noiseAt is a cheap deterministic white-noise source for effect synthesis.
func noiseAt(seed uint64, i int) float64 {
	return float64(int64(splitmix64(seed^uint64(i)))>>11) / float64(1<<52)
}

func (s *Synth) ChargeStart() {
	if !s.isReady() {
		return
	}
	s.ChargeStop()
	// One hum period; the loop reader repeats it while the button is held.
	n := SampleRate / 10
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := 0.3*math.Sin(2*math.Pi*55*t) + 0.15*math.Sin(2*math.Pi*110*t)
		putStereoF32(buf, i, v)
	}
	p := s.ctx.NewPlayer(&loopReader{data: buf})
	p.SetVolume(0.1)
	p.Play()
	s.chargePlayer = p
}

// ChargeUpdate raises the hum with the charge level.
func (s *Synth) ChargeUpdate(level, max float64) {
	if s == nil || s.chargePlayer == nil || max <= 0 {
		return
	}
	s.chargePlayer.SetVolume(0.1 + 0.5*clampF(level/max, 0, 1))
}

func (s *Synth) ChargeStop() {
	if s == nil || s.chargePlayer == nil {
		return
	}
	s.chargePlayer.Close()
	s.chargePlayer = nil
}

// Shoot is a pitch-sweep noise burst; louder and longer with more power.
func (s *Synth) Shoot(power float64) {
	if !s.isReady() {
		return
	}
	power = clampF(power, 0, 1)
	dur := 0.18 + 0.22*power
	n := int(dur * SampleRate)
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-t * (14 - 6*power))
		freq := 880 - 600*(t/dur)
		v := 0.5*math.Sin(2*math.Pi*freq*t) + 0.35*noiseAt(0x5400, i)
		putStereoF32(buf, i, v*env)
	}
	s.play(buf, 0.4+0.5*power)
}

// Hit is a short high blip.
func (s *Synth) Hit() {
	if !s.isReady() {
		return
	}
	n := SampleRate / 18
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-t * 60)
		putStereoF32(buf, i, math.Sin(2*math.Pi*1320*t)*env)
	}
	s.play(buf, 0.5)
}

// Explosion is a low filtered-noise boom. At most two play at once.
func (s *Synth) Explosion() {
	if !s.isReady() {
		return
	}
	if atomic.LoadInt32(&s.activeExplosions) >= 2 {
		return
	}
	atomic.AddInt32(&s.activeExplosions, 1)
	n := int(0.8 * SampleRate)
	buf := make([]byte, n*8)
	low := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-t * 5)
		// One-pole lowpass over white noise keeps only the rumble.
		low += (noiseAt(0xB00F, i) - low) * 0.08
		v := low*2.2 + 0.25*math.Sin(2*math.Pi*52*t)
		putStereoF32(buf, i, v*env)
	}
	go func() {
		time.Sleep(time.Duration(float64(n)/SampleRate*1000) * time.Millisecond)
		atomic.AddInt32(&s.activeExplosions, -1)
	}()
	s.play(buf, 0.85)
}

// RockHit is a short broadband crunch.
func (s *Synth) RockHit() {
	if !s.isReady() {
		return
	}
	n := int(0.22 * SampleRate)
	buf := make([]byte, n*8)
	low := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-t * 22)
		low += (noiseAt(0x50C4, i) - low) * 0.25
		putStereoF32(buf, i, low*2.4*env)
	}
	s.play(buf, 0.6)
}

func (s *Synth) Win() {
	s.jingle([]float64{523.25, 659.25, 783.99, 1046.5}, 0.16, 0.7)
}

func (s *Synth) Lose() {
	s.jingle([]float64{392.0, 311.13, 233.08}, 0.28, 0.6)
}

// jingle plays a plain tone sequence with per-note decay.
func (s *Synth) jingle(freqs []float64, noteDur, volume float64) {
	if !s.isReady() {
		return
	}
	per := int(noteDur * SampleRate)
	buf := make([]byte, per*len(freqs)*8)
	for ni, f := range freqs {
		for i := 0; i < per; i++ {
			t := float64(i) / SampleRate
			env := math.Exp(-t * 6)
			v := 0.5*math.Sin(2*math.Pi*f*t) + 0.2*math.Sin(2*math.Pi*f*2*t)
			putStereoF32(buf, ni*per+i, v*env)
		}
	}
	s.play(buf, volume)
}

// NopAudio is the silent sink used when audio init fails or in tests.
type NopAudio struct{}

func (NopAudio) ChargeStart()                    {}
func (NopAudio) ChargeUpdate(level, max float64) {}
func (NopAudio) ChargeStop()                     {}
func (NopAudio) Shoot(power float64)             {}
func (NopAudio) Hit()                            {}
func (NopAudio) Explosion()                      {}
func (NopAudio) RockHit()                        {}
func (NopAudio) Win()                            {}
func (NopAudio) Lose()                           {}
