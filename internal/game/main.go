package game

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop hosts the simulation in a glfw window: it normalizes the mouse
// into the pointer model, runs one Tick per frame, and renders snapshots.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	var audio AudioSink
	if synth, err := NewSynth(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		audio = NopAudio{}
	} else {
		audio = synth
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("REEF_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	fbW, fbH := window.GetFramebufferSize()
	world := NewWorld(float64(fbW), float64(fbH), seed, audio)
	sprites := NewSpriteProvider(seed ^ 0x5217)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	// cursorScale maps window cursor coordinates into framebuffer space on
	// HiDPI displays.
	cursorScale := func() (float64, float64) {
		cw, ch := window.GetSize()
		fw, fh := window.GetFramebufferSize()
		if cw <= 0 || ch <= 0 {
			return 1, 1
		}
		return float64(fw) / float64(cw), float64(fh) / float64(ch)
	}

	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sx, sy := cursorScale()
		world.PointerMove(x*sx, y*sy)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if btn != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			world.PointerDown()
		case glfw.Release:
			world.PointerUp()
		}
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		world.Resize(float64(w), float64(h))
	})

	var jellyTex, rockTex uint32
	var waterBuf, debrisBuf, glowBuf []float32

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		fbW, fbH = window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		world.Tick()

		// Provider bitmaps upload once, whenever they show up.
		if jellyTex == 0 {
			if img := sprites.Sprite(SpriteJelly); img != nil {
				jellyTex = rend.UploadTexture(img)
			}
		}
		if rockTex == 0 {
			if img := sprites.Sprite(SpriteRock); img != nil {
				rockTex = rend.UploadTexture(img)
			}
		}

		waterBuf, debrisBuf = particleBuffers(world.Particles(), waterBuf, debrisBuf)

		rend.BeginFrame(fbW, fbH)
		rend.DrawPoints(debrisBuf, false)
		rend.DrawPoints(waterBuf, true)
		drawRocks(rend, world.RockList(), rockTex)
		drawJellies(rend, world.JellyList(), jellyTex)

		glowBuf = chargeIndicator(world, glowBuf[:0])
		rend.DrawPoints(glowBuf, true)

		window.SwapBuffers()
	}
}

// particleBuffers splits the pool into the additive water pass and the
// alpha-blended debris pass. Format: [x, y, size, r, g, b, a] per point.
func particleBuffers(particles []Particle, waterBuf, debrisBuf []float32) ([]float32, []float32) {
	waterBuf = waterBuf[:0]
	debrisBuf = debrisBuf[:0]
	for i := range particles {
		p := &particles[i]
		col := HueRGB(p.Hue)
		switch p.Kind {
		case KindWater:
			a := float32(0.30)
			size := float32(2.5)
			cr := float32(col.R) / 255
			cg := float32(col.G) / 255
			cb := float32(col.B) / 255
			if p.Life > 0 {
				// Hot water glows toward white with remaining charge.
				hot := float32(clampF(p.Life, 0, 1))
				cr += (1 - cr) * hot
				cg += (1 - cg) * hot
				cb += (1 - cb) * hot
				a += 0.4 * hot
				size += 2 * hot
			}
			waterBuf = append(waterBuf, float32(p.X), float32(p.Y), size, cr, cg, cb, a)
		default:
			a := float32(clampF(p.Life*2, 0, 0.9))
			debrisBuf = append(debrisBuf,
				float32(p.X), float32(p.Y), 3.0,
				float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, a)
		}
	}
	return waterBuf, debrisBuf
}

func drawRocks(rend *Renderer, rocks []Rock, tex uint32) {
	for ri := range rocks {
		rock := &rocks[ri]
		tint := HueRGB(rock.Hue)
		for si := range rock.Segments {
			seg := &rock.Segments[si]
			sx, sy := rock.SegmentWorld(si)
			if tex != 0 {
				rend.DrawQuad(tex, sx, sy, seg.R*2, seg.R*2, rock.Angle, [4]float32{
					0.6 + 0.4*float32(tint.R)/255,
					0.6 + 0.4*float32(tint.G)/255,
					0.6 + 0.4*float32(tint.B)/255,
					1,
				})
			} else {
				buf := []float32{
					float32(sx), float32(sy), float32(seg.R * 2),
					0.25 + 0.2*float32(tint.R)/255,
					0.25 + 0.2*float32(tint.G)/255,
					0.25 + 0.2*float32(tint.B)/255,
					1,
				}
				rend.DrawPoints(buf, false)
			}
		}
	}
}

func drawJellies(rend *Renderer, jellies []Jelly, tex uint32) {
	for i := range jellies {
		j := &jellies[i]
		// Injured agents fade toward grey; a stunned one flashes bright.
		col := lerpRGB(RGB{R: 90, G: 90, B: 110}, HueRGB(j.Hue), j.HP.Fraction())
		if j.Stun > 0 {
			col = col.Add(70, 70, 70)
		}
		// The bell squeezes with the propulsion stroke.
		squeeze := 1.0 - 0.22*j.Pulse()
		size := 80 * j.Size
		if tex != 0 {
			rend.DrawQuad(tex, j.X, j.Y, size*squeeze, size, j.Heading+math.Pi/2, [4]float32{
				float32(col.R) / 255, float32(col.G) / 255, float32(col.B) / 255, 1,
			})
			continue
		}
		fx, fy := j.Forward()
		buf := []float32{
			float32(j.X), float32(j.Y), float32(size * squeeze * 0.5),
			float32(col.R) / 255, float32(col.G) / 255, float32(col.B) / 255, 0.75,
			float32(j.X + fx*HeadOffset*j.Size), float32(j.Y + fy*HeadOffset*j.Size),
			float32(size * 0.25),
			float32(col.R) / 255, float32(col.G) / 255, float32(col.B) / 255, 0.9,
		}
		rend.DrawPoints(buf, false)
	}
}

// chargeIndicator renders a growing glow at the pointer while charging.
func chargeIndicator(world *World, buf []float32) []float32 {
	pt := &world.Pointer
	if !pt.Charging {
		return buf
	}
	frac := float32(pt.Charge / ChargeMax)
	return append(buf,
		float32(pt.X), float32(pt.Y), 26+110*frac, 0.4, 0.8, 1.0, 0.18+0.25*frac,
		float32(pt.X), float32(pt.Y), 8+30*frac, 0.8, 0.95, 1.0, 0.55,
	)
}
