package game

// World is the single owned aggregate of all simulation state. It is
// constructed once per session, mutated in place by Tick, and read through
// snapshot accessors by the render layer. No ambient singletons: everything
// a tick touches hangs off this struct.
type World struct {
	W, H float64
	Seed uint64

	Noise   *NoiseField
	Pool    *ParticlePool
	Grid    *Grid
	Rocks   *RockSystem
	Jellies *JellySystem
	Pointer Pointer
	Session GameSession
	Audio   AudioSink

	t float64 // tick counter, drives the noise time axis
}

func NewWorld(w, h float64, seed uint64, audio AudioSink) *World {
	if seed == 0 {
		seed = 1
	}
	wd := &World{
		W:     w,
		H:     h,
		Seed:  seed,
		Noise: NewNoiseField(seed),
		Pool:  NewParticlePool(MaxParticles, w, h, seed^0xBEAD),
		Grid:  NewGrid(w, h),
		Audio: audio,
	}
	wd.spawnEntities()
	return wd
}

// spawnEntities populates fresh rock and jellyfish registries. Used at
// construction and on reset; the particle pool deliberately survives resets.
func (w *World) spawnEntities() {
	w.Seed = splitmix64(w.Seed)
	w.Rocks = NewRockSystem(w.Seed ^ 0x50C4)
	w.Rocks.Spawn(RockCount, w.W, w.H)
	w.Jellies = NewJellySystem(w.Seed ^ 0x3E11F)
	w.Jellies.Spawn(JellyCount, w.W, w.H)
	w.Session.State = StatePlaying
}

// Resize updates the play area and re-derives grid dimensions.
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.W = width
	w.H = height
	w.Grid.Resize(width, height)
}

func (w *World) PointerMove(x, y float64) {
	w.Pointer.Move(x, y)
}

// PointerDown starts a charge — or, in a terminal state, performs the reset
// and consumes the press.
func (w *World) PointerDown() {
	if w.Session.State != StatePlaying {
		w.spawnEntities()
		return
	}
	w.Pointer.Press(w.Audio)
}

func (w *World) PointerUp() {
	w.Pointer.Release(w.Audio)
}

// Tick advances one frame. Fully sequential: rock rotation and the grid
// rebuild come first so every later read of the grid sees this tick's
// geometry; agent combat precedes the pool's death/reset pass; the blast
// trigger is cleared at the end whether or not it was consumed.
func (w *World) Tick() {
	w.t++

	w.Rocks.Rotate()
	w.Grid.Rebuild(w.Rocks.Rocks)

	w.Jellies.Update(w.Rocks, w.Pool, w.Noise, &w.Pointer, w.Audio, w.W, w.H, w.t)

	w.resolveCombat()

	w.Pool.Update(w.W, w.H, w.t, w.Noise)

	w.Jellies.RemoveDead(w.Pool, w.Audio)
	rocksEmpty := w.Rocks.Prune()
	w.Session.CheckEnd(rocksEmpty, len(w.Jellies.Jellies) == 0, w.Audio)

	w.Pointer.ClearTrigger()
}

// Snapshot accessors for the render layer. Views into live state; valid
// between ticks only — no external writer may touch pool state mid-tick.

func (w *World) Particles() []Particle { return w.Pool.P }
func (w *World) RockList() []Rock      { return w.Rocks.Rocks }
func (w *World) JellyList() []Jelly    { return w.Jellies.Jellies }
func (w *World) State() GameState      { return w.Session.State }
func (w *World) ChargeLevel() float64  { return w.Pointer.Charge }
