package game

import "testing"

func hollowOutRocks(w *World) {
	for i := range w.Rocks.Rocks {
		w.Rocks.Rocks[i].Segments = nil
	}
}

func TestLostWhenRocksGoneAndResetOnPress(t *testing.T) {
	w := NewWorld(800, 600, 7, nil)
	pool := w.Pool
	w.Pool.P[0] = Particle{X: 10, Y: 10, Life: 0.5, Kind: KindAgentDebris}

	hollowOutRocks(w)
	w.Tick()
	if w.State() != StateLost {
		t.Fatalf("state = %v, want Lost once all rocks are gone", w.State())
	}
	if len(w.RockList()) != 0 {
		t.Error("hollow rocks must be pruned from the registry")
	}

	// Terminal: nothing flips it back on its own.
	w.Tick()
	if w.State() != StateLost {
		t.Error("Lost is terminal until an explicit reset")
	}

	// The press that resets is consumed, not turned into a charge.
	w.PointerDown()
	if w.State() != StatePlaying {
		t.Fatal("pointer press in a terminal state should reset to Playing")
	}
	if w.Pointer.Charging {
		t.Error("the resetting press must not start a charge")
	}
	if got := len(w.RockList()); got != RockCount {
		t.Errorf("rocks after reset = %d, want %d", got, RockCount)
	}
	if got := len(w.JellyList()); got != JellyCount {
		t.Errorf("agents after reset = %d, want %d", got, JellyCount)
	}
	if w.Pool != pool {
		t.Error("the particle pool must survive a reset")
	}
	if w.Pool.P[0].Kind != KindAgentDebris {
		t.Error("in-flight debris must survive a reset")
	}
}

func TestLostWinsSimultaneousClears(t *testing.T) {
	w := NewWorld(800, 600, 7, nil)
	hollowOutRocks(w)
	w.Jellies.Jellies = nil

	w.Tick()
	if w.State() != StateLost {
		t.Errorf("state = %v, Lost takes precedence on a tie", w.State())
	}
}

func TestWonWhenAgentsGoneAndTerminal(t *testing.T) {
	w := NewWorld(800, 600, 7, nil)
	w.Jellies.Jellies = nil

	w.Tick()
	if w.State() != StateWon {
		t.Fatalf("state = %v, want Won with rocks still standing", w.State())
	}

	// Losing the rocks afterwards cannot demote a terminal Won.
	hollowOutRocks(w)
	w.Tick()
	if w.State() != StateWon {
		t.Error("Won is terminal until an explicit reset")
	}
}

func TestSimulationKeepsRunningInTerminalState(t *testing.T) {
	w := NewWorld(800, 600, 7, nil)
	w.Jellies.Jellies = nil
	w.Tick()
	if w.State() != StateWon {
		t.Fatal("setup: expected Won")
	}

	w.Pool.P[0] = Particle{X: 400, Y: 300, Life: 0.5, Kind: KindRockDebris}
	w.Tick()
	if got := w.Pool.P[0].Life; got >= 0.5 {
		t.Errorf("debris life = %v, particles must keep simulating after the end state", got)
	}
}

func TestResizeRederivesGrid(t *testing.T) {
	w := NewWorld(800, 600, 7, nil)
	w.Resize(1600, 1200)
	if w.W != 1600 || w.H != 1200 {
		t.Errorf("dims = %vx%v, want 1600x1200", w.W, w.H)
	}
	wantCols := int(1600/GridCellSize) + 1
	wantRows := int(1200/GridCellSize) + 1
	if w.Grid.cols != wantCols || w.Grid.rows != wantRows {
		t.Errorf("grid = %dx%d cells, want %dx%d", w.Grid.cols, w.Grid.rows, wantCols, wantRows)
	}

	// Degenerate sizes are ignored.
	w.Resize(0, 1200)
	if w.W != 1600 {
		t.Error("zero-width resize must be rejected")
	}
}

func TestTickClearsBlastTrigger(t *testing.T) {
	w := NewWorld(800, 600, 7, nil)
	// Armed but aimed far off-screen, so nothing consumes it.
	w.Pointer.Blast = Blast{Armed: true, X: -999, Y: -999, DirX: 1}
	w.Tick()
	if w.Pointer.Blast.Armed {
		t.Error("an armed blast must be cleared by end of tick, consumed or not")
	}
}

func TestZeroSeedFallsBackToFixedSeed(t *testing.T) {
	w := NewWorld(800, 600, 0, nil)
	if w.Seed == 0 {
		t.Error("zero seed must be replaced, never passed to the generators")
	}
	if len(w.RockList()) != RockCount || len(w.JellyList()) != JellyCount {
		t.Error("world with the fallback seed should still populate")
	}
}
