package sim

import "testing"

func TestAreaExplosionInterior(t *testing.T) {
	l := levelOf(t,
		"+++++",
		"+#+++",
		"+++++",
		"+++++",
		"+++++",
	)

	TriggerAreaExplosion(C(2, 2), l.Grid, &l.State)

	affected := 0
	l.Grid.Each(func(c Coord, tile Tile) {
		inside := c.X >= 1 && c.X <= 3 && c.Y >= 1 && c.Y <= 3
		switch {
		case c == C(1, 1):
			if tile.Category != HardwareWall {
				t.Errorf("indestructible neighbour became %v", tile.Category)
			}
		case inside:
			affected++
			if tile.Category != Explosion {
				t.Errorf("cell %v = %v, expected Explosion", c, tile.Category)
			}
			if tile.Timer != 2.5 {
				t.Errorf("cell %v timer = %v, expected 2.5", c, tile.Timer)
			}
		default:
			if tile.Category != Base {
				t.Errorf("cell %v outside the blast = %v, expected Base", c, tile.Category)
			}
		}
	})
	if affected != 8 {
		t.Errorf("affected = %d, expected 8 (9 minus the wall)", affected)
	}
}

func TestAreaExplosionBoundsIdleLeftover(t *testing.T) {
	l := levelOf(t,
		"...",
		".Y.",
		"...",
	)
	l.Grid.Ptr(C(1, 1)).Timer = -40
	l.State.Delta = 0.25

	TriggerAreaExplosion(C(1, 1), l.Grid, &l.State)

	expected := l.State.Rules.ExplosionDuration - 0.25
	l.Grid.Each(func(c Coord, tile Tile) {
		if tile.Category != Explosion {
			t.Errorf("cell %v = %v, expected Explosion", c, tile.Category)
		}
		if tile.Timer != expected {
			t.Errorf("cell %v timer = %v, expected %v", c, tile.Timer, expected)
		}
	})
}

func TestAreaExplosionAllNine(t *testing.T) {
	l := levelOf(t,
		"+++",
		"+++",
		"+++",
	)

	TriggerAreaExplosion(C(1, 1), l.Grid, &l.State)

	if got := l.Grid.Count(Explosion); got != 9 {
		t.Errorf("Count(Explosion) = %d, expected 9", got)
	}
}

func TestAreaExplosionClippedAtEdge(t *testing.T) {
	l := levelOf(t,
		"+++",
		"+++",
		"+++",
	)

	TriggerAreaExplosion(C(0, 0), l.Grid, &l.State)

	if got := l.Grid.Count(Explosion); got != 4 {
		t.Errorf("Count(Explosion) = %d, expected 4", got)
	}
	if got := l.Grid.Count(Base); got != 5 {
		t.Errorf("Count(Base) = %d, expected 5", got)
	}
}

func TestAreaExplosionActors(t *testing.T) {
	l := levelOf(t,
		"MS.",
		".+Y",
		"...",
	)
	l.Grid.Set(C(1, 2), BlastTile(Explosion2, 0.7))

	TriggerAreaExplosion(C(1, 1), l.Grid, &l.State)

	for _, c := range []Coord{C(0, 0), C(1, 0), C(2, 1)} {
		if got := l.Grid.Get(c).Category; got != Explosion2 {
			t.Errorf("actor at %v became %v, expected Explosion2", c, got)
		}
	}
	if got := l.Grid.Get(C(1, 2)); got.Timer != 0.7 {
		t.Errorf("existing secondary blast timer = %v, expected 0.7 (untouched)", got.Timer)
	}
	if l.State.Status != StatusDied {
		t.Errorf("Status = %v, expected died", l.State.Status)
	}
}

func TestAreaExplosionCentreOnPlayer(t *testing.T) {
	l := levelOf(t,
		"...",
		".M.",
		"...",
	)

	TriggerAreaExplosion(C(1, 1), l.Grid, &l.State)

	if l.State.Status != StatusDied {
		t.Errorf("Status = %v, expected died", l.State.Status)
	}
	if got := l.Grid.Get(C(1, 1)).Category; got != Explosion {
		t.Errorf("centre = %v, expected Explosion", got)
	}
}

func TestExplosionChain(t *testing.T) {
	l := levelOf(t,
		".....",
		".YY..",
		".....",
	)
	TriggerAreaExplosion(C(0, 1), l.Grid, &l.State)

	if got := l.Grid.Get(C(1, 1)).Category; got != Explosion2 {
		t.Fatalf("first disk = %v, expected Explosion2", got)
	}
	if got := l.Grid.Get(C(2, 1)).Category; got != YellowUtilityDisk {
		t.Fatalf("second disk = %v, expected untouched", got)
	}

	for i := 0; i < 5; i++ {
		l.Step(Input{}, 0.5)
	}
	if got := l.Grid.Get(C(2, 1)).Category; got != Explosion2 {
		t.Fatalf("second disk after one duration = %v, expected Explosion2", got)
	}

	for i := 0; i < 4; i++ {
		l.Step(Input{}, 0.5)
	}
	if got := l.Grid.Get(C(2, 1)).Category; got != Explosion2 {
		t.Errorf("second disk before its delay = %v, expected Explosion2", got)
	}

	res := l.Step(Input{}, 0.5)
	if got := l.Grid.Get(C(2, 1)).Category; got != Explosion {
		t.Errorf("second disk after two durations = %v, expected Explosion", got)
	}
	if got := l.Grid.Count(Explosion2); got != 0 {
		t.Errorf("Count(Explosion2) = %d, expected 0", got)
	}
	if got := l.Grid.Count(YellowUtilityDisk); got != 0 {
		t.Errorf("Count(YellowUtilityDisk) = %d, expected 0", got)
	}

	found := false
	for _, ev := range res.Events {
		if ev.Kind == EventExplosion && ev.Coord == C(2, 1) {
			found = true
		}
	}
	if !found {
		t.Error("expected an explosion event at (2,1)")
	}
}

func TestPrimaryBlastClears(t *testing.T) {
	l := levelOf(t, "...")
	l.Grid.Set(C(1, 0), BlastTile(Explosion, 0.5))

	l.Step(Input{}, 0.25)
	if got := l.Grid.Get(C(1, 0)).Category; got != Explosion {
		t.Errorf("blast after 0.25 = %v, expected Explosion", got)
	}

	l.Step(Input{}, 0.25)
	if got := l.Grid.Get(C(1, 0)).Category; got != Empty {
		t.Errorf("blast after 0.5 = %v, expected Empty", got)
	}
}
