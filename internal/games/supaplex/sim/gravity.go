package sim

// gravitySystem moves infotrons and zonks. Objects fall into empty cells,
// roll off other round objects (left before right) and crush whatever
// actor they land on while still falling.
func gravitySystem(c Coord, g *Grid, s *LevelState) {
	obj := g.Get(c)
	if obj.Busy() {
		return
	}
	if obj.Category == Zonk && s.FrozenZonks {
		return
	}

	below := c.Offset(DirDown)
	left := c.Offset(DirLeft)
	right := c.Offset(DirRight)
	leftDown := left.Offset(DirDown)
	rightDown := right.Offset(DirDown)

	under := g.Get(below)
	switch {
	case under.Category == Empty:
		moveObject(c, below, DirDown, obj, g, s)
	case under.Category.IsSlideSurface():
		switch {
		case g.Get(left).Category == Empty && g.Get(leftDown).Category == Empty:
			moveObject(c, left, DirLeft, obj, g, s)
		case g.Get(right).Category == Empty && g.Get(rightDown).Category == Empty:
			moveObject(c, right, DirRight, obj, g, s)
		default:
			settle(g.at(c))
		}
	case under.Category.IsBlastActor():
		if obj.Facing == DirDown && under.Interaction.Kind != InteractPushing {
			TriggerAreaExplosion(c, g, s)
		}
	default:
		settle(g.at(c))
	}
}

// moveObject moves a physics object one cell and leaves a placeholder.
// A moving object is Dangerous until it comes to rest.
func moveObject(from, to Coord, dir Direction, obj Tile, g *Grid, s *LevelState) {
	timer := s.carry(obj.Timer) + s.Rules.MoveCost
	g.Set(to, obj.WithMotion(timer, dir, Dangerous))
	g.Set(from, TransitoryTile(timer, Empty))
	if dir == DirDown {
		s.emit(EventFall, to, obj.Category)
	}
}

// settle brings a physics object to rest.
func settle(t *Tile) {
	t.Timer = 0
	t.Facing = DirNone
	if t.Category == Infotron {
		t.State = Eatable
	} else {
		t.State = Moveable
	}
}

// simpleGravitySystem drives orange disks: they only fall straight down
// and explode when a fall ends on something that is not moving.
func simpleGravitySystem(c Coord, g *Grid, s *LevelState) {
	disk := g.Get(c)
	if disk.Busy() {
		return
	}

	below := c.Offset(DirDown)
	under := g.Get(below)
	switch {
	case under.Category == Empty:
		moveObject(c, below, DirDown, disk, g, s)
	case disk.Facing == DirDown && under.Facing == DirNone:
		TriggerAreaExplosion(c, g, s)
	default:
		g.at(c).Timer = 0
	}
}

// transitorySystem reverts an expired placeholder to empty space.
func transitorySystem(c Coord, g *Grid, _ *LevelState) {
	if g.Get(c).Busy() {
		return
	}
	g.SetCategory(c, Empty)
}
