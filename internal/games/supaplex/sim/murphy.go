package sim

// playerSystem runs the player and points the camera at the player's cell.
// Once the level is over the player no longer reacts to input.
func playerSystem(c Coord, g *Grid, s *LevelState) {
	at := c
	if s.Status == StatusActive {
		at = murphySystem(c, g, s)
	}
	if t := g.Get(at); t.Category == Murphy {
		s.focus(at, t)
	}
}

// murphySystem resolves the held directions in priority order. The first
// direction that yields an action wins. It returns the player's cell after
// the action.
func murphySystem(c Coord, g *Grid, s *LevelState) Coord {
	if g.Get(c).Busy() {
		return c
	}

	for _, dir := range s.Moves.dirs {
		murphy := g.Get(c)
		target := c.Offset(dir)
		tile := g.Get(target)

		if tile.Category == Exit && s.InfotronsRequired <= 0 {
			s.setStatus(StatusFinished, target)
			return c
		}
		if tile.Category == Terminal {
			s.emit(EventTerminal, target, Terminal)
			detonateAll(YellowUtilityDisk, g, s)
			return c
		}

		lateral := murphy.PriorFacing
		if dir.IsHorizontal() {
			lateral = dir
		}

		switch tile.State {
		case Dangerous:
			TriggerAreaExplosion(c, g, s)
			return c

		case Eatable:
			timer := s.carry(murphy.Timer) + s.Rules.MoveCost
			switch tile.Category {
			case Infotron:
				s.InfotronsRequired--
			case RedUtilityDisk:
				s.RedDisks++
			}
			if s.Alternate {
				g.Set(target, TransitoryTile(timer, tile.Category))
				g.Set(c, MurphyTile(timer, dir, lateral, Slurping))
				s.emit(EventSlurp, target, tile.Category)
				return c
			}
			g.Set(target, MurphyTile(timer, dir, lateral, Eating(tile.Category)))
			g.Set(c, TransitoryTile(timer, Empty))
			if tile.Category != Empty {
				s.emit(EventEat, target, tile.Category)
			}
			return target

		case Moveable:
			if !dir.IsHorizontal() {
				continue
			}
			beyond := target.Offset(dir)
			if g.Get(beyond).Category != Empty {
				continue
			}
			if murphy.Timer > -s.Rules.PushLean {
				t := g.at(c)
				t.Interaction = Pushing
				t.Facing = dir
				t.PriorFacing = lateral
				return c
			}
			timer := murphy.Timer + s.Rules.PushCost
			g.Set(beyond, tile.Moving(timer, dir))
			g.Set(target, MurphyTile(timer, dir, lateral, Pushing))
			g.Set(c, TransitoryTile(timer, Empty))
			s.emit(EventPush, beyond, tile.Category)
			return target

		case Tunnelable:
			beyond := target.Offset(dir)
			if g.Get(beyond).Category != Empty || !tile.Category.AcceptsTunnel(dir) {
				continue
			}
			timer := s.carry(murphy.Timer) + s.Rules.MoveCost
			g.Set(beyond, MurphyTile(timer, dir, lateral, Tunneling(tile.Category)))
			g.Set(c, TransitoryTile(timer, Empty))
			s.emit(EventTunnel, target, tile.Category)
			return beyond
		}
	}

	murphy := g.at(c)
	if s.GravityEnabled && g.Get(c.Offset(DirDown)).Category == Empty {
		below := c.Offset(DirDown)
		timer := s.carry(murphy.Timer) + s.Rules.MoveCost
		g.Set(below, MurphyTile(timer, DirDown, murphy.PriorFacing, Moving))
		g.Set(c, TransitoryTile(timer, Empty))
		return below
	}
	murphy.Timer = 0
	murphy.Interaction = NoInteraction
	return c
}

// detonateAll area-explodes every tile of the category, in scan order.
func detonateAll(cat Category, g *Grid, s *LevelState) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			at := C(x, y)
			if g.Get(at).Category == cat {
				TriggerAreaExplosion(at, g, s)
			}
		}
	}
}

// focus sets the camera to the centre of the player's cell. The position
// is interpolated while the player is travelling between cells.
func (s *LevelState) focus(c Coord, murphy Tile) {
	pos := c.Float()
	switch murphy.Interaction.Kind {
	case InteractNone, InteractSlurping:
	default:
		pos = c.Interpolated(murphy)
	}
	s.Camera = FCoord{X: pos.X + 0.5, Y: pos.Y + 0.5}
	s.HasCamera = true
}
