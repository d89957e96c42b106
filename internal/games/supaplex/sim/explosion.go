package sim

// explosionSystem expires blast cells. A primary blast clears to Empty;
// a secondary blast (an actor caught in an earlier blast) detonates again
// around itself, which is how explosions chain through clusters.
func explosionSystem(c Coord, g *Grid, s *LevelState) {
	blast := g.Get(c)
	if blast.Busy() {
		return
	}

	switch blast.Category {
	case Explosion:
		g.SetCategory(c, Empty)
	case Explosion2:
		TriggerAreaExplosion(c, g, s)
	default:
		panic("sim: explosion system dispatched on " + blast.Category.String())
	}
}

// TriggerAreaExplosion detonates the 3x3 neighbourhood centred on c.
//
// The centre always becomes a primary blast. A neighbour holding an actor
// becomes a secondary blast (and the level is lost if it was the player),
// a neighbour already holding a secondary blast is left alone, and any
// other neighbour that is not Indestructible becomes a primary blast.
// All converted cells share one timer: the centre's timer plus the
// explosion duration. The centre's idle leftover counts for at most one
// tick, so a tile that sat idle long before detonating still gets a full
// blast. Cells outside the grid read as Indestructible border and are never
// touched.
func TriggerAreaExplosion(c Coord, g *Grid, s *LevelState) {
	timer := s.carry(g.Get(c).Timer) + s.Rules.ExplosionDuration

	if g.Get(c).Category == Murphy {
		s.setStatus(StatusDied, c)
	}
	s.emit(EventExplosion, c, g.Get(c).Category)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cur := c.Add(dx, dy)
			if dx == 0 && dy == 0 {
				g.Set(cur, BlastTile(Explosion, timer))
				continue
			}

			t := g.Get(cur)
			switch {
			case t.Category.IsBlastActor():
				if t.Category == Murphy {
					s.setStatus(StatusDied, cur)
				}
				g.Set(cur, BlastTile(Explosion2, timer))
			case t.Category == Explosion2:
			case t.State != Indestructible:
				g.Set(cur, BlastTile(Explosion, timer))
			}
		}
	}
}
