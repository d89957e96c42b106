package sim

// Hand selects which wall an enemy keeps beside it while patrolling.
type Hand uint8

const (
	LeftHand Hand = iota
	RightHand
)

// String returns the name of the hand.
func (h Hand) String() string {
	if h == RightHand {
		return "right"
	}
	return "left"
}

// sides returns the preferred and the fallback turn for an enemy heading d.
func (h Hand) sides(d Direction) (preferred, other Direction) {
	if h == RightHand {
		return d.RotateRight(), d.RotateLeft()
	}
	return d.RotateLeft(), d.RotateRight()
}

// wallFollower returns the patrol system for enemies of the given hand.
//
// Facing is the heading, PriorFacing the heading the enemy last travelled.
// They differ while the enemy is mid-turn. A straight enemy prefers to turn
// toward its hand, then to go straight, then to turn away, and otherwise
// keeps rotating in place. Finding the player in any of those cells blows
// the enemy up. During the last TurnLookahead of a move the enemy may
// already rotate toward its next heading so corners take no extra tick.
func wallFollower(h Hand) System {
	return func(c Coord, g *Grid, s *LevelState) {
		enemy := g.Get(c)
		preferred, other := h.sides(enemy.Facing)

		sideCoord := c.Offset(preferred)
		frontCoord := c.Offset(enemy.Facing)
		otherCoord := c.Offset(other)

		side := g.Get(sideCoord).Category
		front := g.Get(frontCoord).Category
		away := g.Get(otherCoord).Category

		straight := enemy.Facing == enemy.PriorFacing

		switch {
		case !enemy.Busy() && straight:
			switch {
			case side == Empty:
				turn(g.at(c), preferred, s)
			case side == Murphy:
				TriggerAreaExplosion(c, g, s)
			case front == Empty:
				advance(c, frontCoord, enemy, enemy.PriorFacing, g, s)
			case front == Murphy:
				TriggerAreaExplosion(c, g, s)
			case away == Empty:
				turn(g.at(c), other, s)
			case away == Murphy:
				TriggerAreaExplosion(c, g, s)
			default:
				turn(g.at(c), preferred, s)
			}

		case !enemy.Busy():
			switch front {
			case Empty:
				advance(c, frontCoord, enemy, enemy.Facing, g, s)
			case Murphy:
				TriggerAreaExplosion(c, g, s)
			default:
				t := g.at(c)
				t.Timer = s.carry(t.Timer) + s.Rules.TurnCost
				t.PriorFacing = t.Facing
				t.Interaction = Rotating
			}

		case enemy.Timer <= s.Rules.TurnLookahead && straight:
			switch {
			case side == Empty || side == Murphy:
				turn(g.at(c), preferred, s)
			case front == Empty || front == Murphy:
			case away == Empty || away == Murphy:
				turn(g.at(c), other, s)
			default:
				turn(g.at(c), preferred, s)
			}
		}
	}
}

// turn starts a quarter turn in place.
func turn(t *Tile, to Direction, s *LevelState) {
	t.Timer = s.carry(t.Timer) + s.Rules.TurnCost
	t.Facing = to
	t.Interaction = Rotating
}

// advance moves an enemy one cell along its heading.
func advance(from, to Coord, enemy Tile, prior Direction, g *Grid, s *LevelState) {
	timer := s.carry(enemy.Timer) + s.Rules.MoveCost
	moved := enemy
	moved.Timer = timer
	moved.PriorFacing = prior
	moved.Interaction = Moving
	g.Set(to, moved)
	g.Set(from, TransitoryTile(timer, Empty))
}
