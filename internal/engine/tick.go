package engine

import (
	"math"
	"time"
)

// Tick advances the simulation by one frame. Gravity and integration are
// applied once per call regardless of dt; dt only feeds the game-over dwell
// timer. A settle, the full merge cascade it triggers, and the game-over
// check all complete inside a single call.
func (s *Session) Tick(dt time.Duration) {
	if s.gameOver {
		return
	}
	s.tick++
	s.elapsed += dt

	if a := s.active; a != nil && a.Released {
		s.stepActive(a)
	}

	if s.sag() {
		s.ResolveMerges()
	}
	s.checkGameOver(dt)

	if s.opts.Renderer != nil {
		s.opts.Renderer.Render(s.Snapshot())
	}
}

// stepActive integrates the falling fruit and resolves wall, floor and
// stacking contact.
func (s *Session) stepActive(a *Fruit) {
	a.VY += s.cfg.Gravity
	a.X += a.VX
	a.Y += a.VY

	s.clampWalls(a)

	floor := s.cfg.PitHeight
	if a.Bottom() >= floor {
		a.Y = floor - a.Radius
		a.VY = 0
		if f := s.firstContact(a); f != nil {
			s.restOn(a, f)
			s.settle(a)
			return
		}
		if !a.Rolled {
			s.roll(a)
		}
		a.VX *= s.cfg.RollFriction
		if math.Abs(a.VX) < s.cfg.RestSpeed {
			s.settle(a)
		}
		return
	}

	if f := s.firstContact(a); f != nil {
		s.restOn(a, f)
		s.settle(a)
	}
}

// restEpsilon keeps a resting fruit just inside its supporter's contact
// radius so it stays supported on the next tick.
const restEpsilon = 1e-6

// restOn moves a back along the line between centers so it rests at the
// contact distance from f, then keeps it inside the walls and above the
// floor. Coincident centers push a straight up.
func (s *Session) restOn(a, f *Fruit) {
	contact := (a.Radius+f.Radius)*s.cfg.ContactFactor - restEpsilon
	dx, dy := a.X-f.X, a.Y-f.Y
	d := math.Hypot(dx, dy)
	if d >= contact {
		return
	}
	if d == 0 {
		dx, dy, d = 0, -1, 1
	}
	a.X = f.X + dx/d*contact
	a.Y = f.Y + dy/d*contact
	a.X = clampF(a.X, a.Radius, s.cfg.PitWidth-a.Radius)
	if a.Bottom() > s.cfg.PitHeight {
		a.Y = s.cfg.PitHeight - a.Radius
	}
}

// clampWalls keeps the fruit inside the side walls, reflecting and damping
// its horizontal velocity on contact.
func (s *Session) clampWalls(a *Fruit) {
	switch {
	case a.X-a.Radius < 0:
		a.X = a.Radius
		a.VX *= s.cfg.WallDamping
	case a.X+a.Radius > s.cfg.PitWidth:
		a.X = s.cfg.PitWidth - a.Radius
		a.VX *= s.cfg.WallDamping
	}
}

// firstContact returns the first settled fruit, in insertion order, that the
// given fruit is resting against.
func (s *Session) firstContact(a *Fruit) *Fruit {
	for _, f := range s.settled {
		if f == a {
			continue
		}
		if within(a, f, (a.Radius+f.Radius)*s.cfg.ContactFactor) {
			return f
		}
	}
	return nil
}

// roll applies the one-time horizontal impulse on first floor contact.
// With room on both sides the direction is random; otherwise the fruit
// rolls away from the nearer wall.
func (s *Session) roll(a *Fruit) {
	a.Rolled = true

	left := a.X - a.Radius
	right := s.cfg.PitWidth - (a.X + a.Radius)
	mag := s.cfg.RollMinSpeed + s.rng.Float64()*(s.cfg.RollMaxSpeed-s.cfg.RollMinSpeed)

	var dir float64
	switch {
	case left > s.cfg.RollClearance && right > s.cfg.RollClearance:
		dir = 1
		if s.rng.Intn(2) == 0 {
			dir = -1
		}
	case left > right:
		dir = -1
	default:
		dir = 1
	}
	a.VX += dir * mag
}

// settle moves the active fruit into the settled set, resolves the merge
// cascade and spawns the next fruit.
func (s *Session) settle(a *Fruit) {
	a.VX, a.VY = 0, 0
	a.Settled = true
	s.settled = append(s.settled, a)
	s.active = nil

	s.ResolveMerges()
	s.Spawn()
}

// sag lets unsupported settled fruit fall straight down until they rest on
// the floor or on a fruit below them. Reports whether any fruit moved.
func (s *Session) sag() bool {
	moved := false
	floor := s.cfg.PitHeight
	for _, f := range s.settled {
		if f.Bottom() >= floor || s.support(f) != nil {
			f.VY = 0
			continue
		}
		f.VY += s.cfg.Gravity
		f.Y += f.VY
		if f.Bottom() >= floor {
			f.Y = floor - f.Radius
			f.VY = 0
		} else if o := s.support(f); o != nil {
			s.restOn(f, o)
			f.VY = 0
		}
		moved = true
	}
	return moved
}

// support returns the first settled fruit below f's center that f rests
// against, or nil.
func (s *Session) support(f *Fruit) *Fruit {
	for _, o := range s.settled {
		if o == f || o.Y <= f.Y {
			continue
		}
		if within(f, o, (f.Radius+o.Radius)*s.cfg.ContactFactor) {
			return o
		}
	}
	return nil
}
