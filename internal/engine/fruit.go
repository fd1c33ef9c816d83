package engine

import (
	"math"

	"github.com/vovakirdan/tui-suika/internal/core"
)

// FruitID identifies a fruit for the lifetime of a session.
type FruitID uint64

// Fruit is a simulated body. The active fruit is either aiming (not yet
// released) or falling; every other fruit lives in the settled set.
type Fruit struct {
	ID       FruitID
	Tier     int
	X, Y     float64 // Center position
	VX, VY   float64 // Velocity per tick
	Radius   float64 // Cached catalog radius for Tier
	Settled  bool    // Member of the settled set
	Released bool    // Active fruit has been dropped
	Rolled   bool    // Floor roll impulse already applied
}

// Top returns the y-coordinate of the fruit's top edge.
func (f *Fruit) Top() float64 {
	return f.Y - f.Radius
}

// Bottom returns the y-coordinate of the fruit's bottom edge.
func (f *Fruit) Bottom() float64 {
	return f.Y + f.Radius
}

// Speed returns the magnitude of the fruit's velocity.
func (f *Fruit) Speed() float64 {
	return math.Hypot(f.VX, f.VY)
}

// Aiming reports whether the fruit is active and waiting to be dropped.
func (f *Fruit) Aiming() bool {
	return !f.Settled && !f.Released
}

// distSq returns the squared distance between two fruit centers.
func distSq(a, b *Fruit) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// within reports whether the centers of a and b are closer than limit.
func within(a, b *Fruit, limit float64) bool {
	if limit <= 0 {
		return false
	}
	return distSq(a, b) < limit*limit
}

func clampF(v, lo, hi float64) float64 {
	if lo > hi {
		// Fruit wider than the pit: pin to the center.
		return (lo + hi) / 2
	}
	return core.ClampF(v, lo, hi)
}
