// Package engine implements the fruit-merge simulation: one falling fruit
// integrated per tick, collision against the pit walls, floor and settled
// fruit, chained same-tier merges, and a dwell-based game-over latch.
//
// The engine has no rendering or input dependencies. Collaborators observe
// it through the ScoreSink, GameOverNotifier and Renderer interfaces.
package engine

import (
	"fmt"
	"time"
)

// Config holds the pit geometry and physics tuning for a session.
// Velocities and accelerations are per tick, not per second.
type Config struct {
	PitWidth  float64 // Horizontal extent, walls at 0 and PitWidth
	PitHeight float64 // Floor y-coordinate
	CeilingY  float64 // Settled fruit with top edge above this line risk game over
	SpawnY    float64 // Vertical spawn offset of a new fruit

	Gravity         float64 // Added to vy every tick while falling
	WallDamping     float64 // Multiplier applied to vx on wall contact (negative)
	ContactFactor   float64 // Stacking contact when distance < (r1+r2)*ContactFactor
	MergeSlack      float64 // Merge when distance < r1+r2-MergeSlack
	ReleaseVelocity float64 // Initial downward speed on release

	RollClearance float64 // Both sides need this much room for a random roll
	RollMinSpeed  float64 // Smallest roll impulse
	RollMaxSpeed  float64 // Largest roll impulse
	RollFriction  float64 // vx multiplier per tick while rolling on the floor
	RestSpeed     float64 // Rolling fruit settles below this horizontal speed

	DwellTime  time.Duration // Time above the ceiling before game over
	DwellSpeed float64       // Fruit faster than this do not accumulate dwell
}

// DefaultConfig returns the reference 400x600 pit tuning.
func DefaultConfig() Config {
	return Config{
		PitWidth:  400,
		PitHeight: 600,
		CeilingY:  80,
		SpawnY:    40,

		Gravity:         0.3,
		WallDamping:     -0.5,
		ContactFactor:   0.9,
		MergeSlack:      2,
		ReleaseVelocity: 1,

		RollClearance: 20,
		RollMinSpeed:  0.5,
		RollMaxSpeed:  2.5,
		RollFriction:  0.9,
		RestSpeed:     0.15,

		DwellTime:  500 * time.Millisecond,
		DwellSpeed: 0.5,
	}
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	switch {
	case c.PitWidth <= 0 || c.PitHeight <= 0:
		return fmt.Errorf("engine: pit must have positive size, got %vx%v", c.PitWidth, c.PitHeight)
	case c.CeilingY < 0 || c.CeilingY >= c.PitHeight:
		return fmt.Errorf("engine: ceiling %v must lie inside the pit", c.CeilingY)
	case c.SpawnY < 0 || c.SpawnY >= c.PitHeight:
		return fmt.Errorf("engine: spawn y %v must lie inside the pit", c.SpawnY)
	case c.Gravity <= 0:
		return fmt.Errorf("engine: gravity must be positive, got %v", c.Gravity)
	case c.WallDamping > 0 || c.WallDamping < -1:
		return fmt.Errorf("engine: wall damping must be in [-1, 0], got %v", c.WallDamping)
	case c.ContactFactor <= 0 || c.ContactFactor > 1:
		return fmt.Errorf("engine: contact factor must be in (0, 1], got %v", c.ContactFactor)
	case c.MergeSlack < 0:
		return fmt.Errorf("engine: merge slack must not be negative, got %v", c.MergeSlack)
	case c.ReleaseVelocity <= 0:
		return fmt.Errorf("engine: release velocity must be positive, got %v", c.ReleaseVelocity)
	case c.RollMinSpeed < 0 || c.RollMaxSpeed < c.RollMinSpeed:
		return fmt.Errorf("engine: roll speed range [%v, %v] is invalid", c.RollMinSpeed, c.RollMaxSpeed)
	case c.RollFriction <= 0 || c.RollFriction >= 1:
		return fmt.Errorf("engine: roll friction must be in (0, 1), got %v", c.RollFriction)
	case c.RestSpeed <= 0:
		return fmt.Errorf("engine: rest speed must be positive, got %v", c.RestSpeed)
	case c.DwellTime < 0:
		return fmt.Errorf("engine: dwell time must not be negative, got %v", c.DwellTime)
	}
	return nil
}
