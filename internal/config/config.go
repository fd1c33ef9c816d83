// Package config provides YAML-based configuration loading for the suika
// game: pit geometry, physics tuning, spawn rules, the game-over policy and
// the fruit catalog.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-suika/internal/engine"
	"github.com/vovakirdan/tui-suika/internal/fruit"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// SuikaConfig contains all configuration for the game.
type SuikaConfig struct {
	Pit      PitConfig      `yaml:"pit"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	GameOver GameOverConfig `yaml:"game_over"`
	Fruits   []FruitConfig  `yaml:"fruits"`
}

// PitConfig defines the pit geometry in world units.
type PitConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CeilingY float64 `yaml:"ceiling_y"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity         float64    `yaml:"gravity"`
	WallDamping     float64    `yaml:"wall_damping"`
	ContactFactor   float64    `yaml:"contact_factor"`
	MergeSlack      float64    `yaml:"merge_slack"`
	ReleaseVelocity float64    `yaml:"release_velocity"`
	Roll            RollConfig `yaml:"roll"`
}

// RollConfig defines the floor roll applied on first floor contact.
type RollConfig struct {
	Clearance float64 `yaml:"clearance"`
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Friction  float64 `yaml:"friction"`
	RestSpeed float64 `yaml:"rest_speed"`
}

// SpawnConfig defines where new fruit appear and which tiers may spawn.
type SpawnConfig struct {
	Y        float64 `yaml:"y"`
	PoolSize int     `yaml:"pool_size"` // Lowest N tiers are spawnable
}

// GameOverConfig defines the dwell-based game-over policy.
type GameOverConfig struct {
	DwellMS    int     `yaml:"dwell_ms"`    // 0 ends the game on first crossing
	DwellSpeed float64 `yaml:"dwell_speed"` // Faster fruit do not accumulate dwell
}

// FruitConfig defines one catalog tier. Tiers are listed smallest first.
type FruitConfig struct {
	Name   string  `yaml:"name"`
	Radius float64 `yaml:"radius"`
	Score  int     `yaml:"score"`
	Color  string  `yaml:"color"`
}

// EngineConfig converts the YAML config into simulation tuning.
func (c SuikaConfig) EngineConfig() engine.Config {
	return engine.Config{
		PitWidth:  c.Pit.Width,
		PitHeight: c.Pit.Height,
		CeilingY:  c.Pit.CeilingY,
		SpawnY:    c.Spawn.Y,

		Gravity:         c.Physics.Gravity,
		WallDamping:     c.Physics.WallDamping,
		ContactFactor:   c.Physics.ContactFactor,
		MergeSlack:      c.Physics.MergeSlack,
		ReleaseVelocity: c.Physics.ReleaseVelocity,

		RollClearance: c.Physics.Roll.Clearance,
		RollMinSpeed:  c.Physics.Roll.MinSpeed,
		RollMaxSpeed:  c.Physics.Roll.MaxSpeed,
		RollFriction:  c.Physics.Roll.Friction,
		RestSpeed:     c.Physics.Roll.RestSpeed,

		DwellTime:  time.Duration(c.GameOver.DwellMS) * time.Millisecond,
		DwellSpeed: c.GameOver.DwellSpeed,
	}
}

// Catalog builds the fruit catalog described by the config.
func (c SuikaConfig) Catalog() (*fruit.Catalog, error) {
	tiers := make([]fruit.Tier, len(c.Fruits))
	for i, f := range c.Fruits {
		tiers[i] = fruit.Tier{
			Radius: f.Radius,
			Score:  f.Score,
			Name:   f.Name,
			Color:  f.Color,
		}
	}
	return fruit.NewCatalog(tiers, c.Spawn.PoolSize)
}

// Validate checks that the config describes a playable pit and catalog.
func (c SuikaConfig) Validate() error {
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.GameOver.DwellMS < 0 {
		return fmt.Errorf("%w: dwell_ms must not be negative", ErrInvalid)
	}
	cat, err := c.Catalog()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if top := cat.MustTierAt(cat.Len() - 1); 2*top.Radius > c.Pit.Width {
		return fmt.Errorf("%w: %s (radius %v) does not fit a %v wide pit",
			ErrInvalid, top.Name, top.Radius, c.Pit.Width)
	}
	return nil
}
