package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-suika/internal/engine"
	"github.com/vovakirdan/tui-suika/internal/fruit"
)

//go:embed defaults/suika.yaml
var defaultSuikaYAML []byte

// DefaultSuikaConfig returns the reference 400x600 pit with the nine-tier
// catalog. It mirrors defaults/suika.yaml and is used when the embedded
// file cannot be parsed.
func DefaultSuikaConfig() SuikaConfig {
	e := engine.DefaultConfig()
	cfg := SuikaConfig{
		Pit: PitConfig{
			Width:    e.PitWidth,
			Height:   e.PitHeight,
			CeilingY: e.CeilingY,
		},
		Physics: PhysicsConfig{
			Gravity:         e.Gravity,
			WallDamping:     e.WallDamping,
			ContactFactor:   e.ContactFactor,
			MergeSlack:      e.MergeSlack,
			ReleaseVelocity: e.ReleaseVelocity,
			Roll: RollConfig{
				Clearance: e.RollClearance,
				MinSpeed:  e.RollMinSpeed,
				MaxSpeed:  e.RollMaxSpeed,
				Friction:  e.RollFriction,
				RestSpeed: e.RestSpeed,
			},
		},
		Spawn: SpawnConfig{
			Y:        e.SpawnY,
			PoolSize: fruit.DefaultSpawnPoolSize,
		},
		GameOver: GameOverConfig{
			DwellMS:    int(e.DwellTime.Milliseconds()),
			DwellSpeed: e.DwellSpeed,
		},
	}
	for _, t := range fruit.Default().Tiers() {
		cfg.Fruits = append(cfg.Fruits, FruitConfig{
			Name:   t.Name,
			Radius: t.Radius,
			Score:  t.Score,
			Color:  t.Color,
		})
	}
	return cfg
}
