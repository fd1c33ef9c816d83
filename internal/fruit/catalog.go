// Package fruit defines the tier catalog for the merge game.
// A catalog is static data: an ordered list of tiers, each with a radius,
// a score value and display attributes. It has no behavior beyond lookup.
package fruit

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a tier index is outside the catalog.
var ErrOutOfRange = errors.New("fruit: tier index out of range")

// Tier is a single rank in the size/score progression.
type Tier struct {
	Index  int     // Position in the catalog, also the size rank
	Radius float64 // Collision radius in world units
	Score  int     // Points awarded when this tier is created by a merge
	Name   string  // Display name
	Color  string  // Opaque display token (hex color)
}

// Catalog is an ordered, immutable list of tiers.
type Catalog struct {
	tiers     []Tier
	spawnPool []int
}

// defaultTiers mirrors the classic nine-fruit progression.
var defaultTiers = []Tier{
	{Radius: 18, Score: 1, Name: "Cherry", Color: "#ff4b4b"},
	{Radius: 22, Score: 2, Name: "Strawberry", Color: "#ff7f50"},
	{Radius: 26, Score: 4, Name: "Grape", Color: "#a259e6"},
	{Radius: 30, Score: 8, Name: "Tangerine", Color: "#ffb347"},
	{Radius: 36, Score: 16, Name: "Apple", Color: "#ffec47"},
	{Radius: 44, Score: 32, Name: "Pear", Color: "#bfff47"},
	{Radius: 54, Score: 64, Name: "Peach", Color: "#ffb6b9"},
	{Radius: 66, Score: 128, Name: "Melon", Color: "#47ffd1"},
	{Radius: 80, Score: 256, Name: "Watermelon", Color: "#47ff47"},
}

// DefaultSpawnPoolSize is the number of low tiers eligible for random spawn.
const DefaultSpawnPoolSize = 5

// Default returns the reference nine-tier catalog with a spawn pool of the
// bottom five tiers.
func Default() *Catalog {
	c, err := NewCatalog(defaultTiers, DefaultSpawnPoolSize)
	if err != nil {
		panic(err) // built-in table is known good
	}
	return c
}

// NewCatalog builds a catalog from tiers in ascending order.
// Index fields are assigned from slice position. The spawn pool is the
// first spawnPoolSize tiers.
func NewCatalog(tiers []Tier, spawnPoolSize int) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, errors.New("fruit: catalog must contain at least one tier")
	}
	if spawnPoolSize < 1 || spawnPoolSize > len(tiers) {
		return nil, fmt.Errorf("fruit: spawn pool size %d not in [1, %d]", spawnPoolSize, len(tiers))
	}

	c := &Catalog{
		tiers:     make([]Tier, len(tiers)),
		spawnPool: make([]int, spawnPoolSize),
	}
	for i, t := range tiers {
		if t.Radius <= 0 {
			return nil, fmt.Errorf("fruit: tier %d (%s) has non-positive radius %v", i, t.Name, t.Radius)
		}
		if t.Score < 0 {
			return nil, fmt.Errorf("fruit: tier %d (%s) has negative score %d", i, t.Name, t.Score)
		}
		if i > 0 && t.Radius <= tiers[i-1].Radius {
			return nil, fmt.Errorf("fruit: tier %d (%s) radius must exceed tier %d", i, t.Name, i-1)
		}
		t.Index = i
		c.tiers[i] = t
	}
	for i := range c.spawnPool {
		c.spawnPool[i] = i
	}
	return c, nil
}

// Len returns the number of tiers.
func (c *Catalog) Len() int {
	return len(c.tiers)
}

// TierAt returns the tier at index i.
func (c *Catalog) TierAt(i int) (Tier, error) {
	if i < 0 || i >= len(c.tiers) {
		return Tier{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(c.tiers))
	}
	return c.tiers[i], nil
}

// MustTierAt is like TierAt but panics on an invalid index.
// Tier indices held by live fruit are always valid, so a failure here is a
// programming error.
func (c *Catalog) MustTierAt(i int) Tier {
	t, err := c.TierAt(i)
	if err != nil {
		panic(err)
	}
	return t
}

// NextTier returns the successor of tier i.
// Reports false at the top tier, which has no successor.
func (c *Catalog) NextTier(i int) (Tier, bool) {
	if i < 0 || i+1 >= len(c.tiers) {
		return Tier{}, false
	}
	return c.tiers[i+1], true
}

// SpawnPool returns the tier indices eligible for random spawn.
func (c *Catalog) SpawnPool() []int {
	out := make([]int, len(c.spawnPool))
	copy(out, c.spawnPool)
	return out
}

// Tiers returns a copy of all tiers in order.
func (c *Catalog) Tiers() []Tier {
	out := make([]Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}
