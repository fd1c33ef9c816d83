package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-suika/internal/fruit"
)

// Session owns one game: the active fruit, the settled set, the score and
// the game-over latch. All mutation happens through its methods from a
// single goroutine; a Session is not safe for concurrent use.
type Session struct {
	catalog *fruit.Catalog
	cfg     Config
	opts    Options
	rng     *rand.Rand

	active  *Fruit
	settled []*Fruit
	nextID  FruitID
	next    int     // Pre-drawn tier for the next spawn
	targetX float64 // Last pointer target, used for spawn position

	score    int
	gameOver bool
	tick     uint64
	elapsed  time.Duration
	merges   int
	maxTier  int

	// dwell holds accumulated time above the ceiling per settled fruit.
	dwell *intmap.Map[FruitID, time.Duration]
}

// NewSession creates a session and spawns the first fruit.
// The config must be valid; see Config.Validate.
func NewSession(catalog *fruit.Catalog, cfg Config, opts Options) *Session {
	s := &Session{
		catalog: catalog,
		cfg:     cfg,
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}
	s.Reset()
	return s
}

// Reset clears the pit, zeroes the score, unlatches game over and spawns a
// new fruit at the pit center.
func (s *Session) Reset() {
	s.active = nil
	s.settled = nil
	s.score = 0
	s.gameOver = false
	s.tick = 0
	s.elapsed = 0
	s.merges = 0
	s.maxTier = 0
	s.targetX = s.cfg.PitWidth / 2
	s.dwell = intmap.New[FruitID, time.Duration](32)
	s.next = s.drawTier()
	s.Spawn()
}

// Spawn creates the active fruit if none exists. A call while a fruit is
// already active, aiming or falling, is ignored. The tier is the pre-drawn
// next tier, and a fresh next tier is drawn uniformly from the spawn pool.
func (s *Session) Spawn() {
	if s.active != nil || s.gameOver {
		return
	}
	tier := s.next
	s.next = s.drawTier()
	s.spawnTier(tier)
}

// spawnTier places an aiming fruit of the given tier at the spawn row.
func (s *Session) spawnTier(tier int) *Fruit {
	f := s.newFruit(tier, s.targetX, s.cfg.SpawnY)
	f.X = clampF(f.X, f.Radius, s.cfg.PitWidth-f.Radius)
	s.active = f
	return f
}

// newFruit allocates a fruit with a fresh ID and its catalog radius.
func (s *Session) newFruit(tier int, x, y float64) *Fruit {
	t := s.catalog.MustTierAt(tier)
	s.nextID++
	if tier > s.maxTier {
		s.maxTier = tier
	}
	return &Fruit{
		ID:     s.nextID,
		Tier:   tier,
		X:      x,
		Y:      y,
		Radius: t.Radius,
	}
}

func (s *Session) drawTier() int {
	pool := s.catalog.SpawnPool()
	return pool[s.rng.Intn(len(pool))]
}

// SetTargetX moves the aiming fruit horizontally. The position is clamped
// so the fruit stays inside the walls. Once the fruit is released the
// target is only remembered for the next spawn. NaN is ignored.
func (s *Session) SetTargetX(x float64) {
	if math.IsNaN(x) {
		return
	}
	s.targetX = clampF(x, 0, s.cfg.PitWidth)
	if s.active != nil && s.active.Aiming() {
		s.active.X = clampF(x, s.active.Radius, s.cfg.PitWidth-s.active.Radius)
	}
}

// Release drops the aiming fruit. It has no effect when the fruit is
// already falling or no fruit is active.
func (s *Session) Release() {
	if s.gameOver || s.active == nil || !s.active.Aiming() {
		return
	}
	s.active.Released = true
	s.active.VY = s.cfg.ReleaseVelocity
}

// Score returns the session score.
func (s *Session) Score() int {
	return s.score
}

// GameOver reports whether the game-over latch has tripped.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Elapsed returns the simulated time accumulated by Tick.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Merges returns the number of merges performed this session.
func (s *Session) Merges() int {
	return s.merges
}

// MaxTier returns the highest tier that has existed this session.
func (s *Session) MaxTier() int {
	return s.maxTier
}

// NextTier returns the tier the next spawn will use.
func (s *Session) NextTier() int {
	return s.next
}

// Catalog returns the tier catalog used by the session.
func (s *Session) Catalog() *fruit.Catalog {
	return s.catalog
}

// Config returns the session's physics configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Active returns a copy of the active fruit, if any.
func (s *Session) Active() (Fruit, bool) {
	if s.active == nil {
		return Fruit{}, false
	}
	return *s.active, true
}

// Settled returns a copy of the settled set in insertion order.
func (s *Session) Settled() []Fruit {
	out := make([]Fruit, len(s.settled))
	for i, f := range s.settled {
		out[i] = *f
	}
	return out
}

// Snapshot returns a copy of the full session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.tick,
		Settled:  s.Settled(),
		Next:     s.next,
		TargetX:  s.targetX,
		Score:    s.score,
		GameOver: s.gameOver,
		Merges:   s.merges,
		MaxTier:  s.maxTier,
	}
	if s.active != nil {
		a := *s.active
		snap.Active = &a
	}
	return snap
}
