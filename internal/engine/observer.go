package engine

// ScoreSink receives the session score whenever a merge awards points.
type ScoreSink interface {
	OnScoreChanged(score int)
}

// GameOverNotifier is called exactly once per session when the game-over
// latch trips. Reset re-arms it.
type GameOverNotifier interface {
	OnGameOver(finalScore int)
}

// Renderer receives a snapshot of the pit once per tick, after settling,
// merging and the game-over check have completed.
type Renderer interface {
	Render(snap Snapshot)
}

// Options wires collaborators into a session. All fields are optional.
type Options struct {
	Seed     int64 // RNG seed for spawn tiers and roll impulses
	Score    ScoreSink
	GameOver GameOverNotifier
	Renderer Renderer
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Tick     uint64
	Active   *Fruit  // nil between settle and spawn, or after game over
	Settled  []Fruit // Insertion order
	Next     int     // Tier of the fruit spawned after the active one
	TargetX  float64 // Last pointer target
	Score    int
	GameOver bool
	Merges   int // Merges performed this session
	MaxTier  int // Highest tier seen this session
}
