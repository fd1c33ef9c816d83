package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-suika/internal/config"
	"github.com/vovakirdan/tui-suika/internal/engine"
	"github.com/vovakirdan/tui-suika/internal/fruit"
	"github.com/vovakirdan/tui-suika/internal/game"
	"github.com/vovakirdan/tui-suika/internal/storage"
)

// History records finished sessions. *storage.Store implements it.
type History interface {
	SaveGame(result storage.GameResult) (int64, error)
}

// StatsSource aggregates finished sessions. *storage.Store implements it.
type StatsSource interface {
	Stats() (*storage.GameStats, error)
}

// Deps holds what every game screen needs, shared across sessions.
type Deps struct {
	Catalog *fruit.Catalog
	Physics engine.Config
	Ranking storage.Ranking
	History History // Optional
	Logger  *log.Logger
}

// NewDeps builds dependencies from a loaded config. A nil store falls back
// to an in-memory ranking without history.
func NewDeps(cfg config.SuikaConfig, store *storage.Store, logger *log.Logger) (Deps, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return Deps{}, err
	}
	if logger == nil {
		logger = log.Default()
	}

	d := Deps{
		Catalog: catalog,
		Physics: cfg.EngineConfig(),
		Logger:  logger,
	}
	if store != nil {
		d.Ranking = store
		d.History = store
	} else {
		d.Ranking = storage.NewMemoryRanking()
	}
	return d, nil
}

// NewGame creates a fresh game over the shared catalog and physics.
func (d Deps) NewGame() *game.Game {
	return game.New(d.Catalog, d.Physics)
}

// stats returns the history as a StatsSource, if it is one.
func (d Deps) stats() StatsSource {
	if s, ok := d.History.(StatsSource); ok {
		return s
	}
	return nil
}
