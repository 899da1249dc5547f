package search

import (
	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/neighbor"
)

// Catalog resolves game names to their attribute records.
type Catalog interface {
	Get(name string) (*game.Record, bool)
}

// NeighborIndex returns the precomputed candidate list for a base game,
// pre-sorted by descending similarity. Implementations must return a copy
// the caller may annotate freely.
type NeighborIndex interface {
	Lookup(name string) []neighbor.Entry
}
