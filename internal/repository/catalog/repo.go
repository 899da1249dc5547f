// Package catalog is the read-only, fully materialized game catalog.
package catalog

import (
	"sort"

	"github.com/meeplelab/gamescout/internal/domain/game"
)

// Repo answers name lookups over the immutable catalog. Safe for
// concurrent reads; never mutated after construction.
type Repo struct {
	games   map[string]*game.Record
	ordered []*game.Record
}

// New builds a catalog repository. The records slice view is sorted by
// name once so that catalog-wide scans are deterministic.
func New(games map[string]*game.Record) *Repo {
	ordered := make([]*game.Record, 0, len(games))
	for _, rec := range games {
		ordered = append(ordered, rec)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })
	return &Repo{games: games, ordered: ordered}
}

// Get resolves a game by exact name.
func (r *Repo) Get(name string) (*game.Record, bool) {
	rec, ok := r.games[name]
	return rec, ok
}

// Records returns all records in name order. Callers must not modify the
// returned slice or the records.
func (r *Repo) Records() []*game.Record {
	return r.ordered
}

// Len returns the number of games.
func (r *Repo) Len() int {
	return len(r.games)
}
