// Package dataset loads the offline-produced catalog and neighbor index
// from static files or a pre-seeded Redis instance.
package dataset

import (
	"context"

	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/neighbor"
)

// Dataset is the fully materialized, immutable data the service runs on.
type Dataset struct {
	Games     map[string]*game.Record
	Neighbors map[string][]neighbor.Entry
}

// Source produces a Dataset in one blocking load. The service is not
// ready to search until a Source has returned.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}
