package explore

import "github.com/meeplelab/gamescout/internal/domain/game"

// Catalog provides record lookup and ordered catalog scans.
type Catalog interface {
	Get(name string) (*game.Record, bool)
	Records() []*game.Record
}
