package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// DatasetChecker reports how many games the loaded catalog holds.
type DatasetChecker interface {
	Len() int
}
