package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meeplelab/gamescout/internal/db"
	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/neighbor"
)

// Key layout under the configured prefix, written by gamescout-seed.
// Each hash carries the game name and the raw JSON row.
const (
	gameKeyPattern     = "game:*"
	neighborKeyPattern = "neighbors:*"

	fieldName = "name"
	fieldData = "data"
)

// hgetallBatch bounds the number of HGETALLs pipelined per round-trip.
const hgetallBatch = 500

// RedisSource bulk-loads a dataset that gamescout-seed wrote into Redis.
// Descriptions are merged at seed time, so only two key families exist.
type RedisSource struct {
	store  db.HashStore
	prefix string
}

var _ Source = (*RedisSource)(nil)

// NewRedisSource creates a Redis-backed dataset source.
func NewRedisSource(store db.HashStore, prefix string) *RedisSource {
	return &RedisSource{store: store, prefix: prefix}
}

// Load scans both key families and hydrates the full dataset.
func (s *RedisSource) Load(ctx context.Context) (*Dataset, error) {
	games, err := s.loadGames(ctx)
	if err != nil {
		return nil, err
	}
	neighbors, err := s.loadNeighbors(ctx)
	if err != nil {
		return nil, err
	}
	return &Dataset{Games: games, Neighbors: neighbors}, nil
}

func (s *RedisSource) loadGames(ctx context.Context) (map[string]*game.Record, error) {
	hashes, err := s.scanAll(ctx, s.prefix+gameKeyPattern)
	if err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}

	games := make(map[string]*game.Record, len(hashes))
	for _, h := range hashes {
		name := h[fieldName]
		if name == "" {
			continue
		}
		var row gameRow
		if err := json.Unmarshal([]byte(h[fieldData]), &row); err != nil {
			return nil, fmt.Errorf("load games: record %q: %w", name, err)
		}
		games[name] = row.toRecord(name)
	}
	return games, nil
}

func (s *RedisSource) loadNeighbors(ctx context.Context) (map[string][]neighbor.Entry, error) {
	hashes, err := s.scanAll(ctx, s.prefix+neighborKeyPattern)
	if err != nil {
		return nil, fmt.Errorf("load neighbors: %w", err)
	}

	index := make(map[string][]neighbor.Entry, len(hashes))
	for _, h := range hashes {
		name := h[fieldName]
		if name == "" {
			continue
		}
		var rows []neighborRow
		if err := json.Unmarshal([]byte(h[fieldData]), &rows); err != nil {
			index[name] = nil
			continue
		}
		entries := make([]neighbor.Entry, len(rows))
		for i, row := range rows {
			entries[i] = neighbor.Entry{
				Name:    row.Name,
				Score:   row.Score,
				Reasons: canonicalReasons(row),
			}
		}
		index[name] = entries
	}
	return index, nil
}

// scanAll fetches every hash matching pattern in pipelined batches.
func (s *RedisSource) scanAll(ctx context.Context, pattern string) ([]map[string]string, error) {
	keys, err := s.store.Scan(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]string, 0, len(keys))
	for start := 0; start < len(keys); start += hgetallBatch {
		end := start + hgetallBatch
		if end > len(keys) {
			end = len(keys)
		}
		batch, err := s.store.HGetAllMulti(ctx, keys[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}
