package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/meeplelab/gamescout/internal/db"
	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/neighbor"
)

// SeedItems converts a loaded dataset into the hash layout RedisSource
// reads back: one hash per game and per neighbor list, each carrying the
// name and the raw JSON row. Descriptions are already merged into the
// records at this point.
func SeedItems(ds *Dataset, prefix string) ([]db.HashSetItem, error) {
	items := make([]db.HashSetItem, 0, len(ds.Games)+len(ds.Neighbors))

	for name, rec := range ds.Games {
		data, err := json.Marshal(rowFromRecord(rec))
		if err != nil {
			return nil, fmt.Errorf("seed game %q: %w", name, err)
		}
		items = append(items, db.HashSetItem{
			Key:    prefix + "game:" + name,
			Fields: map[string]string{fieldName: name, fieldData: string(data)},
		})
	}

	for name, entries := range ds.Neighbors {
		data, err := json.Marshal(rowsFromEntries(entries))
		if err != nil {
			return nil, fmt.Errorf("seed neighbors %q: %w", name, err)
		}
		items = append(items, db.HashSetItem{
			Key:    prefix + "neighbors:" + name,
			Fields: map[string]string{fieldName: name, fieldData: string(data)},
		})
	}

	return items, nil
}

func rowFromRecord(rec *game.Record) gameRow {
	row := gameRow{
		Name:           rec.Name,
		Year:           rec.Year,
		MinPlayers:     rec.MinPlayers,
		MaxPlayers:     rec.MaxPlayers,
		Playtime:       rec.Playtime,
		Age:            rec.Age,
		AvgRating:      rec.AvgRating,
		Designer:       rec.Designer,
		Artist:         rec.Artist,
		Publisher:      rec.Publisher,
		Mechanics:      rec.Mechanics,
		Categories:     rec.Categories,
		RankCategories: rec.RankCategories,
		Description:    rec.Description,
		Image:          rec.Image,
	}
	if rec.BGGID != 0 {
		id := rec.BGGID
		row.BGGID = &id
	}
	return row
}

func rowsFromEntries(entries []neighbor.Entry) []neighborRow {
	rows := make([]neighborRow, len(entries))
	for i, e := range entries {
		rows[i] = neighborRow{Name: e.Name, Score: e.Score, Reasons: e.Reasons}
	}
	return rows
}
