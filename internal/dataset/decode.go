package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/neighbor"
)

// gameRow mirrors one entry of games.json. Numeric fields are pointers so
// absent values stay unknown instead of becoming zero.
type gameRow struct {
	Name           string   `json:"name"`
	BGGID          *int     `json:"BGGId"`
	Year           *int     `json:"year"`
	YearPublished  *int     `json:"yearPublished"`
	MinPlayers     *int     `json:"minPlayers"`
	MaxPlayers     *int     `json:"maxPlayers"`
	Playtime       *int     `json:"playtime"`
	Age            *int     `json:"age"`
	AvgRating      *float64 `json:"avgRating"`
	Designer       string   `json:"designer"`
	Artist         string   `json:"artist"`
	Publisher      string   `json:"publisher"`
	Mechanics      []string `json:"mechanics"`
	Categories     []string `json:"categories"`
	RankCategories []string `json:"rankCategories"`
	Description    string   `json:"description"`
	Image          string   `json:"image"`
}

// neighborRow mirrors one entry of a neighbors.json list. Historical dumps
// spelled the reasons field three different ways; canonicalReasons folds
// them into one.
type neighborRow struct {
	Name    string   `json:"name"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
	Reason  []string `json:"reason,omitempty"`
	Meta    struct {
		Reasons []string `json:"reasons,omitempty"`
	} `json:"meta,omitzero"`
}

// canonicalReasons resolves the reasons field with first-non-empty-wins
// precedence: reasons, then reason, then meta.reasons.
func canonicalReasons(row neighborRow) []string {
	if len(row.Reasons) > 0 {
		return row.Reasons
	}
	if len(row.Reason) > 0 {
		return row.Reason
	}
	return row.Meta.Reasons
}

func (r gameRow) toRecord(name string) *game.Record {
	if r.Name != "" {
		name = r.Name
	}
	rec := &game.Record{
		Name:           name,
		Year:           firstInt(r.Year, r.YearPublished),
		MinPlayers:     r.MinPlayers,
		MaxPlayers:     r.MaxPlayers,
		Playtime:       r.Playtime,
		Age:            r.Age,
		AvgRating:      r.AvgRating,
		Designer:       r.Designer,
		Artist:         r.Artist,
		Publisher:      r.Publisher,
		Mechanics:      r.Mechanics,
		Categories:     r.Categories,
		RankCategories: r.RankCategories,
		Description:    r.Description,
		Image:          r.Image,
	}
	if r.BGGID != nil {
		rec.BGGID = *r.BGGID
	}
	return rec
}

func firstInt(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

// decodeGames parses the name -> record mapping.
func decodeGames(data []byte) (map[string]*game.Record, error) {
	var rows map[string]gameRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse games: %w", err)
	}
	games := make(map[string]*game.Record, len(rows))
	for name, row := range rows {
		games[name] = row.toRecord(name)
	}
	return games, nil
}

// decodeNeighbors parses the name -> candidate-list mapping. A value that
// is not a list degrades to an empty candidate list rather than failing
// the whole load.
func decodeNeighbors(data []byte) (map[string][]neighbor.Entry, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse neighbors: %w", err)
	}
	index := make(map[string][]neighbor.Entry, len(raw))
	for name, msg := range raw {
		var rows []neighborRow
		if err := json.Unmarshal(msg, &rows); err != nil {
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

// decodeDescriptions parses the BGG-id -> description text mapping.
func decodeDescriptions(data []byte) (map[string]string, error) {
	var desc map[string]string
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parse descriptions: %w", err)
	}
	return desc, nil
}

// mergeDescriptions attaches description texts to records by BGG id.
func mergeDescriptions(games map[string]*game.Record, desc map[string]string) {
	if len(desc) == 0 {
		return
	}
	for _, rec := range games {
		if rec.BGGID == 0 {
			continue
		}
		if d, ok := desc[strconv.Itoa(rec.BGGID)]; ok && d != "" {
			rec.Description = d
		}
	}
}
