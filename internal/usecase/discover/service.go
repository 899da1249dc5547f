// Package discover implements the guided "help me find a game" flow:
// conjunctive catalog filtering with a best-effort fallback and a random
// pick from the final pool.
package discover

import (
	"math"
	"math/rand/v2"

	"github.com/meeplelab/gamescout/internal/domain"
	"github.com/meeplelab/gamescout/internal/domain/game"
)

// Catalog provides ordered catalog scans.
type Catalog interface {
	Records() []*game.Record
}

// Criteria is one wizard answer set. Zero values mean "not chosen".
// Playtime matches within ±20% of the candidate's own playtime.
type Criteria struct {
	Publisher string
	Mechanic  string
	Theme     string
	Designer  string
	Year      *int
	Players   *int
	Playtime  *int
}

// Pick is the wizard outcome: a randomly chosen game from the candidate
// pool. Exact reports whether all criteria matched or the best-effort
// fallback kicked in; Pool is the size the pick was drawn from.
type Pick struct {
	Name  string
	Exact bool
	Pool  int
}

// Service runs discovery over the immutable catalog.
type Service struct {
	catalog Catalog
	rng     *rand.Rand
}

// New creates a discover service. The rand source is injected so tests
// can pin the pick.
func New(catalog Catalog, rng *rand.Rand) *Service {
	return &Service{catalog: catalog, rng: rng}
}

// Count returns how many games satisfy every chosen criterion. Shown
// after each wizard step so users see the pool narrowing.
func (s *Service) Count(c Criteria) int {
	n := 0
	for _, rec := range s.catalog.Records() {
		if fits(rec, c) {
			n++
		}
	}
	return n
}

// Find picks a random game matching the criteria. When nothing matches
// all of them, it falls back to the games satisfying the most criteria.
func (s *Service) Find(c Criteria) (Pick, error) {
	records := s.catalog.Records()
	if len(records) == 0 {
		return Pick{}, domain.ErrNoCandidates
	}

	var pool []*game.Record
	for _, rec := range records {
		if fits(rec, c) {
			pool = append(pool, rec)
		}
	}
	exact := len(pool) > 0

	if !exact {
		best := -1
		for _, rec := range records {
			score := matchScore(rec, c)
			switch {
			case score > best:
				best = score
				pool = pool[:0]
				pool = append(pool, rec)
			case score == best:
				pool = append(pool, rec)
			}
		}
	}

	chosen := pool[s.rng.IntN(len(pool))]
	return Pick{Name: chosen.Name, Exact: exact, Pool: len(pool)}, nil
}

// fits applies every chosen criterion conjunctively. Unknown record
// fields fail the criterion referencing them.
func fits(rec *game.Record, c Criteria) bool {
	if c.Publisher != "" && rec.Publisher != c.Publisher {
		return false
	}
	if c.Mechanic != "" && !rec.HasMechanic(c.Mechanic) {
		return false
	}
	if c.Theme != "" && !rec.HasCategory(c.Theme) {
		return false
	}
	if c.Designer != "" && rec.Designer != c.Designer {
		return false
	}
	if c.Year != nil && (rec.Year == nil || *rec.Year != *c.Year) {
		return false
	}
	if c.Players != nil && !rec.PlayerRangeContains(*c.Players) {
		return false
	}
	if c.Playtime != nil && !playtimeNear(rec, *c.Playtime) {
		return false
	}
	return true
}

// matchScore counts the chosen criteria a record satisfies.
func matchScore(rec *game.Record, c Criteria) int {
	score := 0
	if c.Publisher != "" && rec.Publisher == c.Publisher {
		score++
	}
	if c.Mechanic != "" && rec.HasMechanic(c.Mechanic) {
		score++
	}
	if c.Theme != "" && rec.HasCategory(c.Theme) {
		score++
	}
	if c.Designer != "" && rec.Designer == c.Designer {
		score++
	}
	if c.Year != nil && rec.Year != nil && *rec.Year == *c.Year {
		score++
	}
	if c.Players != nil && rec.PlayerRangeContains(*c.Players) {
		score++
	}
	if c.Playtime != nil && playtimeNear(rec, *c.Playtime) {
		score++
	}
	return score
}

// playtimeNear uses a window relative to the candidate's own playtime, so
// long games tolerate a proportionally larger miss.
func playtimeNear(rec *game.Record, target int) bool {
	if rec.Playtime == nil {
		return false
	}
	pt := float64(*rec.Playtime)
	return math.Abs(pt-float64(target)) <= pt*0.2
}
