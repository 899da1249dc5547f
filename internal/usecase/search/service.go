// Package search implements the filtering-and-ranking pipeline over the
// precomputed neighbor index.
package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/search/request"
	"github.com/meeplelab/gamescout/internal/domain/search/result"
	"github.com/meeplelab/gamescout/internal/logger"
)

// Service runs searches against an immutable catalog and neighbor index.
type Service struct {
	catalog Catalog
	index   NeighborIndex
}

// New creates a search service.
func New(catalog Catalog, index NeighborIndex) *Service {
	return &Service{catalog: catalog, index: index}
}

// Search filters, annotates, and truncates the precomputed candidate list
// for baseName. An empty or unresolved base name yields an empty Result,
// a valid terminal outcome rather than an error. The stage order matters: later
// stages assume earlier exclusions already happened. The index ordering is
// trusted (pre-sorted by descending score upstream); no re-sorting here.
func (s *Service) Search(ctx context.Context, baseName string, filters *request.Filters) result.Result {
	base, ok := s.resolveBase(baseName)
	if !ok {
		return result.Result{}
	}

	candidates := s.index.Lookup(baseName)

	kept := candidates[:0]
	for _, c := range candidates {
		if c.Name == baseName {
			continue
		}
		if filters.ExcludePrefix() && strings.HasPrefix(c.Name, baseName) {
			continue
		}
		if filters.ExcludeExpansions() && isTooSimilar(baseName, c.Name) {
			continue
		}
		rec, found := s.catalog.Get(c.Name)
		if !found || !matchesFilters(rec, filters) {
			continue
		}
		if len(c.Reasons) == 0 {
			c.Reasons = Explain(base, rec)
		}
		kept = append(kept, c)
	}

	if len(kept) > filters.Limit() {
		kept = kept[:filters.Limit()]
	}

	items := make([]result.Item, len(kept))
	for i, c := range kept {
		items[i] = result.Item{Name: c.Name, Score: c.Score, Reasons: c.Reasons}
	}

	logger.FromContext(ctx).Debug("search completed",
		zap.String("base", baseName),
		zap.Int("candidates", len(candidates)),
		zap.Int("matches", len(items)),
	)

	return result.Result{Items: items, ActiveFilters: filters.ActiveLabels()}
}

func (s *Service) resolveBase(baseName string) (*game.Record, bool) {
	if baseName == "" {
		return nil, false
	}
	return s.catalog.Get(baseName)
}

// matchesFilters applies the conjunctive attribute predicates. A predicate
// whose filter is unset passes vacuously; a set predicate referencing an
// unknown record field fails closed.
func matchesFilters(rec *game.Record, f *request.Filters) bool {
	if min := f.MinRating(); min != nil && !rec.RatingAtLeast(*min) {
		return false
	}
	if p := f.Players(); p != nil && !rec.PlayerRangeContains(*p) {
		return false
	}
	if pt := f.Playtime(); pt != nil && !rec.PlaytimeWithin(*pt, request.PlaytimeWindow) {
		return false
	}
	if a := f.Artist(); a != "" && rec.Artist != a {
		return false
	}
	if p := f.Publisher(); p != "" && rec.Publisher != p {
		return false
	}
	if d := f.Designer(); d != "" && rec.Designer != d {
		return false
	}
	if t := f.Theme(); t != "" && !rec.HasCategory(t) {
		return false
	}
	for _, m := range f.Mechanics() {
		if !rec.HasMechanic(m) {
			return false
		}
	}
	return true
}
