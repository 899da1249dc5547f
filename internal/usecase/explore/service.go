// Package explore serves catalog lookups, typeahead suggestions, and
// facet value lists for the filter inputs.
package explore

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/meeplelab/gamescout/internal/domain"
	"github.com/meeplelab/gamescout/internal/domain/game"
)

// Facet identifies one filterable attribute.
type Facet string

// Supported facets.
const (
	FacetArtist    Facet = "artist"
	FacetPublisher Facet = "publisher"
	FacetDesigner  Facet = "designer"
	FacetTheme     Facet = "theme"
	FacetMechanic  Facet = "mechanic"
)

// Service answers catalog queries. Facet value lists are extracted once at
// construction; the catalog is immutable for the session.
type Service struct {
	catalog      Catalog
	suggestLimit int
	facets       map[Facet][]string
}

// New creates an explore service. suggestLimit caps typeahead responses.
func New(catalog Catalog, suggestLimit int) *Service {
	s := &Service{catalog: catalog, suggestLimit: suggestLimit}
	s.facets = map[Facet][]string{
		FacetArtist:    s.distinct(func(r *game.Record) []string { return single(r.Artist) }),
		FacetPublisher: s.distinct(func(r *game.Record) []string { return single(r.Publisher) }),
		FacetDesigner:  s.distinct(func(r *game.Record) []string { return single(r.Designer) }),
		FacetTheme:     s.distinct(func(r *game.Record) []string { return r.Categories }),
		FacetMechanic:  s.distinct(func(r *game.Record) []string { return r.Mechanics }),
	}
	return s
}

// Game resolves a record by exact name.
func (s *Service) Game(name string) (*game.Record, error) {
	rec, ok := s.catalog.Get(name)
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return rec, nil
}

// Suggest returns up to the configured number of game names containing q,
// case-insensitively, in catalog (name) order.
func (s *Service) Suggest(q string) []string {
	q = strings.ToLower(q)
	var out []string
	for _, rec := range s.catalog.Records() {
		if strings.Contains(strings.ToLower(rec.Name), q) {
			out = append(out, rec.Name)
			if len(out) == s.suggestLimit {
				break
			}
		}
	}
	return out
}

// Facet returns the distinct values of a facet, optionally narrowed by a
// case-insensitive substring query for typeahead.
func (s *Service) Facet(facet Facet, q string) ([]string, error) {
	values, ok := s.facets[facet]
	if !ok {
		return nil, domain.ErrUnknownFacet
	}
	if q == "" {
		return values, nil
	}
	q = strings.ToLower(q)
	var out []string
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			out = append(out, v)
		}
	}
	return out, nil
}

// distinct extracts deduplicated values over the whole catalog, sorted
// with a locale-aware collator so mixed-case publisher names interleave
// the way users expect in a datalist.
func (s *Service) distinct(extract func(*game.Record) []string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, rec := range s.catalog.Records() {
		for _, v := range extract(rec) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(values, func(i, j int) bool {
		return c.CompareString(values[i], values[j]) < 0
	})
	return values
}

func single(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}
