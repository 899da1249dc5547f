// Package request defines the validated filter configuration for a search.
package request

import "fmt"

// Defaults and limits for filter parameters.
const (
	DefaultLimit = 10
	// PlaytimeWindow is the absolute tolerance in minutes around a
	// requested playtime.
	PlaytimeWindow = 30
)

// Params carries raw filter values prior to validation. Pointer fields
// distinguish "unset" from a legitimate zero.
type Params struct {
	ExcludePrefix     bool
	ExcludeExpansions bool
	MinRating         *float64
	Limit             *int
	Players           *int
	Playtime          *int
	Artist            string
	Publisher         string
	Designer          string
	Theme             string
	Mechanics         []string
}

// Filters is a validated, immutable filter configuration.
type Filters struct {
	excludePrefix     bool
	excludeExpansions bool
	minRating         *float64
	limit             int
	players           *int
	playtime          *int
	artist            string
	publisher         string
	designer          string
	theme             string
	mechanics         []string
}

// New validates and normalizes filter parameters.
// Limit defaults to 10; a negative limit is treated as 0.
func New(p Params) (Filters, error) {
	limit := DefaultLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	if limit < 0 {
		limit = 0
	}
	if p.MinRating != nil && (*p.MinRating < 0 || *p.MinRating > 10) {
		return Filters{}, fmt.Errorf("min_rating must be between 0 and 10, got %g", *p.MinRating)
	}
	if p.Players != nil && *p.Players <= 0 {
		return Filters{}, fmt.Errorf("players must be positive, got %d", *p.Players)
	}
	if p.Playtime != nil && *p.Playtime <= 0 {
		return Filters{}, fmt.Errorf("playtime must be positive, got %d", *p.Playtime)
	}

	var mechanics []string
	for _, m := range p.Mechanics {
		if m != "" {
			mechanics = append(mechanics, m)
		}
	}

	return Filters{
		excludePrefix:     p.ExcludePrefix,
		excludeExpansions: p.ExcludeExpansions,
		minRating:         p.MinRating,
		limit:             limit,
		players:           p.Players,
		playtime:          p.Playtime,
		artist:            p.Artist,
		publisher:         p.Publisher,
		designer:          p.Designer,
		theme:             p.Theme,
		mechanics:         mechanics,
	}, nil
}

// ExcludePrefix reports whether candidates sharing the base name as a
// literal prefix are dropped.
func (f *Filters) ExcludePrefix() bool { return f.excludePrefix }

// ExcludeExpansions reports whether title-stem near-duplicates are dropped.
func (f *Filters) ExcludeExpansions() bool { return f.excludeExpansions }

// MinRating returns the rating floor, or nil when unset.
func (f *Filters) MinRating() *float64 { return f.minRating }

// Limit returns the result cap (never negative).
func (f *Filters) Limit() int { return f.limit }

// Players returns the required player count, or nil when unset.
func (f *Filters) Players() *int { return f.players }

// Playtime returns the target playtime in minutes, or nil when unset.
func (f *Filters) Playtime() *int { return f.playtime }

// Artist returns the exact-match artist filter ("" = unset).
func (f *Filters) Artist() string { return f.artist }

// Publisher returns the exact-match publisher filter ("" = unset).
func (f *Filters) Publisher() string { return f.publisher }

// Designer returns the exact-match designer filter ("" = unset).
func (f *Filters) Designer() string { return f.designer }

// Theme returns the required category tag ("" = unset).
func (f *Filters) Theme() string { return f.theme }

// Mechanics returns the required mechanic tags in input order.
// All must be present on a candidate (AND semantics).
func (f *Filters) Mechanics() []string { return f.mechanics }

// ActiveLabels builds the display labels for every non-default filter.
// The order is a presentation contract: artist, publisher, designer,
// theme, mechanics in input order, then the exclusion label.
func (f *Filters) ActiveLabels() []string {
	var labels []string
	if f.artist != "" {
		labels = append(labels, "Artist: "+f.artist)
	}
	if f.publisher != "" {
		labels = append(labels, "Publisher: "+f.publisher)
	}
	if f.designer != "" {
		labels = append(labels, "Designer: "+f.designer)
	}
	if f.theme != "" {
		labels = append(labels, "Theme: "+f.theme)
	}
	for i, m := range f.mechanics {
		labels = append(labels, fmt.Sprintf("Mechanic %d: %s", i+1, m))
	}
	if f.excludeExpansions {
		labels = append(labels, "Excluding expansions & close variants")
	}
	return labels
}
