// Package compare builds pairwise game comparison reports.
package compare

import (
	"github.com/meeplelab/gamescout/internal/domain"
	"github.com/meeplelab/gamescout/internal/domain/game"
)

// Catalog resolves game names to records.
type Catalog interface {
	Get(name string) (*game.Record, bool)
}

// Metric is one row of the comparison table. Nil values render as "N/A".
type Metric struct {
	Label string
	A     *float64
	B     *float64
}

// Report holds everything the comparison tab renders: the metric table,
// what the two games share, and what each has alone.
type Report struct {
	A string
	B string

	Metrics []Metric

	SharedMechanics []string
	SharedThemes    []string
	SharedDesigner  string
	SharedPublisher string
	SharedArtist    string

	OnlyMechanicsA []string
	OnlyMechanicsB []string
	OnlyThemesA    []string
	OnlyThemesB    []string
}

// Service builds comparison reports over the immutable catalog.
type Service struct {
	catalog Catalog
}

// New creates a compare service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Compare builds the report for two games. Either name failing to resolve
// is ErrGameNotFound.
func (s *Service) Compare(a, b string) (Report, error) {
	recA, okA := s.catalog.Get(a)
	recB, okB := s.catalog.Get(b)
	if !okA || !okB {
		return Report{}, domain.ErrGameNotFound
	}

	sharedMechs := recA.SharedMechanics(recB)
	sharedThemes := recA.SharedCategories(recB)

	r := Report{
		A: a,
		B: b,
		Metrics: []Metric{
			{Label: "Rating", A: recA.AvgRating, B: recB.AvgRating},
			{Label: "Min Players", A: intMetric(recA.MinPlayers), B: intMetric(recB.MinPlayers)},
			{Label: "Max Players", A: intMetric(recA.MaxPlayers), B: intMetric(recB.MaxPlayers)},
			{Label: "Playtime", A: intMetric(recA.Playtime), B: intMetric(recB.Playtime)},
		},
		SharedMechanics: sharedMechs,
		SharedThemes:    sharedThemes,
		OnlyMechanicsA:  except(recA.Mechanics, sharedMechs),
		OnlyMechanicsB:  except(recB.Mechanics, sharedMechs),
		OnlyThemesA:     except(recA.Categories, sharedThemes),
		OnlyThemesB:     except(recB.Categories, sharedThemes),
	}

	if recA.Designer != "" && recA.Designer == recB.Designer {
		r.SharedDesigner = recA.Designer
	}
	if recA.Publisher != "" && recA.Publisher == recB.Publisher {
		r.SharedPublisher = recA.Publisher
	}
	if recA.Artist != "" && recA.Artist == recB.Artist {
		r.SharedArtist = recA.Artist
	}

	return r, nil
}

func intMetric(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// except returns the tags of a not present in exclude, preserving order.
func except(a, exclude []string) []string {
	if len(a) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(exclude))
	for _, t := range exclude {
		set[t] = struct{}{}
	}
	var out []string
	for _, t := range a {
		if _, ok := set[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
