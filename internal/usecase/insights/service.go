// Package insights computes the data series behind the charts: the
// browser draws them, this package does the counting.
package insights

import (
	"sort"
	"strings"

	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/search/result"
)

// Catalog provides record lookup and ordered catalog scans.
type Catalog interface {
	Get(name string) (*game.Record, bool)
	Records() []*game.Record
}

// TagCount is one bar of the mechanics chart. OnBase flags mechanics the
// base game itself carries, highlighted in the rendering.
type TagCount struct {
	Tag    string
	Count  int
	OnBase bool
}

// CategoryShare is one slice of the categories pie. Share is relative to
// the displayed slices, matching the original chart's percentages.
type CategoryShare struct {
	Tag   string
	Count int
	Share float64
}

// YearCount is one point of the publication trend.
type YearCount struct {
	Year  int
	Count int
}

// WordCount is one word-cloud entry.
type WordCount struct {
	Word  string
	Count int
}

// GraphNode is one node of the similarity graph.
type GraphNode struct {
	Name  string
	Base  bool
	Score float64
}

// GraphLink is one base-to-candidate edge, annotated with the dominant
// similarity reason used for edge coloring.
type GraphLink struct {
	Source          string
	Target          string
	Score           float64
	DominantReason  string
	SharedMechanics []string
	SharedThemes    []string
}

// Graph is the force-directed similarity graph input.
type Graph struct {
	Nodes []GraphNode
	Links []GraphLink
}

// NetworkNode is one mechanic in the catalog-wide co-occurrence network.
type NetworkNode struct {
	Tag   string
	Count int
}

// NetworkLink is one co-occurrence edge; Weight counts the games carrying
// both mechanics.
type NetworkLink struct {
	Source string
	Target string
	Weight int
}

// Network is the mechanics co-occurrence cloud over the whole catalog.
type Network struct {
	Nodes []NetworkNode
	Links []NetworkLink
}

// Chart display caps carried over from the original renderers.
const (
	topMechanics  = 15
	topCategories = 6
)

// Service computes chart series over the immutable catalog and the
// current search selection.
type Service struct {
	catalog        Catalog
	wordCloudLimit int
}

// New creates an insights service.
func New(catalog Catalog, wordCloudLimit int) *Service {
	return &Service{catalog: catalog, wordCloudLimit: wordCloudLimit}
}

// Ratings returns the known average ratings of the matched games, in
// match order, for the density/histogram chart.
func (s *Service) Ratings(items []result.Item) []float64 {
	var out []float64
	for _, it := range items {
		if rec, ok := s.catalog.Get(it.Name); ok && rec.AvgRating != nil {
			out = append(out, *rec.AvgRating)
		}
	}
	return out
}

// Mechanics returns the most frequent mechanics among the matches,
// capped at 15, most frequent first.
func (s *Service) Mechanics(baseName string, items []result.Item) []TagCount {
	base, _ := s.catalog.Get(baseName)

	counts := make(map[string]int)
	for _, it := range items {
		rec, ok := s.catalog.Get(it.Name)
		if !ok {
			continue
		}
		for _, m := range rec.Mechanics {
			counts[m]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		onBase := base != nil && base.HasMechanic(tag)
		out = append(out, TagCount{Tag: tag, Count: n, OnBase: onBase})
	}
	sortCounted(out, func(t TagCount) (int, string) { return t.Count, t.Tag })
	if len(out) > topMechanics {
		out = out[:topMechanics]
	}
	return out
}

// Categories returns the most frequent categories among the matches,
// capped at 6, with each slice's share of the displayed total.
func (s *Service) Categories(items []result.Item) []CategoryShare {
	counts := make(map[string]int)
	for _, it := range items {
		rec, ok := s.catalog.Get(it.Name)
		if !ok {
			continue
		}
		for _, c := range rec.Categories {
			counts[c]++
		}
	}

	out := make([]CategoryShare, 0, len(counts))
	for tag, n := range counts {
		out = append(out, CategoryShare{Tag: tag, Count: n})
	}
	sortCounted(out, func(c CategoryShare) (int, string) { return c.Count, c.Tag })
	if len(out) > topCategories {
		out = out[:topCategories]
	}

	total := 0
	for _, c := range out {
		total += c.Count
	}
	if total > 0 {
		for i := range out {
			out[i].Share = float64(out[i].Count) / float64(total)
		}
	}
	return out
}

// Publications returns matches-per-publication-year, ascending by year.
func (s *Service) Publications(items []result.Item) []YearCount {
	counts := make(map[int]int)
	for _, it := range items {
		if rec, ok := s.catalog.Get(it.Name); ok && rec.Year != nil {
			counts[*rec.Year]++
		}
	}
	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{Year: y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// WordCloud tokenizes the descriptions of the base game and its matches
// into stop-word-filtered word frequencies.
func (s *Service) WordCloud(baseName string, items []result.Item) []WordCount {
	counts := make(map[string]int)
	if rec, ok := s.catalog.Get(baseName); ok {
		countWords(rec.Description, counts)
	}
	for _, it := range items {
		if rec, ok := s.catalog.Get(it.Name); ok {
			countWords(rec.Description, counts)
		}
	}

	out := make([]WordCount, 0, len(counts))
	for w, n := range counts {
		out = append(out, WordCount{Word: w, Count: n})
	}
	sortCounted(out, func(w WordCount) (int, string) { return w.Count, w.Word })
	if len(out) > s.wordCloudLimit {
		out = out[:s.wordCloudLimit]
	}
	return out
}

// SimilarityGraph builds the force-graph nodes and reason-annotated edges
// for the current selection.
func (s *Service) SimilarityGraph(baseName string, items []result.Item) Graph {
	base, _ := s.catalog.Get(baseName)

	g := Graph{Nodes: make([]GraphNode, 0, len(items)+1)}
	g.Nodes = append(g.Nodes, GraphNode{Name: baseName, Base: true})

	for _, it := range items {
		g.Nodes = append(g.Nodes, GraphNode{Name: it.Name, Score: it.Score})

		link := GraphLink{
			Source:         baseName,
			Target:         it.Name,
			Score:          it.Score,
			DominantReason: "Other",
		}
		if rec, ok := s.catalog.Get(it.Name); ok && base != nil {
			link.SharedMechanics = base.SharedMechanics(rec)
			link.SharedThemes = base.SharedCategories(rec)
			switch {
			case len(link.SharedMechanics) > 0:
				link.DominantReason = "Mechanic: " + link.SharedMechanics[0]
			case len(link.SharedThemes) > 0:
				link.DominantReason = "Theme: " + link.SharedThemes[0]
			case base.Designer != "" && base.Designer == rec.Designer:
				link.DominantReason = "Designer: " + rec.Designer
			}
		}
		g.Links = append(g.Links, link)
	}
	return g
}

// MechanicsNetwork builds the catalog-wide mechanic co-occurrence cloud:
// nodes sized by how many games carry the mechanic, undirected links
// weighted by co-occurrence within a game.
func (s *Service) MechanicsNetwork() Network {
	counts := make(map[string]int)
	pairs := make(map[[2]string]int)

	for _, rec := range s.catalog.Records() {
		mechs := rec.Mechanics
		for i, m := range mechs {
			counts[m]++
			for _, other := range mechs[i+1:] {
				key := [2]string{m, other}
				if other < m {
					key = [2]string{other, m}
				}
				pairs[key]++
			}
		}
	}

	n := Network{Nodes: make([]NetworkNode, 0, len(counts)), Links: make([]NetworkLink, 0, len(pairs))}
	for tag, c := range counts {
		n.Nodes = append(n.Nodes, NetworkNode{Tag: tag, Count: c})
	}
	sortCounted(n.Nodes, func(nd NetworkNode) (int, string) { return nd.Count, nd.Tag })

	for key, w := range pairs {
		n.Links = append(n.Links, NetworkLink{Source: key[0], Target: key[1], Weight: w})
	}
	sort.Slice(n.Links, func(i, j int) bool {
		if n.Links[i].Weight != n.Links[j].Weight {
			return n.Links[i].Weight > n.Links[j].Weight
		}
		if n.Links[i].Source != n.Links[j].Source {
			return n.Links[i].Source < n.Links[j].Source
		}
		return n.Links[i].Target < n.Links[j].Target
	})
	return n
}

// sortCounted orders by count descending, then name ascending, so series
// are deterministic across runs.
func sortCounted[T any](items []T, key func(T) (int, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, ni := key(items[i])
		cj, nj := key(items[j])
		if ci != cj {
			return ci > cj
		}
		return ni < nj
	})
}

func countWords(text string, counts map[string]int) {
	for _, word := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
	}) {
		word = strings.Trim(word, "'")
		if len(word) < 4 {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		counts[word]++
	}
}
