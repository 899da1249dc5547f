package chi

import (
	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/search/result"
	"github.com/meeplelab/gamescout/internal/session"
	"github.com/meeplelab/gamescout/internal/usecase/compare"
	"github.com/meeplelab/gamescout/internal/usecase/discover"
	"github.com/meeplelab/gamescout/internal/usecase/insights"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type gameResponse struct {
	Name           string   `json:"name"`
	BGGID          int      `json:"bggId,omitempty"`
	Year           *int     `json:"year,omitempty"`
	MinPlayers     *int     `json:"minPlayers,omitempty"`
	MaxPlayers     *int     `json:"maxPlayers,omitempty"`
	Playtime       *int     `json:"playtime,omitempty"`
	Age            *int     `json:"age,omitempty"`
	AvgRating      *float64 `json:"avgRating,omitempty"`
	Designer       string   `json:"designer,omitempty"`
	Artist         string   `json:"artist,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
	Mechanics      []string `json:"mechanics,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	RankCategories []string `json:"rankCategories,omitempty"`
	Description    string   `json:"description,omitempty"`
	Image          string   `json:"image,omitempty"`
}

func gameToDTO(rec *game.Record) gameResponse {
	return gameResponse{
		Name:           rec.Name,
		BGGID:          rec.BGGID,
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
}

type matchItem struct {
	Name    string   `json:"name"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

type similarResponse struct {
	BaseGame      string      `json:"baseGame"`
	Items         []matchItem `json:"items"`
	ActiveFilters []string    `json:"activeFilters"`
	Cleared       bool        `json:"cleared,omitempty"`
}

func similarToDTO(baseName string, res result.Result, cleared bool) similarResponse {
	items := make([]matchItem, len(res.Items))
	for i, it := range res.Items {
		items[i] = matchItem{Name: it.Name, Score: it.Score, Reasons: emptyNotNull(it.Reasons)}
	}
	return similarResponse{
		BaseGame:      baseName,
		Items:         items,
		ActiveFilters: emptyNotNull(res.ActiveFilters),
		Cleared:       cleared,
	}
}

type suggestResponse struct {
	Items []string `json:"items"`
}

type facetResponse struct {
	Facet  string   `json:"facet"`
	Values []string `json:"values"`
}

type discoverRequest struct {
	Publisher string `json:"publisher,omitempty"`
	Mechanic  string `json:"mechanic,omitempty"`
	Theme     string `json:"theme,omitempty"`
	Designer  string `json:"designer,omitempty"`
	Year      *int   `json:"year,omitempty"`
	Players   *int   `json:"players,omitempty"`
	Playtime  *int   `json:"playtime,omitempty"`
}

func (d discoverRequest) criteria() discover.Criteria {
	return discover.Criteria{
		Publisher: d.Publisher,
		Mechanic:  d.Mechanic,
		Theme:     d.Theme,
		Designer:  d.Designer,
		Year:      d.Year,
		Players:   d.Players,
		Playtime:  d.Playtime,
	}
}

type discoverCountResponse struct {
	Count int `json:"count"`
}

type discoverResponse struct {
	Name  string `json:"name"`
	Exact bool   `json:"exact"`
	Pool  int    `json:"pool"`
}

func pickToDTO(p discover.Pick) discoverResponse {
	return discoverResponse{Name: p.Name, Exact: p.Exact, Pool: p.Pool}
}

type compareMetric struct {
	Label string   `json:"label"`
	A     *float64 `json:"a"`
	B     *float64 `json:"b"`
}

type compareResponse struct {
	A               string          `json:"a"`
	B               string          `json:"b"`
	Metrics         []compareMetric `json:"metrics"`
	SharedMechanics []string        `json:"sharedMechanics"`
	SharedThemes    []string        `json:"sharedThemes"`
	SharedDesigner  string          `json:"sharedDesigner,omitempty"`
	SharedPublisher string          `json:"sharedPublisher,omitempty"`
	SharedArtist    string          `json:"sharedArtist,omitempty"`
	OnlyMechanicsA  []string        `json:"onlyMechanicsA"`
	OnlyMechanicsB  []string        `json:"onlyMechanicsB"`
	OnlyThemesA     []string        `json:"onlyThemesA"`
	OnlyThemesB     []string        `json:"onlyThemesB"`
}

func compareToDTO(r compare.Report) compareResponse {
	metrics := make([]compareMetric, len(r.Metrics))
	for i, m := range r.Metrics {
		metrics[i] = compareMetric{Label: m.Label, A: m.A, B: m.B}
	}
	return compareResponse{
		A:               r.A,
		B:               r.B,
		Metrics:         metrics,
		SharedMechanics: emptyNotNull(r.SharedMechanics),
		SharedThemes:    emptyNotNull(r.SharedThemes),
		SharedDesigner:  r.SharedDesigner,
		SharedPublisher: r.SharedPublisher,
		SharedArtist:    r.SharedArtist,
		OnlyMechanicsA:  emptyNotNull(r.OnlyMechanicsA),
		OnlyMechanicsB:  emptyNotNull(r.OnlyMechanicsB),
		OnlyThemesA:     emptyNotNull(r.OnlyThemesA),
		OnlyThemesB:     emptyNotNull(r.OnlyThemesB),
	}
}

type sessionResponse struct {
	BaseGame   string          `json:"baseGame,omitempty"`
	Items      []matchItem     `json:"items,omitempty"`
	Comparison *comparisonPair `json:"comparison,omitempty"`
}

type comparisonPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

func sessionToDTO(sel *session.Selection, pair *session.ComparisonPair) sessionResponse {
	var resp sessionResponse
	if sel != nil {
		resp.BaseGame = sel.BaseGame
		resp.Items = make([]matchItem, len(sel.Items))
		for i, it := range sel.Items {
			resp.Items[i] = matchItem{Name: it.Name, Score: it.Score, Reasons: emptyNotNull(it.Reasons)}
		}
	}
	if pair != nil {
		resp.Comparison = &comparisonPair{A: pair.A, B: pair.B}
	}
	return resp
}

type ratingsResponse struct {
	Ratings []float64 `json:"ratings"`
}

type tagCount struct {
	Tag    string `json:"tag"`
	Count  int    `json:"count"`
	OnBase bool   `json:"onBase,omitempty"`
}

type tagCountsResponse struct {
	Items []tagCount `json:"items"`
}

type categoryShare struct {
	Tag   string  `json:"tag"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

type categoriesResponse struct {
	Items []categoryShare `json:"items"`
}

type yearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type publicationsResponse struct {
	Items []yearCount `json:"items"`
}

type wordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type wordCloudResponse struct {
	Items []wordCount `json:"items"`
}

type graphNode struct {
	Name  string  `json:"name"`
	Base  bool    `json:"base,omitempty"`
	Score float64 `json:"score,omitempty"`
}

type graphLink struct {
	Source          string   `json:"source"`
	Target          string   `json:"target"`
	Score           float64  `json:"score"`
	DominantReason  string   `json:"dominantReason"`
	SharedMechanics []string `json:"sharedMechanics"`
	SharedThemes    []string `json:"sharedThemes"`
}

type graphResponse struct {
	Nodes []graphNode `json:"nodes"`
	Links []graphLink `json:"links"`
}

func graphToDTO(g insights.Graph) graphResponse {
	resp := graphResponse{
		Nodes: make([]graphNode, len(g.Nodes)),
		Links: make([]graphLink, len(g.Links)),
	}
	for i, n := range g.Nodes {
		resp.Nodes[i] = graphNode{Name: n.Name, Base: n.Base, Score: n.Score}
	}
	for i, l := range g.Links {
		resp.Links[i] = graphLink{
			Source:          l.Source,
			Target:          l.Target,
			Score:           l.Score,
			DominantReason:  l.DominantReason,
			SharedMechanics: emptyNotNull(l.SharedMechanics),
			SharedThemes:    emptyNotNull(l.SharedThemes),
		}
	}
	return resp
}

type networkNode struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type networkLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

type networkResponse struct {
	Nodes []networkNode `json:"nodes"`
	Links []networkLink `json:"links"`
}

func networkToDTO(n insights.Network) networkResponse {
	resp := networkResponse{
		Nodes: make([]networkNode, len(n.Nodes)),
		Links: make([]networkLink, len(n.Links)),
	}
	for i, nd := range n.Nodes {
		resp.Nodes[i] = networkNode{Tag: nd.Tag, Count: nd.Count}
	}
	for i, l := range n.Links {
		resp.Links[i] = networkLink{Source: l.Source, Target: l.Target, Weight: l.Weight}
	}
	return resp
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// emptyNotNull keeps list fields as [] in JSON rather than null.
func emptyNotNull(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
