package search

import (
	"context"
	"reflect"
	"testing"

	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/neighbor"
	"github.com/meeplelab/gamescout/internal/domain/search/request"
)

// --- Mocks ---

type mockCatalog struct {
	games map[string]*game.Record
}

func (m *mockCatalog) Get(name string) (*game.Record, bool) {
	rec, ok := m.games[name]
	return rec, ok
}

type mockIndex struct {
	lists map[string][]neighbor.Entry
}

func (m *mockIndex) Lookup(name string) []neighbor.Entry {
	entries := m.lists[name]
	out := make([]neighbor.Entry, len(entries))
	copy(out, entries)
	return out
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func testCatalog() *mockCatalog {
	return &mockCatalog{games: map[string]*game.Record{
		"Catan": {
			Name:           "Catan",
			MinPlayers:     intPtr(3),
			MaxPlayers:     intPtr(4),
			Playtime:       intPtr(90),
			Age:            intPtr(10),
			AvgRating:      floatPtr(7.1),
			Designer:       "Klaus Teuber",
			Publisher:      "Kosmos",
			Mechanics:      []string{"Dice Rolling", "Trading"},
			Categories:     []string{"Economic", "Negotiation"},
			RankCategories: []string{"Strategy Games", "Family Games"},
		},
		"Catan: Seafarers": {
			Name:       "Catan: Seafarers",
			MinPlayers: intPtr(3),
			MaxPlayers: intPtr(4),
			Playtime:   intPtr(90),
			AvgRating:  floatPtr(7.2),
			Mechanics:  []string{"Dice Rolling", "Trading"},
		},
		"Stone Age": {
			Name:           "Stone Age",
			MinPlayers:     intPtr(2),
			MaxPlayers:     intPtr(4),
			Playtime:       intPtr(75),
			Age:            intPtr(10),
			AvgRating:      floatPtr(7.5),
			Designer:       "Bernd Brunnhofer",
			Publisher:      "Hans im Glueck",
			Mechanics:      []string{"Worker Placement", "Dice Rolling"},
			Categories:     []string{"Economic", "Prehistoric"},
			RankCategories: []string{"Strategy Games"},
		},
		"Chess": {
			Name:       "Chess",
			MinPlayers: intPtr(2),
			MaxPlayers: intPtr(2),
			Playtime:   intPtr(60),
			AvgRating:  floatPtr(7.0),
			Mechanics:  []string{"Grid Movement"},
			Categories: []string{"Abstract"},
		},
		"Unrated Game": {
			Name:      "Unrated Game",
			Mechanics: []string{"Dice Rolling", "Trading"},
		},
	}}
}

func testIndex() *mockIndex {
	return &mockIndex{lists: map[string][]neighbor.Entry{
		"Catan": {
			{Name: "Catan", Score: 1.0},
			{Name: "Catan: Seafarers", Score: 0.95},
			{Name: "Stone Age", Score: 0.82},
			{Name: "Chess", Score: 0.60},
			{Name: "Unrated Game", Score: 0.55},
			{Name: "Ghost Entry", Score: 0.40},
		},
	}}
}

func mustFilters(t *testing.T, p request.Params) request.Filters {
	t.Helper()
	f, err := request.New(p)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return f
}

// --- Tests ---

func TestSearch_ExcludesSelfAndMissingRecords(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{})

	res := svc.Search(context.Background(), "Catan", &filters)

	for _, it := range res.Items {
		if it.Name == "Catan" {
			t.Error("base game must not appear in its own results")
		}
		if it.Name == "Ghost Entry" {
			t.Error("candidates without a catalog record must be dropped")
		}
	}
	if len(res.Items) != 4 {
		t.Fatalf("expected 4 results, got %d", len(res.Items))
	}
}

func TestSearch_PreservesIndexOrder(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{})

	res := svc.Search(context.Background(), "Catan", &filters)

	want := []string{"Catan: Seafarers", "Stone Age", "Chess", "Unrated Game"}
	var got []string
	for _, it := range res.Items {
		got = append(got, it.Name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("result order:\ngot:  %v\nwant: %v", got, want)
	}
}

func TestSearch_UnknownBase(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{Designer: "Klaus Teuber"})

	res := svc.Search(context.Background(), "No Such Game", &filters)

	if len(res.Items) != 0 {
		t.Errorf("expected empty result, got %d items", len(res.Items))
	}
	if len(res.ActiveFilters) != 0 {
		t.Errorf("unknown base must not report active filters, got %v", res.ActiveFilters)
	}
}

func TestSearch_EmptyBase(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{})

	res := svc.Search(context.Background(), "", &filters)

	if len(res.Items) != 0 {
		t.Errorf("expected empty result, got %d items", len(res.Items))
	}
}

func TestSearch_ExcludePrefix(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{ExcludePrefix: true})

	res := svc.Search(context.Background(), "Catan", &filters)

	for _, it := range res.Items {
		if it.Name == "Catan: Seafarers" {
			t.Error("prefix-sharing candidate must be dropped")
		}
	}
}

func TestSearch_ExcludeExpansions(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{ExcludeExpansions: true})

	res := svc.Search(context.Background(), "Catan", &filters)

	for _, it := range res.Items {
		if it.Name == "Catan: Seafarers" {
			t.Error("title-stem near-duplicate must be dropped")
		}
	}
}

func TestSearch_MinRatingFailsClosed(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{MinRating: floatPtr(7.0)})

	res := svc.Search(context.Background(), "Catan", &filters)

	for _, it := range res.Items {
		if it.Name == "Unrated Game" {
			t.Error("candidate without a rating must fail a rating filter")
		}
	}
}

func TestSearch_MechanicsRequireAll(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{Mechanics: []string{"Dice Rolling", "Trading"}})

	res := svc.Search(context.Background(), "Catan", &filters)

	want := []string{"Catan: Seafarers", "Unrated Game"}
	var got []string
	for _, it := range res.Items {
		got = append(got, it.Name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mechanics AND filter:\ngot:  %v\nwant: %v", got, want)
	}
}

func TestSearch_LimitZero(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{Limit: intPtr(0)})

	res := svc.Search(context.Background(), "Catan", &filters)

	if len(res.Items) != 0 {
		t.Errorf("limit 0 must return no items, got %d", len(res.Items))
	}
	if res.Items == nil {
		t.Error("limit 0 still returns a non-nil item list")
	}
}

func TestSearch_LimitTruncatesAfterFiltering(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{Limit: intPtr(2)})

	res := svc.Search(context.Background(), "Catan", &filters)

	want := []string{"Catan: Seafarers", "Stone Age"}
	var got []string
	for _, it := range res.Items {
		got = append(got, it.Name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("truncation:\ngot:  %v\nwant: %v", got, want)
	}
}

func TestSearch_PrecomputedReasonsWin(t *testing.T) {
	catalog := testCatalog()
	index := &mockIndex{lists: map[string][]neighbor.Entry{
		"Catan": {
			{Name: "Stone Age", Score: 0.82, Reasons: []string{"precomputed reason"}},
		},
	}}
	svc := New(catalog, index)
	filters := mustFilters(t, request.Params{})

	res := svc.Search(context.Background(), "Catan", &filters)

	if len(res.Items) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res.Items))
	}
	if !reflect.DeepEqual(res.Items[0].Reasons, []string{"precomputed reason"}) {
		t.Errorf("precomputed reasons must not be recomputed, got %v", res.Items[0].Reasons)
	}
}

func TestSearch_DerivedReasons(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{})

	res := svc.Search(context.Background(), "Catan", &filters)

	var stoneAge []string
	for _, it := range res.Items {
		if it.Name == "Stone Age" {
			stoneAge = it.Reasons
		}
	}
	want := []string{
		"👥 Compatible player counts",
		"⏱️ Similar playtime",
		"🎂 Same minimum age",
		"🎲 Shared mechanics: Dice Rolling",
		"🎨 Shared themes: Economic",
		"⭐ Both appear in rankings: Strategy Games",
	}
	if !reflect.DeepEqual(stoneAge, want) {
		t.Errorf("derived reasons:\ngot:  %v\nwant: %v", stoneAge, want)
	}
}

func TestSearch_ActiveFilterLabels(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	filters := mustFilters(t, request.Params{
		ExcludeExpansions: true,
		Artist:            "Alan D. Hoch",
		Publisher:         "Kosmos",
		Designer:          "Klaus Teuber",
		Theme:             "Economic",
		Mechanics:         []string{"Trading", "Dice Rolling"},
	})

	res := svc.Search(context.Background(), "Catan", &filters)

	want := []string{
		"Artist: Alan D. Hoch",
		"Publisher: Kosmos",
		"Designer: Klaus Teuber",
		"Theme: Economic",
		"Mechanic 1: Trading",
		"Mechanic 2: Dice Rolling",
		"Excluding expansions & close variants",
	}
	if !reflect.DeepEqual(res.ActiveFilters, want) {
		t.Errorf("active filter labels:\ngot:  %v\nwant: %v", res.ActiveFilters, want)
	}
}

func TestSearch_ShrinkingFilterNeverGrowsResults(t *testing.T) {
	svc := New(testCatalog(), testIndex())
	loose := mustFilters(t, request.Params{})
	tight := mustFilters(t, request.Params{MinRating: floatPtr(7.2), Players: intPtr(4)})

	looseRes := svc.Search(context.Background(), "Catan", &loose)
	tightRes := svc.Search(context.Background(), "Catan", &tight)

	if len(tightRes.Items) > len(looseRes.Items) {
		t.Errorf("tightening filters grew results: %d > %d", len(tightRes.Items), len(looseRes.Items))
	}
}
