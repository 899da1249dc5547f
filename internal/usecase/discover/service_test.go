package discover

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/meeplelab/gamescout/internal/domain"
	"github.com/meeplelab/gamescout/internal/domain/game"
)

// --- Mocks ---

type mockCatalog struct {
	records []*game.Record
}

func (m *mockCatalog) Records() []*game.Record { return m.records }

func intPtr(v int) *int { return &v }

func pinnedRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testService() *Service {
	return New(&mockCatalog{records: []*game.Record{
		{Name: "Agricola", Publisher: "Lookout Games", Designer: "Uwe Rosenberg",
			Year: intPtr(2007), MinPlayers: intPtr(1), MaxPlayers: intPtr(4), Playtime: intPtr(120),
			Mechanics: []string{"Worker Placement"}, Categories: []string{"Farming"}},
		{Name: "Caverna", Publisher: "Lookout Games", Designer: "Uwe Rosenberg",
			Year: intPtr(2013), MinPlayers: intPtr(1), MaxPlayers: intPtr(7), Playtime: intPtr(120),
			Mechanics: []string{"Worker Placement"}, Categories: []string{"Farming", "Fantasy"}},
		{Name: "Wingspan", Publisher: "Stonemaier Games", Designer: "Elizabeth Hargrave",
			Year: intPtr(2019), MinPlayers: intPtr(1), MaxPlayers: intPtr(5), Playtime: intPtr(70),
			Mechanics: []string{"Engine Building"}, Categories: []string{"Animals"}},
	}}, pinnedRNG())
}

// --- Tests ---

func TestCount(t *testing.T) {
	svc := testService()

	if got := svc.Count(Criteria{}); got != 3 {
		t.Errorf("empty criteria count = %d, want 3", got)
	}
	if got := svc.Count(Criteria{Publisher: "Lookout Games"}); got != 2 {
		t.Errorf("publisher count = %d, want 2", got)
	}
	if got := svc.Count(Criteria{Publisher: "Lookout Games", Theme: "Fantasy"}); got != 1 {
		t.Errorf("conjunctive count = %d, want 1", got)
	}
	if got := svc.Count(Criteria{Publisher: "Nobody"}); got != 0 {
		t.Errorf("impossible count = %d, want 0", got)
	}
}

func TestCount_PlayersWithinRange(t *testing.T) {
	svc := testService()

	if got := svc.Count(Criteria{Players: intPtr(6)}); got != 1 {
		t.Errorf("players=6 count = %d, want 1 (Caverna)", got)
	}
}

func TestCount_PlaytimeRelativeWindow(t *testing.T) {
	svc := testService()

	// 70 is within 20% of a 70-minute game but not of a 120-minute one.
	if got := svc.Count(Criteria{Playtime: intPtr(70)}); got != 1 {
		t.Errorf("playtime=70 count = %d, want 1", got)
	}
	// 100 is within 24 (20% of 120) of 120.
	if got := svc.Count(Criteria{Playtime: intPtr(100)}); got != 2 {
		t.Errorf("playtime=100 count = %d, want 2", got)
	}
}

func TestFind_ExactMatch(t *testing.T) {
	svc := testService()

	pick, err := svc.Find(Criteria{Publisher: "Stonemaier Games"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pick.Name != "Wingspan" {
		t.Errorf("pick = %q, want Wingspan", pick.Name)
	}
	if !pick.Exact {
		t.Error("a full match must be flagged exact")
	}
	if pick.Pool != 1 {
		t.Errorf("pool = %d, want 1", pick.Pool)
	}
}

func TestFind_BestEffortFallback(t *testing.T) {
	svc := testService()

	// Nothing satisfies all three criteria. The Lookout pair score two
	// each against Wingspan's one, so the pool is that tie set.
	pick, err := svc.Find(Criteria{Publisher: "Lookout Games", Theme: "Animals", Designer: "Uwe Rosenberg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pick.Exact {
		t.Error("fallback pick must not be flagged exact")
	}
	if pick.Pool != 2 {
		t.Errorf("pool = %d, want the 2 best-scoring games", pick.Pool)
	}
	if pick.Name != "Agricola" && pick.Name != "Caverna" {
		t.Errorf("pick = %q, want one of the Lookout pair", pick.Name)
	}
}

func TestFind_EmptyCatalog(t *testing.T) {
	svc := New(&mockCatalog{}, pinnedRNG())

	_, err := svc.Find(Criteria{})
	if !errors.Is(err, domain.ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}

func TestFind_Deterministic(t *testing.T) {
	first, err := testService().Find(Criteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := testService().Find(Criteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Name != second.Name {
		t.Errorf("same seed must pick the same game: %q vs %q", first.Name, second.Name)
	}
}
