package session

import (
	"errors"
	"testing"

	"github.com/meeplelab/gamescout/internal/domain"
	"github.com/meeplelab/gamescout/internal/domain/search/result"
)

func TestState_EmptyByDefault(t *testing.T) {
	s := NewState()

	if _, err := s.Current(); !errors.Is(err, domain.ErrNoSelection) {
		t.Errorf("expected ErrNoSelection, got %v", err)
	}
	if _, err := s.Comparison(); !errors.Is(err, domain.ErrNoSelection) {
		t.Errorf("expected ErrNoSelection, got %v", err)
	}
}

func TestState_KnownOutcomeSetsSelection(t *testing.T) {
	s := NewState()

	s.OnSearch(Outcome{
		BaseGame: "Catan",
		Result:   result.Result{Items: []result.Item{{Name: "Stone Age", Score: 0.8}}},
		Known:    true,
	})

	sel, err := s.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.BaseGame != "Catan" || len(sel.Items) != 1 {
		t.Errorf("selection = %+v", sel)
	}
}

func TestState_UnknownOutcomeClears(t *testing.T) {
	s := NewState()
	s.SetCurrent(Selection{BaseGame: "Catan"})

	s.OnSearch(Outcome{BaseGame: "No Such Game", Known: false})

	if _, err := s.Current(); !errors.Is(err, domain.ErrNoSelection) {
		t.Errorf("unknown base must clear the selection, got %v", err)
	}
}

func TestState_Comparison(t *testing.T) {
	s := NewState()
	s.SetComparison(ComparisonPair{A: "Agricola", B: "Caverna"})

	pair, err := s.Comparison()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.A != "Agricola" || pair.B != "Caverna" {
		t.Errorf("pair = %+v", pair)
	}
}

func TestState_ComparisonSurvivesClear(t *testing.T) {
	s := NewState()
	s.SetCurrent(Selection{BaseGame: "Catan"})
	s.SetComparison(ComparisonPair{A: "Agricola", B: "Caverna"})

	s.Clear()

	if _, err := s.Comparison(); err != nil {
		t.Errorf("clearing the selection must not drop the comparison: %v", err)
	}
}
