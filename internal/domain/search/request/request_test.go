package request

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestNew_Defaults(t *testing.T) {
	f, err := New(Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Limit() != DefaultLimit {
		t.Errorf("default limit = %d, want %d", f.Limit(), DefaultLimit)
	}
	if f.ExcludePrefix() || f.ExcludeExpansions() {
		t.Error("exclusions must default to off")
	}
	if f.MinRating() != nil || f.Players() != nil || f.Playtime() != nil {
		t.Error("unset numeric filters must stay nil")
	}
	if len(f.ActiveLabels()) != 0 {
		t.Errorf("default filters must report no active labels, got %v", f.ActiveLabels())
	}
}

func TestNew_NegativeLimitBecomesZero(t *testing.T) {
	f, err := New(Params{Limit: intPtr(-5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Limit() != 0 {
		t.Errorf("limit = %d, want 0", f.Limit())
	}
}

func TestNew_MinRatingBounds(t *testing.T) {
	if _, err := New(Params{MinRating: floatPtr(-0.1)}); err == nil {
		t.Error("expected error for negative min rating")
	}
	if _, err := New(Params{MinRating: floatPtr(10.1)}); err == nil {
		t.Error("expected error for min rating above 10")
	}
	if _, err := New(Params{MinRating: floatPtr(0)}); err != nil {
		t.Errorf("min rating 0 must be valid: %v", err)
	}
	if _, err := New(Params{MinRating: floatPtr(10)}); err != nil {
		t.Errorf("min rating 10 must be valid: %v", err)
	}
}

func TestNew_PositiveCounts(t *testing.T) {
	if _, err := New(Params{Players: intPtr(0)}); err == nil {
		t.Error("expected error for players = 0")
	}
	if _, err := New(Params{Playtime: intPtr(-30)}); err == nil {
		t.Error("expected error for negative playtime")
	}
}

func TestNew_DropsEmptyMechanics(t *testing.T) {
	f, err := New(Params{Mechanics: []string{"Drafting", "", "Bluffing", ""}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Drafting", "Bluffing"}
	if !reflect.DeepEqual(f.Mechanics(), want) {
		t.Errorf("mechanics = %v, want %v", f.Mechanics(), want)
	}
}

func TestActiveLabels_Order(t *testing.T) {
	f, err := New(Params{
		ExcludeExpansions: true,
		Artist:            "Beth Sobel",
		Publisher:         "Stonemaier Games",
		Designer:          "Elizabeth Hargrave",
		Theme:             "Animals",
		Mechanics:         []string{"Engine Building", "Card Drafting"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Artist: Beth Sobel",
		"Publisher: Stonemaier Games",
		"Designer: Elizabeth Hargrave",
		"Theme: Animals",
		"Mechanic 1: Engine Building",
		"Mechanic 2: Card Drafting",
		"Excluding expansions & close variants",
	}
	if !reflect.DeepEqual(f.ActiveLabels(), want) {
		t.Errorf("labels:\ngot:  %v\nwant: %v", f.ActiveLabels(), want)
	}
}

func TestActiveLabels_PrefixExclusionHasNoLabel(t *testing.T) {
	f, err := New(Params{ExcludePrefix: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.ActiveLabels()) != 0 {
		t.Errorf("prefix exclusion alone must not produce a label, got %v", f.ActiveLabels())
	}
}
