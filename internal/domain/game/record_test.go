package game

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestPlayerRangeContains(t *testing.T) {
	r := &Record{MinPlayers: intPtr(2), MaxPlayers: intPtr(4)}

	for n, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := r.PlayerRangeContains(n); got != want {
			t.Errorf("PlayerRangeContains(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestPlayerRangeContains_UnknownBoundsFail(t *testing.T) {
	r := &Record{MinPlayers: intPtr(2)}
	if r.PlayerRangeContains(2) {
		t.Error("unknown max players must fail the check")
	}
	r = &Record{}
	if r.PlayerRangeContains(2) {
		t.Error("fully unknown range must fail the check")
	}
}

func TestPlaytimeWithin(t *testing.T) {
	r := &Record{Playtime: intPtr(90)}

	if !r.PlaytimeWithin(60, 30) {
		t.Error("90 is within 30 of 60")
	}
	if r.PlaytimeWithin(59, 30) {
		t.Error("90 is not within 30 of 59")
	}
	if !r.PlaytimeWithin(120, 30) {
		t.Error("window is symmetric")
	}

	unknown := &Record{}
	if unknown.PlaytimeWithin(60, 30) {
		t.Error("unknown playtime must fail the check")
	}
}

func TestRatingAtLeast(t *testing.T) {
	r := &Record{AvgRating: floatPtr(7.5)}
	if !r.RatingAtLeast(7.5) {
		t.Error("equal rating passes")
	}
	if r.RatingAtLeast(7.6) {
		t.Error("lower rating fails")
	}

	unrated := &Record{}
	if unrated.RatingAtLeast(0) {
		t.Error("unknown rating must fail even at floor 0")
	}
}

func TestSharedListsKeepReceiverOrder(t *testing.T) {
	a := &Record{Mechanics: []string{"X", "Y", "Z"}, Categories: []string{"C1", "C2"}}
	b := &Record{Mechanics: []string{"Z", "Y"}, Categories: []string{"C2"}}

	if got, want := a.SharedMechanics(b), []string{"Y", "Z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SharedMechanics = %v, want %v", got, want)
	}
	if got, want := a.SharedCategories(b), []string{"C2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SharedCategories = %v, want %v", got, want)
	}
	if got := a.SharedMechanics(&Record{}); got != nil {
		t.Errorf("intersection with empty list = %v, want nil", got)
	}
}
