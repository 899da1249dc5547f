// Package game defines the immutable catalog record for a single board game.
package game

// Record is one game's attribute set as delivered by the offline dataset.
// Optional numeric fields are pointers: nil means unknown, never zero.
type Record struct {
	Name           string
	BGGID          int
	Year           *int
	MinPlayers     *int
	MaxPlayers     *int
	Playtime       *int
	Age            *int
	AvgRating      *float64
	Designer       string
	Artist         string
	Publisher      string
	Mechanics      []string
	Categories     []string
	RankCategories []string
	Description    string
	Image          string
}

// PlayerRangeContains reports whether n fits in [MinPlayers, MaxPlayers].
// Unknown bounds fail the check.
func (r *Record) PlayerRangeContains(n int) bool {
	if r.MinPlayers == nil || r.MaxPlayers == nil {
		return false
	}
	return *r.MinPlayers <= n && n <= *r.MaxPlayers
}

// PlaytimeWithin reports whether the playtime is known and within window
// minutes of target.
func (r *Record) PlaytimeWithin(target, window int) bool {
	if r.Playtime == nil {
		return false
	}
	diff := *r.Playtime - target
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}

// RatingAtLeast reports whether the rating is known and >= min.
func (r *Record) RatingAtLeast(min float64) bool {
	return r.AvgRating != nil && *r.AvgRating >= min
}

// HasMechanic reports whether the mechanic tag is present.
func (r *Record) HasMechanic(tag string) bool {
	return contains(r.Mechanics, tag)
}

// HasCategory reports whether the category tag is present.
func (r *Record) HasCategory(tag string) bool {
	return contains(r.Categories, tag)
}

// SharedMechanics returns the mechanics both records carry, in this
// record's list order.
func (r *Record) SharedMechanics(other *Record) []string {
	return intersect(r.Mechanics, other.Mechanics)
}

// SharedCategories returns the categories both records carry, in this
// record's list order.
func (r *Record) SharedCategories(other *Record) []string {
	return intersect(r.Categories, other.Categories)
}

// SharedRankCategories returns the ranking buckets both records appear in,
// in this record's list order.
func (r *Record) SharedRankCategories(other *Record) []string {
	return intersect(r.RankCategories, other.RankCategories)
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(b))
	for _, t := range b {
		set[t] = struct{}{}
	}
	var out []string
	for _, t := range a {
		if _, ok := set[t]; ok {
			out = append(out, t)
		}
	}
	return out
}
