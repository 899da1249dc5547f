package search

import (
	"strings"

	"github.com/meeplelab/gamescout/internal/domain/game"
	"github.com/meeplelab/gamescout/internal/domain/search/request"
)

// Reason phrasings shown on match cards. The strings and the order of the
// checks producing them are part of the rendering contract.
const (
	reasonPlayers  = "👥 Compatible player counts"
	reasonPlaytime = "⏱️ Similar playtime"
	reasonAge      = "🎂 Same minimum age"

	reasonMechanics = "🎲 Shared mechanics: "
	reasonThemes    = "🎨 Shared themes: "
	reasonRankings  = "⭐ Both appear in rankings: "
)

// Explain derives human-readable similarity reasons for a candidate that
// arrived without precomputed ones. Pure and deterministic; every check is
// evaluated, each appends at most one reason, and a check whose operands
// are unknown contributes nothing rather than failing.
func Explain(base, candidate *game.Record) []string {
	if base == nil || candidate == nil {
		return nil
	}

	var reasons []string

	if base.MinPlayers != nil && base.MaxPlayers != nil &&
		candidate.MinPlayers != nil && candidate.MaxPlayers != nil &&
		*base.MinPlayers <= *candidate.MaxPlayers && *candidate.MinPlayers <= *base.MaxPlayers {
		reasons = append(reasons, reasonPlayers)
	}

	if base.Playtime != nil && candidate.PlaytimeWithin(*base.Playtime, request.PlaytimeWindow) {
		reasons = append(reasons, reasonPlaytime)
	}

	if base.Age != nil && candidate.Age != nil && *base.Age == *candidate.Age {
		reasons = append(reasons, reasonAge)
	}

	if shared := base.SharedMechanics(candidate); len(shared) > 0 {
		reasons = append(reasons, reasonMechanics+strings.Join(shared, ", "))
	}

	if shared := base.SharedCategories(candidate); len(shared) > 0 {
		reasons = append(reasons, reasonThemes+strings.Join(shared, ", "))
	}

	if shared := base.SharedRankCategories(candidate); len(shared) > 0 {
		reasons = append(reasons, reasonRankings+strings.Join(shared, ", "))
	}

	return reasons
}
