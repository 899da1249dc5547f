package chi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/meeplelab/gamescout/internal/domain/search/request"
)

// filterParams parses the similarity query string into validated filters.
// Absent parameters stay nil so defaults apply downstream; limit is capped
// at maxLimit.
func filterParams(r *http.Request, maxLimit int) (request.Filters, error) {
	q := r.URL.Query()
	p := request.Params{
		Artist:    q.Get("artist"),
		Publisher: q.Get("publisher"),
		Designer:  q.Get("designer"),
		Theme:     q.Get("theme"),
		Mechanics: q["mechanic"],
	}

	var err error
	if p.ExcludePrefix, err = boolParam(q.Get("excludePrefix")); err != nil {
		return request.Filters{}, fmt.Errorf("excludePrefix: %w", err)
	}
	if p.ExcludeExpansions, err = boolParam(q.Get("excludeExpansions")); err != nil {
		return request.Filters{}, fmt.Errorf("excludeExpansions: %w", err)
	}
	if p.MinRating, err = floatParam(q.Get("minRating")); err != nil {
		return request.Filters{}, fmt.Errorf("minRating: %w", err)
	}
	if p.Limit, err = intParam(q.Get("limit")); err != nil {
		return request.Filters{}, fmt.Errorf("limit: %w", err)
	}
	if p.Players, err = intParam(q.Get("players")); err != nil {
		return request.Filters{}, fmt.Errorf("players: %w", err)
	}
	if p.Playtime, err = intParam(q.Get("playtime")); err != nil {
		return request.Filters{}, fmt.Errorf("playtime: %w", err)
	}

	if p.Limit != nil && *p.Limit > maxLimit {
		*p.Limit = maxLimit
	}

	return request.New(p)
}

func boolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", v)
	}
	return b, nil
}

func intParam(v string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", v)
	}
	return &n, nil
}

func floatParam(v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", v)
	}
	return &f, nil
}
