// Package neighbors is the read-only precomputed similarity index.
package neighbors

import "github.com/meeplelab/gamescout/internal/domain/neighbor"

// Repo answers candidate-list lookups. The index is trusted to be
// pre-sorted by descending score by the offline computation; nothing here
// re-sorts it.
type Repo struct {
	index map[string][]neighbor.Entry
}

// New builds a neighbor index repository.
func New(index map[string][]neighbor.Entry) *Repo {
	return &Repo{index: index}
}

// Lookup returns a defensive copy of the candidate list for name, or an
// empty list when the name has no entry. Callers may annotate the copy
// freely; the index itself is never touched.
func (r *Repo) Lookup(name string) []neighbor.Entry {
	entries := r.index[name]
	if len(entries) == 0 {
		return nil
	}
	out := make([]neighbor.Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of neighbor lists.
func (r *Repo) Len() int {
	return len(r.index)
}
