// Package neighbor defines precomputed similarity entries.
package neighbor

// Entry is one (base, candidate) pair from the offline similarity index.
// Reasons is the canonical field: alternate spellings in the raw data
// (reason, meta.reasons) are folded into it at ingestion, so consumers
// never chase fallbacks.
type Entry struct {
	Name    string
	Score   float64
	Reasons []string
}

// Clone returns a copy with its own Reasons slice.
func (e Entry) Clone() Entry {
	if e.Reasons == nil {
		return e
	}
	reasons := make([]string, len(e.Reasons))
	copy(reasons, e.Reasons)
	e.Reasons = reasons
	return e
}
