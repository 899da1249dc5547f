// Package session holds per-instance UI state: the current search
// selection the chart endpoints read, and the comparison pair. It also
// carries the observer registry search outcomes are published through.
package session

import (
	"sync"

	"github.com/meeplelab/gamescout/internal/domain"
	"github.com/meeplelab/gamescout/internal/domain/search/result"
)

// Selection is the search result the charts are drawn from.
type Selection struct {
	BaseGame string
	Items    []result.Item
}

// ComparisonPair names the two games on the comparison tab.
type ComparisonPair struct {
	A string
	B string
}

// State is the mutable session state. Safe for concurrent use.
type State struct {
	mu         sync.RWMutex
	current    *Selection
	comparison *ComparisonPair
}

// NewState creates an empty session state.
func NewState() *State {
	return &State{}
}

// OnSearch records a search outcome. An unknown base clears the current
// selection so stale charts cannot outlive it.
func (s *State) OnSearch(o Outcome) {
	if !o.Known {
		s.Clear()
		return
	}
	s.SetCurrent(Selection{BaseGame: o.BaseGame, Items: o.Result.Items})
}

// SetCurrent replaces the current selection.
func (s *State) SetCurrent(sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sel
}

// Current returns the current selection, or ErrNoSelection when no search
// has populated one.
func (s *State) Current() (Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Selection{}, domain.ErrNoSelection
	}
	return *s.current, nil
}

// Clear drops the current selection.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// SetComparison records the comparison pair.
func (s *State) SetComparison(p ComparisonPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comparison = &p
}

// Comparison returns the comparison pair, or ErrNoSelection when none was
// set.
func (s *State) Comparison() (ComparisonPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.comparison == nil {
		return ComparisonPair{}, domain.ErrNoSelection
	}
	return *s.comparison, nil
}
