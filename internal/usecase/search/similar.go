package search

import "strings"

// isTooSimilar is the title-stem heuristic for expansions and
// reimplementations: case-insensitively, one name contains the other.
// An empty name is a substring of everything and therefore matches
// everything; that mirrors the upstream dataset tooling and is covered
// by tests, so don't special-case it away.
func isTooSimilar(baseName, candidateName string) bool {
	base := strings.ToLower(baseName)
	candidate := strings.ToLower(candidateName)
	return strings.Contains(base, candidate) || strings.Contains(candidate, base)
}
