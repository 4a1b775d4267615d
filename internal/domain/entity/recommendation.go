// Package entity contains the core business objects of the project.
package entity

// MatchResult pairs a catalog item with its computed match score against a
// preference profile, plus the human-readable reasons behind the match.
// Results are ephemeral; they are computed per request and never persisted.
type MatchResult struct {
	Laptop  *Laptop  `json:"laptop"`
	Score   float64  `json:"match_score"`
	Reasons []string `json:"reasons"`
}
