// Package ranking selects the highest-valued countries with a deterministic
// tie-break.
package ranking

import (
	"cmp"
	"slices"
)

// Candidate is one entry offered for ranking. Name is the tie-break key; Code
// is what gets emitted.
type Candidate struct {
	Code  string
	Name  string
	Value float64
}

// Ranked is one emitted (code, value) pair.
type Ranked struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

// TopN returns at most n entries ordered by value, highest first. Entries that
// tie on value are ordered by display name ascending, then by code, and a tie
// group is cut off wherever n runs out. n <= 0 yields an empty result.
func TopN(candidates []Candidate, n int) []Ranked {
	if n <= 0 || len(candidates) == 0 {
		return []Ranked{}
	}

	sorted := slices.Clone(candidates)
	slices.SortFunc(sorted, compare)

	n = min(n, len(sorted))
	out := make([]Ranked, 0, n)
	for _, c := range sorted[:n] {
		out = append(out, Ranked{Code: c.Code, Value: c.Value})
	}
	return out
}

func compare(a, b Candidate) int {
	if c := cmp.Compare(b.Value, a.Value); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Code, b.Code)
}
