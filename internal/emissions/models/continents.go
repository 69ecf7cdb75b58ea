package models

import (
	"slices"
	"strings"

	pstrings "emissions/pkg/platform/strings"
)

const continentSeparator = ","

// Continents is an ordered set of continent labels. A country belongs to every
// label it holds.
type Continents []string

// ParseContinents accepts a single label or a comma-joined list. Labels are
// trimmed and de-duplicated; first occurrence wins.
func ParseContinents(raw string) Continents {
	return Continents(pstrings.SplitLabels(raw, continentSeparator))
}

// NewContinents builds a set from already-split labels.
func NewContinents(labels ...string) Continents {
	return Continents(pstrings.DedupeAndTrim(labels))
}

// Contains reports whether label is a member.
func (c Continents) Contains(label string) bool {
	return slices.Contains(c, label)
}

// String renders the set comma-joined, the same form ParseContinents reads.
func (c Continents) String() string {
	return strings.Join(c, continentSeparator)
}
