// Package aggregate derives per-country and collection-level statistics from
// countries. Every function is a pure read over its inputs.
package aggregate

import (
	"emissions/internal/emissions/models"
)

// ContinentGroup lists the countries holding one continent label.
type ContinentGroup struct {
	Continent string
	Countries []*models.Country
}

// Groups is an ordered continent grouping.
type Groups []ContinentGroup

// GroupByContinent groups countries by every label they hold. Continents and
// the countries within each appear in first-seen order; a country with several
// labels appears once under each. Countries without a label are left out.
func GroupByContinent(countries []*models.Country) Groups {
	var groups Groups
	index := make(map[string]int)
	for _, c := range countries {
		for _, label := range c.Continents() {
			i, ok := index[label]
			if !ok {
				i = len(groups)
				index[label] = i
				groups = append(groups, ContinentGroup{Continent: label})
			}
			groups[i].Countries = append(groups[i].Countries, c)
		}
	}
	return groups
}

// Lookup returns the members of continent.
func (g Groups) Lookup(continent string) ([]*models.Country, bool) {
	for _, group := range g {
		if group.Continent == continent {
			return group.Countries, true
		}
	}
	return nil, false
}

// Labels lists the continents in grouping order.
func (g Groups) Labels() []string {
	out := make([]string, 0, len(g))
	for _, group := range g {
		out = append(out, group.Continent)
	}
	return out
}
