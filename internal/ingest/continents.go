package ingest

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"emissions/internal/emissions/models"
	dErrors "emissions/pkg/domain-errors"
)

// ContinentIndex maps ISO codes to continents and back.
type ContinentIndex struct {
	// labels lists continents in order of first appearance.
	labels  []string
	members map[string][]string
	byCode  map[string][]string
}

// LoadContinentIndex reads "ISO<TAB>continent" lines. Continent labels are
// upper-cased. A code listed under several continents belongs to all of them,
// ordered by each continent's first appearance in the file.
func LoadContinentIndex(r io.Reader) (*ContinentIndex, error) {
	idx := &ContinentIndex{
		members: make(map[string][]string),
		byCode:  make(map[string][]string),
	}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		code, continent, ok := strings.Cut(line, "\t")
		code = strings.TrimSpace(code)
		continent = strings.ToUpper(strings.TrimSpace(continent))
		if !ok || code == "" || continent == "" {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("continents line %d: expected code and continent", lineNo))
		}
		if _, seen := idx.members[continent]; !seen {
			idx.labels = append(idx.labels, continent)
		}
		if !slices.Contains(idx.members[continent], code) {
			idx.members[continent] = append(idx.members[continent], code)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, label := range idx.labels {
		for _, code := range idx.members[label] {
			idx.byCode[code] = append(idx.byCode[code], label)
		}
	}
	return idx, nil
}

// Codes returns the ISO codes listed under continent.
func (idx *ContinentIndex) Codes(continent string) []string {
	return slices.Clone(idx.members[strings.ToUpper(continent)])
}

// Continents returns the continents of code.
func (idx *ContinentIndex) Continents(code string) (models.Continents, bool) {
	labels, ok := idx.byCode[code]
	if !ok {
		return nil, false
	}
	return models.NewContinents(labels...), true
}

// Labels lists continents in order of first appearance.
func (idx *ContinentIndex) Labels() []string {
	return slices.Clone(idx.labels)
}

// Annotate inserts the continent column after the name of a five-column row.
func (idx *ContinentIndex) Annotate(fields []string) ([]string, error) {
	if len(fields) != normalizedColumns {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("expected %d columns, got %d", normalizedColumns, len(fields)))
	}
	continents, ok := idx.Continents(fields[0])
	if !ok {
		return nil, dErrors.New(dErrors.CodeValidation, "no continent for code "+fields[0])
	}
	out := make([]string, 0, len(fields)+1)
	out = append(out, fields[0], fields[1], continents.String())
	return append(out, fields[2:]...), nil
}
