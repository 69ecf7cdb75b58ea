package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"emissions/internal/emissions/models"
	dErrors "emissions/pkg/domain-errors"
)

const annotatedColumns = normalizedColumns + 1

// ReadRecords parses tab-separated rows. Six-column rows carry their own
// continents; five-column rows are annotated through index, which may be nil
// when every row is already annotated. Blank lines are skipped.
func ReadRecords(r io.Reader, index *ContinentIndex) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []models.Record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "malformed data file")
		}
		line, _ := reader.FieldPos(0)

		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) == 1 && fields[0] == "" {
			continue
		}
		if len(fields) == normalizedColumns {
			if index == nil {
				return nil, lineError(line, "missing continent column and no continent index")
			}
			if fields, err = index.Annotate(fields); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		if len(fields) != annotatedColumns {
			return nil, lineError(line, fmt.Sprintf("expected %d or %d columns, got %d", normalizedColumns, annotatedColumns, len(fields)))
		}

		records = append(records, models.Record{
			Code:       fields[0],
			Name:       fields[1],
			Continents: fields[2],
			Year:       fields[3],
			CO2:        fields[4],
			Population: fields[5],
		})
	}
}

func lineError(line int, msg string) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("line %d: %s", line, msg))
}
