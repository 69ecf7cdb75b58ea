// Package ingest turns raw emissions exports into registry records.
//
// Raw files mix delimiters and decimal commas. Normalize rewrites them as
// five tab-separated columns (code, name, year, co2, population); the
// continent index then inserts a continent column after the name, giving
// the six-column layout ReadRecords consumes.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	dErrors "emissions/pkg/domain-errors"
)

// candidateDelimiters are tried in tie-break order.
var candidateDelimiters = []rune{'\t', ',', ' ', '-'}

const normalizedColumns = 5

// FindDelimiter returns the most frequent delimiter in line. Ties go to the
// earlier of tab, comma, space, hyphen.
func FindDelimiter(line string) (rune, error) {
	counts := make([]int, len(candidateDelimiters))
	for _, ch := range line {
		for i, d := range candidateDelimiters {
			if ch == d {
				counts[i]++
			}
		}
	}
	best := 0
	for i := range counts {
		if counts[i] > counts[best] {
			best = i
		}
	}
	if counts[best] == 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "no delimiter found")
	}
	return candidateDelimiters[best], nil
}

// NormalizeLine splits a raw line into the five canonical columns.
func NormalizeLine(line string) ([]string, error) {
	line = strings.TrimRight(line, "\r\n")
	delim, err := FindDelimiter(line)
	if err != nil {
		return nil, err
	}
	dotted := strings.ReplaceAll(line, ",", ".")
	fields := strings.Split(dotted, string(delim))

	switch len(fields) {
	case normalizedColumns:
		return fields, nil
	case 1:
		// Comma-delimited: every delimiter became a dot.
		return joinDecimal(strings.Split(dotted, "."))
	}

	for len(fields) > normalizedColumns {
		if _, err := strconv.Atoi(fields[2]); err == nil {
			return joinDecimal(fields)
		}
		// Multi-word names spill into the year column.
		fields = append([]string{fields[0], fields[1] + " " + fields[2]}, fields[3:]...)
	}
	if len(fields) == normalizedColumns {
		return fields, nil
	}
	return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("expected %d columns, got %d", normalizedColumns, len(fields)))
}

// joinDecimal rejoins a co2 value split at its decimal point.
func joinDecimal(fields []string) ([]string, error) {
	switch len(fields) {
	case normalizedColumns:
		return fields, nil
	case normalizedColumns + 1:
		return []string{fields[0], fields[1], fields[2], fields[3] + "." + fields[4], fields[5]}, nil
	default:
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("expected %d columns, got %d", normalizedColumns, len(fields)))
	}
}

// Normalize rewrites every non-blank line of r to w as tab-separated canonical
// columns and returns the number of lines written.
func Normalize(r io.Reader, w io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	bw := bufio.NewWriter(w)

	written, lineNo := 0, 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, err := NormalizeLine(line)
		if err != nil {
			return written, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return written, err
		}
		written++
	}
	if err := scanner.Err(); err != nil {
		return written, err
	}
	return written, bw.Flush()
}
