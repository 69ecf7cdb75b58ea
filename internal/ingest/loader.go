package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"emissions/internal/emissions/models"
	dErrors "emissions/pkg/domain-errors"
	"emissions/pkg/platform/sentinel"
)

// Source locates the files of one dataset.
type Source struct {
	DataFile       string
	ContinentsFile string
	// RawInput runs Normalize over the data file before parsing.
	RawInput bool
}

// Dataset is the outcome of one load.
type Dataset struct {
	ID      uuid.UUID
	Records []models.Record
	Index   *ContinentIndex
}

// Loader reads a Source into records.
type Loader struct {
	source Source
	logger *slog.Logger
}

// NewLoader constructs a Loader for source.
func NewLoader(source Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{source: source, logger: logger}
}

// Load reads the continents file and the data file concurrently, then parses
// the records.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{ID: uuid.New()}
	start := time.Now()

	var data []byte
	g, gctx := errgroup.WithContext(ctx)
	if l.source.ContinentsFile != "" {
		g.Go(func() error {
			idx, err := l.readContinents(gctx)
			ds.Index = idx
			return err
		})
	}
	g.Go(func() error {
		var err error
		data, err = l.readData(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records, err := ReadRecords(bytes.NewReader(data), ds.Index)
	if err != nil {
		return nil, err
	}
	ds.Records = records

	l.logger.InfoContext(ctx, "dataset loaded",
		"load_id", ds.ID,
		"data_file", l.source.DataFile,
		"records", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return ds, nil
}

func (l *Loader) readContinents(ctx context.Context) (*ContinentIndex, error) {
	f, err := os.Open(l.source.ContinentsFile)
	if err != nil {
		return nil, dErrors.Wrap(fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err), dErrors.CodeUnavailable, "failed to open continents file")
	}
	defer f.Close()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadContinentIndex(f)
}

func (l *Loader) readData(ctx context.Context) ([]byte, error) {
	raw, err := os.ReadFile(l.source.DataFile)
	if err != nil {
		return nil, dErrors.Wrap(fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err), dErrors.CodeUnavailable, "failed to read data file")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !l.source.RawInput {
		return raw, nil
	}

	var buf bytes.Buffer
	lines, err := Normalize(bytes.NewReader(raw), &buf)
	if err != nil {
		return nil, err
	}
	l.logger.DebugContext(ctx, "raw input normalized", "lines", lines)
	return buf.Bytes(), nil
}
