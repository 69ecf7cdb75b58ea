package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "emissions/pkg/domain-errors"
	"emissions/pkg/platform/sentinel"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	continents := writeFile(t, dir, "continents.tsv", continentsFixture)

	t.Run("raw input is normalized and annotated", func(t *testing.T) {
		data := writeFile(t, dir, "raw.tsv", "FRA,France,1990,390,2,56700000\nNZL New Zealand 1990 25,6 3390000\n")
		loader := NewLoader(Source{DataFile: data, ContinentsFile: continents, RawInput: true}, logger)

		ds, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, ds.ID)
		require.Len(t, ds.Records, 2)
		assert.Equal(t, "390.2", ds.Records[0].CO2)
		assert.Equal(t, "EUROPE", ds.Records[0].Continents)
		assert.Equal(t, "New Zealand", ds.Records[1].Name)
		assert.Equal(t, "OCEANIA", ds.Records[1].Continents)
	})

	t.Run("annotated input needs no continents file", func(t *testing.T) {
		data := writeFile(t, dir, "clean.tsv", "FRA\tFrance\tEUROPE\t1990\t390.2\t56700000\n")
		ds, err := NewLoader(Source{DataFile: data}, logger).Load(context.Background())
		require.NoError(t, err)
		assert.Nil(t, ds.Index)
		assert.Len(t, ds.Records, 1)
	})

	t.Run("each load gets its own id", func(t *testing.T) {
		data := writeFile(t, dir, "again.tsv", "FRA\tFrance\tEUROPE\t1990\t390.2\t56700000\n")
		loader := NewLoader(Source{DataFile: data}, logger)
		a, err := loader.Load(context.Background())
		require.NoError(t, err)
		b, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("missing data file is unavailable", func(t *testing.T) {
		_, err := NewLoader(Source{DataFile: filepath.Join(dir, "absent.tsv"), ContinentsFile: continents}, logger).
			Load(context.Background())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		data := writeFile(t, dir, "cancel.tsv", "FRA\tFrance\tEUROPE\t1990\t390.2\t56700000\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewLoader(Source{DataFile: data}, logger).Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
