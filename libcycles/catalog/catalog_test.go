package catalog_test

import (
	"path"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/DannyStoll1/marked-cycles/libcycles/catalog"
	"github.com/DannyStoll1/marked-cycles/mcycles"
)

func sampleStats(period mcycles.Period) mcycles.CoverStats {
	return mcycles.CoverStats{
		Spec:        mcycles.CurveSpec{Family: mcycles.MarkedCycle, Period: period, CritPeriod: 1},
		NumVertices: 9,
		NumEdges:    20,
		NumFaces:    5,
		Euler:       -6,
		Genus:       4,
		MaxFace:     12,
		MinFace:     5,
	}
}

func TestCatalogInMemory(t *testing.T) {
	cat, err := catalog.OpenCatalog(mcycles.CatalogOpts{})
	require.NoError(t, err)
	defer cat.Close()

	require.False(t, cat.IsReadOnly())
	require.EqualValues(t, 0, cat.NumCovers())

	cs := sampleStats(6)
	_, found := cat.LookupStats(cs.Spec)
	require.False(t, found)

	require.True(t, cat.TryAddStats(cs))
	require.False(t, cat.TryAddStats(cs), "duplicate add must be refused")
	require.EqualValues(t, 1, cat.NumCovers())

	got, found := cat.LookupStats(cs.Spec)
	require.True(t, found)
	require.Equal(t, cs, got)

	// a different period is a different record
	require.True(t, cat.TryAddStats(sampleStats(7)))
	require.EqualValues(t, 2, cat.NumCovers())
}

func TestCatalogReadOnlyNeedsPath(t *testing.T) {
	_, err := catalog.OpenCatalog(mcycles.CatalogOpts{ReadOnly: true})
	require.Error(t, err)
	require.True(t, errors.Is(err, mcycles.ErrBadCatalogParam))
}

func TestCatalogPersists(t *testing.T) {
	dbPath := path.Join(t.TempDir(), "covers")

	cat, err := catalog.OpenCatalog(mcycles.CatalogOpts{DbPathName: dbPath})
	require.NoError(t, err)
	cs := sampleStats(6)
	require.True(t, cat.TryAddStats(cs))
	require.NoError(t, cat.Close())

	cat, err = catalog.OpenCatalog(mcycles.CatalogOpts{DbPathName: dbPath, ReadOnly: true})
	require.NoError(t, err)
	defer cat.Close()

	require.True(t, cat.IsReadOnly())
	require.EqualValues(t, 1, cat.NumCovers())

	got, found := cat.LookupStats(cs.Spec)
	require.True(t, found)
	require.Equal(t, cs, got)

	// a read-only catalog refuses writes
	require.False(t, cat.TryAddStats(sampleStats(7)))
}
