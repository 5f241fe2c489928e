// Package catalog wraps a badger db of computed cover statistics
// keyed by curve spec. Recorded stats can be looked up and reported
// without rebuilding a cover, but anything that lists cells (summaries,
// face stats, tikz) still needs the full construction.
package catalog

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState (version, cover count)

	CurveSpecKey (family, crit, period) => CoverStats varints

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
	gSpecKeyPrefix   = []byte{0x01}
)

const (
	catalogMajorVers = 2026
	catalogMinorVers = 1
)

type catalogState struct {
	MajorVers int64
	MinorVers int64
	NumCovers int64
}

func (cs *catalogState) Marshal(out []byte) []byte {
	var scrap [binary.MaxVarintLen64]byte
	for _, v := range [3]int64{cs.MajorVers, cs.MinorVers, cs.NumCovers} {
		n := binary.PutVarint(scrap[:], v)
		out = append(out, scrap[:n]...)
	}
	return out
}

func (cs *catalogState) Unmarshal(in []byte) error {
	idx := 0
	for _, dst := range [3]*int64{&cs.MajorVers, &cs.MinorVers, &cs.NumCovers} {
		v, n := binary.Varint(in[idx:])
		if n <= 0 {
			return mcycles.ErrUnmarshal
		}
		*dst = v
		idx += n
	}
	return nil
}

type catalog struct {
	readOnly   bool
	stateDirty bool
	state      catalogState
	db         *badger.DB
}

// OpenCatalog opens (or creates) a cover catalog. An empty DbPathName
// opens an in-memory db.
func OpenCatalog(opts mcycles.CatalogOpts) (mcycles.Catalog, error) {
	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single writer, so disable for performance
	dbOpts.Logger = nil

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(mcycles.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	cat := &catalog{
		readOnly: opts.ReadOnly,
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = catalogMajorVers
		cat.state.MinorVers = catalogMinorVers
	}

	if err == nil && (cat.state.MajorVers != catalogMajorVers || cat.state.MinorVers != catalogMinorVers) {
		err = errors.New("catalog version is incompatible")
	}

	if err != nil {
		cat.Close()
		return nil, err
	}
	return cat, nil
}

func (cat *catalog) loadState() error {
	return cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return cat.state.Unmarshal(val)
			})
		}
		return err
	})
}

func (cat *catalog) flushState() {
	if !cat.stateDirty || cat.readOnly {
		return
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gCatalogStateKey, cat.state.Marshal(nil))
	})
	if err != nil {
		panic(err)
	}
	cat.stateDirty = false
}

func (cat *catalog) Close() error {
	if cat.db == nil {
		return nil
	}
	cat.flushState()
	err := cat.db.Close()
	cat.db = nil
	return err
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumCovers() int64 {
	return cat.state.NumCovers
}

func specKey(spec mcycles.CurveSpec) []byte {
	return spec.AppendKey(append([]byte{}, gSpecKeyPrefix...))
}

// TryAddStats adds the given cover record if its spec isn't already
// present. Returns true if it was added.
func (cat *catalog) TryAddStats(cs mcycles.CoverStats) bool {
	if cat.readOnly {
		return false
	}
	key := specKey(cs.Spec)

	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	_, err := txn.Get(key)
	if err == nil {
		return false
	}
	if err != badger.ErrKeyNotFound {
		panic(err)
	}

	if err = txn.Set(key, cs.Marshal(nil)); err != nil {
		panic(err)
	}
	if err = txn.Commit(); err != nil {
		panic(err)
	}

	cat.state.NumCovers++
	cat.stateDirty = true
	return true
}

func (cat *catalog) LookupStats(spec mcycles.CurveSpec) (mcycles.CoverStats, bool) {
	var cs mcycles.CoverStats
	found := false

	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(specKey(spec))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := cs.Unmarshal(val); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil {
		panic(err)
	}
	return cs, found
}
