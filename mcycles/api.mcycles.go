package mcycles

import (
	"encoding/binary"
	"fmt"
	"io"
)

// CurveFamily selects which cover of the circle-doubling parameter
// space is being constructed.
type CurveFamily int32

const (
	MarkedCycle CurveFamily = iota
	Dynatomic
)

func (fam CurveFamily) String() string {
	if fam == Dynatomic {
		return "dyn"
	}
	return "mc"
}

// CurveSpec identifies one cover: family, period, and the period of
// the critical orbit (1 for the real slice, 2 for the basilica slice).
type CurveSpec struct {
	Family     CurveFamily
	Period     Period
	CritPeriod int32
}

func (spec CurveSpec) String() string {
	return fmt.Sprintf("%v(%d,%d)", spec.Family, spec.Period, spec.CritPeriod)
}

// Validate rejects out-of-range params before any construction begins.
func (spec CurveSpec) Validate() error {
	if _, err := NewContext(spec.Period); err != nil {
		return err
	}
	if spec.CritPeriod != 1 && spec.CritPeriod != 2 {
		return ErrBadCritPeriod
	}
	return nil
}

// AppendKey appends a canonical LSM key for this spec.
func (spec CurveSpec) AppendKey(out []byte) []byte {
	out = append(out, byte(spec.Family)+1, byte(spec.CritPeriod))
	return append(out, byte(spec.Period))
}

// Cover is a finished combinatorial surface: immutable after
// construction, independently owned by its caller.
type Cover interface {

	// Spec identifies the cover that was built.
	Spec() CurveSpec

	NumVertices() int
	NumEdges() int
	NumFaces() int

	// EulerCharacteristic returns V - E + F.
	EulerCharacteristic() int64

	// Genus returns 1 - chi/2.
	Genus() int64

	// FaceSizes returns the boundary length of each face, in face order.
	FaceSizes() []int

	// Stats summarizes the cover for cataloging.
	Stats() CoverStats

	WriteAsString(out io.Writer, opts PrintOpts)
}

// PrintOpts specifies what is printed when summarizing a cover.
type PrintOpts struct {
	Label    string // prefix label
	Vertices bool   // list the vertex set
	Edges    bool   // list the edge set with wake info
	Faces    bool   // list each face's boundary walk
	Binary   bool   // print angles as fixed-width binary
	Indent   bool   // indent cell listings
	MaxItems int    // max items listed per cell kind (0 means default)
}

var DefaultPrintOpts = PrintOpts{
	Faces:    true,
	MaxItems: 100,
}

// CoverStats is the catalog record for one constructed cover.
type CoverStats struct {
	Spec        CurveSpec
	NumVertices int64
	NumEdges    int64
	NumFaces    int64
	Euler       int64
	Genus       int64
	MaxFace     int64
	MinFace     int64
}

func (cs *CoverStats) Marshal(out []byte) []byte {
	var scrap [binary.MaxVarintLen64]byte
	out = append(out, byte(cs.Spec.Family)+1, byte(cs.Spec.CritPeriod), byte(cs.Spec.Period))
	for _, v := range [7]int64{
		cs.NumVertices, cs.NumEdges, cs.NumFaces,
		cs.Euler, cs.Genus, cs.MaxFace, cs.MinFace,
	} {
		n := binary.PutVarint(scrap[:], v)
		out = append(out, scrap[:n]...)
	}
	return out
}

func (cs *CoverStats) Unmarshal(in []byte) error {
	if len(in) < 3 {
		return ErrUnmarshal
	}
	cs.Spec = CurveSpec{
		Family:     CurveFamily(in[0]) - 1,
		CritPeriod: int32(in[1]),
		Period:     Period(in[2]),
	}
	idx := 3
	for _, dst := range [7]*int64{
		&cs.NumVertices, &cs.NumEdges, &cs.NumFaces,
		&cs.Euler, &cs.Genus, &cs.MaxFace, &cs.MinFace,
	} {
		v, n := binary.Varint(in[idx:])
		if n <= 0 {
			return ErrUnmarshal
		}
		*dst = v
		idx += n
	}
	if idx != len(in) {
		return ErrUnmarshal
	}
	return nil
}

// StatsAdder receives finished covers, e.g. a catalog.
type StatsAdder interface {

	// Tries to add the given cover stats to this catalog.
	// If true is returned, the spec was not present and was added.
	TryAddStats(cs CoverStats) bool
}

// CatalogOpts specifies params for opening a cover catalog.
type CatalogOpts struct {
	DbPathName string // omit for in-memory db
	ReadOnly   bool   // open in read-only mode
}

// Catalog wraps a database of computed cover statistics keyed by curve spec.
type Catalog interface {
	StatsAdder

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// LookupStats returns the stored stats for a spec, if present.
	LookupStats(spec CurveSpec) (CoverStats, bool)

	// NumCovers returns the number of cover records stored.
	NumCovers() int64

	Close() error
}
