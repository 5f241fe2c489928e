package libcycles

import (
	"io"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// markedScheme identifies vertices by plain cycles: phase is forgotten
// and conjugate cycle classes dedup the face traversal.
type markedScheme struct{}

func (markedScheme) Ident(slot ShiftedCycle) AbstractCycle {
	return slot.Cycle
}

func (markedScheme) RepAngle(v AbstractCycle) mcycles.IntAngle {
	return v.Rep.Angle
}

func (markedScheme) Successor(beta ShiftedCycle, alphaShift mcycles.Period, node AbstractCycle) AbstractCycle {
	return beta.Cycle
}

func (markedScheme) SeedKey(v AbstractCycle) AbstractCycle {
	return v.Class().Cycle()
}

func (markedScheme) Label(seed AbstractCycle) AbstractCycleClass {
	return seed.Class()
}

func (markedScheme) ReplicateEdges() bool { return false }
func (markedScheme) EmitSatellites() bool { return false }

// dynatomicScheme identifies vertices by phase-shifted cycles: each
// marked point is its own vertex, every arc replicates across phases,
// and self-glued arcs pinch off satellite faces.
type dynatomicScheme struct{}

func (dynatomicScheme) Ident(slot ShiftedCycle) ShiftedCycle {
	return slot
}

func (dynatomicScheme) RepAngle(v ShiftedCycle) mcycles.IntAngle {
	return v.Cycle.Rep.Angle
}

func (dynatomicScheme) Successor(beta ShiftedCycle, alphaShift mcycles.Period, node ShiftedCycle) ShiftedCycle {
	return beta.Rotate(node.Shift - alphaShift)
}

func (dynatomicScheme) SeedKey(v ShiftedCycle) ShiftedCycle {
	return v
}

func (dynatomicScheme) Label(seed ShiftedCycle) AbstractPointClass {
	return seed.ToPoint().Class()
}

func (dynatomicScheme) ReplicateEdges() bool { return true }
func (dynatomicScheme) EmitSatellites() bool { return true }

// MarkedCycleCover is the finished marked-cycle cover surface.
type MarkedCycleCover struct {
	spec     mcycles.CurveSpec
	Vertices []AbstractCycle
	Edges    []Edge[AbstractCycle]
	Wakes    []Wake
	Faces    []Face[AbstractCycle, AbstractCycleClass]
}

// BuildMarkedCycleCover constructs the marked-cycle cover for the
// given period and critical period.
func BuildMarkedCycleCover(period mcycles.Period, critPeriod int32) (*MarkedCycleCover, error) {
	cells, err := buildCover[AbstractCycle, AbstractCycleClass](period, critPeriod, markedScheme{})
	if err != nil {
		return nil, err
	}
	return &MarkedCycleCover{
		spec: mcycles.CurveSpec{
			Family:     mcycles.MarkedCycle,
			Period:     period,
			CritPeriod: critPeriod,
		},
		Vertices: cells.Vertices,
		Edges:    cells.Edges,
		Wakes:    cells.Wakes,
		Faces:    cells.Faces,
	}, nil
}

func (cov *MarkedCycleCover) Spec() mcycles.CurveSpec { return cov.spec }
func (cov *MarkedCycleCover) NumVertices() int        { return len(cov.Vertices) }
func (cov *MarkedCycleCover) NumEdges() int           { return len(cov.Edges) }
func (cov *MarkedCycleCover) NumFaces() int           { return len(cov.Faces) }

func (cov *MarkedCycleCover) EulerCharacteristic() int64 {
	return eulerOf(cov.NumVertices(), cov.NumEdges(), cov.NumFaces())
}

func (cov *MarkedCycleCover) Genus() int64 {
	return 1 - cov.EulerCharacteristic()/2
}

func (cov *MarkedCycleCover) FaceSizes() []int {
	return faceSizes(cov.Faces)
}

func (cov *MarkedCycleCover) FaceStats() FaceStats {
	return surveyFaces(cov.spec.Period, cov.Faces)
}

func (cov *MarkedCycleCover) Stats() mcycles.CoverStats {
	return statsOf(cov)
}

func (cov *MarkedCycleCover) WriteAsString(out io.Writer, opts mcycles.PrintOpts) {
	writeSummary[AbstractCycle, AbstractCycleClass](out, opts, cov.spec,
		cov.Vertices, cov.Edges, cov.Faces)
}

// DynatomicCover is the finished dynatomic cover surface.
type DynatomicCover struct {
	spec          mcycles.CurveSpec
	Vertices      []ShiftedCycle
	Edges         []Edge[ShiftedCycle]
	Wakes         []Wake
	Faces         []Face[ShiftedCycle, AbstractPointClass]
	NumSatellites int
}

// BuildDynatomicCover constructs the dynatomic cover for the given
// period and critical period.
func BuildDynatomicCover(period mcycles.Period, critPeriod int32) (*DynatomicCover, error) {
	cells, err := buildCover[ShiftedCycle, AbstractPointClass](period, critPeriod, dynatomicScheme{})
	if err != nil {
		return nil, err
	}
	return &DynatomicCover{
		spec: mcycles.CurveSpec{
			Family:     mcycles.Dynatomic,
			Period:     period,
			CritPeriod: critPeriod,
		},
		Vertices:      cells.Vertices,
		Edges:         cells.Edges,
		Wakes:         cells.Wakes,
		Faces:         cells.Faces,
		NumSatellites: cells.NumSatellites,
	}, nil
}

func (cov *DynatomicCover) Spec() mcycles.CurveSpec { return cov.spec }
func (cov *DynatomicCover) NumVertices() int        { return len(cov.Vertices) }
func (cov *DynatomicCover) NumEdges() int           { return len(cov.Edges) }
func (cov *DynatomicCover) NumFaces() int           { return len(cov.Faces) }

func (cov *DynatomicCover) EulerCharacteristic() int64 {
	return eulerOf(cov.NumVertices(), cov.NumEdges(), cov.NumFaces())
}

func (cov *DynatomicCover) Genus() int64 {
	return 1 - cov.EulerCharacteristic()/2
}

func (cov *DynatomicCover) FaceSizes() []int {
	return faceSizes(cov.Faces)
}

func (cov *DynatomicCover) FaceStats() FaceStats {
	return surveyFaces(cov.spec.Period, cov.Faces)
}

func (cov *DynatomicCover) Stats() mcycles.CoverStats {
	return statsOf(cov)
}

func (cov *DynatomicCover) WriteAsString(out io.Writer, opts mcycles.PrintOpts) {
	writeSummary[ShiftedCycle, AbstractPointClass](out, opts, cov.spec,
		cov.Vertices, cov.Edges, cov.Faces)
}

// BuildCover dispatches on the spec's family.
func BuildCover(spec mcycles.CurveSpec) (mcycles.Cover, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.Family == mcycles.Dynatomic {
		return BuildDynatomicCover(spec.Period, spec.CritPeriod)
	}
	return BuildMarkedCycleCover(spec.Period, spec.CritPeriod)
}

// StreamCovers builds one cover per period in [lo, hi] for the given
// family, delivered in period order.
func StreamCovers(family mcycles.CurveFamily, critPeriod int32, lo, hi mcycles.Period) (*mcycles.CoverStream, error) {
	return mcycles.StreamCovers(lo, hi, func(per mcycles.Period) (mcycles.Cover, error) {
		return BuildCover(mcycles.CurveSpec{
			Family:     family,
			Period:     per,
			CritPeriod: critPeriod,
		})
	})
}

func eulerOf(v, e, f int) int64 {
	return int64(v) - int64(e) + int64(f)
}

func faceSizes[V any, L any](faces []Face[V, L]) []int {
	sizes := make([]int, len(faces))
	for i := range faces {
		sizes[i] = faces[i].Len()
	}
	return sizes
}

func statsOf(cov mcycles.Cover) mcycles.CoverStats {
	cs := mcycles.CoverStats{
		Spec:        cov.Spec(),
		NumVertices: int64(cov.NumVertices()),
		NumEdges:    int64(cov.NumEdges()),
		NumFaces:    int64(cov.NumFaces()),
		Euler:       cov.EulerCharacteristic(),
		Genus:       cov.Genus(),
	}
	for _, sz := range cov.FaceSizes() {
		if int64(sz) > cs.MaxFace {
			cs.MaxFace = int64(sz)
		}
		if cs.MinFace == 0 || int64(sz) < cs.MinFace {
			cs.MinFace = int64(sz)
		}
	}
	return cs
}
