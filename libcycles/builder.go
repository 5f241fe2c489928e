package libcycles

import (
	"github.com/pkg/errors"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// VertexScheme is the identity capability that separates the two cover
// variants: a marked-cycle vertex is a plain cycle, a dynatomic vertex
// is a phase-shifted cycle. Everything else in the build pipeline is
// shared.
type VertexScheme[V comparable, L any] interface {

	// Ident projects a cycle-table slot onto the vertex identity it
	// contributes.
	Ident(slot ShiftedCycle) V

	// RepAngle returns the minimal cycle angle keying v's adjacency.
	RepAngle(v V) mcycles.IntAngle

	// Successor resolves the far side of an adjacency entry reached
	// from the given walk node.
	Successor(beta ShiftedCycle, alphaShift mcycles.Period, node V) V

	// SeedKey collapses a vertex to its face-traversal dedup key.
	SeedKey(v V) V

	// Label names the face seeded at the given vertex.
	Label(seed V) L

	// ReplicateEdges reports whether each edge template yields one
	// rotated edge copy per phase (dynatomic) or a single edge.
	ReplicateEdges() bool

	// EmitSatellites reports whether self-glued templates spawn
	// standalone satellite faces.
	EmitSatellites() bool
}

type cycleSlot struct {
	rep   mcycles.IntAngle
	shift mcycles.Period
	ok    bool
}

type adjEntry struct {
	beta       ShiftedCycle
	alphaShift mcycles.Period
	tag        mcycles.IntAngle
}

// coverCells is the raw output of a build: every collection the two
// cover types expose.
type coverCells[V comparable, L any] struct {
	Vertices      []V
	Edges         []Edge[V]
	Wakes         []Wake
	Faces         []Face[V, L]
	NumSatellites int
}

type builder[V comparable, L any] struct {
	ctx    mcycles.Context
	crit   int32
	scheme VertexScheme[V, L]

	slots []cycleSlot

	// arena-indexed adjacency: each discovered cycle gets a dense id
	cycleIdx map[mcycles.IntAngle]int32
	adj      [][]adjEntry

	out coverCells[V, L]
}

// buildCover runs the shared pipeline: classify angles into cycles,
// join lamination arcs to cycle identities, then trace the rotation
// system. Total and deterministic for a validated spec; any fault is a
// construction bug surfaced as a distinguishable error.
func buildCover[V comparable, L any](
	period mcycles.Period,
	critPeriod int32,
	scheme VertexScheme[V, L],
) (*coverCells[V, L], error) {

	ctx, err := mcycles.NewContext(period)
	if err != nil {
		return nil, err
	}
	if critPeriod != 1 && critPeriod != 2 {
		return nil, mcycles.ErrBadCritPeriod
	}

	bld := &builder[V, L]{
		ctx:      ctx,
		crit:     critPeriod,
		scheme:   scheme,
		slots:    make([]cycleSlot, ctx.MaxAngle),
		cycleIdx: make(map[mcycles.IntAngle]int32),
	}

	bld.scanCycles()

	lam, err := NewLamination(period, critPeriod)
	if err != nil {
		return nil, err
	}
	if err := bld.applyArcs(lam.ArcsOfPeriod(period)); err != nil {
		return nil, err
	}

	bld.traceFaces()

	chi := int64(len(bld.out.Vertices)) - int64(len(bld.out.Edges)) + int64(len(bld.out.Faces))
	if chi&1 != 0 {
		return nil, errors.Wrapf(mcycles.ErrOddEuler,
			"V=%d E=%d F=%d", len(bld.out.Vertices), len(bld.out.Edges), len(bld.out.Faces))
	}

	return &bld.out, nil
}

// scanCycles assigns every angle with an exact period-length orbit to
// a cycle slot, then collects the vertex list. The two real fixed
// points of the doubling map need a patch: at period 1 a synthetic
// fixed vertex at the max angle is injected alongside angle 0.
func (bld *builder[V, L]) scanCycles() {
	ctx := bld.ctx

	for theta := mcycles.IntAngle(0); theta < ctx.MaxAngle; theta++ {
		if bld.slots[theta].ok {
			continue
		}
		orbit := ctx.Orbit(theta)
		if mcycles.Period(len(orbit)) != ctx.Period {
			continue
		}
		for i, x := range orbit {
			bld.slots[x] = cycleSlot{
				rep:   theta,
				shift: mcycles.Period(i),
				ok:    true,
			}
		}
	}

	for theta := mcycles.IntAngle(0); theta < ctx.MaxAngle; theta++ {
		slot := bld.slots[theta]
		if !slot.ok {
			continue
		}
		sc := bld.shiftedCycle(slot)
		if bld.scheme.ReplicateEdges() {
			bld.out.Vertices = append(bld.out.Vertices, bld.scheme.Ident(sc))
		} else if slot.rep == theta {
			bld.out.Vertices = append(bld.out.Vertices, bld.scheme.Ident(sc))
		}
	}

	if ctx.Period == 1 {
		alpha := ShiftedCycle{
			Cycle: AbstractCycle{NewPoint(ctx.MaxAngle, ctx.Period)},
		}
		bld.out.Vertices = append(bld.out.Vertices, bld.scheme.Ident(alpha))
	}
}

func (bld *builder[V, L]) shiftedCycle(slot cycleSlot) ShiftedCycle {
	return ShiftedCycle{
		Cycle: AbstractCycle{NewPoint(slot.rep, bld.ctx.Period)},
		Shift: slot.shift,
	}
}

func (bld *builder[V, L]) slotAt(angle mcycles.IntAngle) (cycleSlot, bool) {
	if angle >= bld.ctx.MaxAngle {
		return cycleSlot{}, false
	}
	slot := bld.slots[angle]
	return slot, slot.ok
}

// applyArcs turns each lamination arc into an edge template: both
// cycle endpoints enter the angle-ordered adjacency map (satellite
// arcs too, since they shape the rotation system), while edge and
// satellite-face emission follow the scheme.
func (bld *builder[V, L]) applyArcs(arcs []Arc) error {
	per := bld.ctx.Period
	max := bld.ctx.MaxAngle

	for _, arc := range arcs {
		a0 := arc.T0.Scale(max)
		a1 := arc.T1.Scale(max)

		s0, ok0 := bld.slotAt(a0)
		s1, ok1 := bld.slotAt(a1)
		if per == 1 {
			// both endpoints of the degenerate root arc sit on the
			// fixed cycle at angle 0
			ok0, ok1 = true, true
		}
		if !ok0 || !ok1 {
			return errors.Wrapf(mcycles.ErrUnassignedAngle,
				"arc %v scales to (%d, %d)", arc, a0, a1)
		}

		c0 := bld.shiftedCycle(s0)
		c1 := bld.shiftedCycle(s1)
		sat := c0.Cycle == c1.Cycle
		tag := a0
		if a1 > tag {
			tag = a1
		}
		wake := Wake{Angle0: a0, Angle1: a1, IsSatellite: sat}
		bld.out.Wakes = append(bld.out.Wakes, wake)

		bld.pushAdj(c0.Cycle.Rep.Angle, adjEntry{c1, c0.Shift, tag})
		bld.pushAdj(c1.Cycle.Rep.Angle, adjEntry{c0, c1.Shift, tag})

		if bld.scheme.ReplicateEdges() {
			for i := mcycles.Period(0); i < per; i++ {
				bld.out.Edges = append(bld.out.Edges, Edge[V]{
					Start: bld.scheme.Ident(c0.Rotate(i)),
					End:   bld.scheme.Ident(c1.Rotate(i)),
					Wake:  wake,
				})
			}
		} else if !sat {
			bld.out.Edges = append(bld.out.Edges, Edge[V]{
				Start: bld.scheme.Ident(c0),
				End:   bld.scheme.Ident(c1),
				Wake:  wake,
			})
		}

		if sat && bld.scheme.EmitSatellites() {
			bld.emitSatelliteFaces(c0, c1)
		}
	}
	return nil
}

func (bld *builder[V, L]) pushAdj(repAngle mcycles.IntAngle, ent adjEntry) {
	idx, found := bld.cycleIdx[repAngle]
	if !found {
		idx = int32(len(bld.adj))
		bld.cycleIdx[repAngle] = idx
		bld.adj = append(bld.adj, nil)
	}
	bld.adj[idx] = append(bld.adj[idx], ent)
}

// emitSatelliteFaces glues the faces pinched at a self-conjugate
// cycle: a relative phase shift s yields gcd(s, period) faces of
// length period/gcd, each obtained by rotating a base point by
// multiples of s. Satellite faces are never walked across the real
// axis, so they are reflexive.
func (bld *builder[V, L]) emitSatelliteFaces(c0, c1 ShiftedCycle) {
	per := bld.ctx.Period

	shift := c0.RelativeShift(c1)
	numFaces := per
	if shift != 0 {
		numFaces = gcdPeriod(shift, per)
	}
	faceLen := per / numFaces

	for i := mcycles.Period(0); i < numFaces; i++ {
		base := ShiftedCycle{Cycle: c0.Cycle}.Rotate(i)
		vertices := make([]V, 0, faceLen)
		for j := mcycles.Period(0); j < faceLen; j++ {
			vertices = append(vertices, bld.scheme.Ident(base.Rotate(j*shift)))
		}
		bld.out.Faces = append(bld.out.Faces, Face[V, L]{
			Label:    bld.scheme.Label(bld.scheme.Ident(base)),
			Vertices: vertices,
			Degree:   1,
		})
		bld.out.NumSatellites++
	}
}

func gcdPeriod(a, b mcycles.Period) mcycles.Period {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// traceFaces walks the rotation system: every vertex whose dedup key
// is still unclaimed seeds one face. Satellite faces were already
// emitted, so primitive faces are prepended.
func (bld *builder[V, L]) traceFaces() {
	satellites := bld.out.Faces
	bld.out.Faces = nil

	visited := make(map[V]struct{}, len(bld.out.Vertices))
	for _, v := range bld.out.Vertices {
		key := bld.scheme.SeedKey(v)
		if _, seen := visited[key]; seen {
			continue
		}
		bld.out.Faces = append(bld.out.Faces, bld.traverseFace(v, visited))
	}

	bld.out.Faces = append(bld.out.Faces, satellites...)
}

// traverseFace follows the rotation successor from the seed until the
// walk returns to it across the real axis. Isolated vertices produce a
// degenerate single-vertex face.
func (bld *builder[V, L]) traverseFace(start V, visited map[V]struct{}) Face[V, L] {
	node := start
	curr := mcycles.IntAngle(0)
	degree := 1

	var nodes []V
	for {
		next, nextAngle, ok := bld.nextVertexAndAngle(node, curr)
		if !ok {
			break
		}
		if curr >= nextAngle {
			// crossed the real axis: either the face closed up or the
			// walk completed a loop around this vertex's class
			if node == start {
				break
			}
			visited[bld.scheme.SeedKey(node)] = struct{}{}
			degree++
		}
		nodes = append(nodes, node)
		node = next
		curr = nextAngle
	}

	if len(nodes) == 0 {
		nodes = append(nodes, node)
	}
	return Face[V, L]{
		Label:    bld.scheme.Label(start),
		Vertices: nodes,
		Degree:   degree,
	}
}

// nextVertexAndAngle picks the adjacency entry whose tag angle is the
// next one in cyclic order after curr. Ties keep insertion order, so
// the two sides of a satellite arc resolve deterministically.
func (bld *builder[V, L]) nextVertexAndAngle(node V, curr mcycles.IntAngle) (V, mcycles.IntAngle, bool) {
	var zero V

	idx, found := bld.cycleIdx[bld.scheme.RepAngle(node)]
	if !found {
		return zero, 0, false
	}
	entries := bld.adj[idx]
	if len(entries) == 0 {
		return zero, 0, false
	}

	max := bld.ctx.MaxAngle
	best := -1
	bestKey := mcycles.IntAngle(0)
	for i, ent := range entries {
		key := (ent.tag - curr - 1) % max
		if key < 0 {
			key += max
		}
		if best < 0 || key < bestKey {
			best, bestKey = i, key
		}
	}

	ent := entries[best]
	return bld.scheme.Successor(ent.beta, ent.alphaShift, node), ent.tag, true
}
