package libcycles

import (
	"fmt"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// Wake records the lamination arc behind an edge: its two integer
// angles and whether both endpoints land in the same cycle
// ("satellite", self-glued) or in two distinct cycles ("primitive").
type Wake struct {
	Angle0      mcycles.IntAngle
	Angle1      mcycles.IntAngle
	IsSatellite bool
}

func (w Wake) IsReal() bool {
	return !w.IsSatellite
}

func (w Wake) String() string {
	if w.IsSatellite {
		return fmt.Sprintf("{%d ~ %d}", w.Angle0, w.Angle1)
	}
	return fmt.Sprintf("{%d, %d}", w.Angle0, w.Angle1)
}

// Edge joins two vertices of a cover along a lamination arc.
type Edge[V any] struct {
	Start V
	End   V
	Wake  Wake
}

// Face is one face of the combinatorial surface: its boundary walk in
// traversal order, a label naming the face by the conjugate class of
// its seed vertex, and the number of real-axis crossings met while
// tracing it.
type Face[V any, L any] struct {
	Label    L
	Vertices []V
	Degree   int
}

// Len returns the boundary length.
func (f *Face[V, L]) Len() int {
	return len(f.Vertices)
}

// IsReflexive reports a face whose walk crosses the real axis once.
func (f *Face[V, L]) IsReflexive() bool {
	return f.Degree == 1
}

// EdgePairs returns the consecutive boundary vertex pairs, wrapping
// from the last vertex back to the first.
func (f *Face[V, L]) EdgePairs() [][2]V {
	n := len(f.Vertices)
	pairs := make([][2]V, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]V{f.Vertices[i], f.Vertices[(i+1)%n]})
	}
	return pairs
}
