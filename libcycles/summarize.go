package libcycles

import (
	"fmt"
	"io"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// cellText is rendered by every cell identity: decimal and
// fixed-width-binary angle forms.
type cellText interface {
	String() string
	BinaryString() string
}

func cellStr[T cellText](v T, binary bool) string {
	if binary {
		return v.BinaryString()
	}
	return v.String()
}

func writeSummary[V cellText, L cellText](
	out io.Writer,
	opts mcycles.PrintOpts,
	spec mcycles.CurveSpec,
	vertices []V,
	edges []Edge[V],
	faces []Face[V, L],
) {
	maxItems := opts.MaxItems
	if maxItems <= 0 {
		maxItems = 100
	}
	indent := ""
	if opts.Indent {
		indent = "    "
	}

	v, e, f := len(vertices), len(edges), len(faces)
	chi := eulerOf(v, e, f)
	if len(opts.Label) > 0 {
		fmt.Fprintf(out, "%s ", opts.Label)
	}
	fmt.Fprintf(out, "%v: V=%d E=%d F=%d chi=%d genus=%d\n", spec, v, e, f, chi, 1-chi/2)

	if opts.Vertices {
		fmt.Fprintf(out, "%svertices (%d):\n", indent, v)
		for i, vtx := range vertices {
			if i == maxItems {
				fmt.Fprintf(out, "%s  ... and %d more\n", indent, v-maxItems)
				break
			}
			fmt.Fprintf(out, "%s  %s\n", indent, cellStr(vtx, opts.Binary))
		}
	}

	if opts.Edges {
		fmt.Fprintf(out, "%sedges (%d):\n", indent, e)
		for i := range edges {
			if i == maxItems {
				fmt.Fprintf(out, "%s  ... and %d more\n", indent, e-maxItems)
				break
			}
			edge := &edges[i]
			join := "-"
			if edge.Wake.IsSatellite {
				join = "="
			}
			ks := NewPoint(edge.Wake.Angle0, spec.Period).KneadingSequence()
			fmt.Fprintf(out, "%s  %s %s %s  %v  KS=%s\n", indent,
				cellStr(edge.Start, opts.Binary), join, cellStr(edge.End, opts.Binary),
				edge.Wake, ks)
		}
	}

	if opts.Faces {
		fmt.Fprintf(out, "%sfaces (%d):\n", indent, f)
		for i := range faces {
			if i == maxItems {
				fmt.Fprintf(out, "%s  ... and %d more\n", indent, f-maxItems)
				break
			}
			face := &faces[i]
			fmt.Fprintf(out, "%s  %s: %d [", indent, cellStr(face.Label, opts.Binary), face.Len())
			for j, vtx := range face.Vertices {
				if j > 0 {
					fmt.Fprint(out, " ")
				}
				fmt.Fprint(out, cellStr(vtx, opts.Binary))
			}
			fmt.Fprintln(out, "]")
		}
	}
}
