package tikz_test

import (
	"strings"
	"testing"

	"github.com/DannyStoll1/marked-cycles/libcycles"
	"github.com/DannyStoll1/marked-cycles/libcycles/tikz"
)

func TestRenderFace(t *testing.T) {
	faces := []tikz.FaceView{
		{Label: "<3>", Vertices: []string{"(1)", "(3)", "(5)"}},
	}
	out := tikz.NewRenderer(faces).Generate()

	if !strings.HasPrefix(out, `\begin{tikzpicture}`) {
		t.Fatalf("missing preamble:\n%s", out)
	}
	if !strings.HasSuffix(out, `\end{tikzpicture}`) {
		t.Fatalf("missing closing:\n%s", out)
	}

	for _, want := range []string{
		`\def\baseangle{180/3}`,
		`\node (face3) at (\anchorx, 0) {$\abr{3}$};`,
		`(node-3-0)`,
		`(node-3-2)`,
		`$\del{1}$`,
		`\draw (node-3-2) -- (node-3-0);`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}

	if got := strings.Count(out, `\draw`); got != 3 {
		t.Fatalf("draw count: got %d, want 3", got)
	}
	if got := strings.Count(out, `\node (node-`); got != 3 {
		t.Fatalf("node count: got %d, want 3", got)
	}
}

func TestRenderExtremalFaces(t *testing.T) {
	faces := []tikz.FaceView{
		{Label: "<1>", Vertices: []string{"(1)", "(2)"}},
		{Label: "<9>", Vertices: []string{"(9)", "(11)", "(13)", "(15)"}},
	}

	out := tikz.NewRenderer(faces).DrawLargestFace()
	if strings.Contains(out, "node-1-") || !strings.Contains(out, "node-9-3") {
		t.Fatalf("largest face selection:\n%s", out)
	}

	out = tikz.NewRenderer(faces).DrawSmallestFace()
	if strings.Contains(out, "node-9-") || !strings.Contains(out, "node-1-1") {
		t.Fatalf("smallest face selection:\n%s", out)
	}
}

func TestRenderCoverFaces(t *testing.T) {
	cov, err := libcycles.BuildMarkedCycleCover(5, 1)
	if err != nil {
		t.Fatal(err)
	}
	views := tikz.FromFaces(cov.Faces)
	if len(views) != cov.NumFaces() {
		t.Fatalf("got %d views for %d faces", len(views), cov.NumFaces())
	}

	total := 0
	for i, fv := range views {
		if len(fv.Vertices) != cov.Faces[i].Len() {
			t.Fatalf("face %d: %d vertices for boundary %d",
				i, len(fv.Vertices), cov.Faces[i].Len())
		}
		total += len(fv.Vertices)
	}

	out := tikz.NewRenderer(views).Generate()
	if got := strings.Count(out, `\node (node-`); got != total {
		t.Fatalf("node count: got %d, want %d", got, total)
	}
}
