// Package tikz lays out cover faces as regular polygons and emits a
// tikzpicture for inclusion in a paper.
package tikz

import (
	"fmt"
	"math"
	"strings"

	"github.com/DannyStoll1/marked-cycles/libcycles"
)

const edgeLength = 1.46

// Cell is any vertex or label identity a face carries.
type Cell interface {
	String() string
}

// FaceView is the slice of a cover face the renderer needs.
type FaceView struct {
	Label    string
	Vertices []string
}

// Renderer accumulates tikz commands for a set of faces.
type Renderer struct {
	commands []string
	faces    []FaceView
}

func NewRenderer(faces []FaceView) *Renderer {
	return &Renderer{
		commands: []string{
			`\begin{tikzpicture}`,
			`    \def\edgelength{1.8cm}`,
		},
		faces: faces,
	}
}

// FromFaces adapts a cover's face list to the renderer's view.
func FromFaces[V Cell, L Cell](faces []libcycles.Face[V, L]) []FaceView {
	out := make([]FaceView, len(faces))
	for i := range faces {
		fv := FaceView{Label: faces[i].Label.String()}
		for _, v := range faces[i].Vertices {
			fv.Vertices = append(fv.Vertices, v.String())
		}
		out[i] = fv
	}
	return out
}

func (r *Renderer) drawFace(face *FaceView) {
	n := len(face.Vertices)
	if n == 0 {
		return
	}

	halfAngle := math.Pi / float64(n)
	radius := edgeLength / (2 * math.Sin(halfAngle))
	offsetX := radius * math.Cos(halfAngle)

	r.commands = append(r.commands, "\n")
	r.commands = append(r.commands, fmt.Sprintf(`    \def\baseangle{180/%d}`, n))
	r.commands = append(r.commands, fmt.Sprintf(`    \def\anchorx{%v}`, offsetX))
	r.commands = append(r.commands, "")

	faceIdx := strings.Trim(face.Label, "<>")
	faceLabel := fmt.Sprintf(`$\abr{%s}$`, faceIdx)
	faceID := fmt.Sprintf(`(face%s)`, faceIdx)

	r.commands = append(r.commands, fmt.Sprintf(
		`    \node %s at (\anchorx, 0) {%s};`, faceID, faceLabel))

	r.commands = append(r.commands, fmt.Sprintf(
		`    \node (node-%s-0) at ($%s+(\baseangle:%v)$) {%s};`,
		faceIdx, faceID, radius, nodeLabel(face.Vertices[0])))

	for i := 1; i < n; i++ {
		angle := math.Mod(-90+(180-360*float64(i))/float64(n), 360)
		if angle < 0 {
			angle += 360
		}
		r.commands = append(r.commands, fmt.Sprintf(
			`    \node (node-%s-%d) at ($(node-%s-%d)+(%v + \baseangle:%v)$) {%s};`,
			faceIdx, i, faceIdx, i-1, angle, edgeLength, nodeLabel(face.Vertices[i])))
	}

	for i := 0; i < n; i++ {
		next := (i + 1) % n
		r.commands = append(r.commands, fmt.Sprintf(
			`    \draw (node-%s-%d) -- (node-%s-%d);`, faceIdx, i, faceIdx, next))
	}
}

// nodeLabel wraps a parenthesized cycle identity in \del{..} math.
func nodeLabel(s string) string {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return fmt.Sprintf(`$\del{%s}$`, s[1:len(s)-1])
	}
	return s
}

func (r *Renderer) finish() string {
	r.commands = append(r.commands, `\end{tikzpicture}`)
	return strings.Join(r.commands, "\n")
}

// DrawLargestFace renders only the first face of maximal boundary length.
func (r *Renderer) DrawLargestFace() string {
	maxLen := 0
	for i := range r.faces {
		if n := len(r.faces[i].Vertices); n > maxLen {
			maxLen = n
		}
	}
	for i := range r.faces {
		if len(r.faces[i].Vertices) == maxLen {
			r.drawFace(&r.faces[i])
			break
		}
	}
	return r.finish()
}

// DrawSmallestFace renders only the first face of minimal boundary length.
func (r *Renderer) DrawSmallestFace() string {
	minLen := 0
	for i := range r.faces {
		if n := len(r.faces[i].Vertices); minLen == 0 || n < minLen {
			minLen = n
		}
	}
	for i := range r.faces {
		if len(r.faces[i].Vertices) == minLen {
			r.drawFace(&r.faces[i])
			break
		}
	}
	return r.finish()
}

// Generate renders every face.
func (r *Renderer) Generate() string {
	for i := range r.faces {
		r.drawFace(&r.faces[i])
	}
	return r.finish()
}
