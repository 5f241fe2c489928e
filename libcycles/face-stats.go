package libcycles

import (
	"fmt"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// FaceStats is one row of the face-statistics table: extremal face
// sizes and the multiplicity of each, split by reflexivity.
type FaceStats struct {
	Period       mcycles.Period
	MaxFace      int // largest boundary length
	MinFace      int // smallest boundary length
	MinFaceIrr   int // smallest among irreflexive faces (0 if none)
	NumMax       int
	NumMin       int
	NumMinIrr    int
	NumReflexive int // faces of degree 1
	NumOddIrr    int // irreflexive faces of odd boundary length
}

func FaceStatsHeader() string {
	return "period,max_face,min_face,min_face_irr,num_max,num_min,num_min_irr,num_reflexive,num_odd_irr"
}

func (fs FaceStats) Row() string {
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d,%d,%d,%d",
		fs.Period, fs.MaxFace, fs.MinFace, fs.MinFaceIrr,
		fs.NumMax, fs.NumMin, fs.NumMinIrr, fs.NumReflexive, fs.NumOddIrr)
}

func surveyFaces[V any, L any](period mcycles.Period, faces []Face[V, L]) FaceStats {
	fs := FaceStats{Period: period}
	if len(faces) == 0 {
		return fs
	}

	for i := range faces {
		face := &faces[i]
		n := face.Len()

		if n > fs.MaxFace {
			fs.MaxFace = n
		}
		if fs.MinFace == 0 || n < fs.MinFace {
			fs.MinFace = n
		}
		if face.IsReflexive() {
			fs.NumReflexive++
			continue
		}
		if fs.MinFaceIrr == 0 || n < fs.MinFaceIrr {
			fs.MinFaceIrr = n
		}
		if n&1 == 1 {
			fs.NumOddIrr++
		}
	}

	for i := range faces {
		face := &faces[i]
		n := face.Len()
		if n == fs.MaxFace {
			fs.NumMax++
		}
		if n == fs.MinFace {
			fs.NumMin++
		}
		if n == fs.MinFaceIrr && !face.IsReflexive() {
			fs.NumMinIrr++
		}
	}
	return fs
}
