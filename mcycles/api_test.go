package mcycles

import (
	"errors"
	"testing"
)

func TestParseCurveSpec(t *testing.T) {
	cases := []struct {
		expr string
		want CurveSpec
	}{
		{"mc(14)", CurveSpec{MarkedCycle, 14, 1}},
		{"mc(14,2)", CurveSpec{MarkedCycle, 14, 2}},
		{"mcc(5)", CurveSpec{MarkedCycle, 5, 1}},
		{"marked(5,2)", CurveSpec{MarkedCycle, 5, 2}},
		{"dyn(8,2)", CurveSpec{Dynatomic, 8, 2}},
		{"dynatomic(3)", CurveSpec{Dynatomic, 3, 1}},
	}
	for _, tc := range cases {
		spec, err := ParseCurveSpec(tc.expr)
		if err != nil {
			t.Fatalf("%q: %v", tc.expr, err)
		}
		if spec != tc.want {
			t.Fatalf("%q: got %v, want %v", tc.expr, spec, tc.want)
		}
	}

	bad := []string{"", "mc", "mc()", "mc(", "quad(5)", "mc(5,)", "mc 5"}
	for _, expr := range bad {
		if _, err := ParseCurveSpec(expr); !errors.Is(err, ErrBadCurveSpec) {
			t.Fatalf("%q: got %v, want ErrBadCurveSpec", expr, err)
		}
	}

	if _, err := ParseCurveSpec("mc(0)"); !errors.Is(err, ErrBadPeriod) {
		t.Fatalf("mc(0): got %v, want ErrBadPeriod", err)
	}
	if _, err := ParseCurveSpec("mc(99)"); !errors.Is(err, ErrPeriodOverflow) {
		t.Fatalf("mc(99): got %v, want ErrPeriodOverflow", err)
	}
	if _, err := ParseCurveSpec("mc(5,3)"); !errors.Is(err, ErrBadCritPeriod) {
		t.Fatalf("mc(5,3): got %v, want ErrBadCritPeriod", err)
	}
}

func TestCurveSpecString(t *testing.T) {
	spec := CurveSpec{MarkedCycle, 14, 2}
	if got := spec.String(); got != "mc(14,2)" {
		t.Fatalf("got %q", got)
	}
	spec = CurveSpec{Dynatomic, 6, 1}
	if got := spec.String(); got != "dyn(6,1)" {
		t.Fatalf("got %q", got)
	}
}

func TestCoverStatsCodec(t *testing.T) {
	cs := CoverStats{
		Spec:        CurveSpec{Dynatomic, 12, 2},
		NumVertices: 4020,
		NumEdges:    16080,
		NumFaces:    1496,
		Euler:       -10564,
		Genus:       5283,
		MaxFace:     144,
		MinFace:     2,
	}

	buf := cs.Marshal(nil)
	var got CoverStats
	if err := got.Unmarshal(buf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != cs {
		t.Fatalf("roundtrip mismatch:\n got %+v\nwant %+v", got, cs)
	}

	for cut := 0; cut < len(buf); cut++ {
		var trunc CoverStats
		if err := trunc.Unmarshal(buf[:cut]); !errors.Is(err, ErrUnmarshal) {
			t.Fatalf("truncated at %d: got %v, want ErrUnmarshal", cut, err)
		}
	}
	var trail CoverStats
	if err := trail.Unmarshal(append(buf, 0)); !errors.Is(err, ErrUnmarshal) {
		t.Fatalf("trailing byte: got %v, want ErrUnmarshal", err)
	}
}

func TestSpecKeyOrdering(t *testing.T) {
	// keys for the same family and crit period must sort by period
	a := CurveSpec{MarkedCycle, 5, 1}.AppendKey(nil)
	b := CurveSpec{MarkedCycle, 6, 1}.AppendKey(nil)
	if string(a) >= string(b) {
		t.Fatalf("keys out of order: %v vs %v", a, b)
	}
	if string(a) == string(b[:len(a)]) {
		t.Fatalf("key must differ in its period byte")
	}
}
