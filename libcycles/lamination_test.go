package libcycles

import (
	"errors"
	"testing"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

func TestLaminationBadParams(t *testing.T) {
	if _, err := NewLamination(0, 1); !errors.Is(err, mcycles.ErrBadPeriod) {
		t.Fatalf("period 0: got %v, want ErrBadPeriod", err)
	}
	if _, err := NewLamination(40, 1); !errors.Is(err, mcycles.ErrPeriodOverflow) {
		t.Fatalf("period 40: got %v, want ErrPeriodOverflow", err)
	}
	if _, err := NewLamination(5, 3); !errors.Is(err, mcycles.ErrBadCritPeriod) {
		t.Fatalf("crit period 3: got %v, want ErrBadCritPeriod", err)
	}
}

func TestLaminationArcCounts(t *testing.T) {
	counts := map[int32][]int{
		1: {1, 1, 3, 6, 15, 27, 63, 120, 252, 495},
		2: {1, 1, 2, 4, 10, 18, 42, 80, 168, 330},
	}
	for critPeriod, want := range counts {
		lam, err := NewLamination(10, critPeriod)
		if err != nil {
			t.Fatalf("crit %d: %v", critPeriod, err)
		}
		for p := mcycles.Period(1); p <= 10; p++ {
			if got := len(lam.ArcsOfPeriod(p)); got != want[p-1] {
				t.Fatalf("crit %d period %d: got %d arcs, want %d",
					critPeriod, p, got, want[p-1])
			}
		}
	}
}

func TestLaminationPeriod4Arcs(t *testing.T) {
	lam, err := NewLamination(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []Arc{
		{mcycles.Rat(1, 15), mcycles.Rat(2, 15)},
		{mcycles.Rat(1, 5), mcycles.Rat(4, 15)},
		{mcycles.Rat(2, 5), mcycles.Rat(3, 5)},
		{mcycles.Rat(7, 15), mcycles.Rat(8, 15)},
		{mcycles.Rat(11, 15), mcycles.Rat(4, 5)},
		{mcycles.Rat(13, 15), mcycles.Rat(14, 15)},
	}
	got := lam.ArcsOfPeriod(4)
	if len(got) != len(want) {
		t.Fatalf("got %d arcs: %v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("arc %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLaminationPeriod8Arcs(t *testing.T) {
	lam, err := NewLamination(8, 1)
	if err != nil {
		t.Fatal(err)
	}
	arcs := lam.ArcsOfPeriod(8)
	if arc := arcs[68]; arc.T0 != mcycles.Rat(142, 255) {
		t.Fatalf("arc 68: got %v", arc)
	}

	lam2, err := NewLamination(8, 2)
	if err != nil {
		t.Fatal(err)
	}
	arcs2 := lam2.ArcsOfPeriod(8)
	if arc := arcs2[48]; arc.T0 != mcycles.Rat(188, 255) {
		t.Fatalf("crit-2 arc 48: got %v", arc)
	}
}

// arcsCross reports whether two chords link, i.e. exactly one endpoint
// of b lies strictly inside (a.T0, a.T1).
func arcsCross(a, b Arc) bool {
	in0 := a.T0.Cmp(b.T0) < 0 && b.T0.Cmp(a.T1) < 0
	in1 := a.T0.Cmp(b.T1) < 0 && b.T1.Cmp(a.T1) < 0
	return in0 != in1
}

func TestLaminationNonCrossing(t *testing.T) {
	for _, critPeriod := range []int32{1, 2} {
		lam, err := NewLamination(8, critPeriod)
		if err != nil {
			t.Fatal(err)
		}
		var all []Arc
		for p := mcycles.Period(2); p <= 8; p++ {
			all = append(all, lam.ArcsOfPeriod(p)...)
		}
		for i := 0; i < len(all); i++ {
			for j := i + 1; j < len(all); j++ {
				if arcsCross(all[i], all[j]) {
					t.Fatalf("crit %d: arcs %v and %v cross",
						critPeriod, all[i], all[j])
				}
			}
		}
	}
}

func TestLaminationExtend(t *testing.T) {
	lam, err := NewLamination(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	before := lam.ArcsOfPeriod(3)

	if err := lam.ExtendToPeriod(6); err != nil {
		t.Fatal(err)
	}
	if lam.MaxPeriod() != 6 {
		t.Fatalf("max period: got %d", lam.MaxPeriod())
	}

	// extension preserves already-computed arcs
	after := lam.ArcsOfPeriod(3)
	if len(after) != len(before) {
		t.Fatalf("period-3 arcs changed: %v vs %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("period-3 arc %d changed: %v vs %v", i, before[i], after[i])
		}
	}

	// re-extending to a lower period is a no-op
	if err := lam.ExtendToPeriod(4); err != nil {
		t.Fatal(err)
	}
	if lam.MaxPeriod() != 6 {
		t.Fatalf("max period after no-op: got %d", lam.MaxPeriod())
	}

	// out-of-range queries return nothing
	if got := lam.ArcsOfPeriod(7); got != nil {
		t.Fatalf("period 7 arcs: got %v", got)
	}
	if got := lam.ArcsOfPeriod(0); got != nil {
		t.Fatalf("period 0 arcs: got %v", got)
	}
}
