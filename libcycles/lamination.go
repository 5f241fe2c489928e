package libcycles

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// Arc is one chord of the lamination: two rational angles with
// T0 <= T1. The period-1 root arc is degenerate (both endpoints 0).
type Arc struct {
	T0 mcycles.RatAngle
	T1 mcycles.RatAngle
}

func (arc Arc) String() string {
	return fmt.Sprintf("(%v, %v)", arc.T0, arc.T1)
}

// Lamination holds, for each period computed so far, the non-crossing
// chords joining rational angles of denominator 2^k - 1 (Lavaurs'
// algorithm). Extending to a higher period preserves all arcs already
// computed. Immutable from the caller's point of view once built.
type Lamination struct {
	critPeriod int32
	maxPeriod  mcycles.Period
	arcs       []Arc   // all arcs across periods, in discovery order
	perPeriod  [][]Arc // indexed by period
	endpoints  *redblacktree.Tree
}

// NewLamination builds the lamination up to the given period.
// critPeriod 2 suppresses angles with a non-real critical orbit
// (the middle third of the circle).
func NewLamination(period mcycles.Period, critPeriod int32) (*Lamination, error) {
	if _, err := mcycles.NewContext(period); err != nil {
		return nil, err
	}
	if critPeriod != 1 && critPeriod != 2 {
		return nil, mcycles.ErrBadCritPeriod
	}

	root := Arc{mcycles.Rat(0, 1), mcycles.Rat(0, 1)}
	lam := &Lamination{
		critPeriod: critPeriod,
		maxPeriod:  1,
		arcs:       []Arc{root},
		perPeriod:  [][]Arc{nil, {root}},
		endpoints: redblacktree.NewWith(func(a, b interface{}) int {
			return a.(mcycles.RatAngle).Cmp(b.(mcycles.RatAngle))
		}),
	}
	lam.endpoints.Put(root.T0, nil)

	return lam, lam.ExtendToPeriod(period)
}

// ExtendToPeriod grows the lamination to include arcs up to the given
// period. Periods at or below MaxPeriod() are a no-op.
func (lam *Lamination) ExtendToPeriod(period mcycles.Period) error {
	if _, err := mcycles.NewContext(period); err != nil {
		return err
	}
	for lam.maxPeriod < period {
		if err := lam.extend(); err != nil {
			return err
		}
	}
	return nil
}

func (lam *Lamination) MaxPeriod() mcycles.Period {
	return lam.maxPeriod
}

// ArcsOfPeriod returns the period's chord list, sorted by angle.
func (lam *Lamination) ArcsOfPeriod(period mcycles.Period) []Arc {
	if period < 1 || period > lam.maxPeriod {
		return nil
	}
	arcs := append([]Arc{}, lam.perPeriod[period]...)
	sort.Slice(arcs, func(i, j int) bool {
		if c := arcs[i].T0.Cmp(arcs[j].T0); c != 0 {
			return c < 0
		}
		return arcs[i].T1.Cmp(arcs[j].T1) < 0
	})
	return arcs
}

type sweepEvent struct {
	angle mcycles.RatAngle
	pop   bool
	arcID int
}

type sweepEntry struct {
	arcID   int
	pending mcycles.RatAngle
	isArc   bool
}

// extend runs one sweep at period maxPeriod+1. Candidate angles are
// processed in increasing order against a two-pointer merge of the
// existing arc endpoints: a left endpoint pushes a marker, a right
// endpoint must pop its own marker back off. A candidate pairs with a
// pending candidate on top of the stack, or becomes pending itself.
func (lam *Lamination) extend() error {
	lam.maxPeriod++
	k := lam.maxPeriod
	den := int64(1)<<k - 1

	events := make([]sweepEvent, 0, 2*len(lam.arcs))
	for id, arc := range lam.arcs {
		if arc.T0 == arc.T1 {
			continue // the root arc has no interior
		}
		events = append(events,
			sweepEvent{arc.T0, false, id},
			sweepEvent{arc.T1, true, id})
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].angle.Cmp(events[j].angle) < 0
	})

	exLo, exHi := int64(0), int64(0)
	if lam.critPeriod == 2 {
		exLo = den/3 + 1
		exHi = 2*den/3 + 1
		if den%3 == 0 {
			exHi = 2 * den / 3
		}
	}

	var stack []sweepEntry
	var newArcs []Arc

	ei := 0
	applyEvent := func(ev sweepEvent) error {
		if !ev.pop {
			stack = append(stack, sweepEntry{arcID: ev.arcID, isArc: true})
			return nil
		}
		n := len(stack)
		if n == 0 || !stack[n-1].isArc || stack[n-1].arcID != ev.arcID {
			return errors.Wrapf(mcycles.ErrStackMismatch,
				"period %d sweep at %v", k, ev.angle)
		}
		stack = stack[:n-1]
		return nil
	}
	replayTo := func(theta mcycles.RatAngle) error {
		for ei < len(events) && events[ei].angle.Cmp(theta) < 0 {
			ev := events[ei]
			ei++
			if err := applyEvent(ev); err != nil {
				return err
			}
		}
		return nil
	}
	drainEvents := func() error {
		for ; ei < len(events); ei++ {
			if err := applyEvent(events[ei]); err != nil {
				return err
			}
		}
		return nil
	}

	for j := int64(1); j < den; j++ {
		if lam.critPeriod == 2 && j >= exLo && j < exHi {
			continue
		}
		theta := mcycles.Rat(j, den)
		if _, found := lam.endpoints.Get(theta); found {
			continue
		}

		if err := replayTo(theta); err != nil {
			return err
		}

		if n := len(stack); n > 0 && !stack[n-1].isArc {
			other := stack[n-1].pending
			stack = stack[:n-1]
			newArcs = append(newArcs, Arc{other, theta})
		} else {
			stack = append(stack, sweepEntry{pending: theta})
		}
	}

	if err := drainEvents(); err != nil {
		return err
	}
	if len(stack) > 0 {
		return errors.Wrapf(mcycles.ErrUnpairedAngle,
			"period %d sweep left %d entries", k, len(stack))
	}

	for _, arc := range newArcs {
		lam.endpoints.Put(arc.T0, nil)
		lam.endpoints.Put(arc.T1, nil)
		lam.arcs = append(lam.arcs, arc)
	}
	lam.perPeriod = append(lam.perPeriod, newArcs)
	return nil
}
