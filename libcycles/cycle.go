package libcycles

import (
	"fmt"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// AbstractCycle names a periodic orbit by its minimal point.
type AbstractCycle struct {
	Rep AbstractPoint
}

// CycleOf returns the cycle containing p.
func CycleOf(p AbstractPoint) AbstractCycle {
	return AbstractCycle{p.OrbitMin()}
}

// Class folds a cycle with its conjugate cycle: the smaller of the two
// minimal representatives names the class.
func (c AbstractCycle) Class() AbstractCycleClass {
	rep := c.Rep
	if conj := c.Rep.BitFlip().OrbitMin(); conj.Angle < rep.Angle {
		rep = conj
	}
	return AbstractCycleClass{rep}
}

func (c AbstractCycle) String() string {
	return fmt.Sprintf("(%d)", c.Rep.Angle)
}

func (c AbstractCycle) BinaryString() string {
	return fmt.Sprintf("(%0*b)", int(c.Rep.Period), int64(c.Rep.Angle))
}

// AbstractCycleClass is a cycle conjugate class; it labels faces so
// that face identity does not depend on which conjugate traversal
// direction discovered the face.
type AbstractCycleClass struct {
	Rep AbstractPoint
}

// Cycle returns the class representative as a cycle.
func (cc AbstractCycleClass) Cycle() AbstractCycle {
	return AbstractCycle{cc.Rep}
}

func (cc AbstractCycleClass) String() string {
	return fmt.Sprintf("<%d>", cc.Rep.Angle)
}

func (cc AbstractCycleClass) BinaryString() string {
	return fmt.Sprintf("<%0*b>", int(cc.Rep.Period), int64(cc.Rep.Angle))
}

// ShiftedCycle is a marked point within a cycle: the cycle plus the
// point's phase offset from the cycle's minimal representative.
// The shift is always reduced mod the period.
type ShiftedCycle struct {
	Cycle AbstractCycle
	Shift mcycles.Period
}

// Rotate advances the marked point's phase.
func (sc ShiftedCycle) Rotate(shift mcycles.Period) ShiftedCycle {
	per := sc.Cycle.Rep.Period
	s := (sc.Shift + shift) % per
	if s < 0 {
		s += per
	}
	sc.Shift = s
	return sc
}

// RelativeShift returns other's phase relative to sc (mod period).
func (sc ShiftedCycle) RelativeShift(other ShiftedCycle) mcycles.Period {
	per := sc.Cycle.Rep.Period
	s := (other.Shift - sc.Shift) % per
	if s < 0 {
		s += per
	}
	return s
}

// ToPoint resolves the marked point to its angle.
func (sc ShiftedCycle) ToPoint() AbstractPoint {
	return sc.Cycle.Rep.Rotate(sc.Shift)
}

func (sc ShiftedCycle) String() string {
	return fmt.Sprintf("(%d, %d)", sc.Cycle.Rep.Angle, sc.Shift)
}

func (sc ShiftedCycle) BinaryString() string {
	return fmt.Sprintf("(%0*b, %d)", int(sc.Cycle.Rep.Period), int64(sc.Cycle.Rep.Angle), sc.Shift)
}
