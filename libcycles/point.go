package libcycles

import (
	"fmt"
	"strings"

	"github.com/DannyStoll1/marked-cycles/mcycles"
)

// AbstractPoint is an integer angle carried together with its period
// context. Equality and ordering are defined by the angle alone.
type AbstractPoint struct {
	Angle  mcycles.IntAngle
	Period mcycles.Period
}

func NewPoint(angle mcycles.IntAngle, period mcycles.Period) AbstractPoint {
	return AbstractPoint{
		Angle:  angle,
		Period: period,
	}
}

func (p AbstractPoint) ctx() mcycles.Context {
	return mcycles.Context{
		Period:   p.Period,
		MaxAngle: mcycles.IntAngle(1)<<p.Period - 1,
	}
}

func (p AbstractPoint) MaxAngle() mcycles.IntAngle {
	return mcycles.IntAngle(1)<<p.Period - 1
}

// Orbit returns p's forward orbit under angle doubling.
func (p AbstractPoint) Orbit() []mcycles.IntAngle {
	return p.ctx().Orbit(p.Angle)
}

// OrbitMin returns the minimal point of p's orbit.
func (p AbstractPoint) OrbitMin() AbstractPoint {
	p.Angle = p.ctx().OrbitMin(p.Angle)
	return p
}

// Rotate advances p by the given number of doubling steps (mod period).
func (p AbstractPoint) Rotate(shift mcycles.Period) AbstractPoint {
	p.Angle = p.ctx().Rotate(p.Angle, shift)
	return p
}

// BitFlip is the conjugation theta -> 1 - theta. It is an involution.
func (p AbstractPoint) BitFlip() AbstractPoint {
	p.Angle = p.ctx().BitFlip(p.Angle)
	return p
}

// Class folds p with its conjugate.
func (p AbstractPoint) Class() AbstractPointClass {
	if flip := p.BitFlip(); flip.Angle < p.Angle {
		p = flip
	}
	return AbstractPointClass{p}
}

// KneadingSequence renders the itinerary of p's orbit relative to the
// two preimages of the critical point, u0 = theta/2 and
// u1 = (theta + max)/2: '0' between them, '1' outside, '*' on either.
func (p AbstractPoint) KneadingSequence() string {
	max := p.MaxAngle()

	var b strings.Builder
	for _, x := range p.Orbit() {
		switch dx := 2 * x; {
		case dx == p.Angle || dx == p.Angle+max:
			b.WriteByte('*')
		case p.Angle < dx && dx < p.Angle+max:
			b.WriteByte('0')
		default:
			b.WriteByte('1')
		}
	}
	return b.String()
}

func (p AbstractPoint) String() string {
	return fmt.Sprintf("%d", p.Angle)
}

// BinaryString renders the angle as period-width binary.
func (p AbstractPoint) BinaryString() string {
	return fmt.Sprintf("%0*b", int(p.Period), int64(p.Angle))
}

// AbstractPointClass is the unordered pair {p, bit_flip(p)},
// represented by the smaller of the two.
type AbstractPointClass struct {
	Rep AbstractPoint
}

func (pc AbstractPointClass) String() string {
	return fmt.Sprintf("<%d>", pc.Rep.Angle)
}

func (pc AbstractPointClass) BinaryString() string {
	return fmt.Sprintf("<%0*b>", int(pc.Rep.Period), int64(pc.Rep.Angle))
}
