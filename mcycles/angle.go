package mcycles

import "fmt"

// Period counts iterations of the angle doubling map.
type Period int64

// IntAngle is an integer-coded angle in [0, 2^period - 1).
// Doubling an angle is multiplication by 2 mod (2^period - 1).
type IntAngle int64

// MaxPeriod bounds the supported period so that 1<<period and the
// cross-multiplied rational comparisons below stay within int64.
const MaxPeriod = Period(31)

// Context fixes the angle space for a single period.
// Every arithmetic operation takes its period context from here rather
// than from ambient state, so covers for different periods can be
// built concurrently.
type Context struct {
	Period   Period
	MaxAngle IntAngle
}

func NewContext(period Period) (Context, error) {
	if period < 1 {
		return Context{}, ErrBadPeriod
	}
	if period > MaxPeriod {
		return Context{}, ErrPeriodOverflow
	}
	return Context{
		Period:   period,
		MaxAngle: IntAngle(1)<<period - 1,
	}, nil
}

func (ctx Context) Double(theta IntAngle) IntAngle {
	return (theta << 1) % ctx.MaxAngle
}

// BitFlip is the conjugation theta -> 1 - theta, i.e. the bit
// complement within [0, 2^period - 1].
func (ctx Context) BitFlip(theta IntAngle) IntAngle {
	return ctx.MaxAngle &^ theta
}

// Orbit returns the forward orbit of theta under doubling, stopping
// when theta recurs. Iteration is capped at ctx.Period steps since
// every in-range orbit length divides the period; the cap keeps the
// synthetic fixed angle at MaxAngle (which never recurs) finite.
func (ctx Context) Orbit(theta IntAngle) []IntAngle {
	orbit := make([]IntAngle, 1, ctx.Period)
	orbit[0] = theta
	for t := ctx.Double(theta); t != theta && Period(len(orbit)) < ctx.Period; t = ctx.Double(t) {
		orbit = append(orbit, t)
	}
	return orbit
}

// OrbitMin returns the smallest angle in theta's doubling orbit.
func (ctx Context) OrbitMin(theta IntAngle) IntAngle {
	min := theta
	steps := Period(1)
	for t := ctx.Double(theta); t != theta && steps < ctx.Period; t = ctx.Double(t) {
		if t < min {
			min = t
		}
		steps++
	}
	return min
}

// Rotate advances theta by the given number of doubling steps.
// Negative shifts are taken mod the period.
func (ctx Context) Rotate(theta IntAngle, shift Period) IntAngle {
	s := ctx.modPeriod(shift)
	for i := Period(0); i < s; i++ {
		theta = ctx.Double(theta)
	}
	return theta
}

func (ctx Context) modPeriod(shift Period) Period {
	s := shift % ctx.Period
	if s < 0 {
		s += ctx.Period
	}
	return s
}

// RatAngle is an exact rational angle p/q in [0,1), stored reduced.
// It names a circle point independent of any period context.
type RatAngle struct {
	Num int64
	Den int64
}

func Rat(num, den int64) RatAngle {
	if g := gcd64(num, den); g > 1 {
		num /= g
		den /= g
	}
	return RatAngle{num, den}
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Cmp compares two angles by value.
func (r RatAngle) Cmp(other RatAngle) int {
	d := r.Num*other.Den - other.Num*r.Den
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// Scale converts r to the integer angle r * maxAngle.
// The denominator of a period-n lamination angle always divides
// 2^n - 1, so the product is exact.
func (r RatAngle) Scale(maxAngle IntAngle) IntAngle {
	return IntAngle(r.Num * int64(maxAngle) / r.Den)
}

func (r RatAngle) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
