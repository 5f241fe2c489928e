package mcycles

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
)

// CurveExpr is the grammar for naming a cover on the command line or
// as a catalog query: "mc(14)", "mc(14,2)", "dyn(8,2)".
type CurveExpr struct {
	Family string `parser:"@Ident"`
	Period int64  `parser:"'(' @Int"`
	Crit   *int64 `parser:"(',' @Int)? ')'"`
}

var parseCurveExpr = participle.MustBuild[CurveExpr]()

// ParseCurveSpec parses a curve expression into a validated CurveSpec.
// The critical period defaults to 1 when omitted.
func ParseCurveSpec(expr string) (CurveSpec, error) {
	ce, err := parseCurveExpr.ParseString("", expr)
	if err != nil {
		return CurveSpec{}, errors.Wrapf(ErrBadCurveSpec, "%q: %v", expr, err)
	}

	var spec CurveSpec
	switch ce.Family {
	case "mc", "mcc", "marked":
		spec.Family = MarkedCycle
	case "dyn", "dynatomic":
		spec.Family = Dynatomic
	default:
		return CurveSpec{}, errors.Wrapf(ErrBadCurveSpec, "unknown family %q", ce.Family)
	}

	spec.Period = Period(ce.Period)
	spec.CritPeriod = 1
	if ce.Crit != nil {
		spec.CritPeriod = int32(*ce.Crit)
	}

	if err := spec.Validate(); err != nil {
		return CurveSpec{}, err
	}
	return spec, nil
}
