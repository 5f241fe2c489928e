package mcycles

import "errors"

// Errors
var (
	ErrBadPeriod       = errors.New("period must be >= 1")
	ErrPeriodOverflow  = errors.New("period exceeds host integer width")
	ErrBadCritPeriod   = errors.New("critical period must be 1 or 2")
	ErrStackMismatch   = errors.New("lamination sweep stack mismatch")
	ErrUnpairedAngle   = errors.New("unpaired angle left after lamination sweep")
	ErrUnassignedAngle = errors.New("arc endpoint has no assigned cycle")
	ErrOddEuler        = errors.New("odd Euler characteristic")
	ErrBadCurveSpec    = errors.New("bad curve spec")
	ErrBadCatalogParam = errors.New("bad catalog param")
	ErrUnmarshal       = errors.New("unmarshal failed")
)
