package combinat

// MarkedCycleComb predicts the cell counts of the marked-cycle cover
// for one critical period.
type MarkedCycleComb struct {
	CritPeriod int32
}

// pointsDiv counts points whose period divides n.
func (mc MarkedCycleComb) pointsDiv(n int64) int64 {
	if mc.CritPeriod == 1 {
		return ipow(2, n) - 1
	}
	return ipow(2, n) - sign(n)
}

// PeriodicPoints counts points of exact period n.
func (mc MarkedCycleComb) PeriodicPoints(n int64) int64 {
	return MoebiusInversion(mc.pointsDiv, n)
}

// Cycles counts the period-n orbits.
func (mc MarkedCycleComb) Cycles(n int64) int64 {
	return mc.PeriodicPoints(n) / n
}

// hypDiv counts hyperbolic components whose period divides n.
func (mc MarkedCycleComb) hypDiv(n int64) int64 {
	if mc.CritPeriod == 1 {
		return ipow(2, n) / 2
	}
	return (ipow(2, n) - sign(n)) / 3
}

// HypComponents counts hyperbolic components of exact period n.
func (mc MarkedCycleComb) HypComponents(n int64) int64 {
	return MoebiusInversion(mc.hypDiv, n)
}

// PrimitiveArcs counts the lamination arcs joining distinct cycles.
func (mc MarkedCycleComb) PrimitiveArcs(n int64) int64 {
	hyp := func(d int64) int64 { return mc.HypComponents(d) }
	return 2*mc.HypComponents(n) - Dirichlet(Totient, hyp, n)
}

// SelfConjugate counts the self-conjugate cycle classes.
func (mc MarkedCycleComb) SelfConjugate(n int64) int64 {
	so := int64(mc.CritPeriod) + 1
	if n%so != 0 {
		return 0
	}
	k := n / so
	u := int64(1 - mc.CritPeriod)
	sum := int64(0)
	for _, d := range Divisors(k) {
		if d%so == 0 {
			continue
		}
		sum += Moebius(d) * (ipow(2, k/d) - ipow(u, k/d))
	}
	return int64(mc.CritPeriod) * sum / n
}

func (mc MarkedCycleComb) NumVertices(n int64) int64 {
	return mc.Cycles(n)
}

func (mc MarkedCycleComb) NumEdges(n int64) int64 {
	return mc.PrimitiveArcs(n)
}

func (mc MarkedCycleComb) NumFaces(n int64) int64 {
	crit := int64(mc.CritPeriod)
	return (mc.Cycles(n) + crit*mc.SelfConjugate(n)) / (crit + 1)
}

func (mc MarkedCycleComb) Genus(n int64) int64 {
	p := mc.PrimitiveArcs(n)
	c := mc.Cycles(n)
	s := mc.SelfConjugate(n)
	if mc.CritPeriod == 1 {
		return 1 + (2*p-3*c-s)/4
	}
	return 1 + (3*p-4*c-2*s)/6
}

// DynatomicComb predicts the cell counts of the dynatomic cover.
type DynatomicComb struct {
	MarkedCycleComb
}

// PrimitiveFaces counts faces traced from the rotation system.
func (dc DynatomicComb) PrimitiveFaces(n int64) int64 {
	return dc.PeriodicPoints(n) / (int64(dc.CritPeriod) + 1)
}

// SatelliteFaces counts faces pinched at self-glued arcs.
func (dc DynatomicComb) SatelliteFaces(n int64) int64 {
	dHyp := func(d int64) int64 { return d * dc.HypComponents(d) }
	return Dirichlet(dHyp, Totient, n) - n*dc.HypComponents(n)
}

func (dc DynatomicComb) NumVertices(n int64) int64 {
	return dc.PeriodicPoints(n)
}

func (dc DynatomicComb) NumEdges(n int64) int64 {
	return n * dc.HypComponents(n)
}

func (dc DynatomicComb) NumFaces(n int64) int64 {
	return dc.PrimitiveFaces(n) + dc.SatelliteFaces(n)
}

func (dc DynatomicComb) Genus(n int64) int64 {
	h := dc.HypComponents(n)
	p := dc.PeriodicPoints(n)
	sf := dc.SatelliteFaces(n)
	if dc.CritPeriod == 1 {
		return 1 + (n*h-3*p/2-sf)/2
	}
	return 1 - 2*p/3 + (n*h-sf)/2
}

// sign is (-1)^n.
func sign(n int64) int64 {
	if n&1 == 1 {
		return -1
	}
	return 1
}
