package combinat_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DannyStoll1/marked-cycles/libcycles/combinat"
)

func TestDivisors(t *testing.T) {
	d := combinat.Divisors(12)
	sort.Slice(d, func(i, j int) bool { return d[i] < d[j] })
	require.Equal(t, []int64{1, 2, 3, 4, 6, 12}, d)
	require.Equal(t, []int64{1}, combinat.Divisors(1))
}

func TestMoebiusAndTotient(t *testing.T) {
	wantMu := []int64{1, -1, -1, 0, -1, 1, -1, 0, 0, 1, -1, 0}
	wantPhi := []int64{1, 1, 2, 2, 4, 2, 6, 4, 6, 4, 10, 4}
	for n := int64(1); n <= 12; n++ {
		require.Equal(t, wantMu[n-1], combinat.Moebius(n), "mu(%d)", n)
		require.Equal(t, wantPhi[n-1], combinat.Totient(n), "phi(%d)", n)
	}
}

func TestDirichletIdentities(t *testing.T) {
	one := func(int64) int64 { return 1 }
	id := func(n int64) int64 { return n }

	for n := int64(1); n <= 30; n++ {
		// sum_{d|n} phi(d) = n
		require.Equal(t, n, combinat.Dirichlet(combinat.Totient, one, n))
		// mu * 1 is the identity of Dirichlet inversion
		want := int64(0)
		if n == 1 {
			want = 1
		}
		require.Equal(t, want, combinat.Dirichlet(combinat.Moebius, one, n))
		// inversion of the divisor sums of id recovers id
		F := func(m int64) int64 { return combinat.Dirichlet(id, one, m) }
		require.Equal(t, n, combinat.MoebiusInversion(F, n))
	}
}

func TestMarkedCycleCounts(t *testing.T) {
	mc1 := combinat.MarkedCycleComb{CritPeriod: 1}
	mc2 := combinat.MarkedCycleComb{CritPeriod: 2}

	wantHyp1 := []int64{1, 1, 3, 6, 15, 27, 63, 120, 252, 495}
	wantHyp2 := []int64{1, 0, 2, 4, 10, 18, 42, 80, 168, 330}
	wantCycles := []int64{1, 1, 2, 3, 6, 9, 18, 30, 56, 99}
	wantSelf1 := []int64{0, 1, 0, 1, 0, 1, 0, 2, 0, 3}
	wantSelf2 := []int64{0, 0, 2, 0, 0, 0, 0, 0, 2, 0}

	for n := int64(1); n <= 10; n++ {
		require.Equal(t, wantHyp1[n-1], mc1.HypComponents(n), "hyp1(%d)", n)
		require.Equal(t, wantHyp2[n-1], mc2.HypComponents(n), "hyp2(%d)", n)
		require.Equal(t, wantCycles[n-1], mc1.Cycles(n), "cycles(%d)", n)
		require.Equal(t, wantSelf1[n-1], mc1.SelfConjugate(n), "selfconj1(%d)", n)
		require.Equal(t, wantSelf2[n-1], mc2.SelfConjugate(n), "selfconj2(%d)", n)
	}

	// spot-check the full cell counts at the top of the table
	require.EqualValues(t, 1161, mc1.NumVertices(14))
	require.EqualValues(t, 8052, mc1.NumEdges(14))
	require.EqualValues(t, 585, mc1.NumFaces(14))
	require.EqualValues(t, 3154, mc1.Genus(14))
	require.EqualValues(t, 5370, mc2.NumEdges(14))
	require.EqualValues(t, 1912, mc2.Genus(14))
}

func TestDynatomicCounts(t *testing.T) {
	dc1 := combinat.DynatomicComb{MarkedCycleComb: combinat.MarkedCycleComb{CritPeriod: 1}}
	dc2 := combinat.DynatomicComb{MarkedCycleComb: combinat.MarkedCycleComb{CritPeriod: 2}}

	wantSat1 := []int64{0, 1, 2, 4, 4, 15, 6, 32, 24, 87}
	wantSat2 := []int64{0, 1, 2, 2, 4, 8, 6, 20, 18, 54}
	for n := int64(1); n <= 10; n++ {
		require.Equal(t, wantSat1[n-1], dc1.SatelliteFaces(n), "sat1(%d)", n)
		require.Equal(t, wantSat2[n-1], dc2.SatelliteFaces(n), "sat2(%d)", n)
	}

	require.EqualValues(t, 4020, dc1.NumVertices(12))
	require.EqualValues(t, 24120, dc1.NumEdges(12))
	require.EqualValues(t, 2246, dc1.NumFaces(12))
	require.EqualValues(t, 8928, dc1.Genus(12))
	require.EqualValues(t, 16080, dc2.NumEdges(12))
	require.EqualValues(t, 1496, dc2.NumFaces(12))
	require.EqualValues(t, 5283, dc2.Genus(12))
}
