package dephase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPhasingModelMassBound verifies that for all n, f,
// 0 <= base[n][f], 0 <= flow[n][f], and base[n][f] + flow[n][f] <= 1.
func TestPhasingModelMassBound(t *testing.T) {
	fo := NewFlowOrder("TACG", 64)
	m := NewPhasingModel(fo)
	m.SetModelParameters(0.01, 0.02, 0.015)

	for n := Nuc(0); n < 4; n++ {
		for f := 0; f < fo.NumFlows(); f++ {
			base := m.Base(n, f)
			flow := m.Flow(n, f)
			require.GreaterOrEqualf(t, base, float32(0), "base[%d][%d]", n, f)
			require.GreaterOrEqualf(t, flow, float32(0), "flow[%d][%d]", n, f)
			require.LessOrEqualf(t, base+flow, float32(1.0001), "base+flow[%d][%d]", n, f)
		}
	}
}

// TestPhasingModelZeroErrorIsIdentity verifies that with cf=ie=dr=0, an
// incorporating flow gets base=1 and all flows get flow=1 except the one
// nucleotide is cycling at that instant (flow=0 there).
func TestPhasingModelZeroErrorIsIdentity(t *testing.T) {
	fo := NewFlowOrder("TACG", 8)
	m := NewPhasingModel(fo)
	m.SetModelParameters(0, 0, 0)

	// Flow 0 cycles T: base[T][0] should be 1, flow[T][0] should be 0.
	require.InDelta(t, 1.0, m.Base(NucT, 0), 1e-6)
	require.InDelta(t, 0.0, m.Flow(NucT, 0), 1e-6)

	// A is not cycling at flow 0: base[A][0] should be 0, flow[A][0] 1.
	require.InDelta(t, 0.0, m.Base(NucA, 0), 1e-6)
	require.InDelta(t, 1.0, m.Flow(NucA, 0), 1e-6)
}

func TestPhasingModelCarryForwardDecays(t *testing.T) {
	fo := NewFlowOrder("TACG", 8)
	m := NewPhasingModel(fo)
	m.SetModelParameters(0.5, 0, 0)

	// A cycles at flow 1; by flow 5 (next A-flow) availability has decayed
	// by cf once per intervening flow (flows 2,3,4): 1 * 0.5^3.
	require.InDelta(t, 1.0, m.Base(NucA, 1), 1e-6)
	expectedAvailAtFlow4 := float32(1) * 0.5 * 0.5 * 0.5
	// base[A][4] should reflect availability carried into flow 4 (not
	// A's own flow, so base there is the decayed availability scaled by
	// (1-dr)(1-ie) = 1 here).
	require.InDelta(t, float64(expectedAvailAtFlow4), float64(m.Base(NucA, 4)), 1e-6)
}
