package dephase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iontreephaser/dephase/internal/testutil"
)

// TestGoldenDatasetSolve replays each recorded case in testdata/golden.json
// through SetDataAndKeyNormalize + Solve and checks the called sequence
// against the recorded expectation.
func TestGoldenDatasetSolve(t *testing.T) {
	ds := testutil.LoadGoldenDataset(t, "testdata/golden.json")
	require.NotEmpty(t, ds.Cases)

	for _, c := range ds.Cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			fo := NewFlowOrder(c.FlowOrderCycle, c.NumFlows)
			tp := NewTreephaser(fo)
			tp.SetModelParameters(float32(c.CF), float32(c.IE), float32(c.DR))

			measurements := make([]float32, len(c.Measurements))
			for i, v := range c.Measurements {
				measurements[i] = float32(v)
			}

			read := NewBasecallerRead(c.NumFlows)
			read.SetDataAndKeyNormalize(measurements, c.KeyFlows)

			tp.Solve(read, c.ExpectedMaxFlows, 0)

			require.Equal(t, c.ExpectedSequence, string(read.Sequence))
		})
	}
}
