package dephase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSolveRecoversNoiseFreeSequence is S1: under a zero-error phasing model
// and a noise-free prediction matching sequence "TACG" exactly, Solve must
// recover that exact sequence (its sum of squared residuals is zero, the
// global optimum).
func TestSolveRecoversNoiseFreeSequence(t *testing.T) {
	fo := NewFlowOrder("TACG", 32)
	tp := NewTreephaser(fo)
	tp.SetModelParameters(0, 0, 0)

	read := NewBasecallerRead(32)
	read.SetDataAndKeyNormalize(make([]float32, 32), nil)
	read.NormalizedMeasurements[0] = 1
	read.NormalizedMeasurements[1] = 1
	read.NormalizedMeasurements[2] = 1
	read.NormalizedMeasurements[3] = 1

	tp.Solve(read, 32, 0)

	require.Equal(t, "TACG", string(read.Sequence))
}

// TestSolveRespectsHPCap is S3: a flow that would require a homopolymer run
// longer than kMaxHP must never be extended past the cap.
func TestSolveRespectsHPCap(t *testing.T) {
	fo := NewFlowOrder("A", 20)
	tp := NewTreephaser(fo)
	tp.SetModelParameters(0, 0, 0)

	read := NewBasecallerRead(20)
	read.SetDataAndKeyNormalize(make([]float32, 20), nil)
	// A signal far beyond any plausible homopolymer, at the single A flow.
	read.NormalizedMeasurements[0] = 100

	tp.Solve(read, 20, 0)

	for _, b := range read.Sequence {
		require.Equal(t, byte('A'), b)
	}
	require.LessOrEqual(t, len(read.Sequence), kMaxHP)
}

// TestSolveSequenceBoundedByAllocatedCapacity is invariant 9: Solve never
// returns a sequence longer than the path buffers it was built from allow.
func TestSolveSequenceBoundedByAllocatedCapacity(t *testing.T) {
	fo := NewFlowOrder("TACG", 40)
	tp := NewTreephaser(fo)
	tp.SetModelParameters(0.01, 0.01, 0.01)

	read := NewBasecallerRead(40)
	measurements := make([]float32, 40)
	for f := range measurements {
		measurements[f] = 1.3
	}
	read.SetDataAndKeyNormalize(measurements, nil)

	tp.Solve(read, 40, 0)

	require.LessOrEqual(t, len(read.Sequence), 2*40)
}

// TestSolveRestartShortSeedReturnsEarly is part of S6: a restart seed that
// runs out of flows well short of restartFlows causes Solve to return the
// seed's own simulated prediction unchanged rather than attempting a full
// search.
func TestSolveRestartShortSeedReturnsEarly(t *testing.T) {
	fo := NewFlowOrder("TACG", 200)
	tp := NewTreephaser(fo)
	tp.SetModelParameters(0, 0, 0)

	read := NewBasecallerRead(200)
	read.SetDataAndKeyNormalize(make([]float32, 200), nil)
	read.Sequence = []byte("TACG") // incorporates within the first 4 flows

	tp.Solve(read, 200, 150)

	require.Len(t, read.Prediction, 200)
}

// TestNormalizeAndSolveVariantsTerminate exercises all three documented
// variants end to end and checks the basic output shape invariants.
func TestNormalizeAndSolveVariantsTerminate(t *testing.T) {
	variants := []NormalizeAndSolveVariant{VariantWindowed, VariantWindowedRestart, VariantLegacy}

	for _, variant := range variants {
		fo := NewFlowOrder("TACGTACGTACGTACG", 128)
		tp := NewTreephaser(fo)
		tp.SetModelParameters(0.01, 0.01, 0.005)

		read := NewBasecallerRead(128)
		measurements := make([]float32, 128)
		for f := range measurements {
			if f%4 == 0 {
				measurements[f] = 1.0
			}
		}
		read.SetDataAndKeyNormalize(measurements, nil)

		tp.NormalizeAndSolve(read, 128, variant)

		require.Len(t, read.Prediction, 128)
		require.LessOrEqual(t, len(read.Sequence), 2*128)
	}
}
