package dephase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMedianOfWindowOddCount(t *testing.T) {
	samples := []float32{3, 1, 2}
	require.Equal(t, float32(2), medianOfWindow(samples))
}

// TestMedianOfWindowEvenCountTakesLower pins down the lower-median choice
// for an even-sized window: sorted {1,2,3,4}, lower-median is index 1 -> 2.
func TestMedianOfWindowEvenCountTakesLower(t *testing.T) {
	samples := []float32{4, 1, 3, 2}
	require.Equal(t, float32(2), medianOfWindow(samples))
}

// TestNormalizeScalesByDivisor checks that Normalize recovers the
// multiplicative divisor between raw measurements and a known prediction,
// and correctly zeroes the additive correction.
func TestNormalizeScalesByDivisor(t *testing.T) {
	fo := NewFlowOrder("TACG", 8)
	tp := NewTreephaser(fo)

	read := NewBasecallerRead(8)
	// prediction values in (0.5, 4]; raw = 2x prediction everywhere.
	for f := 0; f < 8; f++ {
		read.Prediction[f] = 1.0
		read.RawMeasurements[f] = 2.0
	}

	divisor := tp.Normalize(read, 0, 8)
	require.InDelta(t, 2.0, divisor, 1e-4)
	for f := 0; f < 8; f++ {
		require.InDelta(t, 1.0, read.NormalizedMeasurements[f], 1e-4)
		require.Equal(t, float32(0), read.AdditiveCorrection[f])
		require.InDelta(t, 2.0, read.MultiplicativeCorrection[f], 1e-4)
	}
}

// TestNormalizeDegenerateFallsBackToUnitDivisor covers the degenerate case
// (no flow lands in the trusted prediction band): the divisor stays 1 and
// normalized measurements pass through raw measurements unchanged.
func TestNormalizeDegenerateFallsBackToUnitDivisor(t *testing.T) {
	fo := NewFlowOrder("TACG", 4)
	tp := NewTreephaser(fo)

	read := NewBasecallerRead(4)
	for f := 0; f < 4; f++ {
		read.Prediction[f] = 0 // outside (0.5, 4]
		read.RawMeasurements[f] = 7
	}

	divisor := tp.Normalize(read, 0, 4)
	require.Equal(t, float32(1), divisor)
	for f := 0; f < 4; f++ {
		require.Equal(t, float32(7), read.NormalizedMeasurements[f])
	}
}

// TestWindowedNormalizeRecoversConstantOffset feeds a read with a known
// constant additive bias on top of a clean, in-phase-looking prediction and
// checks WindowedNormalize drives the normalized measurements back toward
// the (unbiased) prediction.
func TestWindowedNormalizeRecoversConstantOffset(t *testing.T) {
	fo := NewFlowOrder("TACG", 64)
	tp := NewTreephaser(fo)

	read := NewBasecallerRead(64)
	const bias = float32(0.05)
	for f := 0; f < 64; f++ {
		// Alternate 0/1 "prediction" pattern, low enough in the zero flows
		// to be picked up by the additive pass's < 0.3 filter.
		if f%2 == 0 {
			read.Prediction[f] = 0
			read.RawMeasurements[f] = bias
		} else {
			read.Prediction[f] = 1
			read.RawMeasurements[f] = 1 + bias
		}
	}

	tp.WindowedNormalize(read, 2, 20)

	for f := 0; f < 64; f += 2 {
		require.InDeltaf(t, 0, read.NormalizedMeasurements[f], 1e-4, "flow %d", f)
	}
}
