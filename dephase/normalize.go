package dephase

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// medianSampleMinimum is the minimum number of samples a window must
// collect before its median is trusted (more than 5).
const medianSampleMinimum = 5

// medianOfWindow returns the lower-median of samples: for an even count the
// lower of the two middle values, for an odd count the single middle value.
// This fixed-index selection (rather than a continuous-interpolation
// quantile) is what makes the result bitwise reproducible across runs.
// samples is sorted in place.
func medianOfWindow(samples []float32) float32 {
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return samples[(len(samples)-1)/2]
}

// Normalize is the simple least-squares multiplicative estimate over flows
// where 0.5 < prediction <= 4. It returns the divisor and leaves
// read.NormalizedMeasurements, read.AdditiveCorrection (zeroed), and
// read.MultiplicativeCorrection (the divisor, broadcast) updated. Matches
// DPTreephaser::Normalize.
func (t *Treephaser) Normalize(read *BasecallerRead, startFlow, endFlow int) float32 {
	numFlows := len(read.RawMeasurements)
	endFlow = min(endFlow, numFlows)

	var rawSamples, predSamples []float64
	for flow := startFlow; flow < endFlow; flow++ {
		if read.Prediction[flow] > 0.5 && read.Prediction[flow] <= 4 {
			rawSamples = append(rawSamples, float64(read.RawMeasurements[flow]))
			predSamples = append(predSamples, float64(read.Prediction[flow]))
		}
	}

	xy := floats.Sum(rawSamples)
	yy := floats.Sum(predSamples)

	var divisor float32 = 1
	if xy > 0 && yy > 0 {
		divisor = float32(xy / yy)
	}

	for flow := 0; flow < numFlows; flow++ {
		read.NormalizedMeasurements[flow] = read.RawMeasurements[flow] / divisor
	}
	for flow := range read.AdditiveCorrection {
		read.AdditiveCorrection[flow] = 0
	}
	for flow := range read.MultiplicativeCorrection {
		read.MultiplicativeCorrection[flow] = divisor
	}

	return divisor
}

// WindowedNormalize estimates and removes additive offset, then
// multiplicative scaling, by sliding a window of windowSize flows across
// the read's prediction and raw/normalized measurements, taking the median
// residual (additive pass) or ratio (multiplicative pass) in each window
// and linearly interpolating across the window's first half. Matches
// DPTreephaser::WindowedNormalize.
func (t *Treephaser) WindowedNormalize(read *BasecallerRead, numSteps, windowSize int) {
	numFlows := len(read.RawMeasurements)
	medianSet := make([]float32, 0, windowSize)

	// --- Additive pass ---
	var nextNormalizer float32
	estimFlow, applyFlow := 0, 0

	for step := 0; step < numSteps; step++ {
		windowEnd := estimFlow + windowSize
		windowMiddle := estimFlow + windowSize/2
		if windowMiddle > numFlows {
			break
		}

		normalizer := nextNormalizer

		medianSet = medianSet[:0]
		for ; estimFlow < windowEnd && estimFlow < numFlows; estimFlow++ {
			if read.Prediction[estimFlow] < 0.3 {
				medianSet = append(medianSet, read.RawMeasurements[estimFlow]-read.Prediction[estimFlow])
			}
		}

		if len(medianSet) > medianSampleMinimum {
			nextNormalizer = medianOfWindow(medianSet)
			if step == 0 {
				normalizer = nextNormalizer
			}
		}

		delta := (nextNormalizer - normalizer) / float32(windowSize)

		for ; applyFlow < windowMiddle && applyFlow < numFlows; applyFlow++ {
			read.NormalizedMeasurements[applyFlow] = read.RawMeasurements[applyFlow] - normalizer
			read.AdditiveCorrection[applyFlow] = normalizer
			normalizer += delta
		}
	}

	for ; applyFlow < numFlows; applyFlow++ {
		read.NormalizedMeasurements[applyFlow] = read.RawMeasurements[applyFlow] - nextNormalizer
		read.AdditiveCorrection[applyFlow] = nextNormalizer
	}

	// --- Multiplicative pass ---
	nextNormalizer = 1
	estimFlow, applyFlow = 0, 0

	for step := 0; step < numSteps; step++ {
		windowEnd := estimFlow + windowSize
		windowMiddle := estimFlow + windowSize/2
		if windowMiddle > numFlows {
			break
		}

		normalizer := nextNormalizer

		medianSet = medianSet[:0]
		for ; estimFlow < windowEnd && estimFlow < numFlows; estimFlow++ {
			if read.Prediction[estimFlow] > 0.5 && read.NormalizedMeasurements[estimFlow] > 0 {
				medianSet = append(medianSet, read.NormalizedMeasurements[estimFlow]/read.Prediction[estimFlow])
			}
		}

		if len(medianSet) > medianSampleMinimum {
			nextNormalizer = medianOfWindow(medianSet)
			if step == 0 {
				normalizer = nextNormalizer
			}
		}

		delta := (nextNormalizer - normalizer) / float32(windowSize)

		for ; applyFlow < windowMiddle && applyFlow < numFlows; applyFlow++ {
			read.NormalizedMeasurements[applyFlow] /= normalizer
			read.MultiplicativeCorrection[applyFlow] = normalizer
			normalizer += delta
		}
	}

	for ; applyFlow < numFlows; applyFlow++ {
		read.NormalizedMeasurements[applyFlow] /= nextNormalizer
		read.MultiplicativeCorrection[applyFlow] = nextNormalizer
	}
}
