package dephase

// BasecallerRead is the mutable per-well record exchanged with collaborators
// All vectors are length F unless noted.
type BasecallerRead struct {
	RawMeasurements          []float32 // copy of input x key-normalizer
	NormalizedMeasurements   []float32 // iteratively refined
	AdditiveCorrection       []float32
	MultiplicativeCorrection []float32
	Prediction               []float32 // model output
	Sequence                 []byte    // called bases, length <= 2F

	StateInphase []float32 // per-flow QV input
	StateTotal   []float32 // per-flow QV input

	PenaltyMismatch []float32 // per-base QV input, length = len(Sequence)
	PenaltyResidual []float32

	KeyNormalizer float32 // multiplicative scaling for one-mer key flows
}

// NewBasecallerRead allocates a zero-valued read sized to numFlows.
func NewBasecallerRead(numFlows int) *BasecallerRead {
	return &BasecallerRead{
		RawMeasurements:          make([]float32, numFlows),
		NormalizedMeasurements:   make([]float32, numFlows),
		AdditiveCorrection:       make([]float32, numFlows),
		MultiplicativeCorrection: onesFloat32(numFlows),
		Prediction:               make([]float32, numFlows),
		Sequence:                 make([]byte, 0, 2*numFlows),
	}
}

func onesFloat32(n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = 1
	}
	return v
}

// SetDataAndKeyNormalize installs measurements as RawMeasurements /
// NormalizedMeasurements after scaling by a key normalizer computed from
// the known key flows: key_normalizer = count_of_one_mers /
// sum_of_one_mer_measurements, or 1 if either is zero (degenerate-input
// fallback). keyFlows holds the expected incorporation
// count at each of the first len(keyFlows) flows; a value of 1 marks a
// one-mer key flow. Matches BasecallerRead::SetDataAndKeyNormalize.
func (r *BasecallerRead) SetDataAndKeyNormalize(measurements []float32, keyFlows []int) {
	numFlows := len(measurements)
	r.RawMeasurements = make([]float32, numFlows)
	r.NormalizedMeasurements = make([]float32, numFlows)
	r.Prediction = make([]float32, numFlows)
	r.AdditiveCorrection = make([]float32, numFlows)
	r.MultiplicativeCorrection = onesFloat32(numFlows)
	r.Sequence = make([]byte, 0, 2*numFlows)

	var onemerSum, onemerCount float32
	for flow := 0; flow < len(keyFlows); flow++ {
		if keyFlows[flow] == 1 {
			onemerSum += measurements[flow]
			onemerCount++
		}
	}

	r.KeyNormalizer = 1
	if onemerSum != 0 && onemerCount != 0 {
		r.KeyNormalizer = onemerCount / onemerSum
	}

	for flow := 0; flow < numFlows; flow++ {
		r.RawMeasurements[flow] = measurements[flow] * r.KeyNormalizer
		r.NormalizedMeasurements[flow] = r.RawMeasurements[flow]
	}
}
