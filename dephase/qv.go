package dephase

// ComputeQVMetrics replays read.Sequence along a single active path while
// keeping four sibling children per incorporating flow for counterfactual
// penalty comparison, filling in read.StateInphase, read.StateTotal,
// read.PenaltyMismatch, and read.PenaltyResidual. Matches
// DPTreephaser::ComputeQVmetrics.
func (t *Treephaser) ComputeQVMetrics(read *BasecallerRead) {
	numFlows := t.NumFlows()

	read.StateInphase = onesFloat32(numFlows)
	read.StateTotal = onesFloat32(numFlows)

	if len(read.Sequence) == 0 {
		return
	}

	read.PenaltyMismatch = make([]float32, len(read.Sequence))
	read.PenaltyResidual = make([]float32, len(read.Sequence))

	parent := t.pool.get(0)
	children := [4]*TreephaserPath{t.pool.get(1), t.pool.get(2), t.pool.get(3), t.pool.get(4)}

	parent.reset(numFlows)

	recentStateInphase := float32(1)
	recentStateTotal := float32(1)

	base := 0
	for solutionFlow := 0; solutionFlow < numFlows; solutionFlow++ {
		for base < len(read.Sequence) && read.Sequence[base] == t.flowOrder.Symbol(solutionFlow).Byte() {
			var penalty [4]float32
			calledNuc := 0

			for nuc := 0; nuc < 4; nuc++ {
				child := children[nuc]
				t.advancer.Advance(parent, child, nucByIndex[nuc], numFlows)

				if nucByIndex[nuc].Byte() == t.flowOrder.Symbol(solutionFlow).Byte() {
					calledNuc = nuc
				}

				if child.flow >= numFlows || parent.lastHP >= kMaxHP || len(parent.sequence) >= 2*numFlows-sequenceLengthSlack {
					penalty[nuc] = deletionSentinel
					continue
				}

				for flow := parent.windowStart; flow < child.windowEnd; flow++ {
					residual := read.NormalizedMeasurements[flow] - child.prediction[flow]
					if residual <= 0 || flow < child.flow {
						penalty[nuc] += residual * residual
					}
				}
			}

			called := children[calledNuc]

			recentStateInphase = called.state[solutionFlow]
			recentStateTotal = 0
			for flow := called.windowStart; flow < called.windowEnd; flow++ {
				recentStateTotal += called.state[flow]
			}

			read.PenaltyMismatch[base] = -1
			read.PenaltyResidual[base] = 0

			if solutionFlow-parent.windowStart > 0 {
				read.PenaltyResidual[base] = penalty[calledNuc] / float32(solutionFlow-parent.windowStart)
			}

			for nuc := 0; nuc < 4; nuc++ {
				if nuc == calledNuc {
					continue
				}
				mismatch := penalty[calledNuc] - penalty[nuc]
				if mismatch > read.PenaltyMismatch[base] {
					read.PenaltyMismatch[base] = mismatch
				}
			}

			for flow := 0; flow < parent.windowStart; flow++ {
				called.prediction[flow] = parent.prediction[flow]
			}
			for flow := called.windowEnd; flow < numFlows; flow++ {
				called.prediction[flow] = 0
			}

			parent, children[calledNuc] = called, parent
			base++
		}

		read.StateInphase[solutionFlow] = max(recentStateInphase, 0.01)
		read.StateTotal[solutionFlow] = max(recentStateTotal, 0.01)
	}

	read.Prediction = parent.prediction
	parent.prediction = make([]float32, numFlows)
}
