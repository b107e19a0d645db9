package dephase

import "github.com/sirupsen/logrus"

// nucByIndex mirrors the original's static nuc_int_to_char["ACGT"] lookup.
var nucByIndex = [4]Nuc{NucA, NucC, NucG, NucT}

// Solve performs the bounded beam search: a
// tree-search over four-way nucleotide extensions that inverts the phasing
// model, keeping at most kNumPaths candidates alive at any time. On return,
// read.Sequence and read.Prediction hold the best path found. restartFlows,
// if > 0, first replays a seed read.Sequence in place up to that many flows
// before solving the remainder; if the seed is exhausted well short of
// restartFlows the read is judged too short to refine and returned as-is.
func (t *Treephaser) Solve(read *BasecallerRead, maxFlows int, restartFlows int) {
	numFlows := t.NumFlows()
	if maxFlows > numFlows {
		panic(PreconditionError{Op: "Solve", Msg: "max_flows > F"})
	}

	for p := 1; p < kNumPaths; p++ {
		t.pool.get(p).inUse = false
	}

	root := t.pool.get(0)
	root.reset(numFlows)
	root.pathMetric = 0
	root.perFlowMetric = 0
	root.residualLeftOfWindow = 0
	root.dotCounter = 0
	root.inUse = true

	spaceOnStack := kNumPaths - 1
	sumOfSquaresUpperBound := float32(upperBoundSentinel)

	if restartFlows > 0 {
		restartFlows = min(restartFlows, numFlows)

		seed := read.Sequence
		for _, b := range seed {
			if root.flow >= restartFlows {
				break
			}
			nuc, ok := nucFromByte(b)
			if !ok {
				panic(PreconditionError{Op: "Solve", Msg: "seed sequence byte not in {A,C,G,T}"})
			}
			t.advancer.AdvanceInPlace(root, nuc, numFlows)
			root.sequence = append(root.sequence, b)
		}

		if root.flow < restartFlows-shortReadCutoff {
			// The seed ended well before restartFlows: not worth resolving.
			read.Prediction = root.prediction
			root.prediction = make([]float32, numFlows)
			return
		}

		for flow := 0; flow < root.windowStart; flow++ {
			residual := read.NormalizedMeasurements[flow] - root.prediction[flow]
			root.residualLeftOfWindow += residual * residual
		}
	}

	read.Sequence = read.Sequence[:0]
	read.Prediction = make([]float32, numFlows)

	var penalty [4]float32
	var children [4]*TreephaserPath

	for {
		// Step 1: prune.
		if spaceOnStack < kNumPaths-3 {
			longestFlow := 0
			for p := 0; p < kNumPaths; p++ {
				if t.pool.get(p).inUse {
					longestFlow = max(longestFlow, t.pool.get(p).flow)
				}
			}
			if longestFlow > kMaxPathDelay {
				for p := 0; p < kNumPaths; p++ {
					path := t.pool.get(p)
					if path.inUse && path.flow < longestFlow-kMaxPathDelay {
						path.inUse = false
						spaceOnStack++
					}
				}
			}
		}

		for spaceOnStack < 4 {
			maxPerFlowMetric := float32(-0.1)
			victim := -1
			for p := 0; p < kNumPaths; p++ {
				path := t.pool.get(p)
				if path.inUse && path.perFlowMetric > maxPerFlowMetric {
					maxPerFlowMetric = path.perFlowMetric
					victim = p
				}
			}
			if victim < 0 {
				panic(PreconditionError{Op: "Solve", Msg: "no victim path found to evict"})
			}
			t.pool.get(victim).inUse = false
			spaceOnStack++
		}

		// Step 2: select parent.
		var parent *TreephaserPath
		minPathMetric := float32(1000)
		for p := 0; p < kNumPaths; p++ {
			path := t.pool.get(p)
			if path.inUse && path.pathMetric < minPathMetric {
				minPathMetric = path.pathMetric
				parent = path
			}
		}
		if parent == nil {
			break
		}

		// Step 3: expand into the four free slots.
		for nuc, p := 0, 0; nuc < 4; p++ {
			if !t.pool.get(p).inUse {
				children[nuc] = t.pool.get(p)
				nuc++
			}
		}

		for nuc := 0; nuc < 4; nuc++ {
			child := children[nuc]
			t.advancer.Advance(parent, child, nucByIndex[nuc], maxFlows)

			if child.flow >= maxFlows || child.lastHP > kMaxHP || len(parent.sequence) >= 2*numFlows-sequenceLengthSlack {
				penalty[nuc] = deletionSentinel
				continue
			}

			child.pathMetric = parent.residualLeftOfWindow
			child.residualLeftOfWindow = parent.residualLeftOfWindow

			var penaltyN, penalty1 float32
			for flow := parent.windowStart; flow < child.windowEnd; flow++ {
				residual := read.NormalizedMeasurements[flow] - child.prediction[flow]
				residualSquared := residual * residual

				if flow < child.windowStart {
					child.residualLeftOfWindow += residualSquared
					child.pathMetric += residualSquared
				} else if residual <= 0 {
					child.pathMetric += residualSquared
				}

				if residual <= 0 {
					penaltyN += residualSquared
				} else if flow < child.flow {
					penalty1 += residualSquared
				}
			}

			penalty[nuc] = penalty1 + kNegativeMultiplier*penaltyN
			penalty1 += penaltyN

			if child.flow > 0 {
				child.perFlowMetric = (child.pathMetric + 0.5*penalty1) / float32(child.flow)
			}
		}

		bestNuc := 0
		for nuc := 1; nuc < 4; nuc++ {
			if penalty[nuc] < penalty[bestNuc] {
				bestNuc = nuc
			}
		}

		// Step 4: keep surviving children.
		for nuc := 0; nuc < 4; nuc++ {
			child := children[nuc]

			if penalty[nuc] >= keepThreshold {
				continue
			}
			if child.pathMetric > sumOfSquaresUpperBound {
				continue
			}
			if penalty[nuc]-penalty[bestNuc] >= kExtendThreshold {
				continue
			}

			dotSignal := (read.NormalizedMeasurements[child.flow] - parent.prediction[child.flow]) / child.state[child.flow]
			if dotSignal < kDotThreshold {
				child.dotCounter = parent.dotCounter + 1
			} else {
				child.dotCounter = 0
			}
			if child.dotCounter > 1 {
				continue
			}

			child.inUse = true
			spaceOnStack--

			copy(child.prediction[:parent.windowStart], parent.prediction[:parent.windowStart])
			for flow := child.windowEnd; flow < maxFlows; flow++ {
				child.prediction[flow] = 0
			}

			child.sequence = append(child.sequence[:0], parent.sequence...)
			child.sequence = append(child.sequence, nucByIndex[nuc].Byte())
		}

		// Step 5: accept parent as best-so-far if it improves the bound.
		sumOfSquares := parent.residualLeftOfWindow
		for flow := parent.windowStart; flow < maxFlows; flow++ {
			residual := read.NormalizedMeasurements[flow] - parent.prediction[flow]
			sumOfSquares += residual * residual
		}

		if sumOfSquares < sumOfSquaresUpperBound {
			read.Prediction, parent.prediction = parent.prediction, read.Prediction
			read.Sequence, parent.sequence = parent.sequence, read.Sequence
			sumOfSquaresUpperBound = sumOfSquares
		}

		logrus.Debugf("solve: parent.flow=%d active_paths=%d upper_bound=%g", parent.flow, kNumPaths-spaceOnStack, sumOfSquaresUpperBound)

		parent.inUse = false
		spaceOnStack++
	}
}

// NormalizeAndSolve3 is the adaptive windowed normalization without
// restart: the default variant. It solves a flow frontier that grows by
// windowSize flows per step, renormalizing after each solve, then does a final
// full solve. Matches DPTreephaser::NormalizeAndSolve3.
func (t *Treephaser) NormalizeAndSolve3(read *BasecallerRead, maxFlows int) {
	windowSize := defaultWindowSize
	solveFlows := 0

	for numSteps := 1; solveFlows < maxFlows; numSteps++ {
		solveFlows = min((numSteps+1)*windowSize, maxFlows)
		t.Solve(read, solveFlows, 0)
		t.WindowedNormalize(read, numSteps, windowSize)
	}

	t.Solve(read, maxFlows, 0)
}

// NormalizeAndSolve5 is the adaptive windowed normalization with restart:
// each step reuses the prior solve's first (solveFlows-100) flows instead
// of resolving them from scratch. Matches DPTreephaser::NormalizeAndSolve5.
func (t *Treephaser) NormalizeAndSolve5(read *BasecallerRead, maxFlows int) {
	windowSize := defaultWindowSize
	solveFlows := 0

	for numSteps := 1; solveFlows < maxFlows; numSteps++ {
		solveFlows = min((numSteps+1)*windowSize, maxFlows)
		restartFlows := max(solveFlows-step1RestartLookback, 0)

		t.Solve(read, solveFlows, restartFlows)
		t.WindowedNormalize(read, numSteps, windowSize)
	}

	t.Solve(read, maxFlows, 0)
}

// NormalizeAndSolve4 is the legacy seven-iteration simple-ratio
// normalization, kept for parity with older basecaller releases. Matches
// DPTreephaser::NormalizeAndSolve4.
func (t *Treephaser) NormalizeAndSolve4(read *BasecallerRead, maxFlows int) {
	for iter := 0; iter < legacyIterations; iter++ {
		solveFlow := legacyFlowBase + legacyFlowStep*iter
		if solveFlow < maxFlows {
			t.Solve(read, solveFlow, 0)
			t.Normalize(read, legacyNormalizeWidth, solveFlow-legacyFlowStep)
		}
	}
	t.Solve(read, maxFlows, 0)
}

// NormalizeAndSolveVariant selects among the three documented
// NormalizeAndSolve strategies.
type NormalizeAndSolveVariant int

const (
	// VariantWindowed is NormalizeAndSolve3: adaptive windowed, no restart.
	// This is the default, per the Open Question decision in DESIGN.md.
	VariantWindowed NormalizeAndSolveVariant = iota
	// VariantWindowedRestart is NormalizeAndSolve5: adaptive windowed, with
	// restart.
	VariantWindowedRestart
	// VariantLegacy is NormalizeAndSolve4: the legacy seven-iteration
	// simple-ratio normalization.
	VariantLegacy
)

// NormalizeAndSolve is the canonical public entry point. It
// dispatches to one of the three documented variants, defaulting to
// VariantWindowed.
func (t *Treephaser) NormalizeAndSolve(read *BasecallerRead, maxFlows int, variant NormalizeAndSolveVariant) {
	switch variant {
	case VariantWindowedRestart:
		t.NormalizeAndSolve5(read, maxFlows)
	case VariantLegacy:
		t.NormalizeAndSolve4(read, maxFlows)
	default:
		t.NormalizeAndSolve3(read, maxFlows)
	}
}
