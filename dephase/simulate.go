package dephase

// Simulate runs the forward model for read.Sequence and writes the
// resulting per-flow signal into read.Prediction. Matches
// DPTreephaser::Simulate.
func (t *Treephaser) Simulate(read *BasecallerRead, maxFlows int) {
	root := t.pool.get(0)
	root.reset(t.NumFlows())

	for _, b := range read.Sequence {
		if root.flow >= maxFlows {
			break
		}
		nuc, ok := nucFromByte(b)
		if !ok {
			panic(PreconditionError{Op: "Simulate", Msg: "sequence byte not in {A,C,G,T}"})
		}
		t.advancer.AdvanceInPlace(root, nuc, t.NumFlows())
	}

	read.Prediction = root.prediction
	root.prediction = make([]float32, t.NumFlows())
}

// QueryState replays read.Sequence like Simulate but stops at the first
// base whose incorporation places it at or past queryFlow. It returns the
// state vector at that point, restricted to
// [window_start, min(window_end, maxFlows)), and the homopolymer length of
// the base occupying queryFlow (0 if the sequence terminates first or
// queryFlow was never the incorporation flow of any base). Matches
// DPTreephaser::QueryState.
func (t *Treephaser) QueryState(read *BasecallerRead, queryFlow, maxFlows int) (state []float32, currentHP int) {
	maxFlows = min(maxFlows, t.NumFlows())
	if queryFlow >= maxFlows {
		panic(PreconditionError{Op: "QueryState", Msg: "query_flow >= max_flows"})
	}

	root := t.pool.get(0)
	root.reset(t.NumFlows())
	state = make([]float32, maxFlows)

	var haveNuc bool
	var queryNuc Nuc

	for _, b := range read.Sequence {
		if root.flow > queryFlow {
			break
		}
		nuc, ok := nucFromByte(b)
		if !ok {
			panic(PreconditionError{Op: "QueryState", Msg: "sequence byte not in {A,C,G,T}"})
		}
		if root.flow == queryFlow && haveNuc && queryNuc != nuc {
			break
		}
		t.advancer.AdvanceInPlace(root, nuc, t.NumFlows())
		if root.flow == queryFlow && !haveNuc {
			haveNuc = true
			queryNuc = nuc
		}
	}

	untilFlow := min(root.windowEnd, maxFlows)
	if root.flow == queryFlow {
		currentHP = root.lastHP
		for f := root.windowStart; f < untilFlow; f++ {
			state[f] = root.state[f]
		}
	} else {
		currentHP = 0
	}
	return state, currentHP
}
