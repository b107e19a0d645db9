package dephase

// PathAdvancer extends a TreephaserPath by one base incorporation under a
// PhasingModel. It is the deterministic forward step shared by Simulate,
// QueryState, Solve, and ComputeQVMetrics.
type PathAdvancer struct {
	model *PhasingModel
}

func newPathAdvancer(model *PhasingModel) PathAdvancer {
	return PathAdvancer{model: model}
}

// Advance extends parent by one incorporation of nuc, writing into child.
// child must not alias parent; use AdvanceInPlace for the in-place variant.
// Matches DPTreephaser::AdvanceState.
func (a PathAdvancer) Advance(parent, child *TreephaserPath, nuc Nuc, maxFlow int) {
	if child == parent {
		panic(PreconditionError{Op: "Advance", Msg: "child must not alias parent; use AdvanceInPlace"})
	}

	// Advance in-phase flow to the next occurrence of nuc.
	child.flow = parent.flow
	for child.flow < maxFlow && a.model.flowOrder.Symbol(child.flow) != nuc {
		child.flow++
	}
	if child.flow == parent.flow {
		child.lastHP = parent.lastHP + 1
	} else {
		child.lastHP = 1
	}

	child.windowStart = parent.windowStart
	child.windowEnd = parent.windowEnd

	if parent.flow != child.flow || parent.flow == 0 {
		// This nuc begins a new homopolymer: recompute the state window.
		var alive float32
		base := a.model.base[nuc]
		flowCoef := a.model.flow[nuc]
		for f := parent.windowStart; f < child.windowEnd; f++ {
			if f < parent.windowEnd {
				alive += parent.state[f]
			}
			child.state[f] = alive * base[f]
			alive *= flowCoef[f]

			if f == child.windowStart && child.state[f] < kStateWindowCutoff {
				child.windowStart++
			}
			if f == child.windowEnd-1 && child.windowEnd < maxFlow && alive > kStateWindowCutoff {
				child.windowEnd++
			}
		}
	} else {
		// Pure homopolymer extension: state is unchanged.
		copy(child.state[child.windowStart:child.windowEnd], parent.state[child.windowStart:child.windowEnd])
	}

	for f := parent.windowStart; f < parent.windowEnd; f++ {
		child.prediction[f] = parent.prediction[f] + child.state[f]
	}
	for f := parent.windowEnd; f < child.windowEnd; f++ {
		child.prediction[f] = child.state[f]
	}
}

// AdvanceInPlace extends state by one incorporation of nuc, mutating it in
// place. Matches DPTreephaser::AdvanceStateInPlace.
func (a PathAdvancer) AdvanceInPlace(state *TreephaserPath, nuc Nuc, maxFlow int) {
	oldFlow := state.flow
	oldWindowStart := state.windowStart
	oldWindowEnd := state.windowEnd

	for state.flow < maxFlow && a.model.flowOrder.Symbol(state.flow) != nuc {
		state.flow++
	}
	if oldFlow == state.flow {
		state.lastHP++
	} else {
		state.lastHP = 1
	}

	if oldFlow != state.flow || oldFlow == 0 {
		var alive float32
		base := a.model.base[nuc]
		flowCoef := a.model.flow[nuc]
		for f := oldWindowStart; f < state.windowEnd; f++ {
			if f < oldWindowEnd {
				alive += state.state[f]
			}
			state.state[f] = alive * base[f]
			alive *= flowCoef[f]

			if f == state.windowStart && state.state[f] < kStateWindowCutoff {
				state.windowStart++
			}
			if f == state.windowEnd-1 && state.windowEnd < maxFlow && alive > kStateWindowCutoff {
				state.windowEnd++
			}
		}
	}

	for f := state.windowStart; f < state.windowEnd; f++ {
		state.prediction[f] += state.state[f]
	}
}
