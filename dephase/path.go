package dephase

// kNumPaths is the fixed size of the solver's candidate-path pool.
const kNumPaths = 8

// kMaxHP is the longest homopolymer run the solver will emit.
const kMaxHP = 11

// kStateWindowCutoff is the live-polymerase-mass threshold below which a
// flow is dropped from the state window.
const kStateWindowCutoff = 1e-6

// TreephaserPath is a candidate partial solution explored by the solver's
// beam search. Only state[window_start:window_end] is meaningful; the rest
// is implicitly zero and must never be read or cleared.
type TreephaserPath struct {
	flow int // current in-phase flow index

	state       []float32 // per-flow live polymerase fraction
	windowStart int
	windowEnd   int // [windowStart, windowEnd) is the live window

	prediction []float32 // cumulative predicted signal so far

	sequence []byte // called base symbols along this path
	lastHP   int    // length of the trailing homopolymer run

	pathMetric           float32 // cumulative residual cost
	residualLeftOfWindow float32 // frozen residual for flows < windowStart
	perFlowMetric        float32 // pathMetric averaged per flow
	dotCounter           int     // consecutive weak-signal incorporations

	inUse bool
}

// newTreephaserPath allocates a path's fixed-size buffers for a FlowOrder of
// the given length. Allocation happens once, at pool construction; Solve
// never grows these slices.
func newTreephaserPath(numFlows int) *TreephaserPath {
	p := &TreephaserPath{
		state:      make([]float32, numFlows),
		prediction: make([]float32, numFlows),
	}
	p.sequence = make([]byte, 0, 2*numFlows)
	return p
}

// reset re-initializes p to the root of the search tree: flow 0, a single
// unit of live polymerase mass at flow 0, an empty window [0,1), and an
// empty sequence. Matches DPTreephaser::InitializeState.
func (p *TreephaserPath) reset(numFlows int) {
	p.flow = 0
	p.state[0] = 1
	p.windowStart = 0
	p.windowEnd = 1
	for i := range p.prediction {
		p.prediction[i] = 0
	}
	p.sequence = p.sequence[:0]
	p.lastHP = 0
}

// pathPool is the fixed kNumPaths-slot arena the solver allocates once per
// Treephaser and reuses across every Solve call. It never grows.
type pathPool struct {
	paths [kNumPaths]*TreephaserPath
}

func newPathPool(numFlows int) *pathPool {
	pp := &pathPool{}
	for i := range pp.paths {
		pp.paths[i] = newTreephaserPath(numFlows)
	}
	return pp
}

func (pp *pathPool) get(i int) *TreephaserPath { return pp.paths[i] }
