package dephase

// Nuc identifies one of the four nucleotides by the small integer index
// used to index PhasingModel's coefficient rows and TreephaserPath.state.
type Nuc int

const (
	NucA Nuc = iota
	NucC
	NucG
	NucT
)

var nucSymbols = [4]byte{'A', 'C', 'G', 'T'}

// Byte returns the ASCII base-call symbol for n.
func (n Nuc) Byte() byte { return nucSymbols[n&3] }

func (n Nuc) String() string { return string(n.Byte()) }

// nucFromByte maps a sequence symbol to its Nuc index. Returns (0, false)
// for anything outside {A,C,G,T}.
func nucFromByte(b byte) (Nuc, bool) {
	switch b {
	case 'A':
		return NucA, true
	case 'C':
		return NucC, true
	case 'G':
		return NucG, true
	case 'T':
		return NucT, true
	default:
		return 0, false
	}
}

// FlowOrder is the immutable cyclic schedule of which nucleotide reagent is
// presented at each flow. Length is fixed at construction.
type FlowOrder struct {
	nucs []Nuc
}

// NewFlowOrder builds a FlowOrder of the given number of flows by repeating
// cycle (e.g. "TACG") as many times as needed. Any byte in cycle outside
// {A,C,G,T} is a structural precondition violation.
func NewFlowOrder(cycle string, numFlows int) FlowOrder {
	if len(cycle) == 0 {
		panic(PreconditionError{Op: "NewFlowOrder", Msg: "empty cycle"})
	}
	nucs := make([]Nuc, numFlows)
	for f := 0; f < numFlows; f++ {
		n, ok := nucFromByte(cycle[f%len(cycle)])
		if !ok {
			panic(PreconditionError{Op: "NewFlowOrder", Msg: "cycle byte not in {A,C,G,T}"})
		}
		nucs[f] = n
	}
	return FlowOrder{nucs: nucs}
}

// NumFlows returns F, the number of flows this FlowOrder spans.
func (fo FlowOrder) NumFlows() int { return len(fo.nucs) }

// Symbol returns the nucleotide cycled at flow.
func (fo FlowOrder) Symbol(flow int) Nuc { return fo.nucs[flow] }

// String reconstructs the full per-flow nucleotide string.
func (fo FlowOrder) String() string {
	b := make([]byte, len(fo.nucs))
	for i, n := range fo.nucs {
		b[i] = n.Byte()
	}
	return string(b)
}
