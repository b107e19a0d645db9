package dephase

// PhasingModel holds the per-flow, per-nucleotide transition coefficients
// derived from the three-parameter (carry-forward, incomplete-extension,
// droop) error model. Both matrices are [4][F] and satisfy
// base[n][f] + flow[n][f] <= 1 elementwise.
type PhasingModel struct {
	flowOrder FlowOrder
	base      [4][]float32 // probability mass incorporating on a match
	flow      [4][]float32 // probability mass surviving to the next flow
}

// NewPhasingModel allocates coefficient matrices sized to flowOrder and
// populates them for the all-zero error model (cf=ie=dr=0). Call
// SetModelParameters to install real rates.
func NewPhasingModel(flowOrder FlowOrder) *PhasingModel {
	m := &PhasingModel{flowOrder: flowOrder}
	for n := 0; n < 4; n++ {
		m.base[n] = make([]float32, flowOrder.NumFlows())
		m.flow[n] = make([]float32, flowOrder.NumFlows())
	}
	m.SetModelParameters(0, 0, 0)
	return m
}

// SetModelParameters recomputes base and flow from the scalar error rates,
// a forward sweep over flows maintaining a per-nucleotide
// "availability" that resets to 1 on its own flow and decays by cf
// otherwise.
func (m *PhasingModel) SetModelParameters(cf, ie, dr float32) {
	var avail [4]float32
	numFlows := m.flowOrder.NumFlows()
	for f := 0; f < numFlows; f++ {
		avail[m.flowOrder.Symbol(f)] = 1
		for n := 0; n < 4; n++ {
			m.base[n][f] = avail[n] * (1 - dr) * (1 - ie)
			m.flow[n][f] = (1 - avail[n]) + avail[n]*(1-dr)*ie
			avail[n] *= cf
		}
	}
}

// Base returns base[n][f].
func (m *PhasingModel) Base(n Nuc, f int) float32 { return m.base[n][f] }

// Flow returns flow[n][f].
func (m *PhasingModel) Flow(n Nuc, f int) float32 { return m.flow[n][f] }

// FlowOrder returns the flow order this model was built for.
func (m *PhasingModel) FlowOrder() FlowOrder { return m.flowOrder }
