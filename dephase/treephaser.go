package dephase

// Treephaser is the external interface of the core: a solver
// object bound to a flow order, owning a PhasingModel and a fixed
// kNumPaths-slot path pool. It is strictly single-threaded per read and
// holds no other state; reuse a single instance across wells by calling its
// methods sequentially, or construct one instance per goroutine.
type Treephaser struct {
	flowOrder FlowOrder
	model     *PhasingModel
	advancer  PathAdvancer
	pool      *pathPool
}

// NewTreephaser constructs a solver bound to flowOrder, with an all-zero
// error model (call SetModelParameters before solving real data).
func NewTreephaser(flowOrder FlowOrder) *Treephaser {
	model := NewPhasingModel(flowOrder)
	return &Treephaser{
		flowOrder: flowOrder,
		model:     model,
		advancer:  newPathAdvancer(model),
		pool:      newPathPool(flowOrder.NumFlows()),
	}
}

// SetModelParameters recomputes the coefficient matrices for (cf, ie, dr).
func (t *Treephaser) SetModelParameters(cf, ie, dr float32) {
	t.model.SetModelParameters(cf, ie, dr)
}

// NumFlows returns F.
func (t *Treephaser) NumFlows() int { return t.flowOrder.NumFlows() }
