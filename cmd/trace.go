// cmd/trace.go
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iontreephaser/dephase/dephase"
)

// WellTrace is the file-based stand-in for a single well's collaborator
// inputs: a flow order, a raw per-flow measurement vector, the key flows
// used for key normalization, and an optional seed/reference sequence.
// dephase itself never reads or writes this type; it lives here purely as
// the CLI's I/O adapter.
type WellTrace struct {
	FlowOrder    string    `json:"flow_order"`
	Measurements []float32 `json:"measurements"`
	KeyFlows     []int     `json:"key_flows,omitempty"`
	Sequence     string    `json:"sequence,omitempty"`
}

// BasecallResult is the CLI's JSON output adapter for a solved read.
type BasecallResult struct {
	Sequence                 string    `json:"sequence"`
	Prediction               []float32 `json:"prediction"`
	AdditiveCorrection       []float32 `json:"additive_correction,omitempty"`
	MultiplicativeCorrection []float32 `json:"multiplicative_correction,omitempty"`
	StateInphase             []float32 `json:"state_inphase,omitempty"`
	StateTotal               []float32 `json:"state_total,omitempty"`
	PenaltyMismatch          []float32 `json:"penalty_mismatch,omitempty"`
	PenaltyResidual          []float32 `json:"penalty_residual,omitempty"`
}

func readWellTrace(path string) (WellTrace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WellTrace{}, fmt.Errorf("reading trace file %s: %w", path, err)
	}
	var wt WellTrace
	if err := json.Unmarshal(data, &wt); err != nil {
		return WellTrace{}, fmt.Errorf("parsing trace file %s: %w", path, err)
	}
	return wt, nil
}

func writeBasecallResult(read *dephase.BasecallerRead) error {
	result := BasecallResult{
		Sequence:                 string(read.Sequence),
		Prediction:               read.Prediction,
		AdditiveCorrection:       read.AdditiveCorrection,
		MultiplicativeCorrection: read.MultiplicativeCorrection,
		StateInphase:             read.StateInphase,
		StateTotal:               read.StateTotal,
		PenaltyMismatch:          read.PenaltyMismatch,
		PenaltyResidual:          read.PenaltyResidual,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// newTreephaserFromTrace builds a Treephaser and a BasecallerRead from a
// WellTrace, applying (cf, ie, dr) and key normalization.
func newTreephaserFromTrace(wt WellTrace, cf, ie, dr float32) (*dephase.Treephaser, *dephase.BasecallerRead, int) {
	numFlows := len(wt.Measurements)
	flowOrder := dephase.NewFlowOrder(wt.FlowOrder, numFlows)

	t := dephase.NewTreephaser(flowOrder)
	t.SetModelParameters(cf, ie, dr)

	read := dephase.NewBasecallerRead(numFlows)
	read.SetDataAndKeyNormalize(wt.Measurements, wt.KeyFlows)
	read.Sequence = []byte(wt.Sequence)

	return t, read, numFlows
}
