// Package testutil provides shared test infrastructure for the dephase
// solver. It consolidates golden-dataset types and float-tolerance
// assertion helpers for the dephase test package.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// GoldenDataset is the structure of testdata/golden.json.
type GoldenDataset struct {
	Cases []GoldenCase `json:"cases"`
}

// GoldenCase is a single recorded (input, expected-output) pair for the
// solver: a flow order, error-model rates, an input measurement vector, the
// sequence the solver is expected to recover, and the max-flows bound to
// solve to.
type GoldenCase struct {
	Name             string    `json:"name"`
	FlowOrderCycle   string    `json:"flow_order_cycle"`
	NumFlows         int       `json:"num_flows"`
	CF               float64   `json:"cf"`
	IE               float64   `json:"ie"`
	DR               float64   `json:"dr"`
	Measurements     []float64 `json:"measurements"`
	KeyFlows         []int     `json:"key_flows"`
	ExpectedSequence string    `json:"expected_sequence"`
	ExpectedMaxFlows int       `json:"expected_max_flows"`
}

// LoadGoldenDataset reads a golden dataset relative to the calling test
// file's package directory (so tests work regardless of the working
// directory `go test` is invoked from).
func LoadGoldenDataset(t *testing.T, relPath string) GoldenDataset {
	t.Helper()

	_, callerFile, _, ok := runtime.Caller(1)
	require.True(t, ok, "could not determine caller for golden dataset path resolution")

	data, err := os.ReadFile(filepath.Join(filepath.Dir(callerFile), relPath))
	require.NoError(t, err, "reading golden dataset %s", relPath)

	var ds GoldenDataset
	require.NoError(t, json.Unmarshal(data, &ds), "parsing golden dataset %s", relPath)
	return ds
}

// RequireWithinTolerance asserts that want and got agree within abs tolerance,
// reporting both values and the element index on failure.
func RequireWithinTolerance(t *testing.T, want, got []float32, tolerance float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, len(want), len(got), "length mismatch")
	for i := range want {
		diff := math.Abs(float64(want[i] - got[i]))
		require.LessOrEqualf(t, diff, tolerance, "index %d: want %v got %v (%v)", i, want[i], got[i], msgAndArgs)
	}
}
