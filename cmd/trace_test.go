package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWellTraceRoundTrip(t *testing.T) {
	wt := WellTrace{
		FlowOrder:    "TACG",
		Measurements: []float32{1, 1, 1, 1},
		KeyFlows:     []int{0, 1, 0, 0},
		Sequence:     "TACG",
	}

	data, err := json.Marshal(wt)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := readWellTrace(path)
	require.NoError(t, err)
	require.Equal(t, wt, got)
}

func TestReadWellTraceMissingFile(t *testing.T) {
	_, err := readWellTrace(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
}

func TestNewTreephaserFromTrace(t *testing.T) {
	wt := WellTrace{
		FlowOrder:    "TACG",
		Measurements: []float32{1, 1, 1, 1, 0, 0, 0, 0},
	}

	tp, read, numFlows := newTreephaserFromTrace(wt, 0, 0, 0)
	require.Equal(t, 8, numFlows)
	require.Equal(t, 8, tp.NumFlows())
	require.Len(t, read.NormalizedMeasurements, 8)
}
