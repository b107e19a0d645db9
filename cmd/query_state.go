// cmd/query_state.go
package cmd

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var queryFlow int

var queryStateCmd = &cobra.Command{
	Use:   "query-state",
	Short: "Report the live-polymerase state vector and homopolymer length at a given flow",
	Run: func(cmd *cobra.Command, args []string) {
		requireTraceFile()
		wt, err := readWellTrace(traceFile)
		if err != nil {
			logrus.Fatal(err)
		}

		t, read, numFlows := newTreephaserFromTrace(wt, float32(cf), float32(ie), float32(dr))
		flows := resolvedMaxFlows(numFlows)

		state, currentHP := t.QueryState(read, queryFlow, flows)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]interface{}{
			"state":      state,
			"current_hp": currentHP,
		}); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	queryStateCmd.Flags().IntVar(&queryFlow, "query-flow", 0, "Flow to query the live state at")
}
