// cmd/solve.go
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restartFlows int

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the low-level bounded beam search solver once, without normalization",
	Run: func(cmd *cobra.Command, args []string) {
		requireTraceFile()
		wt, err := readWellTrace(traceFile)
		if err != nil {
			logrus.Fatal(err)
		}

		t, read, numFlows := newTreephaserFromTrace(wt, float32(cf), float32(ie), float32(dr))
		flows := resolvedMaxFlows(numFlows)

		t.Solve(read, flows, restartFlows)

		if err := writeBasecallResult(read); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	solveCmd.Flags().IntVar(&restartFlows, "restart-flows", 0, "Replay a seed sequence in place up to this many flows before solving")
}
