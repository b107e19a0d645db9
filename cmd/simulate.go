// cmd/simulate.go
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the forward phasing model for a seed sequence and print the predicted trace",
	Run: func(cmd *cobra.Command, args []string) {
		requireTraceFile()
		wt, err := readWellTrace(traceFile)
		if err != nil {
			logrus.Fatal(err)
		}

		t, read, numFlows := newTreephaserFromTrace(wt, float32(cf), float32(ie), float32(dr))
		flows := resolvedMaxFlows(numFlows)

		t.Simulate(read, flows)

		if err := writeBasecallResult(read); err != nil {
			logrus.Fatal(err)
		}
	},
}
