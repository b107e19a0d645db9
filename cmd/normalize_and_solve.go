// cmd/normalize_and_solve.go
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iontreephaser/dephase/dephase"
)

var variantFlag string

var normalizeAndSolveCmd = &cobra.Command{
	Use:   "normalize-and-solve",
	Short: "Run the canonical interleaved normalize+solve entry point",
	Run: func(cmd *cobra.Command, args []string) {
		requireTraceFile()
		wt, err := readWellTrace(traceFile)
		if err != nil {
			logrus.Fatal(err)
		}

		variant, err := parseVariant(variantFlag)
		if err != nil {
			logrus.Fatal(err)
		}

		t, read, numFlows := newTreephaserFromTrace(wt, float32(cf), float32(ie), float32(dr))
		flows := resolvedMaxFlows(numFlows)

		t.NormalizeAndSolve(read, flows, variant)
		t.ComputeQVMetrics(read)

		if err := writeBasecallResult(read); err != nil {
			logrus.Fatal(err)
		}
	},
}

func parseVariant(s string) (dephase.NormalizeAndSolveVariant, error) {
	switch s {
	case "", "windowed":
		return dephase.VariantWindowed, nil
	case "windowed-restart":
		return dephase.VariantWindowedRestart, nil
	case "legacy":
		return dephase.VariantLegacy, nil
	default:
		return 0, errInvalidVariant(s)
	}
}

type errInvalidVariant string

func (e errInvalidVariant) Error() string {
	return "invalid --variant " + string(e) + " (want windowed, windowed-restart, or legacy)"
}

func init() {
	normalizeAndSolveCmd.Flags().StringVar(&variantFlag, "variant", "windowed", "Normalization variant: windowed, windowed-restart, or legacy")
}
