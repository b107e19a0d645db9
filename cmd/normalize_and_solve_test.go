package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iontreephaser/dephase/dephase"
)

func TestParseVariant(t *testing.T) {
	cases := map[string]dephase.NormalizeAndSolveVariant{
		"":                 dephase.VariantWindowed,
		"windowed":         dephase.VariantWindowed,
		"windowed-restart": dephase.VariantWindowedRestart,
		"legacy":           dephase.VariantLegacy,
	}

	for input, want := range cases {
		got, err := parseVariant(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseVariantRejectsUnknown(t *testing.T) {
	_, err := parseVariant("bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus")
}
