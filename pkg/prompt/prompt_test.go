package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"radeval/pkg/report"
)

func TestBuildSubstitutesSections(t *testing.T) {
	sections := report.Sections{
		Examination:     "XR Left Knee",
		ClinicalDetails: "14 month old with swelling",
		Comparison:      "None",
		Findings:        "Small joint effusion",
	}

	for _, version := range Versions() {
		out, err := Build(version, sections)
		require.NoError(t, err, string(version))
		require.Contains(t, out, "XR Left Knee")
		require.Contains(t, out, "14 month old with swelling")
		require.Contains(t, out, "Small joint effusion")
		require.NotContains(t, out, "{{")
	}
}

func TestBuildEmptySections(t *testing.T) {
	out, err := Build(V1Current, report.Sections{})
	require.NoError(t, err)
	require.Contains(t, out, "EXAMINATION: \n")
	require.NotContains(t, out, "{{")
}

func TestBuildUnknownVersion(t *testing.T) {
	_, err := Build(Version("v9_unknown"), report.Sections{})
	require.Error(t, err)
}

func TestBuildRequestsFourNumberedOutputs(t *testing.T) {
	out, err := Build(V1Current, report.Sections{})
	require.NoError(t, err)
	for _, marker := range []string{"1.", "2.", "3.", "4."} {
		require.True(t, strings.Contains(out, marker), marker)
	}
}
