package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const fullReport = `EXAMINATION: XR Left Knee
CLINICAL DETAILS: 14 month old with hx of septic arthritis.
Swelling and tenderness after finishing PO abx.
COMPARISON: XR Left Knee 2 weeks prior.
FINDINGS: Small knee joint effusion, improved since previous x-ray.
No fractures identified.
CONCLUSION: Improving effusion. No acute osseous abnormality.
REPORTED BY: Dr Smith`

func TestExtractAllSections(t *testing.T) {
	sections := Extract(fullReport)

	require.Equal(t, "XR Left Knee", sections.Examination)
	require.Equal(t, "14 month old with hx of septic arthritis.\nSwelling and tenderness after finishing PO abx.", sections.ClinicalDetails)
	require.Equal(t, "XR Left Knee 2 weeks prior.", sections.Comparison)
	require.Equal(t, "Small knee joint effusion, improved since previous x-ray.\nNo fractures identified.", sections.Findings)
	require.Equal(t, "Improving effusion. No acute osseous abnormality.", sections.Conclusion)
}

func TestExtractCaseInsensitiveLabels(t *testing.T) {
	sections := Extract("examination: US Hip\nfindings: Normal hip joint.\nimpression: Normal study.")

	require.Equal(t, "US Hip", sections.Examination)
	require.Equal(t, "Normal hip joint.", sections.Findings)
	require.Equal(t, "Normal study.", sections.Conclusion)
}

func TestExtractReportLabelAsFindings(t *testing.T) {
	sections := Extract("REPORT: Soft tissue swelling around the ankle.\nIMPRESSION: Likely cellulitis.")

	require.Equal(t, "Soft tissue swelling around the ankle.", sections.Findings)
	require.Equal(t, "Likely cellulitis.", sections.Conclusion)
}

func TestExtractMissingLabelsYieldEmpty(t *testing.T) {
	sections := Extract("FINDINGS: Joint effusion present.")

	require.Empty(t, sections.Examination)
	require.Empty(t, sections.ClinicalDetails)
	require.Empty(t, sections.Comparison)
	require.Empty(t, sections.Conclusion)
	require.Equal(t, "Joint effusion present.", sections.Findings)
}

func TestExtractUnrecognizedFormat(t *testing.T) {
	sections := Extract("free text with no recognized headings at all")
	require.Equal(t, Sections{}, sections)
}

func TestExtractTerminatorPrecedence(t *testing.T) {
	// Examination stops at the first recognized boundary even when a later
	// one is also present.
	text := "EXAMINATION: XR Elbow COMPARISON: None FINDINGS: Normal."
	sections := Extract(text)

	require.Equal(t, "XR Elbow", sections.Examination)
	require.Equal(t, "None", sections.Comparison)
	require.Equal(t, "Normal.", sections.Findings)
}

func TestExtractIdempotent(t *testing.T) {
	first := Extract(fullReport)
	second := Extract(fullReport)
	require.Equal(t, first, second)
}

func TestExtractEmptyInput(t *testing.T) {
	require.Equal(t, Sections{}, Extract(""))
}
