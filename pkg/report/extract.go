package report

import (
	"regexp"
	"strings"
)

// Sections holds the named fields extracted from a report.
// A section whose label is absent from the report is the empty string.
type Sections struct {
	Examination     string `json:"examination"`
	ClinicalDetails string `json:"clinical_details"`
	Comparison      string `json:"comparison"`
	Findings        string `json:"findings"`
	Conclusion      string `json:"conclusion"`
}

// Each pattern captures the text between its label and the first of its
// terminating labels (or end of input). The terminator sets differ per
// section and their precedence is fixed: reports are written in the order
// EXAMINATION, CLINICAL DETAILS, COMPARISON, FINDINGS/REPORT,
// CONCLUSION/IMPRESSION, REPORTED BY.
var (
	examinationRe = regexp.MustCompile(`(?is)EXAMINATION:\s*(.*?)(?:CLINICAL DETAILS:|COMPARISON:|FINDINGS:|$)`)
	clinicalRe    = regexp.MustCompile(`(?is)CLINICAL DETAILS:\s*(.*?)(?:COMPARISON:|FINDINGS:|$)`)
	comparisonRe  = regexp.MustCompile(`(?is)COMPARISON:\s*(.*?)(?:FINDINGS:|$)`)
	findingsRe    = regexp.MustCompile(`(?is)(?:FINDINGS|REPORT):\s*(.*?)(?:CONCLUSION:|IMPRESSION:|REPORTED BY:|$)`)
	conclusionRe  = regexp.MustCompile(`(?is)(?:CONCLUSION|IMPRESSION):\s*(.*?)(?:REPORTED BY:|$)`)
)

// Extract parses report text into named sections. Extraction is
// deterministic and never fails; unrecognized formats yield all-empty
// sections.
func Extract(text string) Sections {
	return Sections{
		Examination:     capture(examinationRe, text),
		ClinicalDetails: capture(clinicalRe, text),
		Comparison:      capture(comparisonRe, text),
		Findings:        capture(findingsRe, text),
		Conclusion:      capture(conclusionRe, text),
	}
}

func capture(re *regexp.Regexp, text string) string {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}
