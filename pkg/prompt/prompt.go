package prompt

import (
	"fmt"
	"strings"

	"radeval/pkg/report"
)

// Version selects one of the fixed prompt templates. The choice is a
// configuration input, not a runtime decision.
type Version string

const (
	V1Current     Version = "v1_current"
	V2AgeEmphasis Version = "v2_age_emphasis"
	V3Simplified  Version = "v3_simplified"
	V4Checklist   Version = "v4_checklist"
)

// Versions lists the available templates in definition order.
func Versions() []Version {
	return []Version{V1Current, V2AgeEmphasis, V3Simplified, V4Checklist}
}

var templates = map[Version]string{
	V1Current:     templateV1,
	V2AgeEmphasis: templateV2,
	V3Simplified:  templateV3,
	V4Checklist:   templateV4,
}

// Build fills the selected template with the extracted sections. Missing
// section values substitute as empty strings; no validation is performed.
func Build(version Version, sections report.Sections) (string, error) {
	template, ok := templates[version]
	if !ok {
		return "", fmt.Errorf("prompt: unknown version %q", version)
	}
	return applyTemplate(template, map[string]string{
		"examination":      sections.Examination,
		"clinical_details": sections.ClinicalDetails,
		"comparison":       sections.Comparison,
		"findings":         sections.Findings,
	}), nil
}

func applyTemplate(template string, values map[string]string) string {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}
