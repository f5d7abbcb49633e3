package truth

import (
	"regexp"
	"strings"

	"radeval/pkg/runner"
)

// Drafting helpers for annotation review. Suggestions are pre-filled
// from a batch run's model output and always land with annotated=false;
// a human reviewer edits them and flips the flag.

const reviewPlaceholder = "*** REVIEW AND EDIT ***"
const reviewFindings = "*** REVIEW AND ADD FINDINGS ***"
const reviewNotes = "*** AUTO-GENERATED - PLEASE REVIEW ***"

var differentialSectionRe = regexp.MustCompile(`(?is)(?:differential diagnosis|diagnoses).*?(?:\n\n|clinical|recommendation|$)`)
var recommendationSectionRe = regexp.MustCompile(`(?is)(?:recommendation|next steps).*`)

var diagnosisPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:jia|juvenile idiopathic arthritis)`),
	regexp.MustCompile(`septic arthritis`),
	regexp.MustCompile(`osteomyelitis`),
	regexp.MustCompile(`cellulitis`),
	regexp.MustCompile(`abscess`),
	regexp.MustCompile(`trauma(?:tic)?`),
	regexp.MustCompile(`infection`),
	regexp.MustCompile(`effusion`),
}

var recommendationKeywords = []struct {
	keyword string
	text    string
}{
	{"mri", "MRI if clinical suspicion persists"},
	{"ultrasound", "Ultrasound for effusion/abscess localization"},
	{"blood culture", "Blood cultures"},
	{"aspiration", "Joint aspiration if effusion develops"},
	{"rheumatolog", "Rheumatology referral"},
	{"infectious disease", "Infectious disease consult"},
	{"orthopedic", "Orthopedics consult"},
}

// Suggest drafts one unannotated case per batch result whose filename is
// not already annotated in the store.
func (s *Store) Suggest(results []runner.Result) []Case {
	existing := make(map[string]struct{})
	for _, c := range s.cases {
		if c.Annotated {
			existing[c.Filename] = struct{}{}
		}
	}

	var suggestions []Case
	for _, result := range results {
		if result.Filename == "" {
			continue
		}
		if _, ok := existing[result.Filename]; ok {
			continue
		}

		suggestions = append(suggestions, Case{
			Filename: result.Filename,
			PatientInfo: PatientInfo{
				AgeCategory:     "pediatric",
				ClinicalHistory: result.ExtractedSections.ClinicalDetails,
			},
			GroundTruth: Annotation{
				PrimaryDiagnosis:           reviewPlaceholder,
				DifferentialDiagnoses:      suggestDiagnoses(result.Diagnosis),
				InappropriateDiagnoses:     []string{},
				KeyFindings:                []string{reviewFindings},
				AppropriateRecommendations: suggestRecommendations(result.Diagnosis),
				Notes:                      reviewNotes,
			},
			Annotated:     false,
			AutoSuggested: true,
		})
	}
	return suggestions
}

func suggestDiagnoses(diagnosis string) []string {
	section := differentialSectionRe.FindString(strings.ToLower(diagnosis))
	if section == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range diagnosisPatterns {
		match := pattern.FindString(section)
		if match == "" {
			continue
		}
		title := titleCase(match)
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func suggestRecommendations(diagnosis string) []string {
	section := recommendationSectionRe.FindString(strings.ToLower(diagnosis))
	if section == "" {
		return []string{}
	}

	var out []string
	for _, rec := range recommendationKeywords {
		if strings.Contains(section, rec.keyword) {
			out = append(out, rec.text)
		}
	}
	return out
}
