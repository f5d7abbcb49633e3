package truth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// PatientInfo carries the non-diagnostic context for a case.
type PatientInfo struct {
	AgeCategory     string `json:"age_category"`
	ClinicalHistory string `json:"clinical_history"`
}

// Annotation is the curated expected diagnostic content for a report.
type Annotation struct {
	PrimaryDiagnosis           string   `json:"primary_diagnosis"`
	DifferentialDiagnoses      []string `json:"differential_diagnoses"`
	InappropriateDiagnoses     []string `json:"inappropriate_diagnoses"`
	KeyFindings                []string `json:"key_findings"`
	AppropriateRecommendations []string `json:"appropriate_recommendations"`
	Notes                      string   `json:"notes"`
}

// Case joins an annotation to a report by filename. Only cases with
// Annotated set are used for evaluation; auto-suggested drafts stay
// unannotated until a reviewer flips the flag.
type Case struct {
	Filename      string      `json:"filename"`
	PatientInfo   PatientInfo `json:"patient_info"`
	GroundTruth   Annotation  `json:"ground_truth"`
	Annotated     bool        `json:"annotated"`
	AutoSuggested bool        `json:"auto_suggested,omitempty"`
}

// Store holds the flat list of ground-truth cases backed by one JSON
// file. Duplicate filenames are tolerated in the file; the last entry
// wins on lookup, and Put de-duplicates on save.
type Store struct {
	Path  string
	cases []Case
}

// Load reads the ground-truth file. A missing file is an error: callers
// that evaluate cannot proceed without it.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("truth: cannot read ground truth file %q: %w", path, err)
	}
	defer file.Close()

	var cases []Case
	if err := json.NewDecoder(file).Decode(&cases); err != nil {
		return nil, fmt.Errorf("truth: malformed ground truth file %q: %w", path, err)
	}
	return &Store{Path: path, cases: cases}, nil
}

// LoadOrEmpty reads the ground-truth file, starting an empty store when
// the file does not exist yet. Used by annotation tooling, which creates
// the file on first save.
func LoadOrEmpty(path string) (*Store, error) {
	store, err := Load(path)
	if err == nil {
		return store, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return &Store{Path: path}, nil
	}
	return nil, err
}

// Cases returns every record, annotated or not, in file order.
func (s *Store) Cases() []Case {
	return s.cases
}

// Annotated returns the reviewed subset used for evaluation.
func (s *Store) Annotated() []Case {
	var out []Case
	for _, c := range s.cases {
		if c.Annotated {
			out = append(out, c)
		}
	}
	return out
}

// AnnotatedByFilename builds the evaluation join map. Entries later in
// the file overwrite earlier duplicates.
func (s *Store) AnnotatedByFilename() map[string]Case {
	out := make(map[string]Case)
	for _, c := range s.cases {
		if c.Annotated {
			out[c.Filename] = c
		}
	}
	return out
}

// Put replaces any existing entries for the case's filename and appends
// the new record.
func (s *Store) Put(c Case) {
	kept := s.cases[:0]
	for _, existing := range s.cases {
		if existing.Filename != c.Filename {
			kept = append(kept, existing)
		}
	}
	s.cases = append(kept, c)
}

// Save writes the flat list back to the store's file.
func (s *Store) Save() error {
	file, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("truth: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.cases); err != nil {
		return fmt.Errorf("truth: %w", err)
	}
	return nil
}
