package analyze

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"radeval/pkg/runner"
)

// Diagnoses tracked across batches. The last three are the adult-only
// conditions; their presence in pediatric output is flagged by the
// evaluator, this package just counts mentions.
var diagnosisKeywords = []string{
	"septic arthritis", "juvenile idiopathic arthritis", "jia",
	"osteomyelitis", "abscess", "cellulitis", "fracture",
	"effusion", "inflammation", "infection", "normal",
	"osteoarthritis", "rotator cuff", "degenerative",
}

// TimeStats summarizes per-report processing durations in seconds.
type TimeStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Stdev  float64 `json:"stdev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Total  float64 `json:"total"`
}

// Throughput in reports per minute.
func (t TimeStats) Throughput() float64 {
	if t.Total <= 0 {
		return 0
	}
	return float64(t.Count) / (t.Total / 60)
}

// LengthStats summarizes response lengths in characters.
type LengthStats struct {
	MeanChars   float64 `json:"mean_chars"`
	MedianChars float64 `json:"median_chars"`
	MinChars    int     `json:"min_chars"`
	MaxChars    int     `json:"max_chars"`
}

// BatchAnalysis is the descriptive-statistics view of one batch
// artifact.
type BatchAnalysis struct {
	Filename           string         `json:"filename"`
	TotalReports       int            `json:"total_reports"`
	ProcessingTimes    TimeStats      `json:"processing_times"`
	OutputLengths      LengthStats    `json:"output_lengths"`
	DiagnosisFrequency map[string]int `json:"diagnosis_frequency"`
}

// Analyze computes statistics over one batch of results.
func Analyze(filename string, results []runner.Result) BatchAnalysis {
	return BatchAnalysis{
		Filename:           filename,
		TotalReports:       len(results),
		ProcessingTimes:    timeStats(results),
		OutputLengths:      lengthStats(results),
		DiagnosisFrequency: diagnosisFrequency(results),
	}
}

// AnalyzeAll loads and analyzes every batch artifact under dir.
func AnalyzeAll(dir string) ([]BatchAnalysis, error) {
	files, err := runner.DiscoverBatchFiles(dir)
	if err != nil {
		return nil, err
	}

	analyses := make([]BatchAnalysis, 0, len(files))
	for _, file := range files {
		results, err := runner.LoadResults(file)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, Analyze(filepath.Base(file), results))
	}
	return analyses, nil
}

// SortedDiagnoses returns the frequency table ordered most-mentioned
// first, stable on name for ties.
func (a BatchAnalysis) SortedDiagnoses() []DiagnosisCount {
	out := make([]DiagnosisCount, 0, len(a.DiagnosisFrequency))
	for diagnosis, count := range a.DiagnosisFrequency {
		out = append(out, DiagnosisCount{Diagnosis: diagnosis, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Diagnosis < out[j].Diagnosis
	})
	return out
}

type DiagnosisCount struct {
	Diagnosis string
	Count     int
}

// WriteCSV emits the paper-export summary with one row per batch.
func WriteCSV(w io.Writer, analyses []BatchAnalysis) error {
	writer := csv.NewWriter(w)
	header := []string{"Batch", "Total_Reports", "Mean_Time", "Median_Time", "Throughput_Reports_Per_Min", "Mean_Output_Length"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, analysis := range analyses {
		name := strings.TrimSuffix(strings.TrimPrefix(analysis.Filename, "batch_results_"), ".json")
		record := []string{
			name,
			fmt.Sprintf("%d", analysis.TotalReports),
			fmt.Sprintf("%.2f", analysis.ProcessingTimes.Mean),
			fmt.Sprintf("%.2f", analysis.ProcessingTimes.Median),
			fmt.Sprintf("%.2f", analysis.ProcessingTimes.Throughput()),
			fmt.Sprintf("%.0f", analysis.OutputLengths.MeanChars),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func timeStats(results []runner.Result) TimeStats {
	times := make([]float64, 0, len(results))
	for _, result := range results {
		times = append(times, result.ProcessingTime)
	}
	if len(times) == 0 {
		return TimeStats{}
	}

	sorted := make([]float64, len(times))
	copy(sorted, times)
	sort.Float64s(sorted)

	var total float64
	for _, t := range times {
		total += t
	}

	return TimeStats{
		Count:  len(times),
		Mean:   total / float64(len(times)),
		Median: median(sorted),
		Stdev:  stdev(times, total/float64(len(times))),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Total:  total,
	}
}

func lengthStats(results []runner.Result) LengthStats {
	if len(results) == 0 {
		return LengthStats{}
	}

	lengths := make([]float64, 0, len(results))
	minChars, maxChars := len(results[0].Diagnosis), len(results[0].Diagnosis)
	var total float64
	for _, result := range results {
		n := len(result.Diagnosis)
		lengths = append(lengths, float64(n))
		total += float64(n)
		if n < minChars {
			minChars = n
		}
		if n > maxChars {
			maxChars = n
		}
	}
	sort.Float64s(lengths)

	return LengthStats{
		MeanChars:   total / float64(len(lengths)),
		MedianChars: median(lengths),
		MinChars:    minChars,
		MaxChars:    maxChars,
	}
}

func diagnosisFrequency(results []runner.Result) map[string]int {
	counts := make(map[string]int, len(diagnosisKeywords))
	for _, keyword := range diagnosisKeywords {
		counts[keyword] = 0
	}
	for _, result := range results {
		lower := strings.ToLower(result.Diagnosis)
		for _, keyword := range diagnosisKeywords {
			if strings.Contains(lower, keyword) {
				counts[keyword]++
			}
		}
	}
	return counts
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// stdev is the sample standard deviation; zero for fewer than two
// values.
func stdev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
