package runner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"radeval/pkg/model"
	"radeval/pkg/prompt"
	"radeval/pkg/report"
)

// Runner drives the sequential extract -> prompt -> infer loop over a
// list of report paths. Each report is fully processed before the next
// begins; there is one outstanding inference call at a time.
type Runner struct {
	RunID    string
	Model    model.Model
	Version  prompt.Version
	Options  model.GenerateOptions
	Progress func(index, total int, filename string)
	OnError  func(filename string, err error)
}

func New(m model.Model, version prompt.Version, opts model.GenerateOptions) *Runner {
	return &Runner{
		RunID:   uuid.NewString(),
		Model:   m,
		Version: version,
		Options: opts,
	}
}

// Run processes every report in order and returns the accumulated
// results. A failure to read a report skips that report; an inference
// failure records its text in place of the diagnosis. Both continue the
// batch. Cancelling the context stops before the next report, keeping
// the results completed so far.
func (r *Runner) Run(ctx context.Context, paths []string) []Result {
	results := make([]Result, 0, len(paths))

	for i, path := range paths {
		select {
		case <-ctx.Done():
			return results
		default:
		}

		rep, err := report.Read(path)
		if err != nil {
			if r.OnError != nil {
				r.OnError(path, err)
			}
			continue
		}

		if r.Progress != nil {
			r.Progress(i+1, len(paths), rep.Filename)
		}

		start := time.Now()
		sections := report.Extract(rep.Text)

		promptText, err := prompt.Build(r.Version, sections)
		if err != nil {
			if r.OnError != nil {
				r.OnError(rep.Filename, err)
			}
			continue
		}

		result := Result{
			Filename:          rep.Filename,
			ExtractedSections: sections,
		}

		response, err := r.Model.Generate(ctx, promptText, r.Options)
		if err != nil {
			result.Diagnosis = model.FailureText(err)
			result.Error = err.Error()
			if r.OnError != nil {
				r.OnError(rep.Filename, err)
			}
		} else {
			result.Diagnosis = response.Content
		}
		result.ProcessingTime = time.Since(start).Seconds()

		results = append(results, result)
	}

	return results
}
