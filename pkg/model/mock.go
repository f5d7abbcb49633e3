package model

import (
	"context"
	"time"
)

// Mock returns a fixed response or echoes the prompt. Used for dry runs
// and tests.
type Mock struct {
	NameValue    string
	ResponseText string
	Err          error
}

func (m Mock) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

func (m Mock) Generate(_ context.Context, prompt string, _ GenerateOptions) (Response, error) {
	if m.Err != nil {
		return Response{}, m.Err
	}
	start := time.Now()
	content := prompt
	if m.ResponseText != "" {
		content = m.ResponseText
	}
	return Response{
		Content: content,
		Latency: time.Since(start),
	}, nil
}
