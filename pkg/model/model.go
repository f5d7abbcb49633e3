package model

import (
	"context"
	"time"
)

// Model generates a diagnostic response for a prompt.
type Model interface {
	Name() string
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (Response, error)
}

// GenerateOptions controls sampling behavior for a request.
type GenerateOptions struct {
	Temperature  float32 `json:"temperature" yaml:"temperature"`
	MaxTokens    int     `json:"max_tokens" yaml:"max_tokens"`
	TopP         float32 `json:"top_p" yaml:"top_p"`
	SystemPrompt string  `json:"system_prompt,omitempty" yaml:"system_prompt,omitempty"`
}

// Response is a model response plus basic telemetry.
type Response struct {
	Content string        `json:"content" yaml:"content"`
	Latency time.Duration `json:"latency" yaml:"latency"`
}
