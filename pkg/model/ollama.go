package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultOllamaBaseURL = "http://localhost:11434/v1"
const defaultOllamaModel = "llama2:7b"

// Ollama talks to a locally hosted model server over its
// OpenAI-compatible API. Each call is a single attempt under the client
// timeout; failures are classified and surfaced to the caller.
type Ollama struct {
	Client  openai.Client
	Model   string
	BaseURL string
	Timeout time.Duration
}

func NewOllama(baseURL, modelName string) *Ollama {
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	if modelName == "" {
		modelName = defaultOllamaModel
	}
	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey("ollama"),
		option.WithMaxRetries(0),
	}
	return &Ollama{
		Client:  openai.NewClient(opts...),
		Model:   modelName,
		BaseURL: baseURL,
		Timeout: 5 * time.Minute,
	}
}

func (o *Ollama) Name() string {
	if o.Model == "" {
		return defaultOllamaModel
	}
	return o.Model
}

func (o *Ollama) Generate(ctx context.Context, prompt string, opts GenerateOptions) (Response, error) {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	messages := []openai.ChatCompletionMessageParamUnion{}
	if opts.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(opts.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Name()),
		Messages: messages,
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(float64(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}
	if opts.TopP > 0 {
		params.TopP = openai.Float(float64(opts.TopP))
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	completion, err := o.Client.Chat.Completions.New(callCtx, params)
	if err != nil {
		return Response{}, classify(err)
	}
	if len(completion.Choices) == 0 {
		return Response{}, &InferenceError{Kind: FailureOther, Err: fmt.Errorf("empty response")}
	}

	return Response{
		Content: completion.Choices[0].Message.Content,
		Latency: time.Since(start),
	}, nil
}

func classify(err error) error {
	var apiErr *openai.Error
	switch {
	case errors.As(err, &apiErr):
		return &InferenceError{Kind: FailureStatus, StatusCode: apiErr.StatusCode, Err: err}
	case isConnectionError(err):
		return &InferenceError{Kind: FailureConnection, Err: err}
	default:
		return &InferenceError{Kind: FailureOther, Err: err}
	}
}
