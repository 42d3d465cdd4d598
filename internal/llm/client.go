package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client is the LLM client for interacting with OpenRouter.
type Client struct {
	config *Config
	http   *http.Client
	models map[string]ModelConfig
}

// NewClient creates a new LLM client.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.SetDefaults()

	return &Client{
		config: config,
		http: &http.Client{
			Timeout: config.Timeout,
		},
		models: DefaultModels(),
	}, nil
}

// GenerateOptions selects the model and sampling parameters for a call.
// Zero values fall back to the client defaults.
type GenerateOptions struct {
	Model       string
	Temperature float64
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is an OpenAI-compatible chat completion request.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
}

// chatResponse is an OpenAI-compatible chat completion response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// GenerateStructured generates a structured output from the LLM with
// validation and retry. T is the type of the structured output; validate is
// optional and its failures are fed back into the next attempt's prompt.
func GenerateStructured[T any](
	client *Client,
	ctx context.Context,
	opts GenerateOptions,
	prompt string,
	validate func(*T) error,
) (*T, error) {
	if opts.Model == "" {
		opts.Model = client.config.DefaultModel
	}

	originalPrompt := prompt
	var lastErr error

	for attempt := 1; attempt <= client.config.MaxRetries; attempt++ {
		slog.Info("LLM generation attempt",
			"attempt", attempt,
			"model", opts.Model,
			"prompt_length", len(prompt),
		)

		content, err := client.Complete(ctx, opts, []Message{{Role: "user", Content: prompt}})
		if err != nil {
			// Network/API errors are not retryable with a modified prompt.
			var llmErr *LLMError
			if errors.As(err, &llmErr) {
				if llmErr.Type == ErrorTypeNetwork || llmErr.Type == ErrorTypeAPI {
					return nil, err
				}
			}
			lastErr = err
			prompt = fmt.Sprintf("%s\n\nPREVIOUS ATTEMPT FAILED:\nError: %v\n\nPlease return valid JSON matching the exact structure requested.", originalPrompt, err)
			continue
		}

		var result T
		if err := json.Unmarshal([]byte(cleanMarkdownCodeBlocks(content)), &result); err != nil {
			lastErr = NewParseError(content, err)
			prompt = fmt.Sprintf("%s\n\nPREVIOUS ATTEMPT FAILED:\nError: %v\n\nPlease return valid JSON matching the exact structure requested.", originalPrompt, lastErr)
			continue
		}

		if validate != nil {
			if err := validate(&result); err != nil {
				lastErr = NewValidationError(err.Error(), err)
				slog.Warn("LLM output validation failed",
					"attempt", attempt,
					"error", err.Error(),
				)
				prompt = fmt.Sprintf("%s\n\nPREVIOUS VALIDATION ERROR:\n%v\n\nPlease fix the output to pass validation.", originalPrompt, err)
				continue
			}
		}

		slog.Info("LLM generation succeeded",
			"attempt", attempt,
			"model", opts.Model,
		)
		return &result, nil
	}

	return nil, fmt.Errorf("generation failed after %d attempts: %w", client.config.MaxRetries, lastErr)
}

// Complete performs a single chat completion and returns the raw text of the
// first choice.
func (c *Client) Complete(ctx context.Context, opts GenerateOptions, messages []Message) (string, error) {
	if opts.Model == "" {
		opts.Model = c.config.DefaultModel
	}

	reqBody := chatRequest{
		Model:       opts.Model,
		Messages:    messages,
		Temperature: opts.Temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		slog.Error("OpenRouter HTTP request failed",
			"error", err.Error(),
			"duration", duration,
		)
		return "", NewNetworkError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	slog.Info("OpenRouter HTTP request completed",
		"status_code", resp.StatusCode,
		"duration", duration,
	)

	if resp.StatusCode != http.StatusOK {
		var errBody bytes.Buffer
		if _, err := errBody.ReadFrom(resp.Body); err != nil {
			slog.Warn("failed to read error response body", "error", err)
			return "", NewAPIError(resp.StatusCode, fmt.Sprintf("status %d (failed to read error body)", resp.StatusCode))
		}
		return "", NewAPIError(resp.StatusCode, errBody.String())
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", NewParseError("", err)
	}

	if chatResp.Error != nil {
		return "", NewAPIError(0, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", NewAPIError(0, "no choices in response")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// cleanMarkdownCodeBlocks removes markdown code block wrappers from JSON.
// Some models wrap JSON in ```json...```.
func cleanMarkdownCodeBlocks(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSpace(content)
	}

	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	return content
}
