package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type personOutput struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		DefaultModel: "test-model",
	})
	require.NoError(t, err)
	return server, client
}

func chatReply(content string) []byte {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	data, _ := json.Marshal(resp)
	return data
}

func TestNewClientConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid",
			config:  &Config{APIKey: "k", BaseURL: "https://api.test", DefaultModel: "m"},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  &Config{BaseURL: "https://api.test", DefaultModel: "m"},
			wantErr: true,
		},
		{
			name:    "missing base url",
			config:  &Config{APIKey: "k", DefaultModel: "m"},
			wantErr: true,
		},
		{
			name:    "missing default model",
			config:  &Config{APIKey: "k", BaseURL: "https://api.test"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 30*time.Second, client.config.Timeout)
			assert.Equal(t, 3, client.config.MaxRetries)
		})
	}
}

func TestGenerateStructuredSuccess(t *testing.T) {
	var gotAuth string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write(chatReply(`{"name": "Ada", "age": 36}`))
	})

	result, err := GenerateStructured[personOutput](client, context.Background(), GenerateOptions{}, "generate a person", nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", result.Name)
	assert.Equal(t, 36, result.Age)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestGenerateStructuredStripsCodeFences(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatReply("```json\n{\"name\": \"Ada\", \"age\": 36}\n```"))
	})

	result, err := GenerateStructured[personOutput](client, context.Background(), GenerateOptions{}, "generate a person", nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", result.Name)
}

func TestGenerateStructuredRetriesOnParseError(t *testing.T) {
	calls := 0
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			_, _ = w.Write(chatReply("this is not JSON"))
			return
		}
		_, _ = w.Write(chatReply(`{"name": "Ada", "age": 36}`))
	})

	result, err := GenerateStructured[personOutput](client, context.Background(), GenerateOptions{}, "generate a person", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "Ada", result.Name)
}

func TestGenerateStructuredValidationFeedback(t *testing.T) {
	calls := 0
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			_, _ = w.Write(chatReply(`{"name": "Ada", "age": 12}`))
			return
		}
		_, _ = w.Write(chatReply(`{"name": "Ada", "age": 30}`))
	})

	result, err := GenerateStructured[personOutput](client, context.Background(), GenerateOptions{}, "generate a person",
		func(p *personOutput) error {
			if p.Age < 18 {
				return errors.New("age must be at least 18")
			}
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 30, result.Age)
}

func TestGenerateStructuredAPIErrorNotRetried(t *testing.T) {
	calls := 0
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	})

	_, err := GenerateStructured[personOutput](client, context.Background(), GenerateOptions{}, "generate a person", nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var llmErr *LLMError
	require.ErrorAs(t, err, &llmErr)
	assert.Equal(t, ErrorTypeAPI, llmErr.Type)
	assert.Equal(t, http.StatusTooManyRequests, llmErr.Code)
}

func TestGenerateStructuredExhaustsRetries(t *testing.T) {
	calls := 0
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write(chatReply("never JSON"))
	})

	_, err := GenerateStructured[personOutput](client, context.Background(), GenerateOptions{}, "generate a person", nil)
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestCompleteSendsTemperature(t *testing.T) {
	var gotReq chatRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write(chatReply("ok"))
	})

	content, err := client.Complete(context.Background(), GenerateOptions{Model: "custom-model", Temperature: 0.2}, []Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "ok", content)
	assert.Equal(t, "custom-model", gotReq.Model)
	assert.InDelta(t, 0.2, gotReq.Temperature, 0.0001)
}

func TestCleanMarkdownCodeBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain JSON", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"whitespace", "  \n {\"a\": 1} \n ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanMarkdownCodeBlocks(tt.input))
		})
	}
}

func TestGenerateStructuredMock(t *testing.T) {
	mock := &MockClient{Response: map[string]any{"name": "Ada", "age": 36}}

	result, err := GenerateStructuredMock[personOutput](mock, context.Background(), GenerateOptions{}, "prompt", nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", result.Name)
	assert.Equal(t, 1, mock.Calls)

	mock.Error = errors.New("boom")
	_, err = GenerateStructuredMock[personOutput](mock, context.Background(), GenerateOptions{}, "prompt", nil)
	require.Error(t, err)
}
