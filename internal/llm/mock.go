package llm

import (
	"context"
	"encoding/json"
)

// MockClient is a canned-response LLM client for tests.
type MockClient struct {
	Response any   // The response to return
	Error    error // Error to return (if any)
	Calls    int
}

// GenerateStructuredMock mirrors GenerateStructured for a MockClient,
// converting the canned response into *T via a JSON round trip when needed.
func GenerateStructuredMock[T any](
	client *MockClient,
	ctx context.Context,
	opts GenerateOptions,
	prompt string,
	validate func(*T) error,
) (*T, error) {
	client.Calls++

	if client.Error != nil {
		return nil, client.Error
	}

	if result, ok := client.Response.(*T); ok {
		if validate != nil {
			if err := validate(result); err != nil {
				return nil, err
			}
		}
		return result, nil
	}

	data, err := json.Marshal(client.Response)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	if validate != nil {
		if err := validate(&result); err != nil {
			return nil, err
		}
	}

	return &result, nil
}
