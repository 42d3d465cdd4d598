package llm

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// RegisterOpenRouterModels registers the default OpenRouter models as Genkit
// model providers backed by this client, so agent flows can address them
// through the Genkit registry.
func RegisterOpenRouterModels(ctx context.Context, client *Client) (*genkit.Genkit, error) {
	g := genkit.Init(ctx, nil)

	for name, model := range client.models {
		modelName := name
		genkit.DefineModel(
			g,
			"openrouter/"+modelName,
			&ai.ModelOptions{
				Label: model.Description,
				Supports: &ai.ModelSupports{
					Multiturn:  true,
					SystemRole: true,
				},
			},
			func(ctx context.Context, req *ai.ModelRequest, cb ai.ModelStreamCallback) (*ai.ModelResponse, error) {
				messages := make([]Message, 0, len(req.Messages))
				for _, msg := range req.Messages {
					var text string
					for _, part := range msg.Content {
						text += part.Text
					}
					messages = append(messages, Message{
						Role:    string(msg.Role),
						Content: text,
					})
				}

				content, err := client.Complete(ctx, GenerateOptions{Model: modelName}, messages)
				if err != nil {
					return nil, fmt.Errorf("openrouter completion: %w", err)
				}

				return &ai.ModelResponse{
					Request: req,
					Message: &ai.Message{
						Content: []*ai.Part{
							ai.NewTextPart(content),
						},
					},
				}, nil
			},
		)
	}

	return g, nil
}
