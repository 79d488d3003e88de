package ports

import "context"

// ModelClient is the model provider boundary: send a prompt, receive text.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelClientFactory builds a client once a credential has been resolved, so
// the key never outlives the invocation that needed it.
type ModelClientFactory interface {
	NewClient(apiKey string) ModelClient
	Model() string
}
