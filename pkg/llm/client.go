package llm

import "context"

// Client queries one council backend with a prompt and a persona system
// instruction. Implementations make exactly one attempt; timeouts, bad
// statuses and transport faults all surface as a plain error.
type Client interface {
	Invoke(ctx context.Context, modelID, prompt, system string) (string, error)
}
