package llm

import "context"

// Request is one text-completion call. Zero Temperature means deterministic
// output; zero MaxTokens leaves the provider default in place.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

type Provider interface {
	// Complete issues a single completion request and returns the trimmed
	// response text. One attempt only; callers own retry/fallback policy.
	Complete(ctx context.Context, req Request) (string, error)
	Close() error
}
