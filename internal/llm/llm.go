// Package llm abstracts the text-generation capability behind a single
// synchronous interface so the document service can be exercised without a
// live model.
package llm

import "context"

// Generator produces natural-language text from a prompt.
// Implementations must respect context cancellation and deadlines.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
