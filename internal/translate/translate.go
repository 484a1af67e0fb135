// Package translate wraps the external translation capability used to
// localize prompts and serve the explicit translate endpoint.
package translate

import "context"

// SourceAuto asks the provider to detect the source language.
const SourceAuto = "auto"

// Translator converts free text into the target language code.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}
