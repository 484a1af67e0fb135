package service

import (
	"context"
	"fmt"
)

// stubGenerator returns a fixed response when set, otherwise a distinct
// string per call so regeneration visibly changes document text.
type stubGenerator struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if s.response != "" {
		return s.response, nil
	}
	return fmt.Sprintf("generated text #%d", s.calls), nil
}

func (s *stubGenerator) lastPrompt() string {
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[len(s.prompts)-1]
}

// stubTranslator tags the text with the target language so tests can see
// whether a prompt went through translation.
type stubTranslator struct {
	err   error
	calls int
}

func (s *stubTranslator) Translate(_ context.Context, text, _, target string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "[" + target + "] " + text, nil
}
