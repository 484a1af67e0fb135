package translate

import (
	"context"
	"fmt"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleTranslator is a Translator backed by the Google Cloud Translation
// v2 client.
type GoogleTranslator struct {
	client *gtranslate.Client
}

// NewGoogleTranslator creates the client. When credentialsFile is empty the
// client falls back to application default credentials.
func NewGoogleTranslator(ctx context.Context, credentialsFile string) (*GoogleTranslator, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := gtranslate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}
	return &GoogleTranslator{client: client}, nil
}

func (t *GoogleTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	targetTag, err := language.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", target, err)
	}

	var opts *gtranslate.Options
	if source != "" && source != SourceAuto {
		sourceTag, err := language.Parse(source)
		if err != nil {
			return "", fmt.Errorf("invalid source language %q: %w", source, err)
		}
		opts = &gtranslate.Options{Source: sourceTag}
	}

	translations, err := t.client.Translate(ctx, []string{text}, targetTag, opts)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return translations[0].Text, nil
}

func (t *GoogleTranslator) Close() error {
	return t.client.Close()
}
