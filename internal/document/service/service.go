package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/document"
	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/document/repository"
	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/llm"
	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/translate"
	"github.com/legaldocgen/legaldocgen/backend/go-services/pkg/logger"
	"github.com/legaldocgen/legaldocgen/backend/go-services/pkg/metrics"
)

const (
	languageHindi     = "Hindi"
	defaultTargetLang = "hi"

	// Placeholder sent to the model when the caller supplied no usable answers.
	templateFallback = "No specific details provided. Generate a template document."
)

// EditPatch carries the optional fields of an edit request. Nil pointer / nil
// map means "not supplied". Supplied answers are always persisted; Regenerate
// only gates whether document_text is recomputed from them.
type EditPatch struct {
	DocumentText *string
	Title        *string
	Answers      map[string]string
	Regenerate   bool
}

// Service defines the document workflow operations used by the handler layer.
type Service interface {
	GenerateQuestions(ctx context.Context, docType, language string) ([]string, error)
	GenerateDocument(ctx context.Context, docType, title string, answers map[string]string, language string) (*document.Document, error)
	ListDocuments() ([]*document.Document, error)
	GetDocument(id string) (*document.Document, error)
	EditDocument(ctx context.Context, id string, patch EditPatch) (*document.Document, error)
	DeleteDocument(id string) error
	TranslateText(ctx context.Context, text, target string) (string, error)
}

// Timeouts bounds the synchronous upstream calls. Zero values fall back to
// the defaults (60s generation, 15s translation).
type Timeouts struct {
	LLM       time.Duration
	Translate time.Duration
}

func New(repo *repository.MemoryRepo, gen llm.Generator, tr translate.Translator, t Timeouts) Service {
	if t.LLM <= 0 {
		t.LLM = 60 * time.Second
	}
	if t.Translate <= 0 {
		t.Translate = 15 * time.Second
	}
	return &docService{repo: repo, generator: gen, translator: tr, timeouts: t}
}

type docService struct {
	repo       *repository.MemoryRepo
	generator  llm.Generator
	translator translate.Translator
	timeouts   Timeouts
}

func (s *docService) GenerateQuestions(ctx context.Context, docType, language string) ([]string, error) {
	if docType == "" {
		return nil, &ValidationError{Field: "doc_type"}
	}

	prompt := s.localizePrompt(ctx, questionPrompt(docType), language)
	raw, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	metrics.QuestionsGenerated.Inc()

	return splitQuestions(raw), nil
}

func (s *docService) GenerateDocument(ctx context.Context, docType, title string, answers map[string]string, language string) (*document.Document, error) {
	if docType == "" {
		return nil, &ValidationError{Field: "doc_type"}
	}
	if title == "" {
		title = "New " + docType
	}
	if answers == nil {
		answers = map[string]string{}
	}

	prompt := s.localizePrompt(ctx, documentPrompt(docType, answersText(answers)), language)
	text, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	metrics.DocumentsGenerated.Inc()

	doc := &document.Document{
		ID:           uuid.NewString(),
		Title:        title,
		DocumentText: text,
		DocType:      docType,
		Language:     language,
		Answers:      answers,
	}
	if err := s.repo.Put(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *docService) ListDocuments() ([]*document.Document, error) {
	return s.repo.List()
}

func (s *docService) GetDocument(id string) (*document.Document, error) {
	doc, err := s.repo.Get(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *docService) EditDocument(ctx context.Context, id string, patch EditPatch) (*document.Document, error) {
	// repo.Get hands back a copy, so the read-modify-write below never
	// mutates the stored record before Put commits it.
	doc, err := s.repo.Get(id)
	if err != nil {
		return nil, ErrNotFound
	}

	if patch.DocumentText != nil {
		doc.DocumentText = *patch.DocumentText
	}
	if patch.Title != nil {
		doc.Title = *patch.Title
	}
	if patch.Answers != nil {
		doc.Answers = patch.Answers
		if patch.Regenerate {
			prompt := s.localizePrompt(ctx, documentPrompt(doc.DocType, answersText(doc.Answers)), doc.Language)
			text, err := s.generate(ctx, prompt)
			if err != nil {
				return nil, err
			}
			doc.DocumentText = text
			metrics.DocumentsGenerated.Inc()
		}
	}

	if err := s.repo.Put(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *docService) DeleteDocument(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *docService) TranslateText(ctx context.Context, text, target string) (string, error) {
	if text == "" {
		return "", &ValidationError{Field: "text"}
	}
	if target == "" {
		target = defaultTargetLang
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeouts.Translate)
	defer cancel()

	start := time.Now()
	out, err := s.translator.Translate(ctx, text, translate.SourceAuto, target)
	metrics.ObserveUpstream("translate", time.Since(start), err)
	if err != nil {
		return "", &TranslationError{Err: err}
	}
	return out, nil
}

// generate invokes the text generator under the configured deadline. Any
// failure, expiry included, surfaces as a GenerationError.
func (s *docService) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeouts.LLM)
	defer cancel()

	start := time.Now()
	out, err := s.generator.Generate(ctx, prompt)
	metrics.ObserveUpstream("gemini", time.Since(start), err)
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	return out, nil
}

// localizePrompt pre-translates the prompt itself when the caller asked for a
// Hindi document. Translation failures fall back silently to the English
// prompt; only the explicit translate endpoint propagates provider errors.
func (s *docService) localizePrompt(ctx context.Context, prompt, language string) string {
	if language != languageHindi {
		return prompt
	}

	tctx, cancel := context.WithTimeout(ctx, s.timeouts.Translate)
	defer cancel()

	start := time.Now()
	translated, err := s.translator.Translate(tctx, prompt, translate.SourceAuto, defaultTargetLang)
	metrics.ObserveUpstream("translate", time.Since(start), err)
	if err != nil {
		logger.Warnf("prompt translation failed, using English prompt: %v", err)
		return prompt
	}
	return translated
}

func questionPrompt(docType string) string {
	return fmt.Sprintf(
		"Generate a list of specific questions that will help clarify the names and details needed to create a %s. "+
			"Focus on gathering names, dates, and other essential information. "+
			"Provide exactly 8-10 clear questions, one per line, numbered.",
		docType)
}

func documentPrompt(docType, answersText string) string {
	return fmt.Sprintf(
		"You are a professional legal document expert. Generate a complete and properly formatted %s "+
			"using the following details:\n\n%s\n\n"+
			"The document should be:\n"+
			"- Professionally formatted\n"+
			"- Legally sound\n"+
			"- Complete with all necessary sections\n"+
			"- Ready to use\n\n"+
			"Generate the complete document now:",
		docType, answersText)
}

// answersText joins "question: answer" for every non-empty answer. Keys are
// sorted so the prompt is deterministic regardless of map iteration order.
func answersText(answers map[string]string) string {
	questions := make([]string, 0, len(answers))
	for q, a := range answers {
		if a != "" {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return templateFallback
	}
	sort.Strings(questions)

	pairs := make([]string, 0, len(questions))
	for _, q := range questions {
		pairs = append(pairs, q+": "+answers[q])
	}
	return strings.Join(pairs, " ")
}

// splitQuestions breaks the generated text on line boundaries, trimming
// whitespace and discarding empty lines. Ordering follows generation order.
func splitQuestions(raw string) []string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if q := strings.TrimSpace(l); q != "" {
			out = append(out, q)
		}
	}
	return out
}
