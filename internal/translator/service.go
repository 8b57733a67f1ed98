package translator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/transgate-dev/transgate/internal/chunker"
	"github.com/transgate-dev/transgate/internal/tokenizer"
)

// Request is a single translation request. Language codes are NLLB-style
// tags ("khm_Khmr", "eng_Latn") and are passed through untouched.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
}

// Response carries the translated text and echoes the request languages.
type Response struct {
	TranslatedText string
	SourceLang     string
	TargetLang     string
}

// Service is the translation entry point. It decides between a single
// direct model call and the chunked path based on the whole-text token
// count, and owns per-chunk failure isolation and reassembly.
type Service struct {
	translator    Translator
	oracle        *tokenizer.Oracle
	splitter      *chunker.Splitter
	maxTextLength int
	logger        *slog.Logger
}

// NewService wires the translation pipeline. maxTextLength is the request
// character ceiling, counted in runes.
func NewService(translator Translator, oracle *tokenizer.Oracle, splitter *chunker.Splitter, maxTextLength int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &Service{
		translator:    translator,
		oracle:        oracle,
		splitter:      splitter,
		maxTextLength: maxTextLength,
		logger:        logger,
	}
}

// Translate validates the request and translates its text, chunking when
// the token count exceeds the safe budget. Failures are typed
// *TranslationError values; a failed chunk degrades into a placeholder
// rather than failing the request.
func (s *Service) Translate(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Response{}, ErrTextEmpty
	}
	if utf8.RuneCountInString(req.Text) > s.maxTextLength {
		return Response{}, ErrTextTooLong.WithCause(fmt.Errorf("%d runes, limit %d", utf8.RuneCountInString(req.Text), s.maxTextLength))
	}

	budget := s.splitter.SafeBudget()
	tokens := s.oracle.Count(ctx, req.Text, req.SourceLang)
	s.logger.Info("translation request",
		"chars", len(req.Text),
		"tokens", tokens,
		"budget", budget,
		"source_lang", req.SourceLang,
		"target_lang", req.TargetLang)

	var translated string
	if tokens <= budget {
		// Fits in one model call, no chunking.
		out, err := s.translator.TranslateSingle(ctx, req.Text, req.SourceLang, req.TargetLang)
		if err != nil {
			return Response{}, err
		}
		translated = out
	} else {
		chunks := s.splitter.Split(ctx, req.Text, req.SourceLang)
		s.logger.Info("text exceeds token budget, split into chunks", "chunks", len(chunks))

		parts, err := s.translateChunks(ctx, chunks, req.SourceLang, req.TargetLang)
		if err != nil {
			return Response{}, err
		}
		translated = Reassemble(parts, req.Text)
	}

	return Response{
		TranslatedText: translated,
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
	}, nil
}

// translateChunks translates chunks strictly in order, one model call at a
// time. A failed chunk becomes a visible placeholder and later chunks still
// run; only an unavailable model aborts the whole request, since every
// subsequent call would fail the same way.
func (s *Service) translateChunks(ctx context.Context, chunks []string, sourceLang, targetLang string) ([]string, error) {
	out := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Info("translating chunk", "index", i+1, "total", len(chunks), "chars", len(chunk))

		part, err := s.translator.TranslateSingle(ctx, chunk, sourceLang, targetLang)
		if err != nil {
			if IsNotReady(err) {
				return nil, err
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Error("chunk translation failed", "index", i+1, "error", err)
			part = fmt.Sprintf("[Translation error in chunk %d]", i+1)
		}
		out = append(out, part)
	}
	return out, nil
}

// Health reports whether the model collaborator is ready.
func (s *Service) Health(ctx context.Context) error {
	return s.translator.Health(ctx)
}

// ModelName returns the underlying model's name.
func (s *Service) ModelName() string {
	return s.translator.ModelName()
}
