package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/aperrault/phraseur/internal/composer"
	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/feature"
	"github.com/aperrault/phraseur/internal/generation"
	"github.com/aperrault/phraseur/internal/store"
)

// FeatureOption describes how one grammatical feature was requested: a member
// name (empty for none) plus the incorrect/random substitution flags.
type FeatureOption struct {
	Name      string
	Incorrect bool
	Random    bool
}

// GenerateSentenceRequest carries the caller's intent for one generated
// sentence. Pronoun and Tense may be left empty to be chosen at random;
// Auxiliary may be left empty to be resolved from the verb store, falling
// back to avoir for unknown verbs.
type GenerateSentenceRequest struct {
	Infinitive      string
	Auxiliary       string
	Pronoun         string
	Tense           string
	DirectObject    FeatureOption
	IndirectPronoun FeatureOption
	Negation        FeatureOption
	IsCorrect       bool
}

// SentenceService exposes the sentence use cases.
type SentenceService interface {
	// Generate runs one full generation round: resolve the request into a
	// prompt spec, call the model, parse the reply, persist the sentence.
	// All errors propagate to the caller.
	Generate(ctx context.Context, req GenerateSentenceRequest) (*domain.Sentence, error)

	// Validate asks the model to judge an existing sentence.
	Validate(ctx context.Context, content string) (*composer.GenerationReply, error)

	// Correct asks the model for a corrected version of a sentence.
	Correct(ctx context.Context, content string) (*composer.CorrectionReply, error)

	// Get retrieves a persisted sentence by ID.
	Get(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)

	// Random retrieves one persisted sentence at random.
	Random(ctx context.Context) (*domain.Sentence, error)

	// List retrieves persisted sentences, newest first.
	List(ctx context.Context, limit, offset int) ([]*domain.Sentence, error)
}

type sentenceService struct {
	generator generation.Generator
	sentences store.SentenceStore
	verbs     store.VerbStore
	logger    *slog.Logger

	// rng drives feature substitution and pronoun/tense randomization.
	// Guarded by mu: batch generation calls Generate from several workers.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSentenceService creates a SentenceService. The rng seeds all randomized
// selections; tests pass a fixed seed for reproducibility.
func NewSentenceService(
	generator generation.Generator,
	sentences store.SentenceStore,
	verbs store.VerbStore,
	rng *rand.Rand,
	logger *slog.Logger,
) SentenceService {
	if logger == nil {
		logger = slog.Default()
	}

	return &sentenceService{
		generator: generator,
		sentences: sentences,
		verbs:     verbs,
		logger:    logger.With(slog.String("component", "sentence_service")),
		rng:       rng,
	}
}

func (s *sentenceService) Generate(
	ctx context.Context,
	req GenerateSentenceRequest,
) (*domain.Sentence, error) {
	spec, err := s.resolveSpec(ctx, req)
	if err != nil {
		return nil, err
	}

	prompt := composer.GenerateSentencePrompt(*spec)

	raw, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("sentence generation failed: %w", err)
	}

	reply, err := composer.ParseGenerationReply(raw)
	if err != nil {
		return nil, err
	}

	// The persisted record reflects what the model reports it produced, not
	// what was asked for; requested and realized features can diverge when a
	// feature was randomized or deliberately incorrect.
	sentence, err := domain.NewSentence(
		spec.Infinitive,
		spec.Auxiliary,
		spec.Pronoun,
		spec.Tense,
		s.replyFeature(feature.KindDirectObject, reply.DirectObject, spec.DirectObject.Value),
		s.replyFeature(feature.KindIndirectPronoun, reply.IndirectPronoun, spec.IndirectPronoun.Value),
		s.replyFeature(feature.KindNegation, reply.Negation, spec.Negation.Value),
		reply.IsCorrectValue(),
	)
	if err != nil {
		return nil, err
	}

	sentence.SetContent(reply.Sentence, reply.Translation)

	if err := s.sentences.Create(ctx, sentence); err != nil {
		return nil, fmt.Errorf("failed to persist sentence: %w", err)
	}

	return sentence, nil
}

func (s *sentenceService) Validate(ctx context.Context, content string) (*composer.GenerationReply, error) {
	raw, err := s.generator.GenerateText(ctx, composer.ValidateSentencePrompt(content))
	if err != nil {
		return nil, fmt.Errorf("sentence validation failed: %w", err)
	}

	return composer.ParseGenerationReply(raw)
}

func (s *sentenceService) Correct(ctx context.Context, content string) (*composer.CorrectionReply, error) {
	raw, err := s.generator.GenerateText(ctx, composer.CorrectSentencePrompt(content))
	if err != nil {
		return nil, fmt.Errorf("sentence correction failed: %w", err)
	}

	return composer.ParseCorrectionReply(raw)
}

func (s *sentenceService) Get(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	return s.sentences.GetByID(ctx, id)
}

func (s *sentenceService) Random(ctx context.Context) (*domain.Sentence, error) {
	return s.sentences.Random(ctx)
}

func (s *sentenceService) List(ctx context.Context, limit, offset int) ([]*domain.Sentence, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.sentences.List(ctx, limit, offset)
}

// resolveSpec turns a request into a fully resolved prompt spec: auxiliary
// from the verb store when omitted, random pronoun/tense when omitted, and
// feature values run through the substitution rules.
func (s *sentenceService) resolveSpec(
	ctx context.Context,
	req GenerateSentenceRequest,
) (*composer.PromptSpec, error) {
	if req.Infinitive == "" {
		return nil, domain.ErrSentenceInfinitiveEmpty
	}

	auxiliary := req.Auxiliary
	if auxiliary == "" {
		verb, err := s.verbs.GetByInfinitive(ctx, req.Infinitive)
		switch {
		case err == nil:
			auxiliary = verb.Auxiliary
		case errors.Is(err, store.ErrVerbNotFound):
			auxiliary = domain.AuxiliaryAvoir
		default:
			return nil, fmt.Errorf("failed to resolve auxiliary: %w", err)
		}
	}
	if err := domain.ValidateAuxiliary(auxiliary); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pronoun, err := s.resolvePronoun(req.Pronoun)
	if err != nil {
		return nil, err
	}

	tense, err := s.resolveTense(req.Tense)
	if err != nil {
		return nil, err
	}

	directObject, err := s.resolveFeature(feature.KindDirectObject, req.DirectObject)
	if err != nil {
		return nil, err
	}

	indirectPronoun, err := s.resolveFeature(feature.KindIndirectPronoun, req.IndirectPronoun)
	if err != nil {
		return nil, err
	}

	negation, err := s.resolveFeature(feature.KindNegation, req.Negation)
	if err != nil {
		return nil, err
	}

	return &composer.PromptSpec{
		Infinitive:      req.Infinitive,
		Auxiliary:       auxiliary,
		Pronoun:         pronoun,
		Tense:           tense,
		DirectObject:    directObject,
		IndirectPronoun: indirectPronoun,
		Negation:        negation,
		IsCorrect:       req.IsCorrect,
	}, nil
}

// resolvePronoun parses the requested pronoun or picks one at random when
// empty. Callers must hold mu.
func (s *sentenceService) resolvePronoun(raw string) (domain.Pronoun, error) {
	if raw == "" {
		pronouns := domain.Pronouns()
		return pronouns[s.rng.Intn(len(pronouns))], nil
	}
	return domain.ParsePronoun(raw)
}

// resolveTense parses the requested tense or picks one at random when empty.
// Callers must hold mu.
func (s *sentenceService) resolveTense(raw string) (domain.Tense, error) {
	if raw == "" {
		tenses := domain.Tenses()
		return tenses[s.rng.Intn(len(tenses))], nil
	}
	return domain.ParseTense(raw)
}

// resolveFeature parses and substitutes one feature per the selection
// contract. Callers must hold mu.
func (s *sentenceService) resolveFeature(kind feature.Kind, opt FeatureOption) (feature.Selected, error) {
	value, err := feature.Parse(kind, opt.Name)
	if err != nil {
		return feature.Selected{}, err
	}
	return feature.Select(value, opt.Incorrect, opt.Random, s.rng)
}

// replyFeature parses a feature name reported by the model, falling back to
// the requested value when the report is not a known member.
func (s *sentenceService) replyFeature(
	kind feature.Kind,
	reported string,
	requested feature.Value,
) feature.Value {
	value, err := feature.Parse(kind, reported)
	if err != nil {
		s.logger.Warn("model reported unknown feature member, keeping requested value",
			slog.String("kind", string(kind)),
			slog.String("reported", reported))
		return requested
	}
	return value
}
