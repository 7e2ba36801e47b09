package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aperrault/phraseur/internal/composer"
	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/generation"
	"github.com/aperrault/phraseur/internal/store"
)

// VerbCache is the read-through cache consulted before the verb store.
// Implemented by rediscache.Cache; a nil cache disables caching.
type VerbCache interface {
	GetVerb(ctx context.Context, infinitive string) (*domain.Verb, bool)
	SetVerb(ctx context.Context, verb *domain.Verb)
}

// VerbService exposes the verb use cases.
type VerbService interface {
	// Download asks the model for a verb's properties and conjugation
	// tables and upserts everything under the verb's natural key.
	Download(ctx context.Context, infinitive string) (*domain.Verb, error)

	// Get retrieves a verb by infinitive, consulting the cache first.
	Get(ctx context.Context, infinitive string) (*domain.Verb, error)

	// Conjugations retrieves a verb's stored conjugations.
	Conjugations(ctx context.Context, infinitive string) ([]*domain.Conjugation, error)

	// Random retrieves one stored verb at random.
	Random(ctx context.Context) (*domain.Verb, error)
}

type verbService struct {
	generator    generation.Generator
	verbs        store.VerbStore
	conjugations store.ConjugationStore
	cache        VerbCache
	logger       *slog.Logger
}

// NewVerbService creates a VerbService. cache may be nil, in which case every
// read goes straight to the store.
func NewVerbService(
	generator generation.Generator,
	verbs store.VerbStore,
	conjugations store.ConjugationStore,
	cache VerbCache,
	logger *slog.Logger,
) VerbService {
	if logger == nil {
		logger = slog.Default()
	}

	return &verbService{
		generator:    generator,
		verbs:        verbs,
		conjugations: conjugations,
		cache:        cache,
		logger:       logger.With(slog.String("component", "verb_service")),
	}
}

func (s *verbService) Download(ctx context.Context, infinitive string) (*domain.Verb, error) {
	if infinitive == "" {
		return nil, domain.ErrVerbInfinitiveEmpty
	}

	raw, err := s.generator.GenerateText(ctx, composer.DownloadVerbPrompt(infinitive))
	if err != nil {
		return nil, fmt.Errorf("verb download failed: %w", err)
	}

	reply, err := composer.ParseVerbReply(raw)
	if err != nil {
		return nil, err
	}

	verb, err := domain.NewVerb(reply.Infinitive, reply.Auxiliary, reply.Translation)
	if err != nil {
		return nil, err
	}

	if err := s.verbs.Upsert(ctx, verb); err != nil {
		return nil, fmt.Errorf("failed to persist verb: %w", err)
	}

	for rawTense, forms := range reply.Conjugations {
		tense, err := domain.ParseTense(rawTense)
		if err != nil {
			s.logger.Warn("skipping conjugation in unsupported tense",
				slog.String("infinitive", verb.Infinitive),
				slog.String("tense", rawTense))
			continue
		}

		conjugation, err := domain.NewConjugation(verb.ID, tense, forms)
		if err != nil {
			return nil, err
		}

		if err := s.conjugations.Upsert(ctx, conjugation); err != nil {
			return nil, fmt.Errorf("failed to persist conjugation: %w", err)
		}
	}

	if s.cache != nil {
		s.cache.SetVerb(ctx, verb)
	}

	s.logger.Info("verb downloaded",
		slog.String("infinitive", verb.Infinitive),
		slog.Int("conjugation_count", len(reply.Conjugations)))

	return verb, nil
}

func (s *verbService) Get(ctx context.Context, infinitive string) (*domain.Verb, error) {
	if s.cache != nil {
		if verb, ok := s.cache.GetVerb(ctx, infinitive); ok {
			return verb, nil
		}
	}

	verb, err := s.verbs.GetByInfinitive(ctx, infinitive)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetVerb(ctx, verb)
	}

	return verb, nil
}

func (s *verbService) Conjugations(ctx context.Context, infinitive string) ([]*domain.Conjugation, error) {
	verb, err := s.verbs.GetByInfinitive(ctx, infinitive)
	if err != nil {
		return nil, err
	}
	return s.conjugations.ListByVerb(ctx, verb.ID)
}

func (s *verbService) Random(ctx context.Context) (*domain.Verb, error) {
	return s.verbs.Random(ctx)
}
