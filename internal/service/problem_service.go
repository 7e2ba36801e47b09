package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/aperrault/phraseur/internal/batch"
	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/store"
)

// ProblemRequest configures one practice problem. Any empty field of the
// embedded sentence request is randomized per problem; Infinitive may be left
// empty to draw a random verb from the store for each problem.
type ProblemRequest struct {
	GenerateSentenceRequest

	// RandomCorrectness, when set, replaces IsCorrect with a coin flip per
	// problem, so a batch mixes correct and incorrect sentences.
	RandomCorrectness bool
}

// ProblemService generates practice problems, singly or in bulk.
type ProblemService interface {
	// Random generates one problem.
	Random(ctx context.Context, req ProblemRequest) (*domain.Sentence, error)

	// Batch generates quantity problems with at most workers model calls in
	// flight. Individual failures are logged and skipped; the result holds
	// the sentences that succeeded, in completion order.
	Batch(ctx context.Context, workers, quantity int, req ProblemRequest) ([]*domain.Sentence, error)
}

type problemService struct {
	sentences SentenceService
	verbs     store.VerbStore
	logger    *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewProblemService creates a ProblemService on top of the sentence service.
func NewProblemService(
	sentences SentenceService,
	verbs store.VerbStore,
	rng *rand.Rand,
	logger *slog.Logger,
) ProblemService {
	if logger == nil {
		logger = slog.Default()
	}

	return &problemService{
		sentences: sentences,
		verbs:     verbs,
		logger:    logger.With(slog.String("component", "problem_service")),
		rng:       rng,
	}
}

func (s *problemService) Random(ctx context.Context, req ProblemRequest) (*domain.Sentence, error) {
	resolved, err := s.resolveProblem(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.sentences.Generate(ctx, resolved)
}

func (s *problemService) Batch(
	ctx context.Context,
	workers, quantity int,
	req ProblemRequest,
) ([]*domain.Sentence, error) {
	s.logger.Info("starting problem batch",
		slog.Int("workers", workers),
		slog.Int("quantity", quantity))

	factory := func() batch.Job[*domain.Sentence] {
		return func(ctx context.Context) (*domain.Sentence, error) {
			return s.Random(ctx, req)
		}
	}

	results, err := batch.Run(ctx, workers, quantity, factory, s.logger)
	if err != nil {
		return results, err
	}

	s.logger.Info("problem batch finished",
		slog.Int("requested", quantity),
		slog.Int("succeeded", len(results)))

	return results, nil
}

// resolveProblem fills the per-problem randomized fields.
func (s *problemService) resolveProblem(
	ctx context.Context,
	req ProblemRequest,
) (GenerateSentenceRequest, error) {
	resolved := req.GenerateSentenceRequest

	if resolved.Infinitive == "" {
		verb, err := s.verbs.Random(ctx)
		if err != nil {
			return resolved, fmt.Errorf("failed to pick a random verb: %w", err)
		}
		resolved.Infinitive = verb.Infinitive
		resolved.Auxiliary = verb.Auxiliary
	}

	if req.RandomCorrectness {
		s.mu.Lock()
		resolved.IsCorrect = s.rng.Intn(2) == 0
		s.mu.Unlock()
	}

	return resolved, nil
}
