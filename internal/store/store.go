package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/aperrault/phraseur/internal/domain"
)

// VerbStore defines persistence operations for verbs. The infinitive is the
// natural key: Upsert inserts a new row or updates the existing one in place.
type VerbStore interface {
	// Upsert saves the verb, merging with any existing row that shares its
	// infinitive. On update the stored verb keeps its original ID, which is
	// written back into the given entity.
	Upsert(ctx context.Context, verb *domain.Verb) error

	// GetByInfinitive retrieves a verb by its infinitive.
	// Returns ErrVerbNotFound if no such verb exists.
	GetByInfinitive(ctx context.Context, infinitive string) (*domain.Verb, error)

	// Random retrieves one verb chosen uniformly from the table.
	// Returns ErrEmptyStore when the table is empty.
	Random(ctx context.Context) (*domain.Verb, error)
}

// ConjugationStore defines persistence operations for conjugations, keyed by
// the (verb, tense) natural key.
type ConjugationStore interface {
	// Upsert saves the conjugation, merging with any existing row that
	// shares its (verb_id, tense) pair.
	Upsert(ctx context.Context, conjugation *domain.Conjugation) error

	// GetByVerbAndTense retrieves the conjugation of one verb in one tense.
	// Returns ErrConjugationNotFound if no such conjugation exists.
	GetByVerbAndTense(ctx context.Context, verbID uuid.UUID, tense domain.Tense) (*domain.Conjugation, error)

	// ListByVerb retrieves all conjugations of one verb.
	ListByVerb(ctx context.Context, verbID uuid.UUID) ([]*domain.Conjugation, error)
}

// SentenceStore defines persistence operations for generated sentences.
type SentenceStore interface {
	// Create saves a new sentence.
	Create(ctx context.Context, sentence *domain.Sentence) error

	// GetByID retrieves a sentence by its ID.
	// Returns ErrSentenceNotFound if no such sentence exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)

	// Random retrieves one sentence chosen uniformly from the table.
	// Returns ErrEmptyStore when the table is empty.
	Random(ctx context.Context) (*domain.Sentence, error)

	// List retrieves sentences ordered by creation time, newest first.
	List(ctx context.Context, limit, offset int) ([]*domain.Sentence, error)
}
