package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/feature"
	"github.com/aperrault/phraseur/internal/store"
)

// PostgresSentenceStore implements the store.SentenceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSentenceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSentenceStore creates a new PostgreSQL implementation of the
// SentenceStore interface. If logger is nil, a default logger will be used.
func NewPostgresSentenceStore(db store.DBTX, logger *slog.Logger) *PostgresSentenceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSentenceStore{
		db:     db,
		logger: logger.With(slog.String("component", "sentence_store")),
	}
}

// Ensure PostgresSentenceStore implements store.SentenceStore interface
var _ store.SentenceStore = (*PostgresSentenceStore)(nil)

// Create implements store.SentenceStore.Create.
func (s *PostgresSentenceStore) Create(ctx context.Context, sentence *domain.Sentence) error {
	if err := sentence.Validate(); err != nil {
		s.logger.Warn("sentence validation failed during create",
			slog.String("error", err.Error()),
			slog.String("sentence_id", sentence.ID.String()))
		return err
	}

	query := `
		INSERT INTO sentences (
			id, infinitive, auxiliary, pronoun, tense,
			direct_object, indirect_pronoun, negation,
			is_correct, content, translation, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		sentence.ID,
		sentence.Infinitive,
		sentence.Auxiliary,
		string(sentence.Pronoun),
		string(sentence.Tense),
		sentence.DirectObject.Name,
		sentence.IndirectPronoun.Name,
		sentence.Negation.Name,
		sentence.IsCorrect,
		sentence.Content,
		sentence.Translation,
		sentence.CreatedAt,
		sentence.UpdatedAt,
	)

	if err != nil {
		s.logger.Error("failed to create sentence",
			slog.String("error", err.Error()),
			slog.String("sentence_id", sentence.ID.String()))
		return err
	}

	s.logger.Info("sentence created",
		slog.String("sentence_id", sentence.ID.String()),
		slog.String("infinitive", sentence.Infinitive))
	return nil
}

// GetByID implements store.SentenceStore.GetByID.
// Returns store.ErrSentenceNotFound if the sentence does not exist.
func (s *PostgresSentenceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	query := selectSentenceColumns + ` WHERE id = $1`

	sentence, err := scanSentence(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("sentence not found", slog.String("sentence_id", id.String()))
			return nil, store.ErrSentenceNotFound
		}
		s.logger.Error("failed to get sentence by ID",
			slog.String("error", err.Error()),
			slog.String("sentence_id", id.String()))
		return nil, err
	}

	return sentence, nil
}

// Random implements store.SentenceStore.Random.
// Returns store.ErrEmptyStore when the table is empty.
func (s *PostgresSentenceStore) Random(ctx context.Context) (*domain.Sentence, error) {
	query := selectSentenceColumns + ` ORDER BY random() LIMIT 1`

	sentence, err := scanSentence(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEmptyStore
		}
		s.logger.Error("failed to get random sentence", slog.String("error", err.Error()))
		return nil, err
	}

	return sentence, nil
}

// List implements store.SentenceStore.List.
func (s *PostgresSentenceStore) List(ctx context.Context, limit, offset int) ([]*domain.Sentence, error) {
	query := selectSentenceColumns + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		s.logger.Error("failed to list sentences", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sentences []*domain.Sentence
	for rows.Next() {
		sentence, err := scanSentence(rows)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, sentence)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sentences, nil
}

const selectSentenceColumns = `
	SELECT id, infinitive, auxiliary, pronoun, tense,
	       direct_object, indirect_pronoun, negation,
	       is_correct, content, translation, created_at, updated_at
	FROM sentences`

func scanSentence(row rowScanner) (*domain.Sentence, error) {
	var (
		sentence                                domain.Sentence
		pronoun, tense                          string
		directObject, indirectPronoun, negation string
	)

	err := row.Scan(
		&sentence.ID,
		&sentence.Infinitive,
		&sentence.Auxiliary,
		&pronoun,
		&tense,
		&directObject,
		&indirectPronoun,
		&negation,
		&sentence.IsCorrect,
		&sentence.Content,
		&sentence.Translation,
		&sentence.CreatedAt,
		&sentence.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sentence.Pronoun = domain.Pronoun(pronoun)
	sentence.Tense = domain.Tense(tense)
	sentence.DirectObject = feature.Value{Kind: feature.KindDirectObject, Name: directObject}
	sentence.IndirectPronoun = feature.Value{Kind: feature.KindIndirectPronoun, Name: indirectPronoun}
	sentence.Negation = feature.Value{Kind: feature.KindNegation, Name: negation}

	return &sentence, nil
}
