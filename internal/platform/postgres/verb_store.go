package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/store"
)

// PostgresVerbStore implements the store.VerbStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVerbStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVerbStore creates a new PostgreSQL implementation of the
// VerbStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresVerbStore(db store.DBTX, logger *slog.Logger) *PostgresVerbStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVerbStore{
		db:     db,
		logger: logger.With(slog.String("component", "verb_store")),
	}
}

// Ensure PostgresVerbStore implements store.VerbStore interface
var _ store.VerbStore = (*PostgresVerbStore)(nil)

// Upsert implements store.VerbStore.Upsert.
// A natural-key collision on the infinitive is resolved by update-in-place;
// whether the row was inserted or updated is logged as a diagnostic.
func (s *PostgresVerbStore) Upsert(ctx context.Context, verb *domain.Verb) error {
	if err := verb.Validate(); err != nil {
		s.logger.Warn("verb validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("infinitive", verb.Infinitive))
		return err
	}

	// xmax = 0 only holds for freshly inserted rows, which distinguishes
	// insert from update without a second query.
	query := `
		INSERT INTO verbs (id, infinitive, auxiliary, translation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (infinitive) DO UPDATE
		SET auxiliary = EXCLUDED.auxiliary,
		    translation = EXCLUDED.translation,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err := s.db.QueryRowContext(
		ctx,
		query,
		verb.ID,
		verb.Infinitive,
		verb.Auxiliary,
		verb.Translation,
		verb.CreatedAt,
		verb.UpdatedAt,
	).Scan(&verb.ID, &verb.CreatedAt, &inserted)

	if err != nil {
		s.logger.Error("failed to upsert verb",
			slog.String("error", err.Error()),
			slog.String("infinitive", verb.Infinitive))
		return err
	}

	if inserted {
		s.logger.Info("verb created",
			slog.String("verb_id", verb.ID.String()),
			slog.String("infinitive", verb.Infinitive))
	} else {
		s.logger.Info("verb updated in place",
			slog.String("verb_id", verb.ID.String()),
			slog.String("infinitive", verb.Infinitive))
	}

	return nil
}

// GetByInfinitive implements store.VerbStore.GetByInfinitive.
// Returns store.ErrVerbNotFound if the verb does not exist.
func (s *PostgresVerbStore) GetByInfinitive(ctx context.Context, infinitive string) (*domain.Verb, error) {
	query := `
		SELECT id, infinitive, auxiliary, translation, created_at, updated_at
		FROM verbs
		WHERE infinitive = $1
	`

	var verb domain.Verb
	err := s.db.QueryRowContext(ctx, query, infinitive).Scan(
		&verb.ID,
		&verb.Infinitive,
		&verb.Auxiliary,
		&verb.Translation,
		&verb.CreatedAt,
		&verb.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("verb not found", slog.String("infinitive", infinitive))
			return nil, store.ErrVerbNotFound
		}
		s.logger.Error("failed to get verb by infinitive",
			slog.String("error", err.Error()),
			slog.String("infinitive", infinitive))
		return nil, err
	}

	return &verb, nil
}

// Random implements store.VerbStore.Random.
// Returns store.ErrEmptyStore when the table is empty.
func (s *PostgresVerbStore) Random(ctx context.Context) (*domain.Verb, error) {
	query := `
		SELECT id, infinitive, auxiliary, translation, created_at, updated_at
		FROM verbs
		ORDER BY random()
		LIMIT 1
	`

	var verb domain.Verb
	err := s.db.QueryRowContext(ctx, query).Scan(
		&verb.ID,
		&verb.Infinitive,
		&verb.Auxiliary,
		&verb.Translation,
		&verb.CreatedAt,
		&verb.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEmptyStore
		}
		s.logger.Error("failed to get random verb", slog.String("error", err.Error()))
		return nil, err
	}

	return &verb, nil
}
