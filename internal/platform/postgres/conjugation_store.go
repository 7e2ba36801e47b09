package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/store"
)

// PostgreSQL error codes
const pgForeignKeyViolationCode = "23503"

// PostgresConjugationStore implements the store.ConjugationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresConjugationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresConjugationStore creates a new PostgreSQL implementation of the
// ConjugationStore interface. If logger is nil, a default logger will be used.
func NewPostgresConjugationStore(db store.DBTX, logger *slog.Logger) *PostgresConjugationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresConjugationStore{
		db:     db,
		logger: logger.With(slog.String("component", "conjugation_store")),
	}
}

// Ensure PostgresConjugationStore implements store.ConjugationStore interface
var _ store.ConjugationStore = (*PostgresConjugationStore)(nil)

// Upsert implements store.ConjugationStore.Upsert.
// A natural-key collision on (verb_id, tense) is resolved by update-in-place.
// Returns store.ErrInvalidEntity if the verb ID does not exist.
func (s *PostgresConjugationStore) Upsert(ctx context.Context, conjugation *domain.Conjugation) error {
	if err := conjugation.Validate(); err != nil {
		s.logger.Warn("conjugation validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("verb_id", conjugation.VerbID.String()),
			slog.String("tense", string(conjugation.Tense)))
		return err
	}

	formsJSON, err := conjugation.FormsJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal conjugation forms: %w", err)
	}

	query := `
		INSERT INTO conjugations (id, verb_id, tense, forms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (verb_id, tense) DO UPDATE
		SET forms = EXCLUDED.forms,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err = s.db.QueryRowContext(
		ctx,
		query,
		conjugation.ID,
		conjugation.VerbID,
		string(conjugation.Tense),
		formsJSON,
		conjugation.CreatedAt,
		conjugation.UpdatedAt,
	).Scan(&conjugation.ID, &conjugation.CreatedAt, &inserted)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode {
			s.logger.Warn("foreign key violation during conjugation upsert",
				slog.String("error", err.Error()),
				slog.String("verb_id", conjugation.VerbID.String()))
			return fmt.Errorf("%w: verb with ID %s not found",
				store.ErrInvalidEntity, conjugation.VerbID)
		}

		s.logger.Error("failed to upsert conjugation",
			slog.String("error", err.Error()),
			slog.String("verb_id", conjugation.VerbID.String()),
			slog.String("tense", string(conjugation.Tense)))
		return err
	}

	if inserted {
		s.logger.Debug("conjugation created",
			slog.String("conjugation_id", conjugation.ID.String()),
			slog.String("tense", string(conjugation.Tense)))
	} else {
		s.logger.Debug("conjugation updated in place",
			slog.String("conjugation_id", conjugation.ID.String()),
			slog.String("tense", string(conjugation.Tense)))
	}

	return nil
}

// GetByVerbAndTense implements store.ConjugationStore.GetByVerbAndTense.
// Returns store.ErrConjugationNotFound if no such conjugation exists.
func (s *PostgresConjugationStore) GetByVerbAndTense(
	ctx context.Context,
	verbID uuid.UUID,
	tense domain.Tense,
) (*domain.Conjugation, error) {
	query := `
		SELECT id, verb_id, tense, forms, created_at, updated_at
		FROM conjugations
		WHERE verb_id = $1 AND tense = $2
	`

	conjugation, err := scanConjugation(s.db.QueryRowContext(ctx, query, verbID, string(tense)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrConjugationNotFound
		}
		s.logger.Error("failed to get conjugation",
			slog.String("error", err.Error()),
			slog.String("verb_id", verbID.String()),
			slog.String("tense", string(tense)))
		return nil, err
	}

	return conjugation, nil
}

// ListByVerb implements store.ConjugationStore.ListByVerb.
func (s *PostgresConjugationStore) ListByVerb(
	ctx context.Context,
	verbID uuid.UUID,
) ([]*domain.Conjugation, error) {
	query := `
		SELECT id, verb_id, tense, forms, created_at, updated_at
		FROM conjugations
		WHERE verb_id = $1
		ORDER BY tense
	`

	rows, err := s.db.QueryContext(ctx, query, verbID)
	if err != nil {
		s.logger.Error("failed to list conjugations",
			slog.String("error", err.Error()),
			slog.String("verb_id", verbID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var conjugations []*domain.Conjugation
	for rows.Next() {
		conjugation, err := scanConjugation(rows)
		if err != nil {
			return nil, err
		}
		conjugations = append(conjugations, conjugation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conjugations, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConjugation(row rowScanner) (*domain.Conjugation, error) {
	var (
		conjugation domain.Conjugation
		tense       string
		formsJSON   []byte
	)

	err := row.Scan(
		&conjugation.ID,
		&conjugation.VerbID,
		&tense,
		&formsJSON,
		&conjugation.CreatedAt,
		&conjugation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	conjugation.Tense = domain.Tense(tense)

	if err := json.Unmarshal(formsJSON, &conjugation.Forms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conjugation forms: %w", err)
	}

	return &conjugation, nil
}
