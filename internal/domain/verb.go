package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Verb-specific validation errors
var (
	// ErrVerbIDEmpty is returned when a verb ID is empty or nil.
	ErrVerbIDEmpty = errors.New("verb ID cannot be empty")

	// ErrVerbInfinitiveEmpty is returned when a verb's infinitive is empty.
	ErrVerbInfinitiveEmpty = errors.New("verb infinitive cannot be empty")
)

// Verb represents a French verb with its auxiliary and English translation.
// The infinitive is the natural key under which verbs are upserted.
type Verb struct {
	ID          uuid.UUID `json:"id"`
	Infinitive  string    `json:"infinitive"`
	Auxiliary   string    `json:"auxiliary"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewVerb creates a new Verb with a generated ID and timestamps.
// Returns an error if validation fails.
func NewVerb(infinitive, auxiliary, translation string) (*Verb, error) {
	verb := &Verb{
		ID:          uuid.New(),
		Infinitive:  infinitive,
		Auxiliary:   auxiliary,
		Translation: translation,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := verb.Validate(); err != nil {
		return nil, err
	}

	return verb, nil
}

// Validate checks if the Verb has valid data.
func (v *Verb) Validate() error {
	if v.ID == uuid.Nil {
		return ErrVerbIDEmpty
	}

	if v.Infinitive == "" {
		return ErrVerbInfinitiveEmpty
	}

	if err := ValidateAuxiliary(v.Auxiliary); err != nil {
		return err
	}

	return nil
}

// Conjugation-specific validation errors
var (
	// ErrConjugationIDEmpty is returned when a conjugation ID is empty or nil.
	ErrConjugationIDEmpty = errors.New("conjugation ID cannot be empty")

	// ErrConjugationVerbIDEmpty is returned when a conjugation's verb ID is empty or nil.
	ErrConjugationVerbIDEmpty = errors.New("conjugation verb ID cannot be empty")

	// ErrConjugationFormsEmpty is returned when a conjugation carries no forms.
	ErrConjugationFormsEmpty = errors.New("conjugation forms cannot be empty")
)

// Conjugation holds the conjugated forms of one verb in one tense, keyed by
// subject pronoun. Forms are stored as a JSONB structure so irregular or
// defective paradigms need no schema change. The (verb, tense) pair is the
// natural key under which conjugations are upserted.
type Conjugation struct {
	ID        uuid.UUID         `json:"id"`
	VerbID    uuid.UUID         `json:"verb_id"`
	Tense     Tense             `json:"tense"`
	Forms     map[string]string `json:"forms"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewConjugation creates a new Conjugation with a generated ID and timestamps.
// Returns an error if validation fails.
func NewConjugation(verbID uuid.UUID, tense Tense, forms map[string]string) (*Conjugation, error) {
	conjugation := &Conjugation{
		ID:        uuid.New(),
		VerbID:    verbID,
		Tense:     tense,
		Forms:     forms,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := conjugation.Validate(); err != nil {
		return nil, err
	}

	return conjugation, nil
}

// Validate checks if the Conjugation has valid data.
func (c *Conjugation) Validate() error {
	if c.ID == uuid.Nil {
		return ErrConjugationIDEmpty
	}

	if c.VerbID == uuid.Nil {
		return ErrConjugationVerbIDEmpty
	}

	if _, err := ParseTense(string(c.Tense)); err != nil {
		return err
	}

	if len(c.Forms) == 0 {
		return ErrConjugationFormsEmpty
	}

	return nil
}

// FormsJSON marshals the forms map for JSONB storage.
func (c *Conjugation) FormsJSON() ([]byte, error) {
	return json.Marshal(c.Forms)
}
