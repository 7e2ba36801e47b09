package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aperrault/phraseur/internal/feature"
)

// Sentence-specific validation errors
var (
	// ErrSentenceIDEmpty is returned when a sentence ID is empty or nil.
	ErrSentenceIDEmpty = errors.New("sentence ID cannot be empty")

	// ErrSentenceInfinitiveEmpty is returned when a sentence's infinitive is empty.
	ErrSentenceInfinitiveEmpty = errors.New("sentence infinitive cannot be empty")

	// ErrSentenceFeatureKind is returned when a feature value is attached under
	// the wrong kind (e.g. a negation member in the direct object slot).
	ErrSentenceFeatureKind = errors.New("feature value has wrong kind for its slot")
)

// Sentence is the record of one generated practice sentence: the grammatical
// properties it was requested with, and, once a model reply has been parsed,
// the realized French content and its English translation.
type Sentence struct {
	ID              uuid.UUID     `json:"id"`
	Infinitive      string        `json:"infinitive"`
	Auxiliary       string        `json:"auxiliary"`
	Pronoun         Pronoun       `json:"pronoun"`
	Tense           Tense         `json:"tense"`
	DirectObject    feature.Value `json:"direct_object"`
	IndirectPronoun feature.Value `json:"indirect_pronoun"`
	Negation        feature.Value `json:"negation"`
	IsCorrect       bool          `json:"is_correct"`
	Content         string        `json:"content"`
	Translation     string        `json:"translation"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NewSentence creates a Sentence with a generated ID and timestamps, before
// any model reply has been received: Content and Translation start empty.
// Returns an error if validation fails.
func NewSentence(
	infinitive, auxiliary string,
	pronoun Pronoun,
	tense Tense,
	directObject, indirectPronoun, negation feature.Value,
	isCorrect bool,
) (*Sentence, error) {
	sentence := &Sentence{
		ID:              uuid.New(),
		Infinitive:      infinitive,
		Auxiliary:       auxiliary,
		Pronoun:         pronoun,
		Tense:           tense,
		DirectObject:    directObject,
		IndirectPronoun: indirectPronoun,
		Negation:        negation,
		IsCorrect:       isCorrect,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	if err := sentence.Validate(); err != nil {
		return nil, err
	}

	return sentence, nil
}

// Validate checks if the Sentence has valid data.
func (s *Sentence) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSentenceIDEmpty
	}

	if s.Infinitive == "" {
		return ErrSentenceInfinitiveEmpty
	}

	if err := ValidateAuxiliary(s.Auxiliary); err != nil {
		return err
	}

	if _, err := ParsePronoun(string(s.Pronoun)); err != nil {
		return err
	}

	if _, err := ParseTense(string(s.Tense)); err != nil {
		return err
	}

	if s.DirectObject.Kind != feature.KindDirectObject ||
		s.IndirectPronoun.Kind != feature.KindIndirectPronoun ||
		s.Negation.Kind != feature.KindNegation {
		return ErrSentenceFeatureKind
	}

	return nil
}

// SetContent records the realized sentence and translation from a parsed
// model reply and updates the UpdatedAt timestamp.
func (s *Sentence) SetContent(content, translation string) {
	s.Content = content
	s.Translation = translation
	s.UpdatedAt = time.Now().UTC()
}
