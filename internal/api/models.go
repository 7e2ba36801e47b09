package api

import (
	"time"

	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/service"
)

// FeatureRequest selects one grammatical feature in a request body.
type FeatureRequest struct {
	Name      string `json:"name"      validate:"omitempty,max=32"`
	Incorrect bool   `json:"incorrect"`
	Random    bool   `json:"random"`
}

// GenerateSentenceRequest is the body of POST /api/v1/sentences.
type GenerateSentenceRequest struct {
	Infinitive      string         `json:"infinitive" validate:"required,min=2,max=64"`
	Auxiliary       string         `json:"auxiliary"  validate:"omitempty,oneof=avoir être"`
	Pronoun         string         `json:"pronoun"    validate:"omitempty,max=16"`
	Tense           string         `json:"tense"      validate:"omitempty,max=32"`
	DirectObject    FeatureRequest `json:"direct_object"`
	IndirectPronoun FeatureRequest `json:"indirect_pronoun"`
	Negation        FeatureRequest `json:"negation"`
	IsCorrect       bool           `json:"is_correct"`
}

// BatchProblemRequest is the body of POST /api/v1/problems/batch.
// Unlike sentence generation, the infinitive is optional: problems without
// one draw a random verb from the store.
type BatchProblemRequest struct {
	Workers  int `json:"workers"  validate:"required,gte=1,lte=16"`
	Quantity int `json:"quantity" validate:"required,gte=1,lte=100"`

	Infinitive        string         `json:"infinitive" validate:"omitempty,min=2,max=64"`
	Auxiliary         string         `json:"auxiliary"  validate:"omitempty,oneof=avoir être"`
	Pronoun           string         `json:"pronoun"    validate:"omitempty,max=16"`
	Tense             string         `json:"tense"      validate:"omitempty,max=32"`
	DirectObject      FeatureRequest `json:"direct_object"`
	IndirectPronoun   FeatureRequest `json:"indirect_pronoun"`
	Negation          FeatureRequest `json:"negation"`
	IsCorrect         bool           `json:"is_correct"`
	RandomCorrectness bool           `json:"random_correctness"`
}

func (r BatchProblemRequest) toService() service.ProblemRequest {
	return service.ProblemRequest{
		GenerateSentenceRequest: service.GenerateSentenceRequest{
			Infinitive:      r.Infinitive,
			Auxiliary:       r.Auxiliary,
			Pronoun:         r.Pronoun,
			Tense:           r.Tense,
			DirectObject:    service.FeatureOption(r.DirectObject),
			IndirectPronoun: service.FeatureOption(r.IndirectPronoun),
			Negation:        service.FeatureOption(r.Negation),
			IsCorrect:       r.IsCorrect,
		},
		RandomCorrectness: r.RandomCorrectness,
	}
}

// SentenceResponse is the wire form of a sentence.
type SentenceResponse struct {
	ID              string    `json:"id"`
	Infinitive      string    `json:"infinitive"`
	Auxiliary       string    `json:"auxiliary"`
	Pronoun         string    `json:"pronoun"`
	Tense           string    `json:"tense"`
	DirectObject    string    `json:"direct_object"`
	IndirectPronoun string    `json:"indirect_pronoun"`
	Negation        string    `json:"negation"`
	IsCorrect       bool      `json:"is_correct"`
	Content         string    `json:"content"`
	Translation     string    `json:"translation"`
	CreatedAt       time.Time `json:"created_at"`
}

// VerbResponse is the wire form of a verb.
type VerbResponse struct {
	ID          string    `json:"id"`
	Infinitive  string    `json:"infinitive"`
	Auxiliary   string    `json:"auxiliary"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
}

func sentenceToResponse(sentence *domain.Sentence) SentenceResponse {
	return SentenceResponse{
		ID:              sentence.ID.String(),
		Infinitive:      sentence.Infinitive,
		Auxiliary:       sentence.Auxiliary,
		Pronoun:         string(sentence.Pronoun),
		Tense:           string(sentence.Tense),
		DirectObject:    sentence.DirectObject.Name,
		IndirectPronoun: sentence.IndirectPronoun.Name,
		Negation:        sentence.Negation.Name,
		IsCorrect:       sentence.IsCorrect,
		Content:         sentence.Content,
		Translation:     sentence.Translation,
		CreatedAt:       sentence.CreatedAt,
	}
}

func verbToResponse(verb *domain.Verb) VerbResponse {
	return VerbResponse{
		ID:          verb.ID.String(),
		Infinitive:  verb.Infinitive,
		Auxiliary:   verb.Auxiliary,
		Translation: verb.Translation,
		CreatedAt:   verb.CreatedAt,
	}
}

func (r GenerateSentenceRequest) toService() service.GenerateSentenceRequest {
	return service.GenerateSentenceRequest{
		Infinitive:      r.Infinitive,
		Auxiliary:       r.Auxiliary,
		Pronoun:         r.Pronoun,
		Tense:           r.Tense,
		DirectObject:    service.FeatureOption(r.DirectObject),
		IndirectPronoun: service.FeatureOption(r.IndirectPronoun),
		Negation:        service.FeatureOption(r.Negation),
		IsCorrect:       r.IsCorrect,
	}
}
