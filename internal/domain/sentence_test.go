package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrault/phraseur/internal/feature"
)

func validSentence(t *testing.T) *Sentence {
	t.Helper()
	s, err := NewSentence(
		"manger", AuxiliaryAvoir, PronounJe, TensePasseCompose,
		feature.Value{Kind: feature.KindDirectObject, Name: "feminine"},
		feature.None(feature.KindIndirectPronoun),
		feature.Value{Kind: feature.KindNegation, Name: "pas"},
		true,
	)
	require.NoError(t, err)
	return s
}

func TestNewSentence(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s := validSentence(t)
		assert.NotEqual(t, uuid.Nil, s.ID)
		assert.Empty(t, s.Content, "content is empty until a reply is recorded")
		assert.Empty(t, s.Translation)
		assert.True(t, s.IsCorrect)
	})

	t.Run("EmptyInfinitive", func(t *testing.T) {
		_, err := NewSentence(
			"", AuxiliaryAvoir, PronounJe, TensePresent,
			feature.None(feature.KindDirectObject),
			feature.None(feature.KindIndirectPronoun),
			feature.None(feature.KindNegation),
			true,
		)
		assert.ErrorIs(t, err, ErrSentenceInfinitiveEmpty)
	})

	t.Run("BadPronoun", func(t *testing.T) {
		_, err := NewSentence(
			"manger", AuxiliaryAvoir, Pronoun("on"), TensePresent,
			feature.None(feature.KindDirectObject),
			feature.None(feature.KindIndirectPronoun),
			feature.None(feature.KindNegation),
			true,
		)
		assert.ErrorIs(t, err, ErrInvalidPronoun)
	})

	t.Run("FeatureInWrongSlot", func(t *testing.T) {
		_, err := NewSentence(
			"manger", AuxiliaryAvoir, PronounJe, TensePresent,
			feature.None(feature.KindNegation),
			feature.None(feature.KindIndirectPronoun),
			feature.None(feature.KindNegation),
			true,
		)
		assert.ErrorIs(t, err, ErrSentenceFeatureKind)
	})
}

func TestSentenceSetContent(t *testing.T) {
	s := validSentence(t)
	before := s.UpdatedAt

	s.SetContent("Je ne l'ai pas mangée.", "I did not eat it.")

	assert.Equal(t, "Je ne l'ai pas mangée.", s.Content)
	assert.Equal(t, "I did not eat it.", s.Translation)
	assert.False(t, s.UpdatedAt.Before(before))
}
