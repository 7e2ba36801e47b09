package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerb(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		verb, err := NewVerb("parler", AuxiliaryAvoir, "to speak")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, verb.ID)
		assert.Equal(t, "parler", verb.Infinitive)
		assert.Equal(t, AuxiliaryAvoir, verb.Auxiliary)
		assert.Equal(t, "to speak", verb.Translation)
		assert.False(t, verb.CreatedAt.IsZero())
	})

	t.Run("EmptyInfinitive", func(t *testing.T) {
		_, err := NewVerb("", AuxiliaryAvoir, "to speak")
		assert.ErrorIs(t, err, ErrVerbInfinitiveEmpty)
	})

	t.Run("BadAuxiliary", func(t *testing.T) {
		_, err := NewVerb("aller", "faire", "to go")
		assert.ErrorIs(t, err, ErrInvalidAuxiliary)
	})
}

func TestVerbValidate(t *testing.T) {
	verb, err := NewVerb("aller", AuxiliaryEtre, "to go")
	require.NoError(t, err)

	verb.ID = uuid.Nil
	assert.ErrorIs(t, verb.Validate(), ErrVerbIDEmpty)
}

func TestNewConjugation(t *testing.T) {
	verbID := uuid.New()
	forms := map[string]string{"je": "parle", "tu": "parles"}

	t.Run("Valid", func(t *testing.T) {
		c, err := NewConjugation(verbID, TensePresent, forms)
		require.NoError(t, err)
		assert.Equal(t, verbID, c.VerbID)
		assert.Equal(t, TensePresent, c.Tense)
		assert.Equal(t, forms, c.Forms)
	})

	t.Run("NilVerbID", func(t *testing.T) {
		_, err := NewConjugation(uuid.Nil, TensePresent, forms)
		assert.ErrorIs(t, err, ErrConjugationVerbIDEmpty)
	})

	t.Run("UnknownTense", func(t *testing.T) {
		_, err := NewConjugation(verbID, Tense("plus-que-parfait"), forms)
		assert.ErrorIs(t, err, ErrInvalidTense)
	})

	t.Run("EmptyForms", func(t *testing.T) {
		_, err := NewConjugation(verbID, TensePresent, nil)
		assert.ErrorIs(t, err, ErrConjugationFormsEmpty)
	})
}

func TestConjugationFormsJSON(t *testing.T) {
	c, err := NewConjugation(uuid.New(), TenseImparfait, map[string]string{"je": "parlais"})
	require.NoError(t, err)

	raw, err := c.FormsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"je": "parlais"}`, string(raw))
}
