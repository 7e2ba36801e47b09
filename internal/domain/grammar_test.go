package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePronoun(t *testing.T) {
	t.Run("AllCanonicalPronouns", func(t *testing.T) {
		for _, p := range Pronouns() {
			got, err := ParsePronoun(string(p))
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"", "on", "JE", "moi"} {
			_, err := ParsePronoun(raw)
			assert.ErrorIs(t, err, ErrInvalidPronoun, "raw=%q", raw)
		}
	})
}

func TestParseTense(t *testing.T) {
	t.Run("AllCanonicalTenses", func(t *testing.T) {
		for _, tense := range Tenses() {
			got, err := ParseTense(string(tense))
			require.NoError(t, err)
			assert.Equal(t, tense, got)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"", "subjonctif", "passe compose", "present"} {
			_, err := ParseTense(raw)
			assert.ErrorIs(t, err, ErrInvalidTense, "raw=%q", raw)
		}
	})
}

func TestValidateAuxiliary(t *testing.T) {
	assert.NoError(t, ValidateAuxiliary(AuxiliaryAvoir))
	assert.NoError(t, ValidateAuxiliary(AuxiliaryEtre))
	assert.ErrorIs(t, ValidateAuxiliary("etre"), ErrInvalidAuxiliary)
	assert.ErrorIs(t, ValidateAuxiliary(""), ErrInvalidAuxiliary)
}
