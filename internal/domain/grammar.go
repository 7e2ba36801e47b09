package domain

import (
	"errors"
	"fmt"
)

// Grammar validation errors
var (
	// ErrInvalidPronoun is returned when a subject pronoun is not one of the
	// recognized French subject pronouns.
	ErrInvalidPronoun = errors.New("invalid subject pronoun")

	// ErrInvalidTense is returned when a tense is not one of the supported tenses.
	ErrInvalidTense = errors.New("invalid tense")

	// ErrInvalidAuxiliary is returned when an auxiliary is neither avoir nor être.
	ErrInvalidAuxiliary = errors.New("invalid auxiliary")
)

// Pronoun is a French subject pronoun.
type Pronoun string

// Supported subject pronouns.
const (
	PronounJe    Pronoun = "je"
	PronounTu    Pronoun = "tu"
	PronounIl    Pronoun = "il"
	PronounElle  Pronoun = "elle"
	PronounNous  Pronoun = "nous"
	PronounVous  Pronoun = "vous"
	PronounIls   Pronoun = "ils"
	PronounElles Pronoun = "elles"
)

// Pronouns lists the supported subject pronouns in canonical order.
func Pronouns() []Pronoun {
	return []Pronoun{
		PronounJe, PronounTu, PronounIl, PronounElle,
		PronounNous, PronounVous, PronounIls, PronounElles,
	}
}

// ParsePronoun validates and converts a raw string into a Pronoun.
func ParsePronoun(raw string) (Pronoun, error) {
	for _, p := range Pronouns() {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPronoun, raw)
}

// Tense is a French verb tense.
type Tense string

// Supported tenses.
const (
	TensePresent      Tense = "présent"
	TensePasseCompose Tense = "passé composé"
	TenseImparfait    Tense = "imparfait"
	TenseFuturSimple  Tense = "futur simple"
	TenseConditionnel Tense = "conditionnel présent"
)

// Tenses lists the supported tenses in canonical order.
func Tenses() []Tense {
	return []Tense{
		TensePresent, TensePasseCompose, TenseImparfait,
		TenseFuturSimple, TenseConditionnel,
	}
}

// ParseTense validates and converts a raw string into a Tense.
func ParseTense(raw string) (Tense, error) {
	for _, t := range Tenses() {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTense, raw)
}

// Auxiliary values used in compound tenses.
const (
	AuxiliaryAvoir = "avoir"
	AuxiliaryEtre  = "être"
)

// ValidateAuxiliary checks that the auxiliary is avoir or être.
func ValidateAuxiliary(aux string) error {
	if aux != AuxiliaryAvoir && aux != AuxiliaryEtre {
		return fmt.Errorf("%w: %q", ErrInvalidAuxiliary, aux)
	}
	return nil
}
