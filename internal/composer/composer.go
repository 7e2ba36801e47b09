package composer

import (
	"fmt"
	"strings"

	"github.com/aperrault/phraseur/internal/domain"
	"github.com/aperrault/phraseur/internal/feature"
)

// PromptSpec carries everything the composer needs to build one generation
// prompt: the verb properties and the resolved feature selections, flags
// included, since the wording of a clause depends on how the feature was
// requested, not only on its value.
type PromptSpec struct {
	Infinitive      string
	Auxiliary       string
	Pronoun         domain.Pronoun
	Tense           domain.Tense
	DirectObject    feature.Selected
	IndirectPronoun feature.Selected
	Negation        feature.Selected
	IsCorrect       bool
}

// subject wording per feature kind, used by the three-way clause branch.
var featureSubjects = map[feature.Kind]string{
	feature.KindDirectObject:    "direct object pronoun",
	feature.KindIndirectPronoun: "indirect object pronoun",
	feature.KindNegation:        "negation",
}

// FeaturePrompt produces the single clause describing one grammatical feature.
//
// Three-way branch: a concrete value yields a "must have a correct/incorrect X"
// clause, the none sentinel yields a "must not contain X" clause, and a
// random selection yields a permissive clause.
func FeaturePrompt(selected feature.Selected, subject string) string {
	switch {
	case selected.Random:
		return fmt.Sprintf("The sentence may contain any %s, or none at all.", subject)
	case selected.Value.IsNone():
		return fmt.Sprintf("The sentence must not contain a %s.", subject)
	case selected.Incorrect:
		return fmt.Sprintf("The sentence must have an incorrect %s: it should use %s where that is grammatically wrong.",
			subject, selected.Value.Fragment())
	default:
		return fmt.Sprintf("The sentence must have a correct %s: %s.",
			subject, selected.Value.Fragment())
	}
}

// GenerateSentencePrompt builds the full generation instruction for a spec.
//
// Clauses are joined in a fixed order: direct object, indirect pronoun,
// pronoun ordering, negation and its elision rule, verb properties, the
// verb-complement rule, the preposition-agreement rule, the correctness
// directive, the translation-or-reason directive, the negation-detection
// instruction, the output schema, per-feature field instructions, the
// elision-correctness rule, and a catch-all formatting rule.
func GenerateSentencePrompt(spec PromptSpec) string {
	var clauses []string

	clauses = append(clauses, "Write a French practice sentence.")
	clauses = append(clauses, FeaturePrompt(spec.DirectObject, featureSubjects[feature.KindDirectObject]))
	clauses = append(clauses, FeaturePrompt(spec.IndirectPronoun, featureSubjects[feature.KindIndirectPronoun]))
	clauses = append(clauses,
		"When both a direct and an indirect object pronoun are present, place them in the standard French order before the verb.")
	clauses = append(clauses, FeaturePrompt(spec.Negation, featureSubjects[feature.KindNegation]))
	clauses = append(clauses,
		"When a negation is present, elide \"ne\" to \"n'\" before a vowel or mute h.")
	clauses = append(clauses, fmt.Sprintf(
		"The sentence must use the verb %q with the auxiliary %q, conjugated in the %s, with the subject pronoun %q.",
		spec.Infinitive, spec.Auxiliary, spec.Tense, spec.Pronoun))
	clauses = append(clauses,
		"Give the verb a plausible complement so the sentence reads naturally; do not leave the verb bare.")
	clauses = append(clauses,
		"When the verb governs a preposition, make the preposition agree with the complement that follows it.")

	if spec.IsCorrect {
		clauses = append(clauses,
			"Apart from any feature explicitly requested as incorrect, the sentence must be grammatically correct.")
	} else {
		clauses = append(clauses,
			"The sentence as a whole must be grammatically incorrect in exactly the requested features.")
	}

	clauses = append(clauses,
		"Provide an English translation of the sentence; if the sentence is incorrect, translate the intended meaning and state the reason for the error instead of a literal translation.")
	clauses = append(clauses,
		"Report whether the sentence you produced actually contains a negation, regardless of what was requested.")
	clauses = append(clauses, fmt.Sprintf(
		"Reply with a single JSON object containing exactly these string fields: %s.",
		strings.Join(GenerationReplyFields, ", ")))
	clauses = append(clauses, fmt.Sprintf(
		"Set %q to the direct object pronoun kind used (%s), %q to the indirect object pronoun kind used (%s), and %q to the negation word used (%s); use %q when the feature is absent.",
		"direct_object", memberList(feature.KindDirectObject),
		"indirect_pronoun", memberList(feature.KindIndirectPronoun),
		"negation", memberList(feature.KindNegation),
		feature.NoneName))
	clauses = append(clauses,
		"Set \"is_correct\" to \"true\" or \"false\" according to whether the sentence is grammatically correct.")
	clauses = append(clauses,
		"Every elision in the sentence must be orthographically correct even when the sentence is otherwise incorrect.")
	clauses = append(clauses,
		"Reply with the JSON object only: no prose, no code fences, no trailing commentary.")

	return strings.Join(clauses, " ")
}

// ValidateSentencePrompt builds a prompt asking the model to judge whether a
// sentence is grammatically correct.
func ValidateSentencePrompt(sentence string) string {
	var clauses []string

	clauses = append(clauses, fmt.Sprintf("Judge the grammatical correctness of the French sentence %q.", sentence))
	clauses = append(clauses,
		"Reply with a single JSON object containing exactly these string fields: sentence, translation, is_correct, negation, direct_object, indirect_pronoun.")
	clauses = append(clauses,
		"Set \"is_correct\" to \"true\" or \"false\"; if incorrect, the translation field must state the reason.")
	clauses = append(clauses,
		"Reply with the JSON object only: no prose, no code fences, no trailing commentary.")

	return strings.Join(clauses, " ")
}

// CorrectSentencePrompt builds a prompt asking the model to produce a
// corrected version of a sentence.
func CorrectSentencePrompt(sentence string) string {
	var clauses []string

	clauses = append(clauses, fmt.Sprintf("Correct the French sentence %q, changing as little as possible.", sentence))
	clauses = append(clauses, fmt.Sprintf(
		"Reply with a single JSON object containing exactly these string fields: %s.",
		strings.Join(CorrectionReplyFields, ", ")))
	clauses = append(clauses,
		"Reply with the JSON object only: no prose, no code fences, no trailing commentary.")

	return strings.Join(clauses, " ")
}

// DownloadVerbPrompt builds a prompt asking the model for a verb's auxiliary,
// translation, and full conjugation tables for the supported tenses.
func DownloadVerbPrompt(infinitive string) string {
	tenses := make([]string, 0, len(domain.Tenses()))
	for _, t := range domain.Tenses() {
		tenses = append(tenses, string(t))
	}

	pronouns := make([]string, 0, len(domain.Pronouns()))
	for _, p := range domain.Pronouns() {
		pronouns = append(pronouns, string(p))
	}

	var clauses []string

	clauses = append(clauses, fmt.Sprintf("Describe the French verb %q.", infinitive))
	clauses = append(clauses, fmt.Sprintf(
		"Reply with a single JSON object with the string fields \"infinitive\", \"auxiliary\" (either %q or %q) and \"translation\" (English), plus a \"conjugations\" object.",
		domain.AuxiliaryAvoir, domain.AuxiliaryEtre))
	clauses = append(clauses, fmt.Sprintf(
		"The \"conjugations\" object must have one key per tense (%s), each mapping every subject pronoun (%s) to the conjugated form.",
		strings.Join(tenses, ", "), strings.Join(pronouns, ", ")))
	clauses = append(clauses,
		"Reply with the JSON object only: no prose, no code fences, no trailing commentary.")

	return strings.Join(clauses, " ")
}

// memberList renders a kind's concrete member names for the field-setting
// instructions.
func memberList(kind feature.Kind) string {
	var names []string
	for _, member := range feature.Members(kind) {
		if member.IsNone() {
			continue
		}
		names = append(names, member.Name)
	}
	return strings.Join(names, ", ")
}
