package composer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GenerationReplyFields is the exact field set of a generation reply, in the
// order the output-schema clause lists them.
var GenerationReplyFields = []string{
	"sentence", "translation", "is_correct", "negation", "direct_object", "indirect_pronoun",
}

// CorrectionReplyFields is the exact field set of a correction reply.
var CorrectionReplyFields = []string{"corrected_sentence", "corrected_translation"}

// GenerationReply is the parsed form of a sentence-generation reply.
// All fields are mandatory in the wire format.
type GenerationReply struct {
	Sentence        string `json:"sentence"`
	Translation     string `json:"translation"`
	IsCorrect       string `json:"is_correct"`
	Negation        string `json:"negation"`
	DirectObject    string `json:"direct_object"`
	IndirectPronoun string `json:"indirect_pronoun"`
}

// CorrectionReply is the parsed form of a sentence-correction reply.
type CorrectionReply struct {
	CorrectedSentence    string `json:"corrected_sentence"`
	CorrectedTranslation string `json:"corrected_translation"`
}

// VerbReply is the parsed form of a verb-download reply.
type VerbReply struct {
	Infinitive   string                       `json:"infinitive"`
	Auxiliary    string                       `json:"auxiliary"`
	Translation  string                       `json:"translation"`
	Conjugations map[string]map[string]string `json:"conjugations"`
}

// ParseReply decodes a raw model reply into a flat string mapping after
// stripping any code fencing. Returns a *MalformedReplyError carrying the raw
// text when the reply is not a JSON object of string values.
func ParseReply(raw string) (map[string]string, error) {
	stripped := stripCodeFence(raw)

	var fields map[string]string
	if err := json.Unmarshal([]byte(stripped), &fields); err != nil {
		return nil, &MalformedReplyError{Raw: raw, Reason: err.Error()}
	}

	return fields, nil
}

// ParseGenerationReply decodes and checks a sentence-generation reply.
// Every field in GenerationReplyFields must be present.
func ParseGenerationReply(raw string) (*GenerationReply, error) {
	fields, err := ParseReply(raw)
	if err != nil {
		return nil, err
	}

	if err := requireFields(raw, fields, GenerationReplyFields); err != nil {
		return nil, err
	}

	return &GenerationReply{
		Sentence:        fields["sentence"],
		Translation:     fields["translation"],
		IsCorrect:       fields["is_correct"],
		Negation:        fields["negation"],
		DirectObject:    fields["direct_object"],
		IndirectPronoun: fields["indirect_pronoun"],
	}, nil
}

// ParseCorrectionReply decodes and checks a sentence-correction reply.
func ParseCorrectionReply(raw string) (*CorrectionReply, error) {
	fields, err := ParseReply(raw)
	if err != nil {
		return nil, err
	}

	if err := requireFields(raw, fields, CorrectionReplyFields); err != nil {
		return nil, err
	}

	return &CorrectionReply{
		CorrectedSentence:    fields["corrected_sentence"],
		CorrectedTranslation: fields["corrected_translation"],
	}, nil
}

// ParseVerbReply decodes and checks a verb-download reply. Unlike the flat
// sentence replies, the conjugations field is a nested object.
func ParseVerbReply(raw string) (*VerbReply, error) {
	stripped := stripCodeFence(raw)

	var reply VerbReply
	if err := json.Unmarshal([]byte(stripped), &reply); err != nil {
		return nil, &MalformedReplyError{Raw: raw, Reason: err.Error()}
	}

	if reply.Infinitive == "" || reply.Auxiliary == "" || reply.Translation == "" {
		return nil, &MalformedReplyError{Raw: raw, Reason: "missing verb field"}
	}

	if len(reply.Conjugations) == 0 {
		return nil, &MalformedReplyError{Raw: raw, Reason: "missing field \"conjugations\""}
	}

	return &reply, nil
}

// IsCorrect interprets the reply's is_correct field.
func (r *GenerationReply) IsCorrectValue() bool {
	return strings.EqualFold(strings.TrimSpace(r.IsCorrect), "true")
}

// requireFields checks that every mandatory field is present.
func requireFields(raw string, fields map[string]string, required []string) error {
	for _, name := range required {
		if _, ok := fields[name]; !ok {
			return &MalformedReplyError{Raw: raw, Reason: fmt.Sprintf("missing field %q", name)}
		}
	}
	return nil
}

// stripCodeFence removes a surrounding Markdown code fence, with or without a
// language tag, from a model reply. Replies without a fence pass through
// trimmed.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line, language tag included.
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		trimmed = strings.TrimPrefix(trimmed, "```")
	}

	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")

	return strings.TrimSpace(trimmed)
}
