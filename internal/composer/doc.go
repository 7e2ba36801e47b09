// Package composer assembles the natural-language instructions sent to the
// language model and parses the model's JSON replies back into typed values.
//
// Prompts are built deterministically from fixed clause fragments, one clause
// per grammatical concern, in a fixed order. Clause order is part of the
// contract: the same specification always yields the same prompt.
package composer
