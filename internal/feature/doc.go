// Package feature declares the grammatical feature enumerations used to
// describe generated sentences, and the selection rules that substitute
// randomized or deliberately incorrect values for a requested one.
package feature
