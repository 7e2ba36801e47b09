// Package generation defines the interface and error taxonomy for the
// language-model boundary.
package generation
