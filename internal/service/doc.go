// Package service implements the application use cases on top of the
// composer, the generation boundary, and the stores.
package service
