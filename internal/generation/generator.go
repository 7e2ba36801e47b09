package generation

import "context"

// Generator defines the interface to the language model. It serves as the
// boundary between the application core and the external LLM service, so
// tests can substitute a stub without touching process-wide state.
type Generator interface {
	// GenerateText sends a single prompt and returns the model's raw text
	// reply. The context bounds the call; errors carry the values declared
	// in errors.go.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// GenerateText implements Generator.
func (f GeneratorFunc) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
