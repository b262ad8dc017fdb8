// Package mock provides test double implementations of the embedding interfaces.
//
// The mocks allow tests to run without external AI service dependencies and
// enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockEmbedder := mock.NewMockEmbedder()
//	vector, err := mockEmbedder.EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return []float32{0.1, 0.2, 0.3}, nil
//	}
//
//	// Check call counts
//	count := mockEmbedder.CallCount()
//
// # Default Behavior
//
// By default MockEmbedder returns deterministic vectors derived from the text
// hash, so the same text always produces the same embedding.
package mock
