package domain

import "context"

// TextGenerator defines the capability to send a prompt to a generative text
// service and receive free text back within a bounded time.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (*GenerationResult, error)
	Version() string
}

// GenerationResult carries the generated text and whether the model stopped
// on its own rather than hitting the token budget.
type GenerationResult struct {
	Text string
	Done bool
}

// ArtifactSource exposes the immutable trained artifacts loaded at startup.
// Available reports the availability gate: true iff model, scaler, schema and
// profiles all loaded.
type ArtifactSource interface {
	Available() bool
	Model() *KMeansModel
	Scaler() *StandardScaler
	Schema() *FeatureSchema
	Profiles() ProfileTable
}
