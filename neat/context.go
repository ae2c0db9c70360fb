package neat

import (
	"context"
	"errors"

	"github.com/mvarga/neat-snake/neat/rand"
)

// ErrRunContextNotFound is returned by FromContext when ctx carries no
// RunContext.
var ErrRunContextNotFound = errors.New("NEAT run context not found in context.Context")

// RunContext bundles the pieces a generational run's cancellable goroutine
// needs that aren't already threaded through as explicit parameters: the
// resolved Options (for MaxGenerations and the rest of the run's config) and
// the RNG seeding it.
type RunContext struct {
	Options *Options
	RNG     *rand.Source
}

// runContextKey is an unexported type for the key this package stores in
// Contexts, preventing collisions with keys defined elsewhere.
type runContextKey struct{}

// NewContext returns a Context carrying rc, retrievable later with
// FromContext.
func NewContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// FromContext returns the RunContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RunContext, bool) {
	rc, ok := ctx.Value(runContextKey{}).(*RunContext)
	return rc, ok
}
