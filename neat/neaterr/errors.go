// Package neaterr defines the sentinel error kinds shared across the neat
// module, so that callers can classify a failure with errors.Is instead of
// string matching.
package neaterr

import "errors"

var (
	// ErrInvalidArgument is returned when a caller supplies a value that
	// violates a documented precondition, e.g. an input vector of the wrong
	// length passed to Network.Activate.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when an operation discovers the receiver
	// itself is inconsistent, e.g. a neuron referenced by a link that was
	// never assigned a value during network evaluation.
	ErrInvalidState = errors.New("invalid state")

	// ErrIOFailure is returned only by the configuration and persistence
	// collaborators (neat.Options loaders, genome/population readers and
	// writers); the evolutionary core never produces it directly.
	ErrIOFailure = errors.New("io failure")
)
