package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoModules indicates the catalogue yielded no usable modules.
	ErrNoModules = errors.New("no modules found")

	// ErrNoDataset indicates no dataset has been generated yet.
	ErrNoDataset = errors.New("no dataset generated")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Extraction falls back to the rule-based classifier without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrCatalogueUnavailable indicates the module catalogue cannot be
	// reached. The pipeline proceeds with whatever modules it has.
	ErrCatalogueUnavailable = errors.New("catalogue unavailable")

	// ErrRateLimited indicates the catalogue rejected requests for pacing.
	ErrRateLimited = errors.New("rate limited")
)
