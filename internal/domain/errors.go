package domain

import "errors"

var (
	// ErrInvalidAdditiveCode is returned when a code is empty after
	// normalization. This is the only caller-programming error the engine
	// surfaces; unknown-but-well-formed codes resolve to fallback records.
	ErrInvalidAdditiveCode = errors.New("invalid additive code")

	// ErrCacheMiss is returned when a cache tier has no valid entry
	ErrCacheMiss = errors.New("cache miss")

	// ErrAdditiveNotFound is returned when the remote taxonomy has no entry
	ErrAdditiveNotFound = errors.New("additive not found in taxonomy")

	// ErrTaxonomyUnavailable is returned when the remote taxonomy request fails
	ErrTaxonomyUnavailable = errors.New("additive taxonomy request failed")

	// ErrProfileNotFound is returned when no profile exists for a user.
	// This is the normal path for most users, not a failure.
	ErrProfileNotFound = errors.New("no health profile for user")

	// ErrInvalidInput is returned when analysis input is missing or malformed
	ErrInvalidInput = errors.New("invalid analysis input")
)
