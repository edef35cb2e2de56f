package service

import (
	"context"

	"breachcheck/internal/domain/entity"
)

// BreachCorpus is a k-anonymity range endpoint of a breach corpus.
type BreachCorpus interface {
	// Range returns the raw "SUFFIX:COUNT" lines for the given five character prefix.
	Range(ctx context.Context, prefix string) (string, error)
}

// BreachLookupService answers whether a digest is present in the breach corpus.
type BreachLookupService interface {
	// Lookup never fails: an unreachable corpus is reported as "not breached".
	Lookup(ctx context.Context, digest entity.PasswordDigest) entity.BreachLookupResult
}
