package dictionary

import "context"

// Repository port for canonical term lookups. Lookup returns (nil, nil)
// when the dictionary has no match; callers then fall back to the LLM.
type Repository interface {
	Lookup(ctx context.Context, term string) (*Definition, error)
}
