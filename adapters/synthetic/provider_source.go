// Package synthetic provides a roster source backed by the deterministic
// sample generator, used when no roster database is configured.
package synthetic

import (
	"context"
	"log"

	"provnet/domain/provider"
	"provnet/internal/testkit"
	"provnet/ports"
)

// providerSource implements the ProviderSource interface
type providerSource struct {
	size int
	seed int64
}

// NewProviderSource creates a source generating size providers from seed.
// The same seed always yields the same roster.
func NewProviderSource(size int, seed int64) ports.ProviderSource {
	return &providerSource{size: size, seed: seed}
}

// LoadRoster generates the synthetic roster.
func (s *providerSource) LoadRoster(ctx context.Context) ([]provider.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := testkit.NewGenerator(s.seed).Roster(s.size)
	log.Printf("[SyntheticSource] Generated %d providers (seed=%d)", len(records), s.seed)
	return records, nil
}
