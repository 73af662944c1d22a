package ports

import (
	"context"

	"provnet/domain/provider"
)

// ProviderSource loads the provider roster from an external system. The
// engine itself never persists anything; sources are read-only.
type ProviderSource interface {
	LoadRoster(ctx context.Context) ([]provider.Record, error)
}
