package ports

import (
	"context"

	"provnet/domain/provider"
	"provnet/internal/analysis"
)

// RosterExporter writes an analysis run to an external document format.
type RosterExporter interface {
	ExportWorkbook(ctx context.Context, path string, roster []provider.Record, classified []analysis.Classified, removals, additions []analysis.Classified) error
}
