// Package postgres loads provider rosters from a Postgres reporting
// database. The adapter is read-only; analysis results are never written
// back.
package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"provnet/domain/provider"
	"provnet/ports"
)

// providerSource implements the ProviderSource interface
type providerSource struct {
	db *sqlx.DB
}

// NewProviderSource creates a roster source backed by a Postgres database
func NewProviderSource(db *sqlx.DB) ports.ProviderSource {
	return &providerSource{db: db}
}

// Connect opens and pings a Postgres connection for roster loading
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to roster database: %w", err)
	}
	return db, nil
}

// LoadRoster reads the full provider roster. Rows failing schema validation
// are skipped and logged rather than failing the load; one malformed row
// never blocks an analysis run.
func (s *providerSource) LoadRoster(ctx context.Context) ([]provider.Record, error) {
	query := `SELECT
		provider_id, name, network_status, clinical_group, operating_states,
		COALESCE(primary_cbsa, '') as primary_cbsa,
		quality_score, cost_per_utilizer, utilizers, termination_value,
		COALESCE(market_position_percentile, 0.0) as market_position_percentile,
		adequacy_risk
	FROM providers
	ORDER BY provider_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer rows.Close()

	var records []provider.Record
	for rows.Next() {
		var r provider.Record
		var states pq.StringArray

		err := rows.Scan(
			&r.ProviderID, &r.Name, &r.NetworkStatus, &r.ClinicalGroup, &states,
			&r.PrimaryCBSA, &r.QualityScore, &r.CostPerUtilizer, &r.Utilizers,
			&r.TerminationValue, &r.MarketPositionPercentile, &r.AdequacyRisk,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan provider row: %w", err)
		}
		r.OperatingStates = []string(states)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate providers: %w", err)
	}

	valid, rejected := provider.ValidateAll(records)
	for _, rejErr := range rejected {
		log.Printf("[ProviderSource] Skipping invalid roster row: %v", rejErr)
	}
	if len(rejected) > 0 {
		log.Printf("[ProviderSource] Loaded %d providers, rejected %d invalid rows", len(valid), len(rejected))
	}

	return valid, nil
}
