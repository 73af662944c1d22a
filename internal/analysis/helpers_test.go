package analysis

import (
	"fmt"

	"provnet/domain/core"
	"provnet/domain/provider"
)

// rec builds a minimal valid record for engine tests. Fields not under test
// get unremarkable defaults.
func rec(id string, quality, cost float64) provider.Record {
	return provider.Record{
		ProviderID:       core.ProviderID(id),
		Name:             fmt.Sprintf("Provider %s", id),
		NetworkStatus:    provider.InNetwork,
		ClinicalGroup:    "Wounds",
		OperatingStates:  []string{"NY"},
		QualityScore:     quality,
		CostPerUtilizer:  cost,
		Utilizers:        1000,
		TerminationValue: 100000,
		AdequacyRisk:     provider.RiskLow,
	}
}

func outOfNetwork(r provider.Record) provider.Record {
	r.NetworkStatus = provider.OutOfNetwork
	return r
}

func withRisk(r provider.Record, risk provider.AdequacyRisk) provider.Record {
	r.AdequacyRisk = risk
	return r
}

func withGroup(r provider.Record, group string) provider.Record {
	r.ClinicalGroup = group
	return r
}

func withStates(r provider.Record, states ...string) provider.Record {
	r.OperatingStates = states
	return r
}

func withTermValue(r provider.Record, v float64) provider.Record {
	r.TerminationValue = v
	return r
}

func withUtilizers(r provider.Record, u int) provider.Record {
	r.Utilizers = u
	return r
}
