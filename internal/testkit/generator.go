// Package testkit produces deterministic synthetic rosters for demos and
// tests. The same seed always yields the same collection, record for record.
package testkit

import (
	"fmt"
	"math/rand"
	"strings"

	"provnet/domain/core"
	"provnet/domain/provider"
)

// providerNames is the fixed pool of synthetic provider names. The generator
// cycles through it, so rosters larger than the pool reuse names with a
// numeric suffix.
var providerNames = []string{
	"MetroHealth Medical Center", "Riverside Healthcare", "Summit Medical Group",
	"Valley Health System", "Coastal Family Medicine", "Mountain View Specialists",
	"Downtown Urgent Care", "Northside Hospital", "Lakeside Mental Health",
	"Central OB/GYN Clinic", "Advanced Home Care", "Premier Health Services",
	"Optimal Care Partners", "Elite Home Health", "Comprehensive Care Network",
	"Quality First Healthcare", "Regional Care Providers", "Integrated Health Solutions",
	"Community Care Alliance", "Specialized Home Services", "Unity Health Partners",
	"Excellence in Care", "Advanced Medical Solutions", "Preferred Care Network",
	"Superior Health Services", "Innovative Care Group", "Total Care Solutions",
	"Professional Health Partners", "Dynamic Care Network", "Complete Care Services",
	"Strategic Health Alliance", "Premier Care Solutions", "Advanced Care Network",
	"Integrated Care Partners", "Quality Care Alliance", "Comprehensive Health Group",
	"Optimal Health Solutions", "Excellence Care Network", "Superior Care Partners",
	"Professional Care Group", "Elite Health Services", "Premier Health Alliance",
	"Advanced Care Solutions", "Quality Health Partners", "Comprehensive Care Alliance",
	"Superior Health Network", "Professional Care Solutions", "Elite Care Group",
	"Premier Care Network", "Advanced Health Partners",
}

// Generator builds synthetic provider rosters from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator whose output is fully determined by seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Roster generates n provider records. Every record passes schema
// validation: quality in [3,5], positive cost, at least one operating state,
// and a primary market consistent with the operating states.
func (g *Generator) Roster(n int) []provider.Record {
	records := make([]provider.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, g.record(i))
	}
	return records
}

func (g *Generator) record(i int) provider.Record {
	name := providerNames[i%len(providerNames)]
	if i >= len(providerNames) {
		name = fmt.Sprintf("%s %d", name, i/len(providerNames)+1)
	}

	status := provider.OutOfNetwork
	if g.rng.Float64() < 0.7 {
		status = provider.InNetwork
	}

	quality := g.uniform(3.0, 5.0)
	cost := g.uniform(250, 1200)

	// Poor performers carry the largest contract termination values.
	var termination float64
	switch {
	case quality < 3.5 && cost > 800:
		termination = g.uniform(500000, 2000000)
	case quality < 4.0 || cost > 700:
		termination = g.uniform(200000, 800000)
	default:
		termination = g.uniform(0, 300000)
	}

	risk := provider.RiskLow
	if termination > 1000000 {
		risk = provider.RiskHigh
	} else if termination > 500000 {
		risk = provider.RiskMedium
	}

	states := g.sampleStates(1 + g.rng.Intn(5))

	return provider.Record{
		ProviderID:               core.ProviderID(fmt.Sprintf("PROV_%03d", i+1)),
		Name:                     name,
		NetworkStatus:            status,
		ClinicalGroup:            provider.ClinicalGroups[g.rng.Intn(len(provider.ClinicalGroups))],
		OperatingStates:          states,
		PrimaryCBSA:              g.pickCBSA(states),
		QualityScore:             quality,
		CostPerUtilizer:          cost,
		Utilizers:                500 + g.rng.Intn(4501),
		TerminationValue:         termination,
		MarketPositionPercentile: g.uniform(10, 90),
		AdequacyRisk:             risk,
	}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// sampleStates draws k distinct state codes from the catalog.
func (g *Generator) sampleStates(k int) []string {
	perm := g.rng.Perm(len(provider.States))
	states := make([]string, 0, k)
	for _, idx := range perm[:k] {
		states = append(states, provider.States[idx])
	}
	return states
}

// pickCBSA selects a primary market whose state suffix overlaps the
// operating states. Providers with no catalog market get an empty CBSA.
func (g *Generator) pickCBSA(states []string) string {
	var candidates []string
	for _, cbsa := range provider.CBSAs {
		if cbsaTouches(cbsa, states) {
			candidates = append(candidates, cbsa)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[g.rng.Intn(len(candidates))]
}

func cbsaTouches(cbsa string, states []string) bool {
	idx := strings.LastIndex(cbsa, ",")
	if idx < 0 {
		return false
	}
	for _, st := range strings.Split(strings.TrimSpace(cbsa[idx+1:]), "-") {
		for _, op := range states {
			if st == op {
				return true
			}
		}
	}
	return false
}
