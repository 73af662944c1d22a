package provider

import (
	"strings"

	"provnet/domain/core"
)

// Validate checks a single record against the schema invariants. The engine
// assumes validated input; callers run this at the boundary before any
// analysis touches the collection.
func Validate(r Record) error {
	if r.ProviderID.IsEmpty() {
		return core.NewRecordError("(missing id)", core.ErrInvalidRecord)
	}
	if r.QualityScore < 1.0 || r.QualityScore > 5.0 {
		return core.NewRecordError(r.ProviderID.String(), core.ErrQualityOutOfRange)
	}
	if r.CostPerUtilizer <= 0 {
		return core.NewRecordError(r.ProviderID.String(), core.ErrNonPositiveCost)
	}
	if len(r.OperatingStates) == 0 {
		return core.NewRecordError(r.ProviderID.String(), core.ErrNoOperatingStates)
	}
	if r.Utilizers < 0 {
		return core.NewRecordError(r.ProviderID.String(), core.ErrNegativeUtilizers)
	}
	if r.TerminationValue < 0 {
		return core.NewRecordError(r.ProviderID.String(), core.ErrNegativeTermValue)
	}
	if !r.NetworkStatus.Valid() || !r.AdequacyRisk.Valid() || !KnownClinicalGroup(r.ClinicalGroup) {
		return core.NewRecordError(r.ProviderID.String(), core.ErrUnknownEnumValue)
	}
	if r.PrimaryCBSA != "" && !cbsaDerivable(r.PrimaryCBSA, r.OperatingStates) {
		return core.NewRecordError(r.ProviderID.String(), core.ErrInconsistentMarket)
	}
	return nil
}

// ValidateAll partitions a collection into valid records and per-record
// rejection errors. Rejection is row-level: one malformed record never
// poisons the rest of the roster.
func ValidateAll(records []Record) ([]Record, []error) {
	valid := make([]Record, 0, len(records))
	var rejected []error
	for _, r := range records {
		if err := Validate(r); err != nil {
			rejected = append(rejected, err)
			continue
		}
		valid = append(valid, r)
	}
	return valid, rejected
}

// cbsaDerivable reports whether the CBSA's state suffix (e.g. "NY-NJ-PA" in
// "New York-Newark-Jersey City, NY-NJ-PA") shares a state with the provider's
// operating states.
func cbsaDerivable(cbsa string, operatingStates []string) bool {
	idx := strings.LastIndex(cbsa, ",")
	if idx < 0 {
		return false
	}
	for _, st := range strings.Split(strings.TrimSpace(cbsa[idx+1:]), "-") {
		for _, op := range operatingStates {
			if st == op {
				return true
			}
		}
	}
	return false
}
