package provider

// Filter narrows a roster. Zero-value fields mean "no constraint", so an
// empty Filter returns the collection unchanged.
type Filter struct {
	NetworkStatuses []NetworkStatus
	States          []string
	CBSAs           []string
	ClinicalGroups  []string
	AdequacyRisks   []AdequacyRisk
	VolumeBands     []VolumeCategory
	QualityBands    []QualityCategory
	CostBands       []CostCategory
}

// Apply returns the records matching every populated constraint, preserving
// collection order. Band constraints use the default operational bands.
func (f Filter) Apply(records []Record) []Record {
	bands := DefaultBands()
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !f.matches(r, bands) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Matches reports whether a single record passes every populated constraint.
func (f Filter) Matches(r Record) bool {
	return f.matches(r, DefaultBands())
}

func (f Filter) matches(r Record, bands BandThresholds) bool {
	if len(f.NetworkStatuses) > 0 && !containsStatus(f.NetworkStatuses, r.NetworkStatus) {
		return false
	}
	if len(f.States) > 0 && !operatesInAny(r, f.States) {
		return false
	}
	if len(f.CBSAs) > 0 && !containsString(f.CBSAs, r.PrimaryCBSA) {
		return false
	}
	if len(f.ClinicalGroups) > 0 && !containsString(f.ClinicalGroups, r.ClinicalGroup) {
		return false
	}
	if len(f.AdequacyRisks) > 0 && !containsRisk(f.AdequacyRisks, r.AdequacyRisk) {
		return false
	}
	if len(f.VolumeBands) > 0 && !containsVolume(f.VolumeBands, bands.VolumeBand(r.Utilizers)) {
		return false
	}
	if len(f.QualityBands) > 0 && !containsQuality(f.QualityBands, bands.QualityBand(r.QualityScore)) {
		return false
	}
	if len(f.CostBands) > 0 && !containsCost(f.CostBands, bands.CostBand(r.CostPerUtilizer)) {
		return false
	}
	return true
}

func operatesInAny(r Record, states []string) bool {
	for _, st := range states {
		if r.OperatesIn(st) {
			return true
		}
	}
	return false
}

func containsString(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsStatus(xs []NetworkStatus, x NetworkStatus) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsRisk(xs []AdequacyRisk, x AdequacyRisk) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsVolume(xs []VolumeCategory, x VolumeCategory) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsQuality(xs []QualityCategory, x QualityCategory) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func containsCost(xs []CostCategory, x CostCategory) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
