package provider

import (
	"testing"

	"provnet/domain/core"
)

func validRecord() Record {
	return Record{
		ProviderID:      core.ProviderID("PROV_001"),
		Name:            "MetroHealth Medical Center",
		NetworkStatus:   InNetwork,
		ClinicalGroup:   "Wounds",
		OperatingStates: []string{"NY", "NJ"},
		PrimaryCBSA:     "New York-Newark-Jersey City, NY-NJ-PA",
		QualityScore:    4.2,
		CostPerUtilizer: 520,
		Utilizers:       1200,
		TerminationValue: 250000,
		AdequacyRisk:    RiskLow,
	}
}

func TestValidate_AcceptsWellFormedRecord(t *testing.T) {
	if err := Validate(validRecord()); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
}

func TestValidate_RejectionCases(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Record)
	}{
		{"missing id", func(r *Record) { r.ProviderID = "" }},
		{"quality below range", func(r *Record) { r.QualityScore = 0.5 }},
		{"quality above range", func(r *Record) { r.QualityScore = 5.5 }},
		{"zero cost", func(r *Record) { r.CostPerUtilizer = 0 }},
		{"negative cost", func(r *Record) { r.CostPerUtilizer = -10 }},
		{"no operating states", func(r *Record) { r.OperatingStates = nil }},
		{"negative utilizers", func(r *Record) { r.Utilizers = -1 }},
		{"negative termination value", func(r *Record) { r.TerminationValue = -1 }},
		{"unknown network status", func(r *Record) { r.NetworkStatus = "Sideways" }},
		{"unknown adequacy risk", func(r *Record) { r.AdequacyRisk = "Extreme" }},
		{"unknown clinical group", func(r *Record) { r.ClinicalGroup = "Astrology" }},
		{"cbsa outside operating states", func(r *Record) { r.PrimaryCBSA = "Miami-Fort Lauderdale-West Palm Beach, FL" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.mutate(&r)
			err := Validate(r)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !core.IsRecordError(err) && tc.name != "missing id" {
				t.Errorf("expected record error, got %v", err)
			}
		})
	}
}

func TestValidate_EmptyCBSAAllowed(t *testing.T) {
	r := validRecord()
	r.PrimaryCBSA = ""
	if err := Validate(r); err != nil {
		t.Errorf("empty primary CBSA should be allowed: %v", err)
	}
}

func TestValidateAll_RowLevelRejection(t *testing.T) {
	good := validRecord()
	bad := validRecord()
	bad.ProviderID = "PROV_002"
	bad.QualityScore = 9.9

	valid, rejected := ValidateAll([]Record{good, bad})
	if len(valid) != 1 {
		t.Fatalf("expected 1 valid record, got %d", len(valid))
	}
	if len(rejected) != 1 {
		t.Fatalf("expected 1 rejection, got %d", len(rejected))
	}
	if valid[0].ProviderID != good.ProviderID {
		t.Errorf("wrong record survived validation: %s", valid[0].ProviderID)
	}
}

func TestBandThresholds_Defaults(t *testing.T) {
	bands := DefaultBands()

	if got := bands.VolumeBand(3001); got != HighVolume {
		t.Errorf("3001 utilizers should be high volume, got %s", got)
	}
	if got := bands.VolumeBand(3000); got != MediumVolume {
		t.Errorf("3000 utilizers sits inside the medium band, got %s", got)
	}
	if got := bands.VolumeBand(999); got != LowVolume {
		t.Errorf("999 utilizers should be low volume, got %s", got)
	}

	if got := bands.QualityBand(4.6); got != HighQuality {
		t.Errorf("4.6 should be high quality, got %s", got)
	}
	if got := bands.QualityBand(3.5); got != MediumQuality {
		t.Errorf("3.5 should be medium quality, got %s", got)
	}
	if got := bands.QualityBand(3.49); got != LowQuality {
		t.Errorf("3.49 should be low quality, got %s", got)
	}

	if got := bands.CostBand(701); got != HighCost {
		t.Errorf("701 should be high cost, got %s", got)
	}
	if got := bands.CostBand(400); got != MediumCost {
		t.Errorf("400 should be medium cost, got %s", got)
	}
	if got := bands.CostBand(399.99); got != LowCost {
		t.Errorf("399.99 should be low cost, got %s", got)
	}
}
