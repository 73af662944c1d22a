package core

import "testing"

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Fatal("NewID returned empty identifier")
		}
		if seen[id] {
			t.Fatalf("duplicate identifier generated: %s", id)
		}
		seen[id] = true
	}
}

func TestParseProviderID(t *testing.T) {
	id, err := ParseProviderID("PROV_001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "PROV_001" {
		t.Errorf("round trip mismatch: %s", id)
	}

	if _, err := ParseProviderID(""); err == nil {
		t.Error("empty provider ID should not parse")
	}
	if _, err := ParseProviderID("   "); err == nil {
		t.Error("whitespace provider ID should not parse")
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsNotFoundError(ErrProviderNotFound) {
		t.Error("ErrProviderNotFound should be a not-found error")
	}
	if !IsNotFoundError(NewNotFoundError("provider", "PROV_404")) {
		t.Error("constructed not-found errors should match")
	}
	if !IsRecordError(NewRecordError("PROV_001", ErrQualityOutOfRange)) {
		t.Error("record errors should wrap ErrInvalidRecord")
	}
	if IsRecordError(ErrNotFound) {
		t.Error("not-found must not read as a record error")
	}
	if !IsConfigError(ErrInvalidThresholds) {
		t.Error("threshold errors are config errors")
	}
}
