package provider

import (
	"provnet/domain/core"
)

// NetworkStatus indicates whether a provider is contracted into the network.
type NetworkStatus string

const (
	InNetwork    NetworkStatus = "In-Network"
	OutOfNetwork NetworkStatus = "Out-of-Network"
)

// Valid reports whether the status is one of the known enum values.
func (s NetworkStatus) Valid() bool {
	return s == InNetwork || s == OutOfNetwork
}

// AdequacyRisk is the precomputed per-provider removal risk label.
type AdequacyRisk string

const (
	RiskLow    AdequacyRisk = "Low"
	RiskMedium AdequacyRisk = "Medium"
	RiskHigh   AdequacyRisk = "High"
)

// Valid reports whether the risk level is one of the known enum values.
func (r AdequacyRisk) Valid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// Record is the canonical provider row consumed by every engine operation.
// All fields are inputs; the engine never mutates a Record in place.
type Record struct {
	ProviderID               core.ProviderID `json:"provider_id" db:"provider_id"`
	Name                     string          `json:"name" db:"name"`
	NetworkStatus            NetworkStatus   `json:"network_status" db:"network_status"`
	ClinicalGroup            string          `json:"clinical_group" db:"clinical_group"`
	OperatingStates          []string        `json:"operating_states"`
	PrimaryCBSA              string          `json:"primary_cbsa" db:"primary_cbsa"`
	QualityScore             float64         `json:"quality_score" db:"quality_score"`
	CostPerUtilizer          float64         `json:"cost_per_utilizer" db:"cost_per_utilizer"`
	Utilizers                int             `json:"utilizers" db:"utilizers"`
	TerminationValue         float64         `json:"termination_value" db:"termination_value"`
	MarketPositionPercentile float64         `json:"market_position_percentile" db:"market_position_percentile"`
	AdequacyRisk             AdequacyRisk    `json:"adequacy_risk" db:"adequacy_risk"`
}

// OperatesIn reports whether the provider operates in the given state.
func (r Record) OperatesIn(state string) bool {
	for _, s := range r.OperatingStates {
		if s == state {
			return true
		}
	}
	return false
}

// VolumeCategory bands utilizer volume into High/Medium/Low.
type VolumeCategory string

const (
	HighVolume   VolumeCategory = "High Volume"
	MediumVolume VolumeCategory = "Medium Volume"
	LowVolume    VolumeCategory = "Low Volume"
)

// QualityCategory bands quality score into High/Medium/Low.
type QualityCategory string

const (
	HighQuality   QualityCategory = "High Quality"
	MediumQuality QualityCategory = "Medium Quality"
	LowQuality    QualityCategory = "Low Quality"
)

// CostCategory bands cost per utilizer into High/Medium/Low.
type CostCategory string

const (
	HighCost   CostCategory = "High Cost"
	MediumCost CostCategory = "Medium Cost"
	LowCost    CostCategory = "Low Cost"
)

// BandThresholds holds the cut points for the volume/quality/cost bands.
type BandThresholds struct {
	HighVolume    int     `json:"high_volume"`
	MediumVolume  int     `json:"medium_volume"`
	HighQuality   float64 `json:"high_quality"`
	MediumQuality float64 `json:"medium_quality"`
	HighCost      float64 `json:"high_cost"`
	MediumCost    float64 `json:"medium_cost"`
}

// DefaultBands returns the standard banding cut points.
func DefaultBands() BandThresholds {
	return BandThresholds{
		HighVolume:    3000,
		MediumVolume:  1000,
		HighQuality:   4.5,
		MediumQuality: 3.5,
		HighCost:      700,
		MediumCost:    400,
	}
}

// VolumeBand categorizes provider volume.
func (b BandThresholds) VolumeBand(utilizers int) VolumeCategory {
	switch {
	case utilizers > b.HighVolume:
		return HighVolume
	case utilizers >= b.MediumVolume:
		return MediumVolume
	default:
		return LowVolume
	}
}

// QualityBand categorizes provider quality.
func (b BandThresholds) QualityBand(quality float64) QualityCategory {
	switch {
	case quality > b.HighQuality:
		return HighQuality
	case quality >= b.MediumQuality:
		return MediumQuality
	default:
		return LowQuality
	}
}

// CostBand categorizes provider cost.
func (b BandThresholds) CostBand(cost float64) CostCategory {
	switch {
	case cost > b.HighCost:
		return HighCost
	case cost >= b.MediumCost:
		return MediumCost
	default:
		return LowCost
	}
}
