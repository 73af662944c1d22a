package provider

// ClinicalGroups is the fixed catalog of home-health clinical groupings.
// Every provider record carries exactly one of these.
var ClinicalGroups = []string{
	"Behavioral Health",
	"Wounds",
	"Complex Nursing Interventions",
	"MMTA_Cardiac_and_Circulatory",
	"MMTA_Endocrine",
	"MMTA_Infectious_Disease",
	"Neoplasm_and_Blood_Forming_Diseases",
	"MMTA_Gastrointestinal_Tract_and_Genitourinary_System",
	"MMTA_Respiratory",
	"MMTA_Surgical_Aftercare",
	"Musculoskeletal_Rehabilitation",
	"Neurological_Rehabilitation",
}

// RequiredClinicalGroups is the default adequacy catalog: the critical subset
// a network must cover regardless of what happens to be in a candidate subset.
var RequiredClinicalGroups = []string{
	"Behavioral Health",
	"Wounds",
	"Complex Nursing Interventions",
	"MMTA_Cardiac_and_Circulatory",
	"MMTA_Endocrine",
	"MMTA_Infectious_Disease",
}

// States is the catalog of state codes providers may operate in.
var States = []string{
	"NY", "CA", "IL", "TX", "FL", "VA", "PA", "GA", "MA", "OH",
	"MI", "NC", "NJ", "AZ", "WA", "TN", "IN", "MO", "MD", "WI",
}

// CBSAs is the catalog of core-based statistical areas used as primary markets.
var CBSAs = []string{
	"New York-Newark-Jersey City, NY-NJ-PA",
	"Los Angeles-Long Beach-Anaheim, CA",
	"Chicago-Naperville-Elgin, IL-IN-WI",
	"Dallas-Fort Worth-Arlington, TX",
	"Houston-The Woodlands-Sugar Land, TX",
	"Washington-Arlington-Alexandria, DC-VA-MD-WV",
	"Miami-Fort Lauderdale-West Palm Beach, FL",
	"Philadelphia-Camden-Wilmington, PA-NJ-DE-MD",
	"Atlanta-Sandy Springs-Roswell, GA",
	"Boston-Cambridge-Newton, MA-NH",
}

// KnownClinicalGroup reports whether the group belongs to the fixed catalog.
func KnownClinicalGroup(group string) bool {
	for _, g := range ClinicalGroups {
		if g == group {
			return true
		}
	}
	return false
}
