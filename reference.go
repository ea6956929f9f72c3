package huey

import (
	"sort"
	"strings"
)

// Static reference data for the bodies of Louisiana law. These tables
// mirror the source system's internal codes; they are loaded once at
// process start and never mutated.

// acronyms maps a family acronym to the full name of the body of law.
var acronyms = map[string]string{
	"rs":    "Revised Statutes",
	"lc":    "Louisiana Constitution",
	"ca":    "Constitution Ancillaries",
	"chc":   "Children's Code",
	"cc":    "Civil Code",
	"ccp":   "Code of Civil Procedure",
	"ccrp":  "Code of Criminal Procedure",
	"ce":    "Code of Evidence",
	"hrule": "House Rules",
	"srule": "Senate Rules",
	"jrule": "Joint Rules",
}

// titles maps, per family, a title number to its subject name. Only
// the families with stable published title lists are covered.
var titles = map[string]map[int]string{
	"rs": {
		1:  "General Provisions",
		2:  "Aeronautics",
		3:  "Agriculture and Forestry",
		4:  "Amusements and Sports",
		6:  "Banks and Banking",
		8:  "Cemeteries",
		9:  "Civil Code-Ancillaries",
		10: "Commercial Laws",
		11: "Consolidated Public Retirement",
		12: "Corporations and Associations",
		13: "Courts and Judicial Procedure",
		14: "Criminal Law",
		15: "Criminal Procedure",
		16: "District Attorneys",
		17: "Education",
		18: "Louisiana Election Code",
		19: "Expropriation",
		20: "Homesteads and Exemptions",
		21: "Hotels and Lodging Houses",
		22: "Insurance",
		23: "Labor and Worker's Compensation",
		24: "Legislature and Laws",
		25: "Libraries, Museums, and Other Scientific",
		26: "Liquors-Alcoholic Beverages",
		27: "Louisiana Gaming Control",
		28: "Mental Health",
		29: "Military, Naval, and Veteran's Affairs",
		30: "Minerals, Oil, and Gas and Environmental Quality",
		31: "Mineral Code",
		32: "Motor Vehicles and Traffic Regulation",
		33: "Municipalities and Parishes",
		34: "Navigation and Shipping",
		35: "Notaries Public and Commissioners",
		36: "Organization of the Executive Branch",
		37: "Professions and Occupations",
		38: "Public Contracts, Works and Improvements",
		39: "Public Finance",
		40: "Public Health and Safety",
		41: "Public Lands",
		42: "Public Officers and Employees",
		43: "Public Printing and Advertisements",
		44: "Public Records and Recorders",
		45: "Public Utilities and Carriers",
		46: "Public Welfare and Assistance",
		47: "Revenue and Taxation",
		48: "Roads, Bridges and Ferries",
		49: "State Administration",
		50: "Surveys and Surveyors",
		51: "Trade and Commerce",
		52: "United States",
		53: "War Emergency",
		54: "Warehouses",
		55: "Weights and Measures",
		56: "Wildlife and Fisheries",
	},
	"const": {
		1:  "Declaration of Rights",
		2:  "Distribution of Powers",
		3:  "Legislative Branch",
		4:  "Executive Branch",
		5:  "Judicial Branch",
		6:  "Local Government",
		7:  "Revenue & Finance",
		8:  "Education",
		9:  "Natural Resources",
		10: "Public Officials & Employees",
		11: "Elections",
		12: "General Provisions",
		13: "Constitution Revision",
		14: "Transitional Provisions",
	},
}

// FamilyName returns the full name of the body of law identified by a
// family acronym (case-insensitive).
func FamilyName(acronym string) (string, bool) {
	name, ok := acronyms[strings.ToLower(acronym)]
	return name, ok
}

// TitleName returns the subject name for a title number within a law
// family (case-insensitive). Families without a published title list
// report false for every number.
func TitleName(family string, number int) (string, bool) {
	m, ok := titles[strings.ToLower(family)]
	if !ok {
		return "", false
	}
	name, ok := m[number]
	return name, ok
}

// Families returns the acronyms of all known law families.
func Families() []string {
	out := make([]string, 0, len(acronyms))
	for k := range acronyms {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
