package catalog

import "github.com/nutrilens/backend/internal/domain"

const southamptonWarning = "May have an adverse effect on activity and attention in children"

// regulatoryTable maps normalized additive codes to per-jurisdiction legal
// status. Jurisdictions without a record report StatusUnknown in
// comparisons.
var regulatoryTable = map[string]map[domain.Jurisdiction]domain.RegulatoryRecord{
	"E102": {
		domain.JurisdictionEU:        {Status: domain.StatusWarningRequired, Warning: southamptonWarning, Notes: "EU Regulation 1333/2008 Annex V labeling."},
		domain.JurisdictionUK:        {Status: domain.StatusWarningRequired, Warning: southamptonWarning},
		domain.JurisdictionUSA:       {Status: domain.StatusApproved, Notes: "Listed as FD&C Yellow No. 5; certification required per batch."},
		domain.JurisdictionCanada:    {Status: domain.StatusApproved},
		domain.JurisdictionAustralia: {Status: domain.StatusApproved},
		domain.JurisdictionJapan:     {Status: domain.StatusApproved},
	},
	"E104": {
		domain.JurisdictionEU:    {Status: domain.StatusWarningRequired, Warning: southamptonWarning, MaxLevel: "10 mg/kg in soft drinks"},
		domain.JurisdictionUK:    {Status: domain.StatusWarningRequired, Warning: southamptonWarning},
		domain.JurisdictionUSA:   {Status: domain.StatusBanned, Notes: "Not an approved color additive in the USA."},
		domain.JurisdictionJapan: {Status: domain.StatusBanned},
	},
	"E110": {
		domain.JurisdictionEU:     {Status: domain.StatusWarningRequired, Warning: southamptonWarning},
		domain.JurisdictionUK:     {Status: domain.StatusWarningRequired, Warning: southamptonWarning},
		domain.JurisdictionUSA:    {Status: domain.StatusApproved, Notes: "Listed as FD&C Yellow No. 6."},
		domain.JurisdictionCanada: {Status: domain.StatusApproved},
	},
	"E124": {
		domain.JurisdictionEU:        {Status: domain.StatusWarningRequired, Warning: southamptonWarning},
		domain.JurisdictionUK:        {Status: domain.StatusWarningRequired, Warning: southamptonWarning},
		domain.JurisdictionUSA:       {Status: domain.StatusBanned, Notes: "Delisted by the FDA in 1976."},
		domain.JurisdictionCanada:    {Status: domain.StatusRestricted, MaxLevel: "Limited food categories"},
		domain.JurisdictionAustralia: {Status: domain.StatusApproved},
	},
	"E129": {
		domain.JurisdictionEU:    {Status: domain.StatusWarningRequired, Warning: southamptonWarning},
		domain.JurisdictionUK:    {Status: domain.StatusWarningRequired, Warning: southamptonWarning},
		domain.JurisdictionUSA:   {Status: domain.StatusApproved, Notes: "Listed as FD&C Red No. 40."},
		domain.JurisdictionJapan: {Status: domain.StatusApproved},
	},
	"E171": {
		domain.JurisdictionEU:        {Status: domain.StatusBanned, Notes: "Banned as a food additive since 2022 (EFSA genotoxicity opinion)."},
		domain.JurisdictionUK:        {Status: domain.StatusApproved, Notes: "FSA did not adopt the EU ban."},
		domain.JurisdictionUSA:       {Status: domain.StatusApproved, MaxLevel: "1% by weight"},
		domain.JurisdictionCanada:    {Status: domain.StatusApproved},
		domain.JurisdictionAustralia: {Status: domain.StatusApproved},
		domain.JurisdictionJapan:     {Status: domain.StatusApproved},
	},
	"E211": {
		domain.JurisdictionEU:  {Status: domain.StatusApproved, MaxLevel: "150 mg/l in soft drinks", Notes: "ADI 5 mg/kg bw."},
		domain.JurisdictionUSA: {Status: domain.StatusApproved, MaxLevel: "0.1% by weight"},
		domain.JurisdictionUK:  {Status: domain.StatusApproved},
	},
	"E220": {
		domain.JurisdictionEU:  {Status: domain.StatusWarningRequired, Warning: "Contains sulphites", Notes: "Allergen labeling above 10 mg/kg."},
		domain.JurisdictionUSA: {Status: domain.StatusWarningRequired, Warning: "Contains sulfites", Notes: "Declaration above 10 ppm; prohibited on raw produce."},
		domain.JurisdictionUK:  {Status: domain.StatusWarningRequired, Warning: "Contains sulphites"},
	},
	"E250": {
		domain.JurisdictionEU:        {Status: domain.StatusRestricted, MaxLevel: "150 mg/kg ingoing in cured meats", Notes: "ADI 0.07 mg/kg bw."},
		domain.JurisdictionUSA:       {Status: domain.StatusRestricted, MaxLevel: "156 ppm in cured meats"},
		domain.JurisdictionUK:        {Status: domain.StatusRestricted, MaxLevel: "150 mg/kg"},
		domain.JurisdictionCanada:    {Status: domain.StatusRestricted, MaxLevel: "200 ppm"},
		domain.JurisdictionAustralia: {Status: domain.StatusRestricted},
		domain.JurisdictionJapan:     {Status: domain.StatusRestricted},
	},
	"E320": {
		domain.JurisdictionEU:    {Status: domain.StatusApproved, MaxLevel: "200 mg/kg in fats", Notes: "ADI 1 mg/kg bw."},
		domain.JurisdictionUSA:   {Status: domain.StatusApproved},
		domain.JurisdictionJapan: {Status: domain.StatusRestricted, Notes: "Permitted only in limited fat products."},
	},
	"E951": {
		domain.JurisdictionEU:        {Status: domain.StatusWarningRequired, Warning: "Contains a source of phenylalanine", Notes: "ADI 40 mg/kg bw."},
		domain.JurisdictionUSA:       {Status: domain.StatusWarningRequired, Warning: "Phenylketonurics: contains phenylalanine", Notes: "ADI 50 mg/kg bw."},
		domain.JurisdictionUK:        {Status: domain.StatusWarningRequired, Warning: "Contains a source of phenylalanine"},
		domain.JurisdictionCanada:    {Status: domain.StatusWarningRequired, Warning: "Contains phenylalanine"},
		domain.JurisdictionAustralia: {Status: domain.StatusWarningRequired, Warning: "Contains phenylalanine"},
		domain.JurisdictionJapan:     {Status: domain.StatusApproved},
	},
	"E952": {
		domain.JurisdictionEU:     {Status: domain.StatusApproved, MaxLevel: "250 mg/l in soft drinks", Notes: "ADI 7 mg/kg bw."},
		domain.JurisdictionUSA:    {Status: domain.StatusBanned, Notes: "Banned since 1969; re-approval petitions pending for decades."},
		domain.JurisdictionUK:     {Status: domain.StatusApproved},
		domain.JurisdictionCanada: {Status: domain.StatusRestricted, Notes: "Table-top sweetener only."},
		domain.JurisdictionJapan:  {Status: domain.StatusBanned},
	},
	"E924": {
		domain.JurisdictionEU:        {Status: domain.StatusBanned, Notes: "Potassium bromate is not an authorized additive."},
		domain.JurisdictionUK:        {Status: domain.StatusBanned},
		domain.JurisdictionUSA:       {Status: domain.StatusApproved, MaxLevel: "75 ppm in flour", Notes: "Permitted as a flour treatment agent."},
		domain.JurisdictionCanada:    {Status: domain.StatusBanned},
		domain.JurisdictionAustralia: {Status: domain.StatusBanned},
		domain.JurisdictionJapan:     {Status: domain.StatusRestricted, Notes: "Bread only, with residue limits."},
	},
	"E407": {
		domain.JurisdictionEU:  {Status: domain.StatusApproved, Notes: "Not permitted in infant formula."},
		domain.JurisdictionUSA: {Status: domain.StatusApproved},
		domain.JurisdictionUK:  {Status: domain.StatusApproved},
	},
}

// RegulatoryRecords returns the per-jurisdiction records for a normalized
// code. The second return is false when the table has no row for the code.
func RegulatoryRecords(code string) (map[domain.Jurisdiction]domain.RegulatoryRecord, bool) {
	records, ok := regulatoryTable[code]
	return records, ok
}

// RegulatedCodes returns every code the regulatory table covers.
func RegulatedCodes() []string {
	codes := make([]string, 0, len(regulatoryTable))
	for code := range regulatoryTable {
		codes = append(codes, code)
	}
	return codes
}
