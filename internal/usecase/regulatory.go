package usecase

import (
	"github.com/nutrilens/backend/internal/catalog"
	"github.com/nutrilens/backend/internal/domain"
)

// RegulatoryComparator exposes an additive's legal status across the fixed
// jurisdiction list. It is a thin query layer over the static regulatory
// table; the value is surfacing one additive's full multi-jurisdiction
// picture in a single call.
type RegulatoryComparator struct{}

// NewRegulatoryComparator creates a comparator.
func NewRegulatoryComparator() *RegulatoryComparator {
	return &RegulatoryComparator{}
}

// StatusIn returns the record for a code in one jurisdiction; jurisdictions
// without a record report StatusUnknown.
func (c *RegulatoryComparator) StatusIn(code string, jurisdiction domain.Jurisdiction) (domain.RegulatoryRecord, error) {
	normalized, err := domain.NormalizeAdditiveCode(code)
	if err != nil {
		return domain.RegulatoryRecord{}, err
	}
	records, ok := catalog.RegulatoryRecords(normalized)
	if !ok {
		return domain.RegulatoryRecord{Status: domain.StatusUnknown}, nil
	}
	record, ok := records[jurisdiction]
	if !ok {
		return domain.RegulatoryRecord{Status: domain.StatusUnknown}, nil
	}
	return record, nil
}

// IsBannedAnywhere reports whether any jurisdiction bans the additive.
func (c *RegulatoryComparator) IsBannedAnywhere(code string) (bool, error) {
	return c.anyStatus(code, domain.StatusBanned)
}

// RequiresWarningAnywhere reports whether any jurisdiction mandates warning
// text for the additive.
func (c *RegulatoryComparator) RequiresWarningAnywhere(code string) (bool, error) {
	return c.anyStatus(code, domain.StatusWarningRequired)
}

func (c *RegulatoryComparator) anyStatus(code string, status domain.RegulatoryStatus) (bool, error) {
	normalized, err := domain.NormalizeAdditiveCode(code)
	if err != nil {
		return false, err
	}
	records, ok := catalog.RegulatoryRecords(normalized)
	if !ok {
		return false, nil
	}
	for _, record := range records {
		if record.Status == status {
			return true, nil
		}
	}
	return false, nil
}

// CompareAcrossJurisdictions returns one row per jurisdiction in the fixed
// order, with StatusUnknown where no record exists.
func (c *RegulatoryComparator) CompareAcrossJurisdictions(code string) ([]domain.JurisdictionStatus, error) {
	normalized, err := domain.NormalizeAdditiveCode(code)
	if err != nil {
		return nil, err
	}

	records, _ := catalog.RegulatoryRecords(normalized)

	rows := make([]domain.JurisdictionStatus, 0, len(domain.AllJurisdictions))
	for _, jurisdiction := range domain.AllJurisdictions {
		row := domain.JurisdictionStatus{
			Jurisdiction: jurisdiction,
			Status:       domain.StatusUnknown,
		}
		if record, ok := records[jurisdiction]; ok {
			row.Status = record.Status
			row.MaxLevel = record.MaxLevel
			row.Notes = record.Notes
			row.Warning = record.Warning
		}
		rows = append(rows, row)
	}
	return rows, nil
}
