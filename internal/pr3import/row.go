package pr3import

import (
	"strconv"
	"strings"
	"time"
)

// Column offsets in the PR3 export layout. Positions are the contract;
// headers are never consulted.
const (
	colSex                    = 4  // KON
	colAppliedAs              = 5  // PASSAGE
	colAssetID                = 7  // TILLSTNR
	colLegalID                = 10 // PERSONNR
	colRegistrationNumber     = 15 // DIARIENR
	colIssued                 = 16 // UTFARDAT
	colValidTo                = 18 // GILTIGTTOM
	colCardPrinted            = 21 // UTSKRIVET
	colIssuedByAdministration = 23 // EXTRA1
	colIssuedByAdministrator  = 24 // EXTRA2
	colSmartParkSync          = 27 // SmartParkSync
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01-02-06 15:04",
	"01/02/2006",
	"02/01/2006",
}

// sourceRow wraps one raw spreadsheet row behind named accessors so the
// fixed-position layout is a single-point edit.
type sourceRow struct {
	cells []string
}

func newSourceRow(cells []string) sourceRow {
	return sourceRow{cells: cells}
}

// text returns the trimmed cell value at the given offset; false for blank
// or out-of-range cells.
func (r sourceRow) text(idx int) (string, bool) {
	if idx < 0 || idx >= len(r.cells) {
		return "", false
	}
	value := strings.TrimSpace(r.cells[idx])
	if value == "" {
		return "", false
	}
	return value, true
}

func (r sourceRow) date(idx int) (time.Time, bool) {
	value, ok := r.text(idx)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func (r sourceRow) intCode(idx int) (int, bool) {
	value, ok := r.text(idx)
	if !ok {
		return 0, false
	}
	code, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return code, true
}

func (r sourceRow) assetID() (string, bool) {
	return r.text(colAssetID)
}

func (r sourceRow) legalID() (string, bool) {
	return r.text(colLegalID)
}

func (r sourceRow) registrationNumber() (string, bool) {
	return r.text(colRegistrationNumber)
}

func (r sourceRow) issuedDate() (time.Time, bool) {
	return r.date(colIssued)
}

func (r sourceRow) validToDate() (time.Time, bool) {
	return r.date(colValidTo)
}

func (r sourceRow) cardPrinted() (time.Time, bool) {
	return r.date(colCardPrinted)
}

func (r sourceRow) issuedByAdministration() (string, bool) {
	return r.text(colIssuedByAdministration)
}

func (r sourceRow) issuedByAdministrator() (string, bool) {
	return r.text(colIssuedByAdministrator)
}

// sex decodes the KON column: 0 is "K", 1 is "M". Other codes yield no result.
func (r sourceRow) sex() (string, bool) {
	code, ok := r.intCode(colSex)
	if !ok {
		return "", false
	}
	switch code {
	case 0:
		return "K", true
	case 1:
		return "M", true
	}
	return "", false
}

// appliedAs decodes the PASSAGE column: 1 is passenger, 2 is driver.
func (r sourceRow) appliedAs() (string, bool) {
	code, ok := r.intCode(colAppliedAs)
	if !ok {
		return "", false
	}
	switch code {
	case 1:
		return appliedAsPassenger, true
	case 2:
		return appliedAsDriver, true
	}
	return "", false
}

// smartParkSync decodes the SmartParkSync column: 0 is "false", 1 is "true".
func (r sourceRow) smartParkSync() (string, bool) {
	code, ok := r.intCode(colSmartParkSync)
	if !ok {
		return "", false
	}
	switch code {
	case 0:
		return "false", true
	case 1:
		return "true", true
	}
	return "", false
}
