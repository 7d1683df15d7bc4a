package pr3import

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sundsvall-io/party-assets/internal/config"
	"github.com/sundsvall-io/party-assets/internal/domain"
	"github.com/sundsvall-io/party-assets/internal/party"
	"github.com/sundsvall-io/party-assets/internal/validation"

	"github.com/xuri/excelize/v2"
)

const (
	paramRegistrationNumber     = "registrationNumber"
	paramCardPrinted            = "cardPrinted"
	paramSmartParkSync          = "smartParkSync"
	paramIssuedByAdministration = "issuedByAdministration"
	paramIssuedByAdministrator  = "issuedByAdministrator"
	paramAppliedAs              = "appliedAs"
	paramPermitFullNumber       = "permitFullNumber"

	appliedAsDriver    = "driver"
	appliedAsPassenger = "passenger"
	driverShort        = "F"
	passengerShort     = "P"

	headerFillColor = "D9D9D9"
	errorFontColor  = "FF0000"
)

// AssetCreator is the persistence collaborator: create-or-fail by the
// assetId business key.
type AssetCreator interface {
	CreateAsset(ctx context.Context, req domain.AssetCreateRequest) (domain.Asset, error)
}

// Result summarizes one import run. FailedRows holds the generated
// failure-report spreadsheet: the source header plus every failed source
// row with an appended error detail cell.
type Result struct {
	Total      int
	Failed     int
	FailedRows []byte
}

// Successful is the number of rows that were validated and persisted.
func (r Result) Successful() int {
	return r.Total - r.Failed
}

// Importer runs the PR3 spreadsheet import pipeline: it reads a legacy PR3
// export, transforms each row into an asset create request, resolves the
// subject to a party id, validates, persists, and collects failed rows into
// a compensating report spreadsheet.
type Importer struct {
	staticInfo  config.StaticAssetInfo
	assets      AssetCreator
	partyLookup party.Client
	validator   *validation.Validator
	now         func() time.Time
}

// New creates an importer.
func New(staticInfo config.StaticAssetInfo, assets AssetCreator, partyLookup party.Client, validator *validation.Validator) *Importer {
	return &Importer{
		staticInfo:  staticInfo,
		assets:      assets,
		partyLookup: partyLookup,
		validator:   validator,
		now:         time.Now,
	}
}

// ImportFromExcel imports assets from the Excel file read from the given
// reader. Row-level failures never abort the run; only source-read, report
// assembly and party-service transport failures do.
func (i *Importer) ImportFromExcel(ctx context.Context, in io.Reader) (Result, error) {
	source, err := excelize.OpenReader(in)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open source workbook: %w", err)
	}
	defer func() { _ = source.Close() }()

	sheets := source.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, errors.New("source workbook has no sheets")
	}
	sheetName := sheets[0]

	rows, err := source.GetRows(sheetName)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rows from source workbook: %w", err)
	}
	if len(rows) == 0 {
		return Result{}, errors.New("source sheet has no header row")
	}

	header := rows[0]
	dataRows := rows[1:]

	// Sort the data rows on asset id (TILLSTNR), descending. The column
	// holds numeric identifiers but the sort is textual; inherited behavior,
	// kept as-is.
	sort.SliceStable(dataRows, func(a, b int) bool {
		left, _ := newSourceRow(dataRows[a]).assetID()
		right, _ := newSourceRow(dataRows[b]).assetID()
		return left > right
	})

	report, err := newFailureReport(sheetName, header)
	if err != nil {
		return Result{}, err
	}
	defer report.close()

	result := Result{Total: len(dataRows)}

	for _, cells := range dataRows {
		row := newSourceRow(cells)

		req, err := i.buildCreateRequest(ctx, row)
		if err != nil {
			return Result{}, err
		}

		detail := ""
		if violations := i.validator.Validate(req); len(violations) > 0 {
			detail = validation.Detail(violations)
		} else if _, err := i.assets.CreateAsset(ctx, req); err != nil {
			detail = failureDetail(err)
		}

		if detail != "" {
			if err := report.appendFailedRow(cells, detail); err != nil {
				return Result{}, err
			}
		}
	}

	result.Failed = report.failedRows()
	data, err := report.bytes()
	if err != nil {
		return Result{}, err
	}
	result.FailedRows = data

	return result, nil
}

// buildCreateRequest transforms one source row into an asset create
// request. Every extraction is optional: a blank or undecodable cell leaves
// the corresponding field unset and never fails the row.
func (i *Importer) buildCreateRequest(ctx context.Context, row sourceRow) (domain.AssetCreateRequest, error) {
	req := domain.AssetCreateRequest{
		Origin:      i.staticInfo.Origin,
		Type:        i.staticInfo.Type,
		Description: i.staticInfo.Description,
	}

	if assetID, ok := row.assetID(); ok {
		req.AssetID = assetID
	}

	rawLegalID, hasLegalID := row.legalID()
	if hasLegalID {
		if legalID := addCenturyDigits(cleanLegalID(rawLegalID), i.now()); legalID != "" {
			partyID, found, err := i.partyLookup.GetPartyID(ctx, party.TypePrivate, legalID)
			if err != nil {
				return domain.AssetCreateRequest{}, fmt.Errorf("party lookup for row failed: %w", err)
			}
			if found {
				req.PartyID = partyID
			}
		}
	}

	if issued, ok := row.issuedDate(); ok {
		req.Issued = &issued
	}
	if validTo, ok := row.validToDate(); ok {
		validToCopy := validTo
		req.ValidTo = &validToCopy
		req.Status = i.deriveStatus(validTo)
	}
	if value, ok := row.registrationNumber(); ok {
		req.SetAdditionalParameter(paramRegistrationNumber, value)
	}
	if printed, ok := row.cardPrinted(); ok {
		req.SetAdditionalParameter(paramCardPrinted, printed.Format("2006-01-02"))
	}
	if value, ok := row.smartParkSync(); ok {
		req.SetAdditionalParameter(paramSmartParkSync, value)
	}
	if value, ok := row.issuedByAdministration(); ok {
		req.SetAdditionalParameter(paramIssuedByAdministration, value)
	}
	if value, ok := row.issuedByAdministrator(); ok {
		req.SetAdditionalParameter(paramIssuedByAdministrator, value)
	}
	if value, ok := row.appliedAs(); ok {
		req.SetAdditionalParameter(paramAppliedAs, value)
	}
	// The full permit number is {municipality id}-{asset id}-{birth year}{sex}-{applied as},
	// synthesized only when every ingredient resolved for this row.
	if sex, ok := row.sex(); ok {
		appliedAsShort := ""
		switch req.AdditionalParameters[paramAppliedAs] {
		case appliedAsDriver:
			appliedAsShort = driverShort
		case appliedAsPassenger:
			appliedAsShort = passengerShort
		}
		birthYear := ""
		if hasLegalID && len(rawLegalID) >= 2 {
			// First two characters of the legal id as written in the
			// source, before century normalization.
			birthYear = rawLegalID[:2]
		}

		if req.AssetID != "" && birthYear != "" && appliedAsShort != "" {
			req.SetAdditionalParameter(paramPermitFullNumber, fmt.Sprintf("%s-%s-%s%s-%s",
				i.staticInfo.MunicipalityID, req.AssetID, birthYear, sex, appliedAsShort))
		}
	}

	return req, nil
}

// deriveStatus derives the asset status from the valid-to date: active
// strictly after today, expired otherwise.
func (i *Importer) deriveStatus(validTo time.Time) domain.Status {
	now := i.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, validTo.Location())
	if validTo.After(today) {
		return domain.StatusActive
	}
	return domain.StatusExpired
}

// failureDetail extracts a human-readable detail from a persistence
// failure, preferring a structured problem detail over the raw error text.
func failureDetail(err error) string {
	var problem *domain.Problem
	if errors.As(err, &problem) && problem.Detail != "" {
		return problem.Detail
	}
	return err.Error()
}
