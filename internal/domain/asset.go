package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status enumerates the lifecycle states an asset can be in.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
	StatusExpired Status = "EXPIRED"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusBlocked, StatusExpired:
		return true
	}
	return false
}

// Asset represents a permit, card or similar entitlement held by a party.
type Asset struct {
	ID                   uuid.UUID         `json:"id"`
	AssetID              string            `json:"assetId"`
	PartyID              string            `json:"partyId"`
	CaseReferenceIDs     []string          `json:"caseReferenceIds,omitempty"`
	Origin               string            `json:"origin"`
	Type                 string            `json:"type"`
	Issued               *time.Time        `json:"issued,omitempty"`
	ValidTo              *time.Time        `json:"validTo,omitempty"`
	Status               Status            `json:"status"`
	StatusReason         string            `json:"statusReason,omitempty"`
	Description          string            `json:"description"`
	AdditionalParameters map[string]string `json:"additionalParameters,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// AssetCreateRequest carries the fields needed to register a new asset.
// The assetId is the business key; creation fails if it is already taken.
type AssetCreateRequest struct {
	PartyID              string            `json:"partyId" validate:"required,uuid4"`
	AssetID              string            `json:"assetId" validate:"required"`
	CaseReferenceIDs     []string          `json:"caseReferenceIds,omitempty" validate:"omitempty,dive,uuid4"`
	Origin               string            `json:"origin"`
	Type                 string            `json:"type" validate:"required"`
	Issued               *time.Time        `json:"issued,omitempty"`
	ValidTo              *time.Time        `json:"validTo,omitempty"`
	Status               Status            `json:"status" validate:"required,oneof=ACTIVE BLOCKED EXPIRED"`
	StatusReason         string            `json:"statusReason,omitempty"`
	Description          string            `json:"description"`
	AdditionalParameters map[string]string `json:"additionalParameters,omitempty"`
}

// SetAdditionalParameter records a key/value pair, allocating the map on first use.
func (r *AssetCreateRequest) SetAdditionalParameter(key, value string) {
	if r.AdditionalParameters == nil {
		r.AdditionalParameters = make(map[string]string)
	}
	r.AdditionalParameters[key] = value
}

// AssetUpdateRequest carries a partial update. Nil fields are left untouched;
// additionalParameters and caseReferenceIds are merged with existing values,
// not replaced.
type AssetUpdateRequest struct {
	CaseReferenceIDs     []string          `json:"caseReferenceIds,omitempty" validate:"omitempty,dive,uuid4"`
	ValidTo              *time.Time        `json:"validTo,omitempty"`
	Status               *Status           `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE BLOCKED EXPIRED"`
	StatusReason         *string           `json:"statusReason,omitempty"`
	AdditionalParameters map[string]string `json:"additionalParameters,omitempty"`
}

// AssetFilter narrows asset listings. Zero values mean "no constraint".
type AssetFilter struct {
	PartyID string
	AssetID string
	Type    string
	Status  Status
}

// NewAsset builds an asset from a create request.
func NewAsset(req AssetCreateRequest) Asset {
	now := time.Now()
	return Asset{
		ID:                   uuid.New(),
		AssetID:              req.AssetID,
		PartyID:              req.PartyID,
		CaseReferenceIDs:     append([]string(nil), req.CaseReferenceIDs...),
		Origin:               req.Origin,
		Type:                 req.Type,
		Issued:               req.Issued,
		ValidTo:              req.ValidTo,
		Status:               req.Status,
		StatusReason:         req.StatusReason,
		Description:          req.Description,
		AdditionalParameters: copyParameters(req.AdditionalParameters),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// ApplyUpdate returns a copy of the asset with the update request applied.
// Incoming additional parameters never overwrite existing keys and incoming
// case references are appended, mirroring the merge semantics of the
// original register.
func (a Asset) ApplyUpdate(req AssetUpdateRequest) Asset {
	updated := a

	if len(req.AdditionalParameters) > 0 {
		merged := copyParameters(req.AdditionalParameters)
		for key, value := range a.AdditionalParameters {
			merged[key] = value
		}
		updated.AdditionalParameters = merged
	}
	if len(req.CaseReferenceIDs) > 0 {
		refs := append([]string(nil), req.CaseReferenceIDs...)
		updated.CaseReferenceIDs = append(refs, a.CaseReferenceIDs...)
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.StatusReason != nil {
		updated.StatusReason = *req.StatusReason
	}
	if req.ValidTo != nil {
		updated.ValidTo = req.ValidTo
	}

	updated.UpdatedAt = time.Now()
	return updated
}

func copyParameters(params map[string]string) map[string]string {
	if params == nil {
		return nil
	}
	copied := make(map[string]string, len(params))
	for key, value := range params {
		copied[key] = value
	}
	return copied
}
