package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewAssetCopiesRequest(t *testing.T) {
	issued := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	req := AssetCreateRequest{
		PartyID:          "a2c1fc2c-1f0a-4a43-9b5c-9f4d27a9f3a1",
		AssetID:          "PRH-0000000001",
		Type:             "PARKINGPERMIT",
		Status:           StatusActive,
		Issued:           &issued,
		CaseReferenceIDs: []string{"ref-1"},
		AdditionalParameters: map[string]string{
			"registrationNumber": "DNR-1",
		},
	}

	asset := NewAsset(req)
	if asset.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if asset.AssetID != req.AssetID || asset.PartyID != req.PartyID || asset.Status != req.Status {
		t.Errorf("unexpected asset: %+v", asset)
	}

	// The asset must not alias the request's maps and slices.
	req.AdditionalParameters["registrationNumber"] = "changed"
	req.CaseReferenceIDs[0] = "changed"
	if asset.AdditionalParameters["registrationNumber"] != "DNR-1" {
		t.Error("additional parameters alias the request map")
	}
	if asset.CaseReferenceIDs[0] != "ref-1" {
		t.Error("case references alias the request slice")
	}
}

func TestApplyUpdateMergeSemantics(t *testing.T) {
	asset := Asset{
		Status: StatusActive,
		AdditionalParameters: map[string]string{
			"registrationNumber": "DNR-1",
		},
		CaseReferenceIDs: []string{"existing"},
	}

	blocked := StatusBlocked
	reason := "LOST"
	updated := asset.ApplyUpdate(AssetUpdateRequest{
		Status:           &blocked,
		StatusReason:     &reason,
		CaseReferenceIDs: []string{"incoming"},
		AdditionalParameters: map[string]string{
			"registrationNumber": "overwritten",
			"cardPrinted":        "2023-06-05",
		},
	})

	if updated.Status != StatusBlocked || updated.StatusReason != "LOST" {
		t.Errorf("status update not applied: %+v", updated)
	}
	// Existing parameter values win over incoming ones; new keys are added.
	if updated.AdditionalParameters["registrationNumber"] != "DNR-1" {
		t.Errorf("existing parameter overwritten: %q", updated.AdditionalParameters["registrationNumber"])
	}
	if updated.AdditionalParameters["cardPrinted"] != "2023-06-05" {
		t.Errorf("new parameter missing: %v", updated.AdditionalParameters)
	}
	if len(updated.CaseReferenceIDs) != 2 {
		t.Errorf("expected merged case references, got %v", updated.CaseReferenceIDs)
	}

	// Untouched fields stay as they were.
	noop := asset.ApplyUpdate(AssetUpdateRequest{})
	if noop.Status != StatusActive || len(noop.CaseReferenceIDs) != 1 {
		t.Errorf("empty update changed the asset: %+v", noop)
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range []Status{StatusActive, StatusBlocked, StatusExpired} {
		if !status.Valid() {
			t.Errorf("expected %s to be valid", status)
		}
	}
	if Status("CANCELLED").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}

func TestValidStatusReason(t *testing.T) {
	if !ValidStatusReason(StatusActive, "") {
		t.Error("empty reason must always be allowed")
	}
	if !ValidStatusReason(StatusBlocked, "LOST") {
		t.Error("expected LOST to be allowed for BLOCKED")
	}
	if ValidStatusReason(StatusBlocked, "SOMETHING") {
		t.Error("expected unknown reason to be rejected for BLOCKED")
	}
	if ValidStatusReason(StatusActive, "LOST") {
		t.Error("expected reasons to be rejected for ACTIVE")
	}
}
