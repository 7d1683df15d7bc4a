package validation

import (
	"strings"
	"testing"

	"github.com/sundsvall-io/party-assets/internal/domain"
)

func TestValidateAssetCreateRequest(t *testing.T) {
	v := New()

	valid := domain.AssetCreateRequest{
		PartyID: "a2c1fc2c-1f0a-4a43-9b5c-9f4d27a9f3a1",
		AssetID: "PRH-0000000001",
		Type:    "PARKINGPERMIT",
		Status:  domain.StatusActive,
	}
	if violations := v.Validate(valid); len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestValidateReportsMissingRequiredFields(t *testing.T) {
	v := New()

	violations := v.Validate(domain.AssetCreateRequest{})
	if len(violations) == 0 {
		t.Fatal("expected violations for empty request")
	}

	fields := map[string]bool{}
	for _, violation := range violations {
		fields[violation.Field] = true
	}
	for _, required := range []string{"partyId", "assetId", "type", "status"} {
		if !fields[required] {
			t.Errorf("expected violation for %s, got %v", required, violations)
		}
	}
}

func TestValidateRejectsMalformedPartyID(t *testing.T) {
	v := New()

	violations := v.Validate(domain.AssetCreateRequest{
		PartyID: "not-a-uuid",
		AssetID: "PRH-0000000001",
		Type:    "PARKINGPERMIT",
		Status:  domain.StatusActive,
	})
	if len(violations) != 1 || violations[0].Field != "partyId" {
		t.Fatalf("expected a single partyId violation, got %v", violations)
	}
}

func TestDetailJoinsMessages(t *testing.T) {
	detail := Detail([]Violation{
		{Field: "partyId", Message: "partyId is a required field"},
		{Field: "status", Message: "status is a required field"},
	})
	want := "partyId is a required field, status is a required field"
	if detail != want {
		t.Errorf("Detail() = %q, want %q", detail, want)
	}
	if !strings.Contains(detail, "partyId") {
		t.Errorf("expected detail to name the field path: %q", detail)
	}
}
