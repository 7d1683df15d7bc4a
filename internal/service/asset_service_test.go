package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sundsvall-io/party-assets/internal/domain"
	"github.com/sundsvall-io/party-assets/internal/repository"

	"github.com/google/uuid"
)

type stubAssetRepo struct {
	assets  map[uuid.UUID]domain.Asset
	byKey   map[string]uuid.UUID
	created []domain.Asset
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{
		assets: map[uuid.UUID]domain.Asset{},
		byKey:  map[string]uuid.UUID{},
	}
}

func (s *stubAssetRepo) Create(_ context.Context, asset domain.Asset) (domain.Asset, error) {
	if _, taken := s.byKey[asset.AssetID]; taken {
		return domain.Asset{}, repository.ErrDuplicateAssetID
	}
	s.assets[asset.ID] = asset
	s.byKey[asset.AssetID] = asset.ID
	s.created = append(s.created, asset)
	return asset, nil
}

func (s *stubAssetRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Asset, error) {
	asset, ok := s.assets[id]
	if !ok {
		return domain.Asset{}, repository.ErrNotFound
	}
	return asset, nil
}

func (s *stubAssetRepo) FindByAssetID(_ context.Context, assetID string) (domain.Asset, error) {
	id, ok := s.byKey[assetID]
	if !ok {
		return domain.Asset{}, repository.ErrNotFound
	}
	return s.assets[id], nil
}

func (s *stubAssetRepo) ExistsByAssetID(_ context.Context, assetID string) (bool, error) {
	_, ok := s.byKey[assetID]
	return ok, nil
}

func (s *stubAssetRepo) List(_ context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	var assets []domain.Asset
	for _, asset := range s.assets {
		if filter.PartyID != "" && asset.PartyID != filter.PartyID {
			continue
		}
		if filter.Status != "" && asset.Status != filter.Status {
			continue
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func (s *stubAssetRepo) Update(_ context.Context, asset domain.Asset) (domain.Asset, error) {
	if _, ok := s.assets[asset.ID]; !ok {
		return domain.Asset{}, repository.ErrNotFound
	}
	s.assets[asset.ID] = asset
	return asset, nil
}

func (s *stubAssetRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.assets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.assets, id)
	return nil
}

func validCreateRequest() domain.AssetCreateRequest {
	return domain.AssetCreateRequest{
		PartyID: "a2c1fc2c-1f0a-4a43-9b5c-9f4d27a9f3a1",
		AssetID: "PRH-0000000001",
		Type:    "PARKINGPERMIT",
		Status:  domain.StatusActive,
	}
}

func TestCreateAsset(t *testing.T) {
	repo := newStubAssetRepo()
	svc := NewAssetService(repo)

	asset, err := svc.CreateAsset(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if asset.AssetID != "PRH-0000000001" {
		t.Fatalf("unexpected asset: %+v", asset)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted asset, got %d", len(repo.created))
	}
}

func TestCreateAssetConflictOnBusinessKey(t *testing.T) {
	repo := newStubAssetRepo()
	svc := NewAssetService(repo)

	if _, err := svc.CreateAsset(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("first create returned error: %v", err)
	}

	_, err := svc.CreateAsset(context.Background(), validCreateRequest())
	var problem *domain.Problem
	if !errors.As(err, &problem) {
		t.Fatalf("expected a problem error, got %v", err)
	}
	if problem.Status != 409 {
		t.Errorf("expected conflict status, got %d", problem.Status)
	}
	if problem.Detail != "Asset with assetId PRH-0000000001 already exists" {
		t.Errorf("unexpected detail: %q", problem.Detail)
	}
}

func TestCreateAssetRejectsInvalidStatusReason(t *testing.T) {
	repo := newStubAssetRepo()
	svc := NewAssetService(repo)

	req := validCreateRequest()
	req.Status = domain.StatusActive
	req.StatusReason = "LOST"

	_, err := svc.CreateAsset(context.Background(), req)
	var problem *domain.Problem
	if !errors.As(err, &problem) || problem.Status != 400 {
		t.Fatalf("expected bad request problem, got %v", err)
	}
}

func TestUpdateAssetMergesAndPersists(t *testing.T) {
	repo := newStubAssetRepo()
	svc := NewAssetService(repo)

	created, err := svc.CreateAsset(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	blocked := domain.StatusBlocked
	reason := "IRREGULARITY"
	updated, err := svc.UpdateAsset(context.Background(), created.ID, domain.AssetUpdateRequest{
		Status:       &blocked,
		StatusReason: &reason,
	})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Status != domain.StatusBlocked || updated.StatusReason != "IRREGULARITY" {
		t.Fatalf("unexpected updated asset: %+v", updated)
	}
}

func TestUpdateAssetNotFound(t *testing.T) {
	svc := NewAssetService(newStubAssetRepo())

	_, err := svc.UpdateAsset(context.Background(), uuid.New(), domain.AssetUpdateRequest{})
	var problem *domain.Problem
	if !errors.As(err, &problem) || problem.Status != 404 {
		t.Fatalf("expected not found problem, got %v", err)
	}
}

func TestDeleteAsset(t *testing.T) {
	repo := newStubAssetRepo()
	svc := NewAssetService(repo)

	created, err := svc.CreateAsset(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if err := svc.DeleteAsset(context.Background(), created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	err = svc.DeleteAsset(context.Background(), created.ID)
	var problem *domain.Problem
	if !errors.As(err, &problem) || problem.Status != 404 {
		t.Fatalf("expected not found problem, got %v", err)
	}
}
