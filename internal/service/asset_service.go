package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sundsvall-io/party-assets/internal/domain"
	"github.com/sundsvall-io/party-assets/internal/repository"

	"github.com/google/uuid"
)

// AssetService implements the asset use cases on top of the repository.
type AssetService struct {
	repo repository.AssetRepository
}

// NewAssetService creates a new asset service.
func NewAssetService(repo repository.AssetRepository) *AssetService {
	return &AssetService{
		repo: repo,
	}
}

// CreateAsset registers a new asset. The assetId is a business key: creation
// fails with a conflict problem when it is already taken.
func (s *AssetService) CreateAsset(ctx context.Context, req domain.AssetCreateRequest) (domain.Asset, error) {
	if !domain.ValidStatusReason(req.Status, req.StatusReason) {
		return domain.Asset{}, domain.BadRequestProblem(
			fmt.Sprintf("%q is not a valid status reason for status %s", req.StatusReason, req.Status))
	}

	exists, err := s.repo.ExistsByAssetID(ctx, req.AssetID)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("failed to check asset existence: %w", err)
	}
	if exists {
		return domain.Asset{}, domain.ConflictProblem(
			fmt.Sprintf("Asset with assetId %s already exists", req.AssetID))
	}

	asset, err := s.repo.Create(ctx, domain.NewAsset(req))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAssetID) {
			// Lost the race against a concurrent create of the same key.
			return domain.Asset{}, domain.ConflictProblem(
				fmt.Sprintf("Asset with assetId %s already exists", req.AssetID))
		}
		return domain.Asset{}, err
	}
	return asset, nil
}

// GetAsset retrieves a single asset by its internal id.
func (s *AssetService) GetAsset(ctx context.Context, id uuid.UUID) (domain.Asset, error) {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Asset{}, domain.NotFoundProblem(fmt.Sprintf("Asset %s not found", id))
		}
		return domain.Asset{}, err
	}
	return asset, nil
}

// ListAssets retrieves assets matching the given filter.
func (s *AssetService) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	return s.repo.List(ctx, filter)
}

// UpdateAsset applies a partial update, merging additional parameters and
// case references into the stored asset.
func (s *AssetService) UpdateAsset(ctx context.Context, id uuid.UUID, req domain.AssetUpdateRequest) (domain.Asset, error) {
	asset, err := s.GetAsset(ctx, id)
	if err != nil {
		return domain.Asset{}, err
	}

	updated := asset.ApplyUpdate(req)
	if !domain.ValidStatusReason(updated.Status, updated.StatusReason) {
		return domain.Asset{}, domain.BadRequestProblem(
			fmt.Sprintf("%q is not a valid status reason for status %s", updated.StatusReason, updated.Status))
	}

	persisted, err := s.repo.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Asset{}, domain.NotFoundProblem(fmt.Sprintf("Asset %s not found", id))
		}
		return domain.Asset{}, err
	}
	return persisted, nil
}

// DeleteAsset removes an asset.
func (s *AssetService) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFoundProblem(fmt.Sprintf("Asset %s not found", id))
		}
		return err
	}
	return nil
}
