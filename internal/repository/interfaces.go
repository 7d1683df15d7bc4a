package repository

import (
	"context"
	"errors"

	"github.com/sundsvall-io/party-assets/internal/domain"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested asset does not exist.
var ErrNotFound = errors.New("asset not found")

// ErrDuplicateAssetID is returned when the asset business key is already taken.
var ErrDuplicateAssetID = errors.New("asset id already exists")

// AssetRepository defines the interface for asset operations
type AssetRepository interface {
	Create(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error)
	FindByAssetID(ctx context.Context, assetID string) (domain.Asset, error)
	ExistsByAssetID(ctx context.Context, assetID string) (bool, error)
	List(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error)
	Update(ctx context.Context, asset domain.Asset) (domain.Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
