package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sundsvall-io/party-assets/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assetColumns = `id, asset_id, party_id, case_reference_ids, origin, type, issued, valid_to,
	status, status_reason, description, additional_parameters, created_at, updated_at`

// assetRepository implements AssetRepository on top of a pgx pool
type assetRepository struct {
	pool *pgxpool.Pool
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(pool *pgxpool.Pool) AssetRepository {
	return &assetRepository{
		pool: pool,
	}
}

// Create inserts a new asset
func (r *assetRepository) Create(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO assets (`+assetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		asset.ID, asset.AssetID, asset.PartyID, refsOrEmpty(asset.CaseReferenceIDs), asset.Origin, asset.Type,
		asset.Issued, asset.ValidTo, asset.Status, asset.StatusReason, asset.Description,
		parametersOrEmpty(asset.AdditionalParameters), asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Asset{}, ErrDuplicateAssetID
		}
		return domain.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

// GetByID retrieves an asset by its internal id
func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Asset, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = $1`, id)
	return scanAsset(row)
}

// FindByAssetID retrieves an asset by its business key
func (r *assetRepository) FindByAssetID(ctx context.Context, assetID string) (domain.Asset, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+assetColumns+` FROM assets WHERE asset_id = $1`, assetID)
	return scanAsset(row)
}

// ExistsByAssetID reports whether an asset with the given business key exists
func (r *assetRepository) ExistsByAssetID(ctx context.Context, assetID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM assets WHERE asset_id = $1)`, assetID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check asset existence: %w", err)
	}
	return exists, nil
}

// List retrieves assets matching the given filter
func (r *assetRepository) List(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets`
	var conditions []string
	var args []any

	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.PartyID != "" {
		addCondition("party_id", filter.PartyID)
	}
	if filter.AssetID != "" {
		addCondition("asset_id", filter.AssetID)
	}
	if filter.Type != "" {
		addCondition("type", filter.Type)
	}
	if filter.Status != "" {
		addCondition("status", filter.Status)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}
	return assets, nil
}

// Update persists the mutable fields of an asset
func (r *assetRepository) Update(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE assets
		SET case_reference_ids = $2, valid_to = $3, status = $4, status_reason = $5,
			additional_parameters = $6, updated_at = $7
		WHERE id = $1`,
		asset.ID, refsOrEmpty(asset.CaseReferenceIDs), asset.ValidTo, asset.Status, asset.StatusReason,
		parametersOrEmpty(asset.AdditionalParameters), asset.UpdatedAt,
	)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("failed to update asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Asset{}, ErrNotFound
	}
	return asset, nil
}

// Delete removes an asset
func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAsset(row pgx.Row) (domain.Asset, error) {
	var asset domain.Asset
	err := row.Scan(
		&asset.ID, &asset.AssetID, &asset.PartyID, &asset.CaseReferenceIDs, &asset.Origin,
		&asset.Type, &asset.Issued, &asset.ValidTo, &asset.Status, &asset.StatusReason,
		&asset.Description, &asset.AdditionalParameters, &asset.CreatedAt, &asset.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Asset{}, ErrNotFound
		}
		return domain.Asset{}, fmt.Errorf("failed to scan asset: %w", err)
	}
	return asset, nil
}

func parametersOrEmpty(params map[string]string) map[string]string {
	if params == nil {
		return map[string]string{}
	}
	return params
}

func refsOrEmpty(refs []string) []string {
	if refs == nil {
		return []string{}
	}
	return refs
}
