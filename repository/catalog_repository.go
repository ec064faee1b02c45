package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tailor-storefront/models"
)

// CatalogRepository handles fabric, style and size documents
type CatalogRepository struct {
	store DocumentStore
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(store DocumentStore) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

func getDocument[T any](ctx context.Context, store DocumentStore, collection, id string) (*T, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%s id is required", collection)
	}

	data, err := store.Get(ctx, collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s: %w", collection, id, err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s: %w", collection, id, err)
	}
	return &out, nil
}

func listDocuments[T any](ctx context.Context, store DocumentStore, collection string) ([]T, error) {
	docs, err := store.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := json.Unmarshal(doc.Data, &item); err != nil {
			zap.S().Warnf("⚠️  Skipping undecodable %s document %s: %v", collection, doc.ID, err)
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func setDocument(ctx context.Context, store DocumentStore, collection, id string, v any) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s id is required", collection)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s %s: %w", collection, id, err)
	}
	if err := store.Set(ctx, collection, id, data); err != nil {
		return fmt.Errorf("failed to save %s %s: %w", collection, id, err)
	}
	return nil
}

func (r *CatalogRepository) GetFabric(ctx context.Context, id string) (*models.FabricOption, error) {
	return getDocument[models.FabricOption](ctx, r.store, CollectionFabrics, id)
}

func (r *CatalogRepository) GetStyle(ctx context.Context, id string) (*models.StyleOption, error) {
	return getDocument[models.StyleOption](ctx, r.store, CollectionStyles, id)
}

func (r *CatalogRepository) GetSize(ctx context.Context, id string) (*models.SizeOption, error) {
	return getDocument[models.SizeOption](ctx, r.store, CollectionSizes, id)
}

func (r *CatalogRepository) ListFabrics(ctx context.Context) ([]models.FabricOption, error) {
	return listDocuments[models.FabricOption](ctx, r.store, CollectionFabrics)
}

func (r *CatalogRepository) ListStyles(ctx context.Context) ([]models.StyleOption, error) {
	return listDocuments[models.StyleOption](ctx, r.store, CollectionStyles)
}

func (r *CatalogRepository) ListSizes(ctx context.Context) ([]models.SizeOption, error) {
	return listDocuments[models.SizeOption](ctx, r.store, CollectionSizes)
}

// SaveFabric inserts or replaces a fabric
func (r *CatalogRepository) SaveFabric(ctx context.Context, fabric *models.FabricOption) error {
	if fabric.PricePerUnit.IsNegative() {
		return fmt.Errorf("fabric %s price cannot be negative", fabric.ID)
	}
	zap.S().Infof("🧵 SaveFabric: id=%s, name=%s, price=%s", fabric.ID, fabric.Name, fabric.PricePerUnit)
	return setDocument(ctx, r.store, CollectionFabrics, fabric.ID, fabric)
}

// SaveStyle inserts or replaces a style option
func (r *CatalogRepository) SaveStyle(ctx context.Context, style *models.StyleOption) error {
	if strings.TrimSpace(style.Category) == "" {
		return fmt.Errorf("style %s category is required", style.ID)
	}
	zap.S().Infof("✂️  SaveStyle: id=%s, category=%s, delta=%s", style.ID, style.Category, style.PriceDelta)
	return setDocument(ctx, r.store, CollectionStyles, style.ID, style)
}

// SaveSize inserts or replaces a predefined size
func (r *CatalogRepository) SaveSize(ctx context.Context, size *models.SizeOption) error {
	zap.S().Infof("📏 SaveSize: id=%s, name=%s, measurements=%d", size.ID, size.Name, len(size.Measurements))
	return setDocument(ctx, r.store, CollectionSizes, size.ID, size)
}

// Delete removes an option from one of the catalog collections
func (r *CatalogRepository) Delete(ctx context.Context, collection, id string) error {
	switch collection {
	case CollectionFabrics, CollectionStyles, CollectionSizes:
	default:
		return fmt.Errorf("unknown catalog collection %q", collection)
	}
	if err := r.store.Delete(ctx, collection, id); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", collection, id, err)
	}
	zap.S().Infof("🗑️  Deleted %s %s", collection, id)
	return nil
}
