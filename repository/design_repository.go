package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tailor-storefront/models"
)

// DesignRepository handles saved customer designs
type DesignRepository struct {
	store DocumentStore
	now   func() time.Time
}

// NewDesignRepository creates a new DesignRepository
func NewDesignRepository(store DocumentStore) *DesignRepository {
	return &DesignRepository{store: store, now: time.Now}
}

// Ensure DesignRepository implements DesignRepositoryInterface
var _ DesignRepositoryInterface = (*DesignRepository)(nil)

// Create assigns an id and creation time to the design and stores it
func (r *DesignRepository) Create(ctx context.Context, design *models.SavedDesign) error {
	design.ID = uuid.NewString()
	design.CreatedAt = r.now().UTC()

	if err := setDocument(ctx, r.store, CollectionDesigns, design.ID, design); err != nil {
		return err
	}

	zap.S().Infof("✅ CreateDesign: Successfully saved design id=%s, mode=%s, price=%s", design.ID, design.Request.Mode, design.Price)
	return nil
}

func (r *DesignRepository) Get(ctx context.Context, id string) (*models.SavedDesign, error) {
	return getDocument[models.SavedDesign](ctx, r.store, CollectionDesigns, id)
}

func (r *DesignRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, CollectionDesigns, id); err != nil {
		return fmt.Errorf("failed to delete design %s: %w", id, err)
	}
	zap.S().Infof("🗑️  Deleted design %s", id)
	return nil
}
