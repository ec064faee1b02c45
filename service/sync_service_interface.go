package service

import (
	"context"

	"tailor-storefront/models"
)

// SwatchSyncServiceInterface defines the contract for swatch synchronization
type SwatchSyncServiceInterface interface {
	// SyncSwatches returns insertion stats: inserted = new fabrics, updated = existing
	// fabrics whose swatch changed, skipped = unchanged or unparseable files.
	SyncSwatches(ctx context.Context, folderID string) (*models.SwatchSyncResponse, error)
}

// SwatchImageServiceInterface defines the contract for serving swatch images
type SwatchImageServiceInterface interface {
	GetSwatchImage(ctx context.Context, fabricID string, size string) ([]byte, error)
}
