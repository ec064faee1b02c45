package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tailor-storefront/models"
	"tailor-storefront/repository"
	"tailor-storefront/utils"
)

// SwatchSyncService synchronizes fabric swatches from Google Drive into the catalog
// Implements SwatchSyncServiceInterface
type SwatchSyncService struct {
	driveService DriveServiceInterface
	repository   repository.CatalogRepositoryInterface
	defaultPrice decimal.Decimal
}

// NewSwatchSyncService creates a new SwatchSyncService.
// defaultPrice is used for fabrics first seen in Drive.
func NewSwatchSyncService(driveService DriveServiceInterface, repo repository.CatalogRepositoryInterface, defaultPrice decimal.Decimal) *SwatchSyncService {
	return &SwatchSyncService{
		driveService: driveService,
		repository:   repo,
		defaultPrice: defaultPrice,
	}
}

// Ensure SwatchSyncService implements SwatchSyncServiceInterface
var _ SwatchSyncServiceInterface = (*SwatchSyncService)(nil)

// SyncSwatches creates fabrics for new swatch files and refreshes the swatch
// file id of existing ones. Files whose name does not parse are skipped.
func (s *SwatchSyncService) SyncSwatches(ctx context.Context, folderID string) (*models.SwatchSyncResponse, error) {
	zap.S().Infof("🔄 Starting swatch synchronization for folder: %s", folderID)

	files, err := s.driveService.ListImageFiles(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list swatches from Drive: %w", err)
	}

	stats := &models.SwatchSyncResponse{Total: len(files)}

	for _, file := range files {
		swatch, err := utils.ParseSwatchFileName(file.Name)
		if err != nil {
			zap.S().Warnf("⚠️  Skipping %s: %v", file.Name, err)
			stats.Skipped++
			continue
		}

		existing, err := s.repository.GetFabric(ctx, swatch.FabricID)
		switch {
		case err == nil:
			if existing.SwatchFileID == file.ID {
				zap.S().Debugf("⏭️  Skipping %s (swatch already linked)", swatch.FabricID)
				stats.Skipped++
				continue
			}
			existing.SwatchFileID = file.ID
			if err := s.repository.SaveFabric(ctx, existing); err != nil {
				zap.S().Errorf("❌ Error updating fabric %s: %v", swatch.FabricID, err)
				stats.Skipped++
				continue
			}
			stats.Updated++

		case errors.Is(err, repository.ErrNotFound):
			colorName := utils.CapitalizeWords(utils.MapCodeToColor(swatch.ColorCode))
			fabric := &models.FabricOption{
				ID:           swatch.FabricID,
				Name:         fmt.Sprintf("%s %s", colorName, utils.CapitalizeWords(swatch.Category)),
				Category:     swatch.Category,
				Color:        colorName,
				PricePerUnit: s.defaultPrice,
				SwatchFileID: file.ID,
			}
			if err := s.repository.SaveFabric(ctx, fabric); err != nil {
				zap.S().Errorf("❌ Error inserting fabric %s: %v", swatch.FabricID, err)
				stats.Skipped++
				continue
			}
			zap.S().Infof("🆕 New fabric %s from swatch %s", fabric.ID, file.Name)
			stats.Inserted++

		default:
			zap.S().Errorf("❌ Error checking fabric %s: %v", swatch.FabricID, err)
			stats.Skipped++
		}
	}

	zap.S().Infof("🎉 Swatch synchronization completed: %d inserted, %d updated, %d skipped, %d total",
		stats.Inserted, stats.Updated, stats.Skipped, stats.Total)
	return stats, nil
}
