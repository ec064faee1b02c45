package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tailor-storefront/repository"
)

// ErrNoSwatch is returned when a fabric has no swatch image linked
var ErrNoSwatch = errors.New("fabric has no swatch image")

// SwatchImageService downloads, optimizes and caches fabric swatch images
// Implements SwatchImageServiceInterface
type SwatchImageService struct {
	driveService DriveServiceInterface
	repository   repository.CatalogRepositoryInterface
	cache        *ImageCache
}

// NewSwatchImageService creates a new SwatchImageService instance
func NewSwatchImageService(driveService DriveServiceInterface, repo repository.CatalogRepositoryInterface, cache *ImageCache) *SwatchImageService {
	return &SwatchImageService{
		driveService: driveService,
		repository:   repo,
		cache:        cache,
	}
}

// Ensure SwatchImageService implements SwatchImageServiceInterface
var _ SwatchImageServiceInterface = (*SwatchImageService)(nil)

// GetSwatchImage returns the optimized JPEG swatch of a fabric, from cache when possible
func (s *SwatchImageService) GetSwatchImage(ctx context.Context, fabricID string, size string) ([]byte, error) {
	size = NormalizeImageSize(size)

	fabric, err := s.repository.GetFabric(ctx, fabricID)
	if err != nil {
		return nil, err
	}
	if fabric.SwatchFileID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoSwatch, fabricID)
	}

	cachePath := s.cache.Path(fabric.ID, fabric.SwatchFileID, size)
	if data, ok := s.cache.Read(cachePath); ok {
		zap.S().Debugf("📦 Serving cached swatch %s (%s)", fabric.ID, size)
		return data, nil
	}

	if s.driveService == nil {
		return nil, fmt.Errorf("swatch source is not configured")
	}

	raw, err := s.driveService.DownloadImage(ctx, fabric.SwatchFileID)
	if err != nil {
		return nil, fmt.Errorf("failed to download swatch for %s: %w", fabric.ID, err)
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize swatch for %s: %w", fabric.ID, err)
	}

	if err := s.cache.Save(cachePath, optimized); err != nil {
		// Cache failures are not fatal
		zap.S().Warnf("⚠️  Could not cache swatch %s: %v", fabric.ID, err)
	}

	return optimized, nil
}
