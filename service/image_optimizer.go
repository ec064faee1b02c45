package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

var unsafeCacheChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// ImageCache stores optimized images on disk
type ImageCache struct {
	dir string
}

// NewImageCache creates an ImageCache rooted at dir
func NewImageCache(dir string) *ImageCache {
	return &ImageCache{dir: dir}
}

// Path returns the cache file path for a fabric's swatch file at a given size.
// The name carries a digest of both ids, so a new swatch file or ids that only
// differ in unsafe characters never share an entry.
func (c *ImageCache) Path(fabricID string, swatchFileID string, size string) string {
	sum := sha256.Sum256([]byte(fabricID + "\x00" + swatchFileID))
	filename := fmt.Sprintf("swatch_%s_%s_%s.jpg",
		unsafeCacheChars.ReplaceAllString(fabricID, "_"), hex.EncodeToString(sum[:8]), size)
	return filepath.Join(c.dir, filename)
}

// Read returns a cached image, or ok=false if it is not cached
func (c *ImageCache) Read(cachePath string) (data []byte, ok bool) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Save saves an image to the cache
func (c *ImageCache) Save(cachePath string, imageData []byte) error {
	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	zap.S().Debugf("✓ Image cached: %s", cachePath)
	return nil
}

// NormalizeImageSize maps a requested size to "thumb" or "medium"
func NormalizeImageSize(size string) string {
	if size == "thumb" {
		return "thumb"
	}
	return "medium"
}

// OptimizeImage optimizes an image by converting to JPEG and resizing
// imageData: raw image bytes (PNG, JPEG)
// size: "thumb" or "medium"
// Returns optimized JPEG image bytes
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	zap.S().Debugf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	// Determine max dimension and quality based on size
	maxDim := maxSizeMedium
	quality := qualityMedium
	if NormalizeImageSize(size) == "thumb" {
		maxDim = maxSizeThumb
		quality = qualityThumb
	}

	var resizedImg image.Image = img
	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		// imaging.Fit keeps the aspect ratio
		resizedImg = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		zap.S().Debugf("🔄 Resized image: %dx%d -> %v", bounds.Dx(), bounds.Dy(), resizedImg.Bounds().Size())
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resizedImg, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	zap.S().Debugf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, buf.Len())
	return buf.Bytes(), nil
}
