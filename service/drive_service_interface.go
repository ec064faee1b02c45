package service

import "context"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListImageFiles(ctx context.Context, folderID string) ([]DriveFile, error)
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}
