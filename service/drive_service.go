package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveFile is an image file found in a Google Drive folder
type DriveFile struct {
	ID       string
	Name     string
	MimeType string
}

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// Backslashes are escaped before quotes
var driveQueryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath), option.WithScopes(drive.DriveReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// folderQuery builds the Drive search query for the files of a folder
func folderQuery(folderID string) string {
	return fmt.Sprintf("'%s' in parents and trashed=false", driveQueryEscaper.Replace(folderID))
}

// ListImageFiles lists all image files in a Google Drive folder
func (ds *DriveService) ListImageFiles(ctx context.Context, folderID string) ([]DriveFile, error) {
	query := folderQuery(folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	var images []DriveFile
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			zap.S().Debugf("Skipping non-image file %s (%s)", file.Name, file.MimeType)
			continue
		}
		images = append(images, DriveFile{ID: file.Id, Name: file.Name, MimeType: file.MimeType})
	}

	zap.S().Infof("📂 Found %d image files in Drive folder %s", len(images), folderID)
	return images, nil
}

// DownloadImage downloads the raw content of a Drive file
func (ds *DriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}
