package repository

import (
	"context"
	"errors"

	"tailor-storefront/models"
)

// ErrNotFound is returned when a document does not exist
var ErrNotFound = errors.New("document not found")

// Collection names
const (
	CollectionFabrics = "fabrics"
	CollectionStyles  = "styles"
	CollectionSizes   = "sizes"
	CollectionDesigns = "designs"
)

// Document is a raw JSON document and its id
type Document struct {
	ID   string
	Data []byte
}

// DocumentStore is an opaque key/value document store. Documents are JSON
// encoded and addressed by collection and id.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) ([]byte, error)
	Set(ctx context.Context, collection, id string, data []byte) error
	Delete(ctx context.Context, collection, id string) error
	List(ctx context.Context, collection string) ([]Document, error)
}

// CatalogRepositoryInterface defines the contract for catalog operations
type CatalogRepositoryInterface interface {
	GetFabric(ctx context.Context, id string) (*models.FabricOption, error)
	GetStyle(ctx context.Context, id string) (*models.StyleOption, error)
	GetSize(ctx context.Context, id string) (*models.SizeOption, error)
	ListFabrics(ctx context.Context) ([]models.FabricOption, error)
	ListStyles(ctx context.Context) ([]models.StyleOption, error)
	ListSizes(ctx context.Context) ([]models.SizeOption, error)
	SaveFabric(ctx context.Context, fabric *models.FabricOption) error
	SaveStyle(ctx context.Context, style *models.StyleOption) error
	SaveSize(ctx context.Context, size *models.SizeOption) error
	Delete(ctx context.Context, collection, id string) error
}

// DesignRepositoryInterface defines the contract for saved design operations
type DesignRepositoryInterface interface {
	Create(ctx context.Context, design *models.SavedDesign) error
	Get(ctx context.Context, id string) (*models.SavedDesign, error)
	Delete(ctx context.Context, id string) error
}
