package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore keeps documents in Firestore collections. JSON documents are
// stored as native Firestore maps so they stay readable in the console.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a FirestoreStore on an existing client
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Ensure FirestoreStore implements DocumentStore
var _ DocumentStore = (*FirestoreStore)(nil)

func isFirestoreNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if isFirestoreNotFound(err) {
			return nil, ErrNotFound
		}
		zap.S().Errorf("❌ Error fetching firestore document %s/%s: %v", collection, id, err)
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if snap == nil || !snap.Exists() {
		return nil, ErrNotFound
	}

	data, err := json.Marshal(snap.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to encode document %s/%s: %w", collection, id, err)
	}
	return data, nil
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, data []byte) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("document %s/%s must be a JSON object: %w", collection, id, err)
	}

	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, fields); err != nil {
		zap.S().Errorf("❌ Error writing firestore document %s/%s: %v", collection, id, err)
		return fmt.Errorf("failed to set document: %w", err)
	}
	return nil
}

// Delete removes a document. The Exists precondition makes a missing
// document fail with NotFound instead of succeeding silently.
func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isFirestoreNotFound(err) {
			return ErrNotFound
		}
		zap.S().Errorf("❌ Error deleting firestore document %s/%s: %v", collection, id, err)
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// List returns the collection's documents ordered by id
func (s *FirestoreStore) List(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			zap.S().Errorf("❌ Error listing firestore collection %s: %v", collection, err)
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}

		data, err := json.Marshal(snap.Data())
		if err != nil {
			return nil, fmt.Errorf("failed to encode document %s/%s: %w", collection, snap.Ref.ID, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: data})
	}
	return docs, nil
}
