// Package storage turns uploaded image bytes into references a tile can
// render: either an inline data URL or an object in a MinIO bucket.
package storage

import (
	"context"
	"encoding/base64"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/meet-mock/pkg/config"
)

// Object is an uploaded image ready to be stored
type Object struct {
	Key         string
	ContentType string
	Data        []byte
}

// InlineStore embeds images directly into data URLs
type InlineStore struct{}

// NewInlineStore creates an inline store
func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

// Put returns a data URL carrying the object
func (s *InlineStore) Put(_ context.Context, obj Object) (string, error) {
	if len(obj.Data) == 0 {
		return "", fmt.Errorf("object %q is empty", obj.Key)
	}
	return "data:" + obj.ContentType + ";base64," + base64.StdEncoding.EncodeToString(obj.Data), nil
}

// Name identifies the backend in logs
func (s *InlineStore) Name() string {
	return "inline"
}

// Store is implemented by every backend
type Store interface {
	Put(ctx context.Context, obj Object) (string, error)
	Name() string
}

// New picks the backend named by cfg.Type
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Type {
	case "", "inline":
		return NewInlineStore(), nil
	case "minio":
		store, err := NewMinIOStore(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
