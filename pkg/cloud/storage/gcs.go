// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorage stores objects in a Google Cloud Storage bucket.
type GCSStorage struct {
	client *storage.Client
	bucket *storage.BucketHandle
	name   string
}

func NewGCSStorage(ctx context.Context, cfg *Config) (*GCSStorage, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSStorage{
		client: client,
		bucket: client.Bucket(cfg.Bucket),
		name:   cfg.Bucket,
	}, nil
}

func (g *GCSStorage) Put(ctx context.Context, obj Object) error {
	w := g.bucket.Object(obj.Key).NewWriter(ctx)
	w.ContentType = obj.ContentType
	w.CacheControl = obj.CacheControl
	w.Metadata = obj.Metadata
	// a single chunk is enough for launch artwork and metadata
	w.ChunkSize = 0

	if _, err := w.Write(obj.Data); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to upload %s: %w", g.URI(obj.Key), err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to upload %s: %w", g.URI(obj.Key), err)
	}
	return nil
}

func (g *GCSStorage) Get(ctx context.Context, key string, w io.Writer) error {
	r, err := g.bucket.Object(key).NewReader(ctx)
	if err != nil {
		return g.notFound(key, err)
	}
	defer r.Close()
	_, err = io.Copy(w, r)
	return err
}

func (g *GCSStorage) Stat(ctx context.Context, key string) (*ObjectInfo, error) {
	attrs, err := g.bucket.Object(key).Attrs(ctx)
	if err != nil {
		return nil, g.notFound(key, err)
	}
	return &ObjectInfo{
		Key:         key,
		Size:        attrs.Size,
		ContentType: attrs.ContentType,
		Metadata:    attrs.Metadata,
	}, nil
}

func (g *GCSStorage) notFound(key string, err error) error {
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, g.URI(key))
	}
	return err
}

func (g *GCSStorage) URI(key string) string {
	return "gs://" + g.name + "/" + key
}

func (*GCSStorage) Provider() Provider {
	return ProviderGCS
}

func (g *GCSStorage) Close() error {
	return g.client.Close()
}
