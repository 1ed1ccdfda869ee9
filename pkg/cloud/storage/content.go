// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

const immutableCacheControl = "public, max-age=31536000, immutable"

// File is a named blob to be stored as immutable content.
type File struct {
	Name        string
	Bytes       []byte
	ContentType string
}

// ContentStore keeps files under their content identifier, so the same
// bytes always map to the same URI and are only stored once.
type ContentStore struct {
	backend Backend
	prefix  string
	gateway string
}

type ContentOption func(*ContentStore)

// WithPrefix stores every object under prefix.
func WithPrefix(prefix string) ContentOption {
	return func(c *ContentStore) {
		c.prefix = strings.Trim(prefix, "/")
	}
}

// WithGateway makes returned URIs point at gateway/<cid> instead of the
// backend's native address.
func WithGateway(gateway string) ContentOption {
	return func(c *ContentStore) {
		c.gateway = strings.TrimSuffix(gateway, "/")
	}
}

func NewContentStore(backend Backend, opts ...ContentOption) *ContentStore {
	c := &ContentStore{backend: backend}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentID is the CIDv1 (raw codec, sha2-256) of data.
func ContentID(data []byte) (string, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return cid.NewCidV1(cid.Raw, mh).String(), nil
}

// UploadContent stores files and returns one URI per file, in order.
func (c *ContentStore) UploadContent(ctx context.Context, files []File) ([]string, error) {
	uris := make([]string, 0, len(files))
	for _, f := range files {
		id, err := ContentID(f.Bytes)
		if err != nil {
			return nil, err
		}
		key := c.key(id)

		_, err = c.backend.Stat(ctx, key)
		switch {
		case err == nil:
			// already stored
		case errors.Is(err, ErrNotFound):
			err = c.backend.Put(ctx, Object{
				Key:          key,
				Data:         f.Bytes,
				ContentType:  f.ContentType,
				CacheControl: immutableCacheControl,
				Metadata:     map[string]string{"filename": f.Name},
			})
			if err != nil {
				return nil, fmt.Errorf("failed to upload %s: %w", f.Name, err)
			}
		default:
			return nil, fmt.Errorf("failed to check %s: %w", f.Name, err)
		}
		uris = append(uris, c.URI(id))
	}
	return uris, nil
}

// URI is the address content id is reachable at.
func (c *ContentStore) URI(id string) string {
	if c.gateway != "" {
		return c.gateway + "/" + id
	}
	return c.backend.URI(c.key(id))
}

// Fetch writes the content stored under id to w.
func (c *ContentStore) Fetch(ctx context.Context, id string, w io.Writer) (*ObjectInfo, error) {
	info, err := c.stat(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.backend.Get(ctx, c.key(id), w); err != nil {
		return nil, err
	}
	return info, nil
}

// stat rejects ids that are not CIDs before touching the backend.
func (c *ContentStore) stat(ctx context.Context, id string) (*ObjectInfo, error) {
	if _, err := cid.Decode(id); err != nil {
		return nil, fmt.Errorf("%w: %s is not a content identifier", ErrNotFound, id)
	}
	return c.backend.Stat(ctx, c.key(id))
}

func (c *ContentStore) Close() error {
	return c.backend.Close()
}

func (c *ContentStore) key(id string) string {
	if c.prefix == "" {
		return id
	}
	return path.Join(c.prefix, id)
}
