// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

type Provider string

const (
	ProviderS3    Provider = "s3"
	ProviderGCS   Provider = "gcs"
	ProviderLocal Provider = "local"
)

var ErrNotFound = errors.New("object not found")

// Object is a blob to be written together with the headers it is served with.
type Object struct {
	Key          string
	Data         []byte
	ContentType  string
	CacheControl string
	Metadata     map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// Backend is a flat key/value object store. Missing keys yield ErrNotFound
// from Get and Stat.
type Backend interface {
	Put(ctx context.Context, obj Object) error
	Get(ctx context.Context, key string, w io.Writer) error
	Stat(ctx context.Context, key string) (*ObjectInfo, error)
	// URI is the provider-native address of key, e.g. s3://bucket/key.
	URI(key string) string
	Provider() Provider
	Close() error
}

// Config selects and configures a backend. Prefix is not applied by the
// backends themselves; ContentStore takes it through WithPrefix.
type Config struct {
	Provider Provider
	Bucket   string
	Prefix   string
	Region   string
	// Endpoint points S3 or GCS clients at a compatible service (MinIO, R2,
	// fake-gcs-server).
	Endpoint  string
	PathStyle bool

	// Static S3 credentials. The default AWS chain is used when empty.
	AccessKey string
	SecretKey string
	// GCS service account file. Application default credentials when empty.
	CredentialsFile string

	LocalBasePath string
}

func New(ctx context.Context, cfg *Config) (Backend, error) {
	switch cfg.Provider {
	case ProviderS3:
		return NewS3Storage(ctx, cfg)
	case ProviderGCS:
		return NewGCSStorage(ctx, cfg)
	case ProviderLocal:
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %q", cfg.Provider)
	}
}

// ParseURI turns s3://bucket/prefix, gs://bucket/prefix or file:///path
// into a Config.
func ParseURI(uri string) (*Config, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid storage URI %q: %w", uri, err)
	}
	prefix := strings.Trim(u.Path, "/")

	switch u.Scheme {
	case "s3", "gs":
		if u.Host == "" {
			return nil, fmt.Errorf("missing bucket in %s", uri)
		}
		provider := ProviderS3
		if u.Scheme == "gs" {
			provider = ProviderGCS
		}
		return &Config{Provider: provider, Bucket: u.Host, Prefix: prefix}, nil
	case "file":
		if u.Path == "" {
			return nil, fmt.Errorf("missing path in %s", uri)
		}
		return &Config{Provider: ProviderLocal, LocalBasePath: filepath.Clean(u.Path)}, nil
	default:
		return nil, fmt.Errorf("unsupported URI scheme %q in %s", u.Scheme, uri)
	}
}
