// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// sidecar holding the headers of an object
const localMetaSuffix = ".meta.json"

// LocalStorage keeps objects as files below a base directory.
type LocalStorage struct {
	root string
}

type localMeta struct {
	ContentType  string            `json:"contentType,omitempty"`
	CacheControl string            `json:"cacheControl,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

func NewLocalStorage(cfg *Config) (*LocalStorage, error) {
	if cfg.LocalBasePath == "" {
		return nil, errors.New("local base path is required")
	}
	if err := os.MkdirAll(cfg.LocalBasePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", cfg.LocalBasePath, err)
	}
	return &LocalStorage{root: cfg.LocalBasePath}, nil
}

// path maps key below root and rejects keys that would leave it.
func (l *LocalStorage) path(key string) (string, error) {
	p := filepath.Join(l.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.root, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return p, nil
}

// Put writes the object through a temporary file so readers never see a
// partial object.
func (l *LocalStorage) Put(_ context.Context, obj Object) error {
	p, err := l.path(obj.Key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	meta, err := json.Marshal(localMeta{
		ContentType:  obj.ContentType,
		CacheControl: obj.CacheControl,
		Metadata:     obj.Metadata,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(p+localMetaSuffix, meta, 0o644); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(obj.Data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

func (l *LocalStorage) Get(_ context.Context, key string, w io.Writer) error {
	p, err := l.path(key)
	if err != nil {
		return err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

func (l *LocalStorage) Stat(_ context.Context, key string) (*ObjectInfo, error) {
	p, err := l.path(key)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, err
	}

	info := &ObjectInfo{Key: key, Size: fi.Size()}
	data, err := os.ReadFile(p + localMetaSuffix)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// copied in by hand, no headers
	case err != nil:
		return nil, err
	default:
		var meta localMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return nil, fmt.Errorf("corrupt metadata for %s: %w", key, err)
		}
		info.ContentType = meta.ContentType
		info.Metadata = meta.Metadata
	}
	return info, nil
}

func (l *LocalStorage) URI(key string) string {
	return "file://" + filepath.ToSlash(filepath.Join(l.root, filepath.FromSlash(key)))
}

func (*LocalStorage) Provider() Provider {
	return ProviderLocal
}

func (*LocalStorage) Close() error {
	return nil
}
