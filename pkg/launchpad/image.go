// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
)

// MaxImageSize is the largest accepted image, 2 MiB.
const MaxImageSize = 2 * 1024 * 1024

// ImageTypes are the accepted image encodings.
var ImageTypes = []string{"image/jpeg", "image/png", "image/gif"}

// ValidateImage checks size and encoding. The declared MIME type must be
// accepted and must agree with the sniffed content.
func ValidateImage(img *Image) error {
	if img == nil {
		return nil
	}
	if len(img.Bytes) == 0 {
		return wrap(ErrInvalidImage, fmt.Errorf("%s is empty", img.Name))
	}
	if len(img.Bytes) > MaxImageSize {
		return wrap(ErrInvalidImage, fmt.Errorf("%s is %d bytes, max %d", img.Name, len(img.Bytes), MaxImageSize))
	}
	if !slices.Contains(ImageTypes, img.MimeType) {
		return wrap(ErrInvalidImage, fmt.Errorf("%s has type %q, expected one of %v", img.Name, img.MimeType, ImageTypes))
	}
	if sniffed := http.DetectContentType(img.Bytes); sniffed != img.MimeType {
		return wrap(ErrInvalidImage, fmt.Errorf("%s is declared %s but contains %s", img.Name, img.MimeType, sniffed))
	}
	return nil
}

// LoadImage reads an image file, detecting its type from the content.
func LoadImage(path string) (*Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, wrap(ErrInvalidImage, err)
	}
	if info.Size() > MaxImageSize {
		return nil, wrap(ErrInvalidImage, fmt.Errorf("%s is %d bytes, max %d", path, info.Size(), MaxImageSize))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(ErrInvalidImage, err)
	}
	img := &Image{
		Name:     filepath.Base(path),
		Bytes:    data,
		MimeType: http.DetectContentType(data),
	}
	if err := ValidateImage(img); err != nil {
		return nil, err
	}
	return img, nil
}
