// Code generated manually for testing. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/doxa-fi/doxa-cli/pkg/cloud/storage"
	"github.com/stretchr/testify/mock"
)

// ContentUploader is a mock implementation of launchpad.ContentUploader
type ContentUploader struct {
	mock.Mock
}

func (m *ContentUploader) UploadContent(ctx context.Context, files []storage.File) ([]string, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
