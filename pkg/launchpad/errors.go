// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"errors"
	"fmt"
)

// Error kinds reported by the launchpad workflows. Every workflow error wraps
// exactly one of these; use errors.Is to branch on them.
var (
	ErrBusy                  = errors.New("another operation is in progress")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrNotRegistered         = errors.New("token is not registered with the launchpad factory")
	ErrQueryFailed           = errors.New("registry query failed")
	ErrMetadataFailed        = errors.New("failed to read token metadata")
	ErrNotConnected          = errors.New("wallet is not connected")
	ErrNoTokenSelected       = errors.New("no token selected")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrNetworkSwitchFailed   = errors.New("failed to switch wallet network")
	ErrSubmissionFailed      = errors.New("transaction submission failed")
	ErrMissingFields         = errors.New("missing required fields")
	ErrInvalidImage          = errors.New("invalid image")
	ErrPredictionFailed      = errors.New("failed to predict token address")
	ErrMetadataUploadFailed  = errors.New("failed to upload token metadata")
	ErrDeploymentFailed      = errors.New("token deployment failed")
	ErrContentStoreMissing   = errors.New("no content store configured")
	errUnexpectedContentURIs = errors.New("content store returned an unexpected number of URIs")
)

var kinds = []error{
	ErrBusy,
	ErrInvalidAddress,
	ErrNotRegistered,
	ErrQueryFailed,
	ErrMetadataFailed,
	ErrNotConnected,
	ErrNoTokenSelected,
	ErrInvalidAmount,
	ErrNetworkSwitchFailed,
	ErrSubmissionFailed,
	ErrMissingFields,
	ErrInvalidImage,
	ErrPredictionFailed,
	ErrMetadataUploadFailed,
	ErrDeploymentFailed,
}

func wrap(kind, detail error) error {
	return fmt.Errorf("%w: %w", kind, detail)
}

// KindOf returns the error kind wrapped by err, or nil if err carries none.
func KindOf(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

var kindLabels = map[error]string{
	ErrBusy:                 "busy",
	ErrInvalidAddress:       "invalid_address",
	ErrNotRegistered:        "not_registered",
	ErrQueryFailed:          "query_failed",
	ErrMetadataFailed:       "metadata_failed",
	ErrNotConnected:         "not_connected",
	ErrNoTokenSelected:      "no_token_selected",
	ErrInvalidAmount:        "invalid_amount",
	ErrNetworkSwitchFailed:  "network_switch_failed",
	ErrSubmissionFailed:     "submission_failed",
	ErrMissingFields:        "missing_fields",
	ErrInvalidImage:         "invalid_image",
	ErrPredictionFailed:     "prediction_failed",
	ErrMetadataUploadFailed: "metadata_upload_failed",
	ErrDeploymentFailed:     "deployment_failed",
}

// KindLabel is a stable snake_case name for the kind of err: "ok" for nil,
// "unknown" when err carries no kind.
func KindLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if label, ok := kindLabels[KindOf(err)]; ok {
		return label
	}
	return "unknown"
}
