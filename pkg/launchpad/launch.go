// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doxa-fi/doxa-cli/pkg/cloud/storage"
	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/luxfi/geth/common"
	"go.uber.org/zap"
)

const metadataFileName = "metadata.json"

// LaunchToken creates a token through the factory. One salt is generated
// per launch and used for both the address prediction and the deployment,
// so the returned address is the deployed one.
func (l *Launchpad) LaunchToken(ctx context.Context, session WalletSession, spec LaunchSpec) (LaunchReceipt, error) {
	release, err := l.launchGuard.enter()
	if err != nil {
		return LaunchReceipt{}, err
	}
	defer release()

	start := time.Now()
	receipt, err := l.launchToken(ctx, session, spec)
	l.observe(WorkflowLaunch, err, start)
	return receipt, err
}

func (l *Launchpad) launchToken(ctx context.Context, session WalletSession, spec LaunchSpec) (LaunchReceipt, error) {
	if err := checkLaunchSpec(&spec); err != nil {
		return LaunchReceipt{}, err
	}
	if !connected(session) {
		return LaunchReceipt{}, ErrNotConnected
	}
	if err := l.ensureNetwork(ctx, session); err != nil {
		return LaunchReceipt{}, err
	}
	if l.uploader == nil {
		return LaunchReceipt{}, wrap(ErrMetadataUploadFailed, ErrContentStoreMissing)
	}
	account := session.Account()

	salt, err := l.newSalt(account.Address)
	if err != nil {
		return LaunchReceipt{}, wrap(ErrPredictionFailed, err)
	}

	factory, err := l.client.ResolveContract(evm.FactoryContract, l.network.Factory)
	if err != nil {
		return LaunchReceipt{}, wrap(ErrPredictionFailed, err)
	}
	predicted, err := l.predictAddress(ctx, factory, salt)
	if err != nil {
		return LaunchReceipt{}, wrap(ErrPredictionFailed, err)
	}
	l.log.Debug("predicted token address",
		zap.String("salt", salt.Hex()),
		zap.String("address", predicted.Hex()),
	)

	imageURI, metadataURI, err := l.uploadMetadata(ctx, spec)
	if err != nil {
		return LaunchReceipt{}, wrap(ErrMetadataUploadFailed, err)
	}

	tx, err := l.client.PrepareTransaction(factory, evm.MethodCreateToken, nil,
		spec.Name, spec.Ticker, metadataURI, [32]byte(salt))
	if err != nil {
		return LaunchReceipt{}, wrap(ErrDeploymentFailed, err)
	}
	receipt, err := l.client.SubmitTransaction(ctx, tx, account)
	if err != nil {
		return LaunchReceipt{}, wrap(ErrDeploymentFailed, err)
	}

	l.log.Info("token launched",
		zap.String("ticker", spec.Ticker),
		zap.String("address", predicted.Hex()),
		zap.String("uri", metadataURI),
		zap.String("tx", receipt.TxHash.Hex()),
	)
	return LaunchReceipt{
		TokenAddress: predicted,
		TxHash:       receipt.TxHash,
		Salt:         salt,
		MetadataURI:  metadataURI,
		ImageURI:     imageURI,
	}, nil
}

// checkLaunchSpec runs every local check, so invalid input never costs a
// network call.
func checkLaunchSpec(spec *LaunchSpec) error {
	var missing []string
	if strings.TrimSpace(spec.Ticker) == "" {
		missing = append(missing, "ticker")
	}
	if strings.TrimSpace(spec.Name) == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return wrap(ErrMissingFields, fmt.Errorf("%s required", strings.Join(missing, " and ")))
	}
	if !validTicker(spec.Ticker) {
		return wrap(ErrMissingFields, fmt.Errorf("ticker %q must be 1 to %d letters A-Z", spec.Ticker, MaxTickerLength))
	}
	spec.Description = TruncateDescription(spec.Description)
	return ValidateImage(spec.Image)
}

func (l *Launchpad) predictAddress(ctx context.Context, factory *evm.Contract, salt DeploymentSalt) (common.Address, error) {
	out, err := l.client.ReadContract(ctx, factory, evm.MethodPredictTokenAddress, [32]byte(salt))
	if err != nil {
		return common.Address{}, err
	}
	predicted, err := evm.CallResult[common.Address](evm.MethodPredictTokenAddress, out)
	if err != nil {
		return common.Address{}, err
	}
	if predicted == (common.Address{}) {
		return common.Address{}, errors.New("factory predicted the zero address")
	}
	return predicted, nil
}

func (l *Launchpad) uploadMetadata(ctx context.Context, spec LaunchSpec) (string, string, error) {
	var imageURI string
	if spec.Image != nil {
		uri, err := l.upload(ctx, storage.File{
			Name:        spec.Image.Name,
			Bytes:       spec.Image.Bytes,
			ContentType: spec.Image.MimeType,
		})
		if err != nil {
			return "", "", fmt.Errorf("image: %w", err)
		}
		imageURI = uri
	}

	doc, err := json.Marshal(Metadata{
		Name:        spec.Name,
		Description: spec.Description,
		Image:       imageURI,
	})
	if err != nil {
		return "", "", err
	}
	metadataURI, err := l.upload(ctx, storage.File{
		Name:        metadataFileName,
		Bytes:       doc,
		ContentType: "application/json",
	})
	if err != nil {
		return "", "", fmt.Errorf("metadata: %w", err)
	}
	return imageURI, metadataURI, nil
}

func (l *Launchpad) upload(ctx context.Context, file storage.File) (string, error) {
	uris, err := l.uploader.UploadContent(ctx, []storage.File{file})
	if err != nil {
		return "", err
	}
	if len(uris) != 1 || uris[0] == "" {
		return "", errUnexpectedContentURIs
	}
	return uris[0], nil
}
