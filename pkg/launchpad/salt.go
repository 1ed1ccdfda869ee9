// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
)

// DeploymentSalt fixes the address of a token before it is deployed.
type DeploymentSalt [32]byte

func (s DeploymentSalt) Hex() string {
	return common.Hash(s).Hex()
}

// SaltSource produces a fresh salt for a launch made by caller.
type SaltSource func(caller common.Address) (DeploymentSalt, error)

// NewDeploymentSalt hashes a random UUIDv4 followed by the caller's address.
func NewDeploymentSalt(caller common.Address) (DeploymentSalt, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return DeploymentSalt{}, fmt.Errorf("failed to generate salt nonce: %w", err)
	}
	return SaltFrom(id, caller), nil
}

// SaltFrom is the deterministic part of NewDeploymentSalt.
func SaltFrom(id uuid.UUID, caller common.Address) DeploymentSalt {
	var salt DeploymentSalt
	copy(salt[:], crypto.Keccak256([]byte(id.String()+caller.Hex())))
	return salt
}
