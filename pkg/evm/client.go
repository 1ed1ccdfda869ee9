// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/geth/ethclient"
)

// Contract is a handle to a deployed contract of a known kind.
type Contract struct {
	Kind    ContractKind
	Address common.Address
	abi     abi.ABI
	bound   *bind.BoundContract
}

// UnsignedTx is an encoded contract call awaiting a signature.
type UnsignedTx struct {
	To     common.Address
	Method string
	Data   []byte
	Value  *big.Int

	contract *Contract
}

// Receipt is the confirmed outcome of a submitted transaction.
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

// Client reads from and writes to launchpad contracts over JSON-RPC.
type Client struct {
	network Network
	client  *ethclient.Client
	abis    map[ContractKind]abi.ABI
}

// Dial connects to the network RPC and verifies it serves the expected chain.
func Dial(ctx context.Context, network Network) (*Client, error) {
	client, err := ethclient.DialContext(ctx, network.RPC)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.RPC, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainID.Int64() != network.ChainID {
		client.Close()
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrChainIDMismatch, network.ChainID, chainID.Int64())
	}

	abis, err := ParseABIs()
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Client{
		network: network,
		client:  client,
		abis:    abis,
	}, nil
}

// ChainID reports the chain served by an RPC endpoint.
func ChainID(ctx context.Context, rpcURL string) (int64, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to %s: %w", rpcURL, err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Int64(), nil
}

func (c *Client) Network() Network {
	return c.network
}

// ResolveContract binds address to the interface of kind.
func (c *Client) ResolveContract(kind ContractKind, address common.Address) (*Contract, error) {
	parsed, ok := c.abis[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContract, kind)
	}
	return &Contract{
		Kind:    kind,
		Address: address,
		abi:     parsed,
		bound:   bind.NewBoundContract(address, parsed, c.client, c.client, c.client),
	}, nil
}

// ReadContract performs a read-only call and returns the decoded outputs.
func (c *Client) ReadContract(ctx context.Context, contract *Contract, method string, params ...interface{}) ([]interface{}, error) {
	if _, ok := contract.abi.Methods[method]; !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, contract.Kind, method)
	}
	var result []interface{}
	if err := contract.bound.Call(&bind.CallOpts{Context: ctx}, &result, method, params...); err != nil {
		return nil, fmt.Errorf("%s.%s call failed: %w", contract.Kind, method, err)
	}
	return result, nil
}

// PrepareTransaction encodes a state-changing call. value is the native
// amount attached, nil for none.
func (c *Client) PrepareTransaction(contract *Contract, method string, value *big.Int, params ...interface{}) (*UnsignedTx, error) {
	m, ok := contract.abi.Methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, contract.Kind, method)
	}
	if value != nil && value.Sign() > 0 && !m.IsPayable() {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotPayable, contract.Kind, method)
	}
	data, err := contract.abi.Pack(method, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s.%s: %w", contract.Kind, method, err)
	}
	if value == nil {
		value = new(big.Int)
	}
	return &UnsignedTx{
		To:       contract.Address,
		Method:   method,
		Data:     data,
		Value:    value,
		contract: contract,
	}, nil
}

// SubmitTransaction signs tx with account, sends it and waits until it is
// mined. A reverted transaction is an error.
func (c *Client) SubmitTransaction(ctx context.Context, tx *UnsignedTx, account *Account) (*Receipt, error) {
	if tx.contract == nil || tx.contract.bound == nil {
		return nil, TransactionError(nil, ErrUnknownContract, "failed to submit %s", tx.Method)
	}
	opts, err := account.transactOpts(ctx, tx.Value)
	if err != nil {
		return nil, TransactionError(nil, err, "failed to submit %s", tx.Method)
	}
	if account.ChainID != c.network.ChainID {
		return nil, TransactionError(nil, fmt.Errorf("%w: account on %d, client on %d",
			ErrChainIDMismatch, account.ChainID, c.network.ChainID), "failed to submit %s", tx.Method)
	}

	sent, err := tx.contract.bound.RawTransact(opts, tx.Data)
	if err != nil {
		return nil, TransactionError(nil, err, "failed to submit %s", tx.Method)
	}

	receipt, err := bind.WaitMined(ctx, c.client, sent)
	if err != nil {
		return nil, TransactionError(sent, err, "failed waiting for %s", tx.Method)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, TransactionError(sent, ErrTxReverted, "%s failed", tx.Method)
	}

	return &Receipt{
		TxHash:      sent.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// Close closes the client connection
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
