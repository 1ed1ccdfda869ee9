// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad_test

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/doxa-fi/doxa-cli/internal/mocks"
	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/doxa-fi/doxa-cli/pkg/wallet"
	"github.com/google/uuid"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testKey      = "56289e99c94b6912bfc12adc093c9b51124f0dc54ac7a766b2bc5ccf558d8027"
	tokenAddress = "0xAb23b2B48BB6588dC30a5d3185CC747406e55288"
)

var (
	errRPC    = errors.New("rpc unavailable")
	pngHeader = []byte("\x89PNG\r\n\x1a\n")
)

type fixture struct {
	client   *mocks.ChainClient
	session  *mocks.WalletSession
	uploader *mocks.ContentUploader
	observer *recordingObserver
	account  *evm.Account
	lp       *launchpad.Launchpad
}

func newFixture(t *testing.T, opts ...launchpad.Option) *fixture {
	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	account, err := evm.NewAccount(key, evm.BaseMainnet.ChainID)
	require.NoError(t, err)

	f := &fixture{
		client:   &mocks.ChainClient{},
		session:  &mocks.WalletSession{},
		uploader: &mocks.ContentUploader{},
		observer: &recordingObserver{},
		account:  account,
	}
	f.client.ResolveAny()
	opts = append([]launchpad.Option{
		launchpad.WithUploader(f.uploader),
		launchpad.WithObserver(f.observer),
	}, opts...)
	f.lp = launchpad.New(evm.BaseMainnet, f.client, luxlog.NewNoOpLogger(), opts...)
	return f
}

// connect puts the mocked session on chainID.
func (f *fixture) connect(chainID int64) {
	f.session.On("Status").Return(wallet.Connected)
	f.session.On("Account").Return(f.account)
	f.session.On("ActiveChainID").Return(chainID)
}

func (f *fixture) disconnect() {
	f.session.On("Status").Return(wallet.Disconnected)
	f.session.On("Account").Return(nil)
}

func (f *fixture) registered(ok bool) {
	f.client.On("ReadContract", mock.Anything, mock.Anything, evm.MethodRegistered, mock.Anything).
		Return([]interface{}{ok}, nil)
}

func (f *fixture) metadata(symbol string, amountOut string) {
	out, _ := new(big.Int).SetString(amountOut, 10)
	f.client.On("ReadContract", mock.Anything, mock.Anything, evm.MethodSymbol, mock.Anything).
		Return([]interface{}{symbol}, nil)
	f.client.On("ReadContract", mock.Anything, mock.Anything, evm.MethodGetAmountOut, mock.Anything).
		Return([]interface{}{out, big.NewInt(0), big.NewInt(0)}, nil)
}

type recordingObserver struct {
	mu   sync.Mutex
	runs []string
}

func (o *recordingObserver) ObserveWorkflow(workflow string, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	o.runs = append(o.runs, workflow+":"+outcome)
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		candidate string
		valid     bool
	}{
		{"0x0000000000000000000000000000000000000000", true},
		{tokenAddress, true},
		{strings.ToLower(tokenAddress), true},
		{"0xab23b2b48bb6588dc30a5d3185cc747406e55288", true},
		{"not-an-address", false},
		{"", false},
		{"0x", false},
		{"Ab23b2B48BB6588dC30a5d3185CC747406e55288", false},
		{"0XAb23b2B48BB6588dC30a5d3185CC747406e55288", false},
		{"0xAb23b2B48BB6588dC30a5d3185CC747406e5528", false},
		{"0xAb23b2B48BB6588dC30a5d3185CC747406e552888", false},
		{"0xAb23b2B48BB6588dC30a5d3185CC747406e5528g", false},
	}
	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			require.Equal(t, tt.valid, launchpad.IsValidAddress(tt.candidate))
		})
	}
}

func TestNormalizeTicker(t *testing.T) {
	tests := map[string]string{
		"d0x!!":     "DX",
		"doxa":      "DOXA",
		"dogecoin":  "DOGEC",
		"a b c d e": "ABCDE",
		"123":       "",
		"ñandú":     "AND",
	}
	for in, want := range tests {
		require.Equal(t, want, launchpad.NormalizeTicker(in), in)
	}
}

func TestNewLaunchSpec(t *testing.T) {
	long := strings.Repeat("é", launchpad.MaxDescriptionLength) + "X"
	spec := launchpad.NewLaunchSpec("d0x!!", "Doxa", long, nil)

	require.Equal(t, "DX", spec.Ticker)
	require.Equal(t, "Doxa", spec.Name)
	require.Equal(t, strings.Repeat("é", launchpad.MaxDescriptionLength), spec.Description)
	require.NotContains(t, spec.Description, "X")

	short := launchpad.NewLaunchSpec("DOX", "Doxa", "short", nil)
	require.Equal(t, "short", short.Description)
}

func TestQuote(t *testing.T) {
	ref := launchpad.TokenRef{
		Address:      common.HexToAddress(tokenAddress),
		Symbol:       "DOX",
		ExchangeRate: decimal.NewFromInt(1234),
	}
	require.Equal(t, "123.4", ref.Quote(decimal.RequireFromString("0.1")).String())
	require.True(t, launchpad.NoToken.Quote(decimal.NewFromInt(5)).IsZero())
	require.True(t, launchpad.NoToken.IsNone())
	require.Equal(t, "TOKEN", launchpad.NoToken.Symbol)
}

func TestSaltFrom(t *testing.T) {
	id := uuid.MustParse("3b241101-e2bb-4255-8caf-4136c566a962")
	caller := common.HexToAddress(tokenAddress)

	salt := launchpad.SaltFrom(id, caller)
	want := crypto.Keccak256([]byte("3b241101-e2bb-4255-8caf-4136c566a962" + caller.Hex()))
	require.Equal(t, want, salt[:])

	a, err := launchpad.NewDeploymentSalt(caller)
	require.NoError(t, err)
	b, err := launchpad.NewDeploymentSalt(caller)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, launchpad.ErrQueryFailed, launchpad.KindOf(
		errors.Join(errors.New("context"), launchpad.ErrQueryFailed)))
	require.Nil(t, launchpad.KindOf(errRPC))
}

func TestKindLabel(t *testing.T) {
	require.Equal(t, "ok", launchpad.KindLabel(nil))
	require.Equal(t, "unknown", launchpad.KindLabel(errRPC))
	require.Equal(t, "not_registered", launchpad.KindLabel(
		fmt.Errorf("%w: %w", launchpad.ErrNotRegistered, errRPC)))
	require.Equal(t, "busy", launchpad.KindLabel(launchpad.ErrBusy))
}
