// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInteractive_EnvVar(t *testing.T) {
	tests := []struct {
		envValue string
		truthy   bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"ON", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(EnvNonInteractive+"="+tc.envValue, func(t *testing.T) {
			t.Setenv(EnvCI, "")
			t.Setenv(EnvNonInteractive, tc.envValue)
			require.Equal(t, tc.truthy, isTruthyEnv(EnvNonInteractive))
			if tc.truthy {
				require.False(t, IsInteractive())
			}
		})
	}
}

func TestIsInteractive_CI(t *testing.T) {
	t.Setenv(EnvNonInteractive, "")
	t.Setenv(EnvCI, "true")

	require.False(t, IsInteractive())
	require.True(t, IsNonInteractive(false))
}

func TestIsNonInteractive_Flag(t *testing.T) {
	require.True(t, IsNonInteractive(true))
}

func TestNewPrompterForMode(t *testing.T) {
	p := NewPrompterForMode(true)
	_, ok := p.(*NonInteractivePrompter)
	require.True(t, ok, "expected NonInteractivePrompter in non-interactive mode")

	t.Setenv(EnvCI, "1")
	_, ok = NewPrompterForMode(false).(*NonInteractivePrompter)
	require.True(t, ok)
}
