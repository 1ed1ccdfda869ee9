// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func TestUserLog(t *testing.T) {
	var buf bytes.Buffer
	ul := New(luxlog.NewNoOpLogger(), &buf)

	ul.PrintToUser("rate %d", 1234)
	ul.GreenCheckmarkToUser("done")
	ul.RedXToUser("failed: %s", "reverted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{"rate 1234", "✓ done", "✗ failed: reverted"}, lines)
}

func TestPrintKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	ul := New(luxlog.NewNoOpLogger(), &buf)

	require.NoError(t, ul.PrintKeyValueTable([2]string{"Field", "Value"}, [][2]string{
		{"Symbol", "DOX"},
		{"Rate", "1234"},
	}))
	out := buf.String()
	require.Contains(t, out, "DOX")
	require.Contains(t, out, "1234")
	require.Less(t, strings.Index(out, "DOX"), strings.Index(out, "1234"))
}

func TestStepTracker(t *testing.T) {
	var buf bytes.Buffer
	st := NewStepTracker(New(luxlog.NewNoOpLogger(), &buf), time.Hour)

	st.Start("Uploading metadata")
	require.False(t, st.CheckWarn())
	st.Complete("ipfs")
	st.Start("Deploying")
	st.Failed("reverted")

	out := buf.String()
	require.Contains(t, out, "Uploading metadata...")
	require.Contains(t, out, "✓ Uploading metadata")
	require.Contains(t, out, "- ipfs")
	require.Contains(t, out, "✗ Deploying")
	require.Contains(t, out, "FAILED: reverted")
}

func TestStepTrackerWatch(t *testing.T) {
	var buf bytes.Buffer
	st := NewStepTracker(New(luxlog.NewNoOpLogger(), &buf), time.Millisecond)

	st.Start("Launching DOX")
	stop := st.Watch(time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	stop()
	st.CompleteSuccess()

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "Warning: Launching DOX taking longer than expected"))
	require.Less(t, strings.Index(out, "Warning"), strings.Index(out, "✓ Launching DOX"))

	buf.Reset()
	quiet := NewStepTracker(New(luxlog.NewNoOpLogger(), &buf), time.Hour)
	quiet.Start("Launching DOX")
	quiet.Watch(time.Millisecond)()
	require.NotContains(t, buf.String(), "Warning")
}

func TestWaitFor(t *testing.T) {
	var buf bytes.Buffer
	ul := New(luxlog.NewNoOpLogger(), &buf)

	require.NoError(t, ul.WaitFor("Waiting for confirmation", func() error { return nil }))
	failure := errors.New("reverted")
	require.ErrorIs(t, ul.WaitFor("Sending", func() error { return failure }), failure)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "Waiting for confirmation...", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "✓ Waiting for confirmation ("))
	require.Equal(t, "Sending...", lines[2])
	require.True(t, strings.HasPrefix(lines[3], "✗ Sending ("))
}
