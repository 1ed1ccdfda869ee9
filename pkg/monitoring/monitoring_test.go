// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package monitoring

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveWorkflow(t *testing.T) {
	m := New("")

	m.ObserveWorkflow(launchpad.WorkflowSwap, nil, 200*time.Millisecond)
	m.ObserveWorkflow(launchpad.WorkflowSwap, nil, time.Second)
	m.ObserveWorkflow(launchpad.WorkflowSwap,
		fmt.Errorf("%w: reverted", launchpad.ErrSubmissionFailed), time.Second)
	m.ObserveWorkflow(launchpad.WorkflowLookup, launchpad.ErrInvalidAddress, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.WorkflowRuns.WithLabelValues("swap", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.WorkflowRuns.WithLabelValues("swap", "submission_failed")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.WorkflowRuns.WithLabelValues("lookup", "invalid_address")))
	require.Equal(t, 2, testutil.CollectAndCount(m.WorkflowDuration))
}

func TestSeparateRegistries(t *testing.T) {
	a := New("a")
	b := New("a")

	a.ObserveWorkflow(launchpad.WorkflowLaunch, nil, time.Second)
	require.Equal(t, 0.0, testutil.ToFloat64(b.WorkflowRuns.WithLabelValues("launch", "ok")))
}

func TestHandler(t *testing.T) {
	m := New("doxa")
	m.ObserveWorkflow(launchpad.WorkflowRate, nil, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `doxa_workflow_runs_total{outcome="ok",workflow="rate"} 1`)
	require.Contains(t, string(body), "go_goroutines")
}
