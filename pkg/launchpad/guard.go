// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import "golang.org/x/sync/semaphore"

// busyGuard admits one operation at a time and rejects the rest instead of
// queueing them.
type busyGuard struct {
	sem *semaphore.Weighted
}

func newBusyGuard() busyGuard {
	return busyGuard{sem: semaphore.NewWeighted(1)}
}

func (g busyGuard) enter() (func(), error) {
	if !g.sem.TryAcquire(1) {
		return nil, ErrBusy
	}
	return func() { g.sem.Release(1) }, nil
}
