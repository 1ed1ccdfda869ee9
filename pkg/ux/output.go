// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"time"

	luxlog "github.com/luxfi/log"
)

// Logger is the process-wide user output, set up by the root command.
var Logger *UserLog

// UserLog writes command output to the user and mirrors outcomes to the
// structured log.
type UserLog struct {
	log    luxlog.Logger
	writer io.Writer
}

func New(log luxlog.Logger, userwriter io.Writer) *UserLog {
	return &UserLog{log: log, writer: userwriter}
}

// NewUserLog sets Logger unless it is already set.
func NewUserLog(log luxlog.Logger, userwriter io.Writer) {
	if Logger == nil {
		Logger = New(log, userwriter)
	}
}

func (ul *UserLog) println(s string) {
	_, _ = fmt.Fprintln(ul.writer, s)
}

// PrintToUser prints command output only; nothing goes to the log.
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	ul.println(fmt.Sprintf(msg, args...))
}

func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	line := "✓ " + fmt.Sprintf(msg, args...)
	ul.println(line)
	ul.log.Info(line)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	line := "✗ " + fmt.Sprintf(msg, args...)
	ul.println(line)
	ul.log.Error(line)
}

// StepTracker prints the start and outcome of a long step with its
// duration, and can warn once when the step runs past warnAfter.
type StepTracker struct {
	ul        *UserLog
	warnAfter time.Duration

	name   string
	start  time.Time
	warned bool
}

func NewStepTracker(ul *UserLog, warnAfter time.Duration) *StepTracker {
	return &StepTracker{ul: ul, warnAfter: warnAfter}
}

func (st *StepTracker) Start(name string) {
	st.name, st.start, st.warned = name, time.Now(), false
	st.ul.PrintToUser("%s...", name)
}

func (st *StepTracker) seconds() float64 {
	return time.Since(st.start).Seconds()
}

// CheckWarn prints a warning the first time it is called after warnAfter
// has passed and reports whether it did.
func (st *StepTracker) CheckWarn() bool {
	if st.warned || time.Since(st.start) <= st.warnAfter {
		return false
	}
	st.warned = true
	st.ul.PrintToUser("Warning: %s taking longer than expected (%.1fs)...", st.name, st.seconds())
	return true
}

// Watch polls CheckWarn every interval in the background. The returned stop
// blocks until polling has ended, so output stays ordered.
func (st *StepTracker) Watch(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if st.CheckWarn() {
					return
				}
			}
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

func (st *StepTracker) Complete(suffix string) {
	if suffix == "" {
		st.ul.GreenCheckmarkToUser("%s (%.1fs)", st.name, st.seconds())
		return
	}
	st.ul.GreenCheckmarkToUser("%s (%.1fs) - %s", st.name, st.seconds(), suffix)
}

func (st *StepTracker) CompleteSuccess() {
	st.Complete("Success")
}

func (st *StepTracker) Failed(reason string) {
	st.ul.RedXToUser("%s (%.1fs) - FAILED: %s", st.name, st.seconds(), reason)
}
