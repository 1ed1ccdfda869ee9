// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

const spinnerInterval = 100 * time.Millisecond

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WaitFor runs fn while a spinner labelled task is shown, then prints the
// outcome with the elapsed time. Off a terminal the spinner is replaced by
// a single "task..." line.
func (ul *UserLog) WaitFor(task string, fn func() error) error {
	start := time.Now()
	if !isTerminal(ul.writer) {
		ul.PrintToUser("%s...", task)
		return ul.finish(task, start, fn())
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(ul.writer),
		progressbar.OptionSetDescription(task),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	for {
		select {
		case err := <-done:
			_ = bar.Finish()
			return ul.finish(task, start, err)
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}

func (ul *UserLog) finish(task string, start time.Time, err error) error {
	elapsed := fmt.Sprintf("%.1fs", time.Since(start).Seconds())
	if err != nil {
		ul.RedXToUser("%s (%s)", task, elapsed)
		return err
	}
	ul.GreenCheckmarkToUser("%s (%s)", task, elapsed)
	return nil
}
