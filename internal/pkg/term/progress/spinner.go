// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	spin "github.com/briandowns/spinner"
)

// startStopper is the interface to interact with the spinner.
type startStopper interface {
	Start()
	Stop()
}

// Spinner represents an indicator that an asynchronous operation is taking place.
//
// For short operations, less than 4 seconds, display only the spinner with the Start and Stop methods.
type Spinner struct {
	spin startStopper
}

// NewSpinner returns a spinner that outputs to w.
func NewSpinner(w io.Writer) *Spinner {
	interval := 125 * time.Millisecond
	if os.Getenv("CI") == "true" {
		interval = 30 * time.Second
	}
	s := spin.New(charset, interval, spin.WithHiddenCursor(true))
	s.Writer = w
	return &Spinner{
		spin: s,
	}
}

// Start starts the spinner suffixed with a label.
func (s *Spinner) Start(label string) {
	s.suffix(fmt.Sprintf(" %s", label))
	s.spin.Start()
}

// Stop stops the spinner and replaces it with a label.
func (s *Spinner) Stop(label string) {
	s.finalMSG(fmt.Sprintln(label))
	s.spin.Stop()
}

func (s *Spinner) suffix(label string) {
	if spinner, ok := s.spin.(*spin.Spinner); ok {
		spinner.Lock()
		defer spinner.Unlock()
		spinner.Suffix = label
	}
}

func (s *Spinner) finalMSG(label string) {
	if spinner, ok := s.spin.(*spin.Spinner); ok {
		spinner.Lock()
		defer spinner.Unlock()
		spinner.FinalMSG = label
	}
}
