// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewTime starts the frame and event tickers at the intervals
// of a validated time configuration
func NewTime(cfg TimeConfiguration) *Time {
	return &Time{
		fps:         cfg.FramesPerSecond,
		fpsTicker:   time.NewTicker(cfg.FrameInterval()),
		eventTicker: time.NewTicker(cfg.EventPollInterval()),
	}
}

// Time owns the frame and event tickers that pace Run
type Time struct {
	fps         int
	fpsTicker   *time.Ticker
	eventTicker *time.Ticker
}

// Fps gets the set frames per second
func (t *Time) Fps() int {
	return t.fps
}

// FpsTicker gets the initialized fps ticker
func (t *Time) FpsTicker() *time.Ticker {
	return t.fpsTicker
}

// EventTicker gets the initialized event ticker for the event loop
func (t *Time) EventTicker() *time.Ticker {
	return t.eventTicker
}

// Stop stops both tickers
func (t *Time) Stop() {
	t.fpsTicker.Stop()
	t.eventTicker.Stop()
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now implements Clock
func (SystemClock) Now() time.Time {
	return time.Now()
}
