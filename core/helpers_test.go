// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"time"

	"github.com/devblok/spincube/core"
	"github.com/devblok/spincube/device/devicetest"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fakeWindow struct {
	rec        *devicetest.Recorder
	width      int32
	height     int32
	swaps      int
	polls      int
	closeAfter int
}

func (w *fakeWindow) DrawableSize() (int32, int32) {
	return w.width, w.height
}

func (w *fakeWindow) Swap() {
	w.swaps++
	if w.rec != nil {
		w.rec.Record("swap")
	}
}

func (w *fakeWindow) PollEvents() bool {
	w.polls++
	return w.closeAfter == 0 || w.swaps < w.closeAfter
}

func newRenderer(cfg core.RendererConfiguration) (*core.Renderer, *devicetest.Recorder, *fakeClock) {
	rec := devicetest.New()
	clock := &fakeClock{now: time.Date(2019, 9, 8, 12, 0, 0, 0, time.UTC)}
	return core.NewRenderer(rec, clock, core.ShaderBox, cfg), rec, clock
}

func defaultRendererConfiguration() core.RendererConfiguration {
	return core.DefaultConfiguration().Renderer
}
