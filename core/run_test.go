// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/spincube/core"
	"github.com/devblok/spincube/device/devicetest"
)

func testTime() *core.Time {
	return core.NewTime(core.TimeConfiguration{FramesPerSecond: 1000, EventPollDelay: 1})
}

func TestRunUntilWindowCloses(t *testing.T) {
	c := qt.New(t)
	r, rec, _ := newRenderer(defaultRendererConfiguration())
	w := &fakeWindow{width: 800, height: 600, closeAfter: 3}
	tm := testTime()
	defer tm.Stop()

	c.Assert(core.Run(context.Background(), r, w, tm), qt.IsNil)
	c.Assert(w.swaps >= 3, qt.IsTrue, qt.Commentf("swaps %d", w.swaps))
	c.Assert(r.Frames(), qt.Equals, uint64(w.swaps))
	c.Assert(w.polls > 0, qt.IsTrue)
	c.Assert(r.State(), qt.Equals, core.Terminated)
	c.Assert(rec.LiveTotal(), qt.Equals, 0)
	c.Assert(rec.Created(devicetest.Buffer), qt.Equals, 2)
}

func TestRunCancelled(t *testing.T) {
	c := qt.New(t)
	r, rec, _ := newRenderer(defaultRendererConfiguration())
	w := &fakeWindow{width: 800, height: 600}
	tm := testTime()
	defer tm.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c.Assert(core.Run(ctx, r, w, tm), qt.IsNil)
	c.Assert(r.State(), qt.Equals, core.Terminated)
	c.Assert(rec.LiveTotal(), qt.Equals, 0)
}

func TestRunStopsOnFrameError(t *testing.T) {
	c := qt.New(t)
	r, rec, _ := newRenderer(defaultRendererConfiguration())
	rec.Uniforms = []string{}
	w := &fakeWindow{width: 800, height: 600}
	tm := testTime()
	defer tm.Stop()

	err := core.Run(context.Background(), r, w, tm)
	c.Assert(errors.Is(err, core.ErrUniformNotFound), qt.Equals, true)
	c.Assert(w.swaps, qt.Equals, 0)
	c.Assert(r.State(), qt.Equals, core.Terminated)
	c.Assert(rec.LiveTotal(), qt.Equals, 0)
}

func TestRunLoadFailure(t *testing.T) {
	c := qt.New(t)
	cfg := defaultRendererConfiguration()
	cfg.Shader = "missing"
	r, rec, _ := newRenderer(cfg)
	tm := testTime()
	defer tm.Stop()

	err := core.Run(context.Background(), r, &fakeWindow{}, tm)
	c.Assert(errors.Is(err, core.ErrShaderNotFound), qt.Equals, true)
	c.Assert(r.State(), qt.Equals, core.Uninitialized)
	c.Assert(rec.LiveTotal(), qt.Equals, 0)
}
