// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Run drives the renderer from the host loop. It loads the renderer and
// draws a frame per fps tick, polling the window on the event tick.
// The loop ends when the window closes or ctx is cancelled, and on the
// first failed frame. The renderer is unloaded and terminated on exit.
// Run must be called on the graphics thread.
func Run(ctx context.Context, r *Renderer, w Window, t *Time) (err error) {
	if err := r.Load(); err != nil {
		return err
	}
	defer func() {
		if uerr := r.Unload(); uerr != nil && err == nil {
			err = uerr
		}
		if terr := r.Terminate(); terr != nil && err == nil {
			err = terr
		}
	}()

EventLoop:
	for {
		select {
		case <-ctx.Done():
			log.Info("Event loop cancelled")
			break EventLoop
		case <-t.EventTicker().C:
			if !w.PollEvents() {
				log.Info("Window closed")
				break EventLoop
			}
		case <-t.FpsTicker().C:
			if err := r.Frame(w); err != nil {
				log.WithError(err).Error("Frame failed")
				return err
			}
		}
	}
	return nil
}
