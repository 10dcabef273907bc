// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/spincube/core"
)

func newWindow(cfg core.WindowConfiguration) (*window, error) {
	for attr, value := range map[sdl.GLattr]int{
		sdl.GL_CONTEXT_MAJOR_VERSION: 3,
		sdl.GL_CONTEXT_MINOR_VERSION: 3,
		sdl.GL_CONTEXT_PROFILE_MASK:  sdl.GL_CONTEXT_PROFILE_CORE,
		sdl.GL_DOUBLEBUFFER:          1,
		sdl.GL_DEPTH_SIZE:            24,
	} {
		if err := sdl.GLSetAttribute(attr, value); err != nil {
			return nil, err
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	sdlWindow, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags)
	if err != nil {
		return nil, err
	}

	context, err := sdlWindow.GLCreateContext()
	if err != nil {
		sdlWindow.Destroy()
		return nil, err
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.WithError(err).Warn("Swap interval not applied")
	}

	return &window{
		window:  sdlWindow,
		context: context,
	}, nil
}

// window adapts an SDL window with a GL context to core.Window
type window struct {
	window  *sdl.Window
	context sdl.GLContext
}

func (w *window) DrawableSize() (int32, int32) {
	return w.window.GLGetDrawableSize()
}

func (w *window) Swap() {
	w.window.GLSwap()
}

func (w *window) PollEvents() bool {
	open := true
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.KeyboardEvent:
			if et.Keysym.Sym == sdl.K_ESCAPE {
				open = false
			}
		case *sdl.QuitEvent:
			open = false
		}
	}
	return open
}

func (w *window) Destroy() {
	sdl.GLDeleteContext(w.context)
	w.window.Destroy()
}
