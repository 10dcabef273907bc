// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core drives the cube: it owns the shader program and mesh on
// the device, renders frames and walks the renderer through its lifecycle.
package core

import (
	"errors"
	"time"
)

// package errors
var (
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrUniformNotFound   = errors.New("uniform not found in program")
	ErrWinding           = errors.New("mesh winding is not consistent with back-face culling")
	ErrShaderNotFound    = errors.New("shader source not found")
)

// Surface is what a finished frame is presented on.
type Surface interface {
	// DrawableSize returns the current size in pixels,
	// it may change between frames
	DrawableSize() (width, height int32)

	// Swap presents the completed frame
	Swap()
}

// Window is a Surface owned by the host window system.
type Window interface {
	Surface

	// PollEvents drains pending host events and reports
	// false once the window has been asked to close
	PollEvents() bool
}

// Clock supplies wall-clock time to the frame driver
type Clock interface {
	Now() time.Time
}

// State is a renderer lifecycle state
type State int

// Lifecycle states, in the only order they can be visited
const (
	Uninitialized State = iota
	Loaded
	Running
	Unloaded
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loaded:
		return "loaded"
	case Running:
		return "running"
	case Unloaded:
		return "unloaded"
	case Terminated:
		return "terminated"
	default:
		return "invalid"
	}
}
