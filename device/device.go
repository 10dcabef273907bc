// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device is the boundary to the graphics driver. Everything the
// renderer asks of the GPU goes through the Device interface, so it can
// be swapped for a recording fake in tests.
package device

import (
	"fmt"
	"strings"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Handle is an opaque device object name. Zero is never a valid handle.
type Handle uint32

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	UnknownShaderType
)

func (s ShaderType) String() string {
	switch s {
	case VertexShaderType:
		return "vertex"
	case FragmentShaderType:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferTarget selects what a buffer is bound as
type BufferTarget int

// Buffer targets
const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Usage hints how often buffer contents change
type Usage int

// Buffer usages
const (
	StaticDraw Usage = iota
	DynamicDraw
)

// Info describes the driver behind a device
type Info struct {
	Vendor          string
	Renderer        string
	Version         string
	ShadingLanguage string
}

// Device describes a non-concrete rendering device. All methods must be
// called from the goroutine owning the graphics context.
type Device interface {
	// Info returns driver identification strings
	Info() Info

	// CompileShader compiles one stage. On failure no handle is
	// left behind and the error is a *ShaderError.
	CompileShader(kind ShaderType, source string) (Handle, error)
	DeleteShader(Handle)

	// LinkProgram links compiled stages into a program. On failure
	// no handle is left behind and the error is a *LinkError.
	LinkProgram(stages ...Handle) (Handle, error)
	DeleteProgram(Handle)
	UseProgram(Handle)

	// UniformLocation returns -1 when the program has no such uniform
	UniformLocation(program Handle, name string) int32
	// UniformMatrix4 uploads to the currently used program,
	// location -1 is silently ignored
	UniformMatrix4(location int32, m glm.Mat4)

	// CreateBuffer allocates a buffer, fills it with data and
	// leaves it bound to target
	CreateBuffer(target BufferTarget, data []byte, usage Usage) Handle
	DeleteBuffer(Handle)

	CreateVertexArray() Handle
	BindVertexArray(Handle)
	DeleteVertexArray(Handle)
	// VertexAttribute maps shader input slot to float components of the
	// bound array buffer and enables the slot on the bound vertex array
	VertexAttribute(slot uint32, components int32, stride int32, offset int)

	SetDepthTest(enabled bool)
	SetCulling(enabled bool)
	Viewport(width, height int32)
	Clear(color glm.Vec4, depth float64)

	// DrawTriangles draws count indices of the bound element buffer
	// as a triangle list
	DrawTriangles(count int32)
}

// ShaderError is a failed shader compilation with the compiler log
type ShaderError struct {
	Type ShaderType
	Log  string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Type, strings.TrimSpace(e.Log))
}

// LinkError is a failed program link with the linker log
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", strings.TrimSpace(e.Log))
}
