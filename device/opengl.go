// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
)

// NewOpenGL loads the OpenGL entry points. A context must
// already be current on the calling thread.
func NewOpenGL() (*OpenGL, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.New("gl.Init(): " + err.Error())
	}
	return &OpenGL{}, nil
}

// OpenGL is an OpenGL 3.3 core device
type OpenGL struct{}

// Info implements interface
func (o *OpenGL) Info() Info {
	return Info{
		Vendor:          gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:        gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:         gl.GoStr(gl.GetString(gl.VERSION)),
		ShadingLanguage: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// CompileShader implements interface
func (o *OpenGL) CompileShader(kind ShaderType, source string) (Handle, error) {
	var shaderType uint32
	switch kind {
	case VertexShaderType:
		shaderType = gl.VERTEX_SHADER
	case FragmentShaderType:
		shaderType = gl.FRAGMENT_SHADER
	default:
		return 0, &ShaderError{Type: kind, Log: "unsupported shader type"}
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &ShaderError{Type: kind, Log: strings.TrimRight(log, "\x00")}
	}
	return Handle(shader), nil
}

// DeleteShader implements interface
func (o *OpenGL) DeleteShader(h Handle) {
	gl.DeleteShader(uint32(h))
}

// LinkProgram implements interface
func (o *OpenGL) LinkProgram(stages ...Handle) (Handle, error) {
	program := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(program, uint32(s))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, &LinkError{Log: strings.TrimRight(log, "\x00")}
	}

	for _, s := range stages {
		gl.DetachShader(program, uint32(s))
	}
	return Handle(program), nil
}

// DeleteProgram implements interface
func (o *OpenGL) DeleteProgram(h Handle) {
	gl.DeleteProgram(uint32(h))
}

// UseProgram implements interface
func (o *OpenGL) UseProgram(h Handle) {
	gl.UseProgram(uint32(h))
}

// UniformLocation implements interface
func (o *OpenGL) UniformLocation(program Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

// UniformMatrix4 implements interface
func (o *OpenGL) UniformMatrix4(location int32, m glm.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func bufferTarget(t BufferTarget) uint32 {
	if t == ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// CreateBuffer implements interface
func (o *OpenGL) CreateBuffer(target BufferTarget, data []byte, usage Usage) Handle {
	hint := uint32(gl.STATIC_DRAW)
	if usage == DynamicDraw {
		hint = gl.DYNAMIC_DRAW
	}

	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(bufferTarget(target), buffer)
	if len(data) > 0 {
		gl.BufferData(bufferTarget(target), len(data), gl.Ptr(data), hint)
	}
	return Handle(buffer)
}

// DeleteBuffer implements interface
func (o *OpenGL) DeleteBuffer(h Handle) {
	buffer := uint32(h)
	gl.DeleteBuffers(1, &buffer)
}

// CreateVertexArray implements interface
func (o *OpenGL) CreateVertexArray() Handle {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return Handle(vao)
}

// BindVertexArray implements interface
func (o *OpenGL) BindVertexArray(h Handle) {
	gl.BindVertexArray(uint32(h))
}

// DeleteVertexArray implements interface
func (o *OpenGL) DeleteVertexArray(h Handle) {
	vao := uint32(h)
	gl.DeleteVertexArrays(1, &vao)
}

// VertexAttribute implements interface
func (o *OpenGL) VertexAttribute(slot uint32, components int32, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(slot, components, gl.FLOAT, false, stride, uintptr(offset))
	gl.EnableVertexAttribArray(slot)
}

// SetDepthTest implements interface
func (o *OpenGL) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// SetCulling implements interface
func (o *OpenGL) SetCulling(enabled bool) {
	if enabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

// Viewport implements interface
func (o *OpenGL) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

// Clear implements interface
func (o *OpenGL) Clear(color glm.Vec4, depth float64) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.ClearDepth(depth)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawTriangles implements interface
func (o *OpenGL) DrawTriangles(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
}

var _ Device = (*OpenGL)(nil)
