// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package devicetest provides an in-memory device.Device that
// tracks object lifetimes and records every call.
package devicetest

import (
	"fmt"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/spincube/device"
)

// Object kinds tracked by the Recorder
const (
	Shader      = "shader"
	Program     = "program"
	Buffer      = "buffer"
	VertexArray = "vertexarray"
)

// DefaultUniforms are the uniforms every linked program exposes
// unless Recorder.Uniforms says otherwise
var DefaultUniforms = []string{"model", "view", "projection"}

// Attribute is a recorded vertex attribute description
type Attribute struct {
	VertexArray device.Handle
	Buffer      device.Handle
	Slot        uint32
	Components  int32
	Stride      int32
	Offset      int
}

// Upload is a recorded uniform matrix upload
type Upload struct {
	Program device.Handle
	Name    string
	Matrix  glm.Mat4
}

// BufferData is the recorded content of a created buffer
type BufferData struct {
	Target device.BufferTarget
	Usage  device.Usage
	Data   []byte
}

// Recorder is a fake device. The zero value is not usable, use New.
type Recorder struct {
	// CompileErrors makes compiling the given stage fail with the log
	CompileErrors map[device.ShaderType]string
	// LinkError makes linking fail with the log when not empty
	LinkError string
	// Uniforms overrides DefaultUniforms
	Uniforms []string

	Calls       []string
	Uploads     []Upload
	Draws       []int32
	Viewports   [][2]int32
	Attributes  []Attribute
	Buffers     map[device.Handle]BufferData
	DepthTest   bool
	Culling     bool
	ClearColors []glm.Vec4

	next    device.Handle
	live    map[string]map[device.Handle]bool
	created map[string]int
	program device.Handle
	vao     device.Handle
	bound   map[device.BufferTarget]device.Handle
	layout  map[device.Handle]map[device.BufferTarget]device.Handle
}

// New creates an empty Recorder
func New() *Recorder {
	return &Recorder{
		CompileErrors: map[device.ShaderType]string{},
		Buffers:       map[device.Handle]BufferData{},
		live:          map[string]map[device.Handle]bool{},
		created:       map[string]int{},
		bound:         map[device.BufferTarget]device.Handle{},
		layout:        map[device.Handle]map[device.BufferTarget]device.Handle{},
	}
}

// Record appends to the call log, exported so fakes sharing
// the Recorder can interleave their own calls.
func (r *Recorder) Record(format string, args ...interface{}) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

// Live returns the number of objects of a kind not yet deleted
func (r *Recorder) Live(kind string) int {
	return len(r.live[kind])
}

// LiveTotal returns the number of objects of any kind not yet deleted
func (r *Recorder) LiveTotal() int {
	var total int
	for _, objects := range r.live {
		total += len(objects)
	}
	return total
}

// Created returns how many objects of a kind were ever created
func (r *Recorder) Created(kind string) int {
	return r.created[kind]
}

// ElementBuffer returns the element buffer captured by a vertex array
func (r *Recorder) ElementBuffer(vao device.Handle) device.Handle {
	return r.layout[vao][device.ElementArrayBuffer]
}

func (r *Recorder) create(kind string) device.Handle {
	r.next++
	if r.live[kind] == nil {
		r.live[kind] = map[device.Handle]bool{}
	}
	r.live[kind][r.next] = true
	r.created[kind]++
	return r.next
}

func (r *Recorder) destroy(kind string, h device.Handle) {
	if !r.live[kind][h] {
		panic(fmt.Sprintf("devicetest: delete of unknown %s %d", kind, h))
	}
	delete(r.live[kind], h)
}

// Info implements interface
func (r *Recorder) Info() device.Info {
	return device.Info{Vendor: "devicetest", Renderer: "recorder", Version: "3.3", ShadingLanguage: "3.30"}
}

// CompileShader implements interface
func (r *Recorder) CompileShader(kind device.ShaderType, source string) (device.Handle, error) {
	r.Record("compile %s", kind)
	if log, ok := r.CompileErrors[kind]; ok {
		return 0, &device.ShaderError{Type: kind, Log: log}
	}
	return r.create(Shader), nil
}

// DeleteShader implements interface
func (r *Recorder) DeleteShader(h device.Handle) {
	r.Record("delete shader")
	r.destroy(Shader, h)
}

// LinkProgram implements interface
func (r *Recorder) LinkProgram(stages ...device.Handle) (device.Handle, error) {
	r.Record("link")
	for _, s := range stages {
		if !r.live[Shader][s] {
			panic(fmt.Sprintf("devicetest: link with unknown shader %d", s))
		}
	}
	if r.LinkError != "" {
		return 0, &device.LinkError{Log: r.LinkError}
	}
	return r.create(Program), nil
}

// DeleteProgram implements interface
func (r *Recorder) DeleteProgram(h device.Handle) {
	r.Record("delete program")
	r.destroy(Program, h)
}

// UseProgram implements interface
func (r *Recorder) UseProgram(h device.Handle) {
	r.Record("use")
	r.program = h
}

func (r *Recorder) uniforms() []string {
	if r.Uniforms != nil {
		return r.Uniforms
	}
	return DefaultUniforms
}

// UniformLocation implements interface
func (r *Recorder) UniformLocation(program device.Handle, name string) int32 {
	if !r.live[Program][program] {
		return -1
	}
	for idx, u := range r.uniforms() {
		if u == name {
			return int32(idx)
		}
	}
	return -1
}

// UniformMatrix4 implements interface
func (r *Recorder) UniformMatrix4(location int32, m glm.Mat4) {
	if location < 0 || int(location) >= len(r.uniforms()) {
		return
	}
	name := r.uniforms()[location]
	r.Record("uniform %s", name)
	r.Uploads = append(r.Uploads, Upload{Program: r.program, Name: name, Matrix: m})
}

// LastUpload returns the most recent upload to a named uniform
func (r *Recorder) LastUpload(name string) (glm.Mat4, bool) {
	for idx := len(r.Uploads) - 1; idx >= 0; idx-- {
		if r.Uploads[idx].Name == name {
			return r.Uploads[idx].Matrix, true
		}
	}
	return glm.Mat4{}, false
}

// CreateBuffer implements interface
func (r *Recorder) CreateBuffer(target device.BufferTarget, data []byte, usage device.Usage) device.Handle {
	r.Record("buffer %d", target)
	h := r.create(Buffer)
	contents := make([]byte, len(data))
	copy(contents, data)
	r.Buffers[h] = BufferData{Target: target, Usage: usage, Data: contents}
	r.bound[target] = h
	if target == device.ElementArrayBuffer && r.vao != 0 {
		r.layout[r.vao][device.ElementArrayBuffer] = h
	}
	return h
}

// DeleteBuffer implements interface
func (r *Recorder) DeleteBuffer(h device.Handle) {
	r.Record("delete buffer")
	r.destroy(Buffer, h)
}

// CreateVertexArray implements interface
func (r *Recorder) CreateVertexArray() device.Handle {
	r.Record("vertexarray")
	h := r.create(VertexArray)
	r.layout[h] = map[device.BufferTarget]device.Handle{}
	return h
}

// BindVertexArray implements interface
func (r *Recorder) BindVertexArray(h device.Handle) {
	if h == 0 {
		r.Record("unbind vertexarray")
	} else {
		r.Record("bind vertexarray")
	}
	r.vao = h
}

// DeleteVertexArray implements interface
func (r *Recorder) DeleteVertexArray(h device.Handle) {
	r.Record("delete vertexarray")
	r.destroy(VertexArray, h)
	if r.vao == h {
		r.vao = 0
	}
}

// VertexAttribute implements interface
func (r *Recorder) VertexAttribute(slot uint32, components int32, stride int32, offset int) {
	r.Record("attribute %d", slot)
	if r.vao == 0 || r.bound[device.ArrayBuffer] == 0 {
		panic("devicetest: vertex attribute without bound vertex array and array buffer")
	}
	r.Attributes = append(r.Attributes, Attribute{
		VertexArray: r.vao,
		Buffer:      r.bound[device.ArrayBuffer],
		Slot:        slot,
		Components:  components,
		Stride:      stride,
		Offset:      offset,
	})
}

// SetDepthTest implements interface
func (r *Recorder) SetDepthTest(enabled bool) {
	r.DepthTest = enabled
}

// SetCulling implements interface
func (r *Recorder) SetCulling(enabled bool) {
	r.Culling = enabled
}

// Viewport implements interface
func (r *Recorder) Viewport(width, height int32) {
	r.Record("viewport")
	r.Viewports = append(r.Viewports, [2]int32{width, height})
}

// Clear implements interface
func (r *Recorder) Clear(color glm.Vec4, depth float64) {
	r.Record("clear")
	r.ClearColors = append(r.ClearColors, color)
}

// DrawTriangles implements interface
func (r *Recorder) DrawTriangles(count int32) {
	r.Record("draw %d", count)
	if r.vao == 0 || r.ElementBuffer(r.vao) == 0 {
		panic("devicetest: draw without vertex array and element buffer")
	}
	r.Draws = append(r.Draws, count)
}

var _ device.Device = (*Recorder)(nil)
