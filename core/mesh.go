// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/devblok/spincube/device"
	"github.com/devblok/spincube/model"
)

// Vertex shader input slots
const (
	PositionSlot = 0
	ColorSlot    = 1
)

// NewMesh uploads interleaved vertices and indices once and describes
// the layout: slot 0 is the position, slot 1 the colour, three floats each.
func NewMesh(dev device.Device, vertices []float32, indices []uint32) *Mesh {
	vao := dev.CreateVertexArray()
	dev.BindVertexArray(vao)

	vbo := dev.CreateBuffer(device.ArrayBuffer, SliceFloat32(vertices), device.StaticDraw)
	ebo := dev.CreateBuffer(device.ElementArrayBuffer, SliceUint32(indices), device.StaticDraw)

	dev.VertexAttribute(PositionSlot, 3, model.VertexStride, model.PositionOffset)
	dev.VertexAttribute(ColorSlot, 3, model.VertexStride, model.ColorOffset)

	dev.BindVertexArray(0)

	return &Mesh{
		device:  dev,
		vao:     vao,
		vbo:     vbo,
		ebo:     ebo,
		indices: int32(len(indices)),
	}
}

// Mesh is an indexed triangle list resident on the device
type Mesh struct {
	device  device.Device
	vao     device.Handle
	vbo     device.Handle
	ebo     device.Handle
	indices int32
}

// IndexCount is the number of indices drawn
func (m *Mesh) IndexCount() int32 {
	return m.indices
}

// Draw binds the vertex array and draws every index
func (m *Mesh) Draw() {
	m.device.BindVertexArray(m.vao)
	m.device.DrawTriangles(m.indices)
}

// Destroy releases the buffers and the vertex array
func (m *Mesh) Destroy() {
	m.device.DeleteBuffer(m.vbo)
	m.device.DeleteBuffer(m.ebo)
	m.device.DeleteVertexArray(m.vao)
}
