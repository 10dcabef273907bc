// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/spincube/core"
	"github.com/devblok/spincube/device"
	"github.com/devblok/spincube/device/devicetest"
	"github.com/devblok/spincube/model"
)

func TestMeshLayout(t *testing.T) {
	c := qt.New(t)
	rec := devicetest.New()

	vertices, indices := model.VertexData(), model.IndexData()
	mesh := core.NewMesh(rec, vertices, indices)
	c.Assert(mesh.IndexCount(), qt.Equals, int32(36))

	c.Assert(len(rec.Attributes), qt.Equals, 2)
	vbo := rec.Attributes[0].Buffer
	c.Assert(rec.Attributes[0], qt.Equals, devicetest.Attribute{
		VertexArray: rec.Attributes[0].VertexArray,
		Buffer:      vbo,
		Slot:        core.PositionSlot,
		Components:  3,
		Stride:      24,
		Offset:      0,
	})
	c.Assert(rec.Attributes[1], qt.Equals, devicetest.Attribute{
		VertexArray: rec.Attributes[0].VertexArray,
		Buffer:      vbo,
		Slot:        core.ColorSlot,
		Components:  3,
		Stride:      24,
		Offset:      12,
	})

	vertexBuffer := rec.Buffers[vbo]
	c.Assert(vertexBuffer.Target, qt.Equals, device.ArrayBuffer)
	c.Assert(vertexBuffer.Usage, qt.Equals, device.StaticDraw)
	c.Assert(vertexBuffer.Data, qt.DeepEquals, core.SliceFloat32(vertices))

	ebo := rec.ElementBuffer(rec.Attributes[0].VertexArray)
	elementBuffer := rec.Buffers[ebo]
	c.Assert(elementBuffer.Target, qt.Equals, device.ElementArrayBuffer)
	c.Assert(elementBuffer.Usage, qt.Equals, device.StaticDraw)
	c.Assert(len(elementBuffer.Data), qt.Equals, 36*4)

	mesh.Draw()
	c.Assert(rec.Draws, qt.DeepEquals, []int32{36})

	mesh.Destroy()
	c.Assert(rec.LiveTotal(), qt.Equals, 0)
}
