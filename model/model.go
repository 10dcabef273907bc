// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package model holds the static cube mesh and the transforms
// that place it on screen.
package model

import (
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a model vertex, interleaved position then colour
type Vertex struct {
	Pos   glm.Vec3
	Color glm.Vec3
}

// Layout of a Vertex as seen by the device
const (
	FloatsPerVertex = 6
	VertexStride    = int32(unsafe.Sizeof(Vertex{}))
	PositionOffset  = int(unsafe.Offsetof(Vertex{}.Pos))
	ColorOffset     = int(unsafe.Offsetof(Vertex{}.Color))
)

// Uniform defines a model-view-projection object
type Uniform struct {
	Model      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// Flatten interleaves the vertices into a contiguous float slice
// ready for upload.
func Flatten(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		data = append(data, v.Pos[0], v.Pos[1], v.Pos[2], v.Color[0], v.Color[1], v.Color[2])
	}
	return data
}
