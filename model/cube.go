// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// CubeVertices are the eight corners of a unit cube centred on the origin.
var CubeVertices = [8]Vertex{
	{Pos: glm.Vec3{-0.5, -0.5, -0.5}, Color: glm.Vec3{1, 0, 0}}, // back-bottom-left, red
	{Pos: glm.Vec3{0.5, -0.5, -0.5}, Color: glm.Vec3{0, 1, 0}},  // back-bottom-right, green
	{Pos: glm.Vec3{0.5, 0.5, -0.5}, Color: glm.Vec3{0, 0, 1}},   // back-top-right, blue
	{Pos: glm.Vec3{-0.5, 0.5, -0.5}, Color: glm.Vec3{1, 1, 0}},  // back-top-left, yellow
	{Pos: glm.Vec3{-0.5, -0.5, 0.5}, Color: glm.Vec3{1, 0, 1}},  // front-bottom-left, magenta
	{Pos: glm.Vec3{0.5, -0.5, 0.5}, Color: glm.Vec3{0, 1, 1}},   // front-bottom-right, cyan
	{Pos: glm.Vec3{0.5, 0.5, 0.5}, Color: glm.Vec3{1, 1, 1}},    // front-top-right, white
	{Pos: glm.Vec3{-0.5, 0.5, 0.5}, Color: glm.Vec3{0, 0, 0}},   // front-top-left, black
}

// CubeIndices lists two triangles per face. Every triangle is
// counter-clockwise when looked at from outside the cube.
var CubeIndices = [36]uint32{
	0, 2, 1, 0, 3, 2, // back
	4, 5, 6, 4, 6, 7, // front
	0, 7, 3, 0, 4, 7, // left
	1, 6, 5, 1, 2, 6, // right
	0, 1, 5, 0, 5, 4, // bottom
	3, 6, 2, 3, 7, 6, // top
}

// VertexData returns the cube vertices as interleaved floats.
func VertexData() []float32 {
	return Flatten(CubeVertices[:])
}

// IndexData returns a copy of the cube indices.
func IndexData() []uint32 {
	indices := make([]uint32, len(CubeIndices))
	copy(indices, CubeIndices[:])
	return indices
}

// Triangles groups indices into triples.
func Triangles(indices []uint32) [][3]uint32 {
	tris := make([][3]uint32, 0, len(indices)/3)
	for idx := 0; idx+2 < len(indices); idx += 3 {
		tris = append(tris, [3]uint32{indices[idx], indices[idx+1], indices[idx+2]})
	}
	return tris
}

// FaceNormal is the unnormalised normal of a counter-clockwise triangle.
func FaceNormal(vertices []Vertex, tri [3]uint32) glm.Vec3 {
	a, b, c := vertices[tri[0]].Pos, vertices[tri[1]].Pos, vertices[tri[2]].Pos
	return b.Sub(a).Cross(c.Sub(a))
}

// WindsOutward reports whether every triangle of a closed mesh centred on
// the origin faces away from the centre, and the first one that does not.
func WindsOutward(vertices []Vertex, indices []uint32) (bool, int) {
	for idx, tri := range Triangles(indices) {
		centroid := vertices[tri[0]].Pos.Add(vertices[tri[1]].Pos).Add(vertices[tri[2]].Pos).Mul(1.0 / 3)
		if FaceNormal(vertices, tri).Dot(centroid) <= 0 {
			return false, idx
		}
	}
	return true, -1
}
