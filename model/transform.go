// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Camera and lens constants
const (
	FieldOfView  = 45.0
	NearPlane    = 0.1
	FarPlane     = 100.0
	CameraOffset = -3.0
)

// ModelAt returns the cube rotation after t seconds: a point is first
// rotated about X by t/2, then about Y by t.
func ModelAt(t float32) glm.Mat4 {
	return glm.HomogRotate3DY(t).Mul4(glm.HomogRotate3DX(0.5 * t))
}

// View pulls the camera back along Z.
func View() glm.Mat4 {
	return glm.Translate3D(0, 0, CameraOffset)
}

// Aspect is width over height; a collapsed surface counts as square.
func Aspect(width, height int32) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Projection is the perspective projection for a surface of the given size.
func Projection(width, height int32) glm.Mat4 {
	return glm.Perspective(glm.DegToRad(FieldOfView), Aspect(width, height), NearPlane, FarPlane)
}

// Transforms computes the full set of matrices for a frame.
func Transforms(t float32, width, height int32) Uniform {
	return Uniform{
		Model:      ModelAt(t),
		View:       View(),
		Projection: Projection(width, height),
	}
}
