// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package model_test

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/spincube/model"
)

func TestModelAtZeroIsIdentity(t *testing.T) {
	qt.Assert(t, model.ModelAt(0), qt.Equals, glm.Ident4())
}

func TestModelComposition(t *testing.T) {
	for _, tm := range []float32{0, 0.25, 1, 2.5, math.Pi, 17.3, 1234.5} {
		want := glm.HomogRotate3DY(tm).Mul4(glm.HomogRotate3DX(0.5 * tm))
		if got := model.ModelAt(tm); got != want {
			t.Fatalf("t=%f: got %v, want %v", tm, got, want)
		}
	}
}

func TestModelRotatesAboutXFirst(t *testing.T) {
	tm := float32(1.3)
	p := glm.Vec4{0.5, -0.5, 0.5, 1}

	got := model.ModelAt(tm).Mul4x1(p)
	want := glm.HomogRotate3DY(tm).Mul4x1(glm.HomogRotate3DX(0.5 * tm).Mul4x1(p))
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// the opposite order gives a different point
	other := glm.HomogRotate3DX(0.5 * tm).Mul4x1(glm.HomogRotate3DY(tm).Mul4x1(p))
	if got.ApproxEqualThreshold(other, 1e-5) {
		t.Fatal("rotation order is not distinguishable")
	}
}

func TestView(t *testing.T) {
	c := qt.New(t)

	v := model.View()
	c.Assert(v.Col(3), qt.Equals, glm.Vec4{0, 0, -3, 1})
	c.Assert(v.Mul4x1(glm.Vec4{0, 0, 0, 1}), qt.Equals, glm.Vec4{0, 0, -3, 1})
}

func TestProjectionFollowsAspect(t *testing.T) {
	c := qt.New(t)

	wide := model.Projection(800, 600)
	c.Assert(wide, qt.Equals, glm.Perspective(glm.DegToRad(45), 800.0/600.0, 0.1, 100))

	tall := model.Projection(600, 800)
	c.Assert(tall, qt.Equals, glm.Perspective(glm.DegToRad(45), 600.0/800.0, 0.1, 100))

	// only the X scale depends on the aspect
	c.Assert(wide.At(1, 1), qt.Equals, tall.At(1, 1))
	c.Assert(wide.At(0, 0) < tall.At(0, 0), qt.Equals, true)
}

func TestAspectOfCollapsedSurface(t *testing.T) {
	c := qt.New(t)

	c.Assert(model.Aspect(800, 0), qt.Equals, float32(1))
	c.Assert(model.Aspect(0, 0), qt.Equals, float32(1))
	c.Assert(model.Aspect(1024, 512), qt.Equals, float32(2))
}

func TestTransforms(t *testing.T) {
	u := model.Transforms(0, 800, 600)
	want := model.Uniform{
		Model:      glm.Ident4(),
		View:       glm.Translate3D(0, 0, -3),
		Projection: model.Projection(800, 600),
	}
	qt.Assert(t, u, qt.Equals, want)
}

func BenchmarkTransforms(b *testing.B) {
	for idx := 0; idx < b.N; idx++ {
		model.Transforms(float32(idx)*0.016, 800, 600)
	}
}
