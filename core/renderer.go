// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"time"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/packd"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/spincube/device"
	"github.com/devblok/spincube/model"
)

// Uniform names the cube shader declares
const (
	ModelUniform      = "model"
	ViewUniform       = "view"
	ProjectionUniform = "projection"
)

// NewRenderer creates a renderer that is not yet loaded,
// call Load before the first Frame.
func NewRenderer(dev device.Device, clock Clock, shaders packd.Walkable, cfg RendererConfiguration) *Renderer {
	return &Renderer{
		configuration: cfg,
		device:        dev,
		clock:         clock,
		shaders:       shaders,
		state:         Uninitialized,
	}
}

// Renderer owns every device object the cube needs. All
// methods must be called from the graphics thread.
type Renderer struct {
	configuration RendererConfiguration

	device  device.Device
	clock   Clock
	shaders packd.Walkable

	state   State
	program *Program
	mesh    *Mesh

	start  time.Time
	frames uint64
}

// State returns the current lifecycle state
func (r *Renderer) State() State {
	return r.state
}

// Frames returns how many frames were rendered
func (r *Renderer) Frames() uint64 {
	return r.frames
}

func (r *Renderer) transition(to State, allowed ...State) error {
	for _, from := range allowed {
		if r.state == from {
			log.WithFields(log.Fields{"from": r.state, "to": to}).Debug("Renderer transition")
			r.state = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, r.state, to)
}

// Load creates the program and uploads the mesh. It can only
// succeed once; a failed Load leaves nothing allocated.
func (r *Renderer) Load() error {
	if r.state != Uninitialized {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, r.state, Loaded)
	}

	vertices, indices := model.CubeVertices[:], model.IndexData()
	if r.configuration.CullFaces {
		if ok, tri := model.WindsOutward(vertices, indices); !ok {
			return fmt.Errorf("%w: triangle %d", ErrWinding, tri)
		}
	}

	sources, err := LoadShaderSources(r.shaders, r.configuration.Shader)
	if err != nil {
		return err
	}

	program, err := NewProgram(r.device, sources)
	if err != nil {
		log.WithError(err).Error("Shader program build failed")
		return err
	}

	r.device.SetDepthTest(true)
	r.device.SetCulling(r.configuration.CullFaces)

	r.program = program
	r.mesh = NewMesh(r.device, model.Flatten(vertices), indices)
	r.start = r.clock.Now()
	r.frames = 0

	log.WithFields(log.Fields{
		"shader":  sources.Name,
		"indices": r.mesh.IndexCount(),
		"culling": r.configuration.CullFaces,
	}).Info("Renderer loaded")
	return r.transition(Loaded, Uninitialized)
}

// Elapsed returns seconds since Load, read from the clock now
func (r *Renderer) Elapsed() float32 {
	return float32(r.clock.Now().Sub(r.start).Seconds())
}

// Frame renders one frame onto the surface and presents it
func (r *Renderer) Frame(surface Surface) error {
	if r.state != Loaded && r.state != Running {
		return fmt.Errorf("%w: frame while %s", ErrInvalidTransition, r.state)
	}

	width, height := surface.DrawableSize()
	r.device.Viewport(width, height)
	r.device.Clear(r.configuration.ClearColor, 1)

	r.program.Use()

	t := r.Elapsed()
	uniform := model.Transforms(t, width, height)
	for _, u := range []struct {
		name   string
		matrix glm.Mat4
	}{
		{ModelUniform, uniform.Model},
		{ViewUniform, uniform.View},
		{ProjectionUniform, uniform.Projection},
	} {
		if err := r.program.SetUniformMat4(u.name, u.matrix); err != nil {
			return err
		}
	}

	r.mesh.Draw()
	surface.Swap()

	r.frames++
	log.WithFields(log.Fields{"t": t, "width": width, "height": height}).Trace("Frame")
	return r.transition(Running, Loaded, Running)
}

// Unload releases the mesh and program
func (r *Renderer) Unload() error {
	if err := r.transition(Unloaded, Loaded, Running); err != nil {
		return err
	}
	r.mesh.Destroy()
	r.program.Destroy()
	r.mesh, r.program = nil, nil

	log.WithField("frames", r.frames).Info("Renderer unloaded")
	return nil
}

// Terminate marks the renderer finished, no further use is possible
func (r *Renderer) Terminate() error {
	return r.transition(Terminated, Unloaded)
}
