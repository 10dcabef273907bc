// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/spincube/device"
)

// NewProgram compiles and links a vertex and a fragment stage.
// The stage objects are released once linking is done, whatever
// the outcome; the returned error carries the compiler or linker log.
func NewProgram(dev device.Device, sources ShaderSources) (*Program, error) {
	vertex, err := dev.CompileShader(device.VertexShaderType, sources.Vertex)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", sources.Name, err)
	}
	defer dev.DeleteShader(vertex)

	fragment, err := dev.CompileShader(device.FragmentShaderType, sources.Fragment)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", sources.Name, err)
	}
	defer dev.DeleteShader(fragment)

	program, err := dev.LinkProgram(vertex, fragment)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", sources.Name, err)
	}

	return &Program{
		name:      sources.Name,
		device:    dev,
		program:   program,
		locations: map[string]int32{},
	}, nil
}

// Program is a linked shader program on the device
type Program struct {
	name      string
	device    device.Device
	program   device.Handle
	locations map[string]int32
}

// Name returns the shader name the program was built from
func (p *Program) Name() string {
	return p.name
}

// Handle returns the device handle
func (p *Program) Handle() device.Handle {
	return p.program
}

// Use makes the program current
func (p *Program) Use() {
	p.device.UseProgram(p.program)
}

// SetUniformMat4 uploads m to the named uniform of the current program
func (p *Program) SetUniformMat4(name string, m glm.Mat4) error {
	location, ok := p.locations[name]
	if !ok {
		location = p.device.UniformLocation(p.program, name)
		if location < 0 {
			return fmt.Errorf("%w: %q in %s", ErrUniformNotFound, name, p.name)
		}
		p.locations[name] = location
	}
	p.device.UniformMatrix4(location, m)
	return nil
}

// Destroy releases the program
func (p *Program) Destroy() {
	p.device.DeleteProgram(p.program)
}
