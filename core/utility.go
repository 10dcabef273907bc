// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/gobuffalo/packd"
	"github.com/gobuffalo/packr"

	"github.com/devblok/spincube/device"
)

// ShaderBox holds the GLSL sources shipped with the binary
var ShaderBox = packr.NewBox("./shaders")

// ShaderSources is a named vertex/fragment pair
type ShaderSources struct {
	Name     string
	Vertex   string
	Fragment string
}

// LoadShaderSources finds the pair called name in the box.
// The file name must not contain more than one dot, the
// suffix after it is the stage: name.vert and name.frag.
func LoadShaderSources(box packd.Walkable, name string) (ShaderSources, error) {
	sources := ShaderSources{Name: name}
	if err := box.Walk(func(path string, f packd.File) error {
		nodes := strings.Split(path, ".")
		if len(nodes) != 2 || nodes[0] != name {
			return nil
		}

		switch shaderType(nodes[1]) {
		case device.VertexShaderType:
			sources.Vertex = f.String()
		case device.FragmentShaderType:
			sources.Fragment = f.String()
		}
		return nil
	}); err != nil {
		return ShaderSources{}, err
	}

	if sources.Vertex == "" || sources.Fragment == "" {
		return ShaderSources{}, fmt.Errorf("%w: %s needs both %s.vert and %s.frag", ErrShaderNotFound, name, name, name)
	}
	return sources, nil
}

func shaderType(suffix string) device.ShaderType {
	switch suffix {
	case "vert":
		return device.VertexShaderType
	case "frag":
		return device.FragmentShaderType
	default:
		return device.UnknownShaderType
	}
}

// SliceFloat32 reslices floats into bytes for buffer upload
func SliceFloat32(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}

// SliceUint32 reslices indices into bytes for buffer upload
func SliceUint32(data []uint32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
