// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration
const (
	EnvFramesPerSecond = "SPINCUBE_FPS"
	EnvEventPollDelay  = "SPINCUBE_EVENT_POLL_MS"
	EnvWidth           = "SPINCUBE_WIDTH"
	EnvHeight          = "SPINCUBE_HEIGHT"
	EnvVSync           = "SPINCUBE_VSYNC"
	EnvCullFaces       = "SPINCUBE_CULL"
	EnvLogLevel        = "SPINCUBE_LOG_LEVEL"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration     `yaml:"time"`
	Renderer RendererConfiguration `yaml:"renderer"`
	Window   WindowConfiguration   `yaml:"window"`
	LogLevel string                `yaml:"logLevel"`
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int `yaml:"framesPerSecond"`

	// EventPollDelay is the delay between host event polls in milliseconds
	EventPollDelay int `yaml:"eventPollDelay"`
}

// FrameInterval is the period between frames, a nanosecond when uncapped
func (c TimeConfiguration) FrameInterval() time.Duration {
	if c.FramesPerSecond <= 0 {
		return time.Nanosecond
	}
	return time.Second / time.Duration(c.FramesPerSecond)
}

// EventPollInterval is the period between host event polls
func (c TimeConfiguration) EventPollInterval() time.Duration {
	return time.Duration(c.EventPollDelay) * time.Millisecond
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	ClearColor glm.Vec4 `yaml:"clearColor,flow"`
	CullFaces  bool     `yaml:"cullFaces"`

	// Shader names the .vert/.frag pair in the shader box
	Shader string `yaml:"shader"`
}

// WindowConfiguration describes the host window
type WindowConfiguration struct {
	Title     string `yaml:"title"`
	Width     uint32 `yaml:"width"`
	Height    uint32 `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
}

// DefaultConfiguration returns the stock settings
func DefaultConfiguration() Configuration {
	return Configuration{
		Time: TimeConfiguration{
			FramesPerSecond: 60,
			EventPollDelay:  10,
		},
		Renderer: RendererConfiguration{
			ClearColor: glm.Vec4{0.1, 0.1, 0.1, 1.0},
			Shader:     "cube",
		},
		Window: WindowConfiguration{
			Title:     "Rotating 3D Cube",
			Width:     800,
			Height:    600,
			Resizable: true,
			VSync:     true,
		},
		LogLevel: log.InfoLevel.String(),
	}
}

// ReadYAML overlays settings from a YAML document. Keys that
// are absent keep their current values.
func (c *Configuration) ReadYAML(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode configuration: %w", err)
	}
	return nil
}

// LoadEnvironmentFile overloads the process environment with the
// variables of a dotenv file and refreshes the envy view of it.
// Values from the file win over exported ones. A missing file only
// refreshes the view.
func LoadEnvironmentFile(path string) error {
	if err := godotenv.Overload(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	envy.Reload()
	return nil
}

// ApplyEnvironment overlays settings from SPINCUBE_* variables
func (c *Configuration) ApplyEnvironment() error {
	var err error
	if c.Time.FramesPerSecond, err = envInt(EnvFramesPerSecond, c.Time.FramesPerSecond); err != nil {
		return err
	}
	if c.Time.EventPollDelay, err = envInt(EnvEventPollDelay, c.Time.EventPollDelay); err != nil {
		return err
	}
	width, err := envInt(EnvWidth, int(c.Window.Width))
	if err != nil {
		return err
	}
	height, err := envInt(EnvHeight, int(c.Window.Height))
	if err != nil {
		return err
	}
	c.Window.Width, c.Window.Height = uint32(width), uint32(height)
	if c.Window.VSync, err = envBool(EnvVSync, c.Window.VSync); err != nil {
		return err
	}
	if c.Renderer.CullFaces, err = envBool(EnvCullFaces, c.Renderer.CullFaces); err != nil {
		return err
	}
	c.LogLevel = envy.Get(EnvLogLevel, c.LogLevel)
	return nil
}

// Validate checks the configuration is usable
func (c Configuration) Validate() error {
	if c.Time.FramesPerSecond < 0 {
		return fmt.Errorf("frames per second must not be negative, got %d", c.Time.FramesPerSecond)
	}
	if c.Time.EventPollDelay <= 0 {
		return fmt.Errorf("event poll delay must be positive, got %d", c.Time.EventPollDelay)
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("window size must not be empty, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Renderer.Shader == "" {
		return errors.New("renderer shader name is empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	raw := envy.Get(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	raw := envy.Get(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
