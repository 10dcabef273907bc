// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"

	"github.com/devblok/spincube/core"
)

func TestLoadConfiguration(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "spincube.yaml")
	c.Assert(os.WriteFile(path, []byte("window:\n  title: test cube\ntime:\n  framesPerSecond: 30\n"), 0o644), qt.IsNil)

	c.Patch(configFile, path)
	c.Patch(envFile, filepath.Join(dir, "missing.env"))

	envy.Temp(func() {
		t.Setenv(core.EnvFramesPerSecond, "")
		t.Setenv(core.EnvWidth, "")

		cfg, err := loadConfiguration()
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Window.Title, qt.Equals, "test cube")
		c.Assert(cfg.Time.FramesPerSecond, qt.Equals, 30)
		c.Assert(cfg.Window.Width, qt.Equals, uint32(800))
	})
}

func TestLoadConfigurationEnvironment(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "spincube.yaml")
	c.Assert(os.WriteFile(path, []byte("time:\n  framesPerSecond: 120\n"), 0o644), qt.IsNil)
	env := filepath.Join(dir, "custom.env")
	c.Assert(os.WriteFile(env, []byte("SPINCUBE_FPS=30\nSPINCUBE_LOG_LEVEL=debug\n"), 0o644), qt.IsNil)

	c.Patch(configFile, path)
	c.Patch(envFile, env)

	envy.Temp(func() {
		t.Setenv(core.EnvFramesPerSecond, "45")
		t.Setenv(core.EnvLogLevel, "")
		t.Setenv(core.EnvWidth, "1024")

		cfg, err := loadConfiguration()
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Time.FramesPerSecond, qt.Equals, 30)
		c.Assert(cfg.LogLevel, qt.Equals, "debug")
		c.Assert(cfg.Window.Width, qt.Equals, uint32(1024))
	})
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	c := qt.New(t)

	c.Patch(configFile, filepath.Join(t.TempDir(), "nope.yaml"))
	envy.Temp(func() {
		_, err := loadConfiguration()
		c.Assert(os.IsNotExist(err), qt.Equals, true)
	})
}
