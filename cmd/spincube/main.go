// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/spincube/core"
	"github.com/devblok/spincube/device"
)

func init() {
	runtime.LockOSThread()
}

// Profiling
var (
	cpuProfile   = flag.String("cpuprof", "", "Profile CPU usage to file")
	memProfile   = flag.String("memprof", "", "Profile memory usage into a file")
	traceProfile = flag.String("trace", "", "Trace output for profiling")
)

// Configuration
var (
	configFile = flag.String("config", "", "YAML configuration file")
	envFile    = flag.String("env", ".env", "Environment file overriding exported variables, ignored when missing")
	info       = flag.Bool("info", false, "Print graphics driver info as JSON and exit")
)

func loadConfiguration() (core.Configuration, error) {
	cfg := core.DefaultConfiguration()

	if *configFile != "" {
		f, err := os.Open(*configFile)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if err := cfg.ReadYAML(f); err != nil {
			return cfg, err
		}
	}

	if err := core.LoadEnvironmentFile(*envFile); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnvironment(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()

	configuration, err := loadConfiguration()
	if err != nil {
		log.Fatal(err)
	}
	level, _ := log.ParseLevel(configuration.LogLevel)
	log.SetLevel(level)

	if err := profile(configuration); err != nil {
		log.WithError(err).Fatal("Renderer stopped")
	}
}

// profile wraps run with the profilers requested on the command line
func profile(configuration core.Configuration) error {
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}

	if *traceProfile != "" {
		f, err := os.Create(*traceProfile)
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}

	if err := run(configuration); err != nil {
		return err
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			panic(err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			panic(err)
		}
	}
	return nil
}

func run(configuration core.Configuration) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	defer sdl.Quit()

	sdlWindow, err := newWindow(configuration.Window)
	if err != nil {
		return err
	}
	defer sdlWindow.Destroy()

	glDevice, err := device.NewOpenGL()
	if err != nil {
		return err
	}

	deviceInfo := glDevice.Info()
	if *info {
		bytes, err := json.Marshal(deviceInfo)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", bytes)
		return nil
	}
	log.WithFields(log.Fields{
		"vendor":   deviceInfo.Vendor,
		"renderer": deviceInfo.Renderer,
		"version":  deviceInfo.Version,
		"glsl":     deviceInfo.ShadingLanguage,
	}).Info("OpenGL device ready")

	renderer := core.NewRenderer(glDevice, core.SystemClock{}, core.ShaderBox, configuration.Renderer)
	timeService := core.NewTime(configuration.Time)
	defer timeService.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := core.Run(ctx, renderer, sdlWindow, timeService); err != nil {
		return err
	}
	log.WithField("frames", renderer.Frames()).Info("Event loop exited")
	return nil
}
