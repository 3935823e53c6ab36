package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"tinyraster/internal/mathutil"
	"tinyraster/internal/scene"
)

// Config holds output paths and render settings.
type Config struct {
	// Paths
	Output      string `json:"output"`
	DepthOutput string `json:"depth_output"`

	// Render settings
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	Angle          *float64 `json:"angle"`           // degrees around Y, nil = 30
	CameraDistance float64  `json:"camera_distance"`
	Perspective    *bool    `json:"perspective"`     // nil = true
	FlipVertical   *bool    `json:"flip_vertical"`   // nil = true
	Seed           int64    `json:"seed"`
	Workers        int      `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values and nil pointers leave the config untouched.
type Flags struct {
	Output      string
	DepthOutput string
	Width       int
	Height      int
	Angle       *float64
	Seed        int64
	Workers     int
}

// Resolve applies flag overrides and fills any empty field with its default.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.DepthOutput != "" {
		c.DepthOutput = flags.DepthOutput
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Angle != nil {
		c.Angle = flags.Angle
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Output == "" {
		c.Output = "framebuffer.tga"
	}
	if c.DepthOutput == "" {
		c.DepthOutput = "zbuffer.tga"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.Angle == nil {
		c.Angle = float64Ptr(30)
	}
	if c.CameraDistance <= 0 {
		c.CameraDistance = mathutil.DefaultCameraDistance
	}
	if c.Perspective == nil {
		c.Perspective = boolPtr(true)
	}
	if c.FlipVertical == nil {
		c.FlipVertical = boolPtr(true)
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// SceneOptions converts a resolved config to render options.
func (c *Config) SceneOptions() scene.Options {
	return scene.Options{
		Width:          c.Width,
		Height:         c.Height,
		Angle:          mathutil.Deg2Rad(*c.Angle),
		CameraDistance: c.CameraDistance,
		Perspective:    c.Perspective != nil && *c.Perspective,
		Seed:           c.Seed,
		Workers:        c.Workers,
	}
}

func boolPtr(b bool) *bool { return &b }

func float64Ptr(f float64) *float64 { return &f }
