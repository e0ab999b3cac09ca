// Package config handles scene configuration loading and management.
package config

// Config holds all scene settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Text    TextConfig    `yaml:"text"`
	Nodes   []NodeConfig  `yaml:"nodes"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds projection and orbit control settings.
type CameraConfig struct {
	FOV               float32 `yaml:"fov"` // vertical, degrees
	Near              float32 `yaml:"near"`
	Far               float32 `yaml:"far"`
	Distance          float32 `yaml:"distance"`
	MinDistance       float32 `yaml:"min_distance"`
	MaxDistance       float32 `yaml:"max_distance"`
	DampingFactor     float32 `yaml:"damping_factor"`
	EnablePan         bool    `yaml:"enable_pan"`
	RotateSensitivity float32 `yaml:"rotate_sensitivity"`
	ZoomSensitivity   float32 `yaml:"zoom_sensitivity"`
}

// SceneConfig holds globe assets and animation rates.
type SceneConfig struct {
	AssetsDir        string  `yaml:"assets_dir"`
	EarthTexture     string  `yaml:"earth_texture"`
	CloudsTexture    string  `yaml:"clouds_texture"`
	StarsTexture     string  `yaml:"stars_texture"`
	EarthSpin        float32 `yaml:"earth_spin"`  // radians per 60 Hz frame
	CloudsSpin       float32 `yaml:"clouds_spin"` // radians per 60 Hz frame
	NodeSpin         float32 `yaml:"node_spin"`   // radians per 60 Hz frame
	AxialTilt        float32 `yaml:"axial_tilt"`
	Shadows          bool    `yaml:"shadows"`
	ShadowResolution int     `yaml:"shadow_resolution"`
}

// TextConfig holds the bent 3D caption settings.
type TextConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Content    string  `yaml:"content"`
	FontPath   string  `yaml:"font_path"` // empty uses the embedded Go Regular face
	Size       float32 `yaml:"size"`
	Depth      float32 `yaml:"depth"`
	BendRadius float32 `yaml:"bend_radius"`
	BendWidth  float32 `yaml:"bend_width"`
	Policy     string  `yaml:"policy"`
}

// ReservedNames are the fixed scene object names. Node names must not reuse them.
var ReservedNames = []string{"earth", "earthClouds", "earthAtmosphere", "earthRing", "stars", "caption"}

// NodeConfig describes one clickable orbiting node.
type NodeConfig struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// Default returns a Config matching the original globe scene.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Globe",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			FOV:               75,
			Near:              0.1,
			Far:               1000,
			Distance:          5,
			MinDistance:       1.5,
			MaxDistance:       50,
			DampingFactor:     0.05,
			EnablePan:         false,
			RotateSensitivity: 0.005,
			ZoomSensitivity:   0.1,
		},
		Scene: SceneConfig{
			AssetsDir:        "assets",
			EarthTexture:     "earth.jpg",
			CloudsTexture:    "clouds.png",
			StarsTexture:     "stars.jpg",
			EarthSpin:        0.001,
			CloudsSpin:       0.0017,
			NodeSpin:         0.0005,
			AxialTilt:        0.23,
			Shadows:          true,
			ShadowResolution: 2048,
		},
		Text: TextConfig{
			Enabled:    false,
			Content:    "Hello World",
			Size:       0.3,
			Depth:      0.05,
			BendRadius: 1.2,
			BendWidth:  10,
			Policy:     "depth_offset",
		},
		Nodes: []NodeConfig{
			{Name: "Node 1", Link: ""},
			{Name: "Node 2", Link: ""},
			{Name: "Node 3", Link: ""},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}
