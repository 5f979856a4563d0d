package config

import (
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for directorkit.
type Config struct {
	Data    DataConfig   `toml:"data"`
	Render  RenderConfig `toml:"render"`
	Server  ServerConfig `toml:"server"`
	Log     LogConfig    `toml:"log"`
	Workers int          `toml:"workers"`
	Tuning  Tuning       `toml:"tuning"`
}

type DataConfig struct {
	Dir        string `toml:"dir"`
	Backstory  string `toml:"backstory"`
	ProjectDir string `toml:"project_dir"`
}

// RenderConfig drives the animatic
type RenderConfig struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	FPS          int     `toml:"fps"`
	Quality      int     `toml:"quality"`
	VideoEncoder string  `toml:"video_encoder"`
	ZoomSpeed    float64 `toml:"zoom_speed"`
	ShowStats    bool    `toml:"show_stats"`
	Debug        bool    `toml:"debug"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// SegmentParams describes one encoded shot of the animatic
type SegmentParams struct {
	Width, Height int
	FPS           int
	Duration      float64
	ZoomSpeed     float64
	ShotIndex     int
	Camera        string
	Filter        string
	Debug         bool
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data: DataConfig{Dir: "data", Backstory: "backstories.yaml", ProjectDir: "output/projects"},
		Render: RenderConfig{
			Width:     1280,
			Height:    720,
			FPS:       24,
			ZoomSpeed: 0.0015,
		},
		Server:  ServerConfig{Host: "localhost", Port: 8080},
		Log:     LogConfig{Level: "INFO"},
		Workers: runtime.NumCPU(),
		Tuning:  DefaultTuning(),
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
