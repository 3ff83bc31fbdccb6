package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/pool.yaml"

// Window holds display settings. Zero Width/Height means the primary monitor's size.
type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width,omitempty"`
	Height    int    `yaml:"height,omitempty"`
	TargetFPS int    `yaml:"target_fps"`
	MSAA      bool   `yaml:"msaa"`
}

// Camera holds the perspective camera's initial state.
type Camera struct {
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position,flow"`
	Target   [3]float32 `yaml:"target,flow"`
}

// Controls holds orbit-control tuning.
type Controls struct {
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float32 `yaml:"damping_factor"`
	RotateSpeed   float32 `yaml:"rotate_speed"`
	ZoomSpeed     float32 `yaml:"zoom_speed"`
	PanSpeed      float32 `yaml:"pan_speed"`
	MinDistance   float32 `yaml:"min_distance"`
	MaxDistance   float32 `yaml:"max_distance"`
}

// Assets holds loader settings. MaxTextureSize 0 disables downscaling.
type Assets struct {
	Root           string `yaml:"root"`
	Workers        int    `yaml:"workers"`
	MaxTextureSize int    `yaml:"max_texture_size"`
}

// Debug holds optional overlays, all off by default.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
}

// Config is the program configuration.
type Config struct {
	Window   Window   `yaml:"window"`
	Camera   Camera   `yaml:"camera"`
	Controls Controls `yaml:"controls"`
	Assets   Assets   `yaml:"assets"`
	Debug    Debug    `yaml:"debug"`
	LogFile  string   `yaml:"log_file"`
}

// Default returns the scene's stock settings.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "pool table",
			TargetFPS: 60,
			MSAA:      true,
		},
		Camera: Camera{
			Fov:      75,
			Near:     0.1,
			Far:      100,
			Position: [3]float32{0, 4, 8},
			Target:   [3]float32{0, 0, 0},
		},
		Controls: Controls{
			EnableDamping: true,
			DampingFactor: 0.05,
			RotateSpeed:   1,
			ZoomSpeed:     1,
			PanSpeed:      1,
			MinDistance:   0,
			MaxDistance:   100,
		},
		Assets: Assets{
			Root:    "assets",
			Workers: 4,
		},
		LogFile: "logs/pool.txt",
	}
}

// Load reads the YAML config at path over Default(). A missing file is not an error.
// On a parse error the defaults are returned together with the error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Path returns POOL_CONFIG if set, else DefaultPath.
func Path() string {
	return getEnv("POOL_CONFIG", DefaultPath)
}

// ApplyEnv overrides cfg from environment variables.
func ApplyEnv(cfg Config) Config {
	cfg.Assets.Root = getEnv("POOL_ASSETS_DIR", cfg.Assets.Root)
	cfg.LogFile = getEnv("POOL_LOG_FILE", cfg.LogFile)
	cfg.Window.TargetFPS = getEnvInt("POOL_TARGET_FPS", cfg.Window.TargetFPS)
	cfg.Assets.Workers = getEnvInt("POOL_LOADER_WORKERS", cfg.Assets.Workers)
	cfg.Debug.ShowFPS = getEnvBool("POOL_SHOW_FPS", cfg.Debug.ShowFPS)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
