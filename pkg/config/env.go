package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides 可以通过环境变量覆盖的应用外壳设置
// 只影响窗口和日志，动画机制本身不读取环境变量。
type EnvOverrides struct {
	Verbose      bool   `env:"HULY_VERBOSE"`
	ConfigPath   string `env:"HULY_CONFIG"`
	WindowWidth  int    `env:"HULY_WINDOW_WIDTH"`
	WindowHeight int    `env:"HULY_WINDOW_HEIGHT"`
	TPS          int    `env:"HULY_TPS"`
}

// LoadEnvOverrides 从环境变量读取覆盖项
func LoadEnvOverrides() (EnvOverrides, error) {
	o, err := env.ParseAs[EnvOverrides]()
	if err != nil {
		return EnvOverrides{}, fmt.Errorf("解析环境变量失败: %w", err)
	}
	return o, nil
}

// Apply 将非零覆盖项写入配置
func (o EnvOverrides) Apply(cfg *LandingConfig) {
	if o.WindowWidth > 0 {
		cfg.Window.Width = o.WindowWidth
	}
	if o.WindowHeight > 0 {
		cfg.Window.Height = o.WindowHeight
	}
	if o.TPS > 0 {
		cfg.Window.TPS = o.TPS
	}
}
