// Package embedded 提供嵌入资源的统一访问接口
//
// 嵌入声明在 data 包中，文件系统以 data/ 目录为根。
// 调用方仍使用 "data/landing.yaml" 这样的仓库相对路径，本包负责去掉 data/ 前缀。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gonewx/huly-landing/pkg/config"
)

// DefaultConfigPath 内置落地页配置的路径
const DefaultConfigPath = "data/landing.yaml"

// ErrNotInitialized 在 Init 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化数据文件系统，data 以 data/ 目录为根
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径分隔符并去掉 "./" 前缀，只接受 data/ 下的路径
// 返回相对于 data/ 的路径。
func normalize(path string) (string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	rel, ok := strings.CutPrefix(path, "data/")
	if !ok {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return rel, nil
}

// ReadFile 读取嵌入文件内容
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	if !initialized {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}

// LoadLandingConfig 解析内置的落地页配置
func LoadLandingConfig() (*config.LandingConfig, error) {
	data, err := ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}
	return config.ParseLandingConfig(data)
}
