// Package data 内置资源
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，所以嵌入声明放在 data/ 目录本身。
// 桌面端、移动端和无窗口校验工具都从这里取内置配置，交给 pkg/embedded 访问。
package data

import "embed"

// FS 内置资源，路径相对于 data/ 目录（如 "landing.yaml"）
//
//go:embed landing.yaml
var FS embed.FS
