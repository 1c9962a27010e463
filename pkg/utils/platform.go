//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端行为运行（本地调试触屏布局）
const MobileEmulateEnv = "HULY_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时只看 HULY_MOBILE_EMULATE。
// 移动端没有悬停指针，页面不创建跟随光标。
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
