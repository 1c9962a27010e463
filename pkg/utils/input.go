// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource 抽象每帧的输入来源
//
// 运行时使用 EbitenInput 读取真实设备；测试和无窗口校验工具使用 ScriptedInput。
type InputSource interface {
	// Wheel 返回本帧滚轮偏移（正值表示向上滚动）
	Wheel() (float64, float64)
	// PointerPosition 返回指针位置（屏幕坐标），优先触摸
	PointerPosition() (int, int)
	// IsPointerJustPressed 本帧是否刚刚点击/触摸
	IsPointerJustPressed() bool
	// IsKeyJustPressed 本帧是否刚按下某键
	IsKeyJustPressed(key ebiten.Key) bool
	// KeyPressDuration 某键已按住的帧数（未按下为 0）
	KeyPressDuration(key ebiten.Key) int
	// AppendInputChars 追加本帧输入的字符
	AppendInputChars(runes []rune) []rune
}

// EbitenInput 从 ebiten 读取输入
type EbitenInput struct{}

// Wheel 实现 InputSource
func (EbitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// PointerPosition 实现 InputSource
// 同时支持鼠标和触摸，优先检测触摸
func (EbitenInput) PointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsPointerJustPressed 实现 InputSource
func (EbitenInput) IsPointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// IsKeyJustPressed 实现 InputSource
func (EbitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// KeyPressDuration 实现 InputSource
func (EbitenInput) KeyPressDuration(key ebiten.Key) int {
	return inpututil.KeyPressDuration(key)
}

// AppendInputChars 实现 InputSource
func (EbitenInput) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

// ScriptedInput 由代码驱动的输入来源
// 字段表示"本帧"的输入，调用 EndFrame 后一次性输入被清空，按住的键计数加一。
type ScriptedInput struct {
	WheelX, WheelY   float64
	PointerX         int
	PointerY         int
	PointerPressed   bool
	Chars            []rune
	justPressed      map[ebiten.Key]bool
	pressedDurations map[ebiten.Key]int
}

// NewScriptedInput 创建空的脚本输入
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{
		justPressed:      make(map[ebiten.Key]bool),
		pressedDurations: make(map[ebiten.Key]int),
	}
}

// PressKey 在本帧按下某键（保持按住直到 ReleaseKey）
func (s *ScriptedInput) PressKey(key ebiten.Key) {
	if s.pressedDurations[key] == 0 {
		s.justPressed[key] = true
		s.pressedDurations[key] = 1
	}
}

// ReleaseKey 松开某键
func (s *ScriptedInput) ReleaseKey(key ebiten.Key) {
	delete(s.pressedDurations, key)
	delete(s.justPressed, key)
}

// EndFrame 结束一帧：清空一次性输入，按住的键帧数加一
func (s *ScriptedInput) EndFrame() {
	s.WheelX, s.WheelY = 0, 0
	s.PointerPressed = false
	s.Chars = s.Chars[:0]
	for k := range s.justPressed {
		delete(s.justPressed, k)
	}
	for k := range s.pressedDurations {
		s.pressedDurations[k]++
	}
}

// Wheel 实现 InputSource
func (s *ScriptedInput) Wheel() (float64, float64) { return s.WheelX, s.WheelY }

// PointerPosition 实现 InputSource
func (s *ScriptedInput) PointerPosition() (int, int) { return s.PointerX, s.PointerY }

// IsPointerJustPressed 实现 InputSource
func (s *ScriptedInput) IsPointerJustPressed() bool { return s.PointerPressed }

// IsKeyJustPressed 实现 InputSource
func (s *ScriptedInput) IsKeyJustPressed(key ebiten.Key) bool { return s.justPressed[key] }

// KeyPressDuration 实现 InputSource
func (s *ScriptedInput) KeyPressDuration(key ebiten.Key) int { return s.pressedDurations[key] }

// AppendInputChars 实现 InputSource
func (s *ScriptedInput) AppendInputChars(runes []rune) []rune { return append(runes, s.Chars...) }
