package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理邮箱输入框的焦点、键盘输入、光标闪烁。只维护本地状态，不提交。
type TextInputSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource
	signal        *game.ScrollSignal
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager, input utils.InputSource, signal *game.ScrollSignal) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
		input:         input,
		signal:        signal,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	clicked := s.input.IsPointerJustPressed()
	px, py := s.input.PointerPosition()

	for _, entityID := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)

		// 点击输入框获得焦点，点击其他位置失去焦点
		if clicked {
			if bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, entityID); ok {
				screenRect := bounds.Rect.Offset(0, -s.signal.Offset())
				input.IsFocused = screenRect.Contains(float64(px), float64(py))
				if input.IsFocused {
					input.CursorBlinkTimer = 0
					input.CursorVisible = true
				}
			}
		}

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)
		s.handleKeyboardInput(input)
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// repeatKey 第1帧立即响应，之后每隔3帧响应一次（按住连续触发）
func (s *TextInputSystem) repeatKey(key ebiten.Key) bool {
	d := s.input.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	edited := false

	if runes := s.input.AppendInputChars(nil); len(runes) > 0 {
		s.insertText(input, string(runes))
		edited = true
	}
	if s.repeatKey(ebiten.KeyBackspace) {
		s.deleteCharBefore(input)
		edited = true
	}
	if s.repeatKey(ebiten.KeyDelete) {
		s.deleteCharAfter(input)
		edited = true
	}
	if s.repeatKey(ebiten.KeyArrowLeft) {
		s.moveCursorLeft(input)
		edited = true
	}
	if s.repeatKey(ebiten.KeyArrowRight) {
		s.moveCursorRight(input)
		edited = true
	}
	if s.input.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		edited = true
	}
	if s.input.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(input.Text))
		edited = true
	}
	if s.input.IsKeyJustPressed(ebiten.KeyEscape) {
		input.IsFocused = false
		return
	}

	// 编辑时光标保持可见
	if edited {
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}
}

// isEmailRune 邮箱地址允许的字符
func isEmailRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '@', '.', '_', '-', '+':
		return true
	}
	return false
}

// insertText 在光标位置插入文本
func (s *TextInputSystem) insertText(input *components.TextInputComponent, text string) {
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if isEmailRune(r) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 && len(runes)+len(filtered) > input.MaxLength {
		log.Printf("[TextInputSystem] 达到最大长度限制 (%d 字符)", input.MaxLength)
		return
	}

	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:input.CursorPosition]...)
	result = append(result, filtered...)
	result = append(result, runes[input.CursorPosition:]...)

	input.Text = string(result)
	input.CursorPosition += len(filtered)
}

// deleteCharBefore 删除光标前的字符（退格）
func (s *TextInputSystem) deleteCharBefore(input *components.TextInputComponent) {
	if input.CursorPosition == 0 {
		return
	}

	runes := []rune(input.Text)
	input.Text = string(append(runes[:input.CursorPosition-1:input.CursorPosition-1], runes[input.CursorPosition:]...))
	input.CursorPosition--
}

// deleteCharAfter 删除光标后的字符（Delete键）
func (s *TextInputSystem) deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if input.CursorPosition >= len(runes) {
		return
	}

	input.Text = string(append(runes[:input.CursorPosition:input.CursorPosition], runes[input.CursorPosition+1:]...))
}

// moveCursorLeft 光标左移
func (s *TextInputSystem) moveCursorLeft(input *components.TextInputComponent) {
	if input.CursorPosition > 0 {
		input.CursorPosition--
	}
}

// moveCursorRight 光标右移
func (s *TextInputSystem) moveCursorRight(input *components.TextInputComponent) {
	if input.CursorPosition < len([]rune(input.Text)) {
		input.CursorPosition++
	}
}
