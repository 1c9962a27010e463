package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/utils"
)

type textInputFixture struct {
	input  *utils.ScriptedInput
	system *TextInputSystem
	field  *components.TextInputComponent
}

// newTextInputFixture 输入框位于页面 (100,2000)，页面已滚动 1800
func newTextInputFixture(maxLength int) *textInputFixture {
	em := ecs.NewEntityManager()
	input := utils.NewScriptedInput()
	signal := game.NewScrollSignal()
	signal.Store(1800, 0.9)

	id := em.CreateEntity()
	field := &components.TextInputComponent{MaxLength: maxLength, Placeholder: "Enter your email"}
	ecs.AddComponent(em, id, &components.BoundsComponent{Rect: utils.Rect{X: 100, Y: 2000, Width: 300, Height: 48}})
	ecs.AddComponent(em, id, field)

	return &textInputFixture{input: input, system: NewTextInputSystem(em, input, signal), field: field}
}

// frame 运行一帧并结束
func (f *textInputFixture) frame() {
	f.system.Update(testDT)
	f.input.EndFrame()
}

func (f *textInputFixture) focus() {
	f.input.PointerX, f.input.PointerY = 150, 220
	f.input.PointerPressed = true
	f.frame()
}

func (f *textInputFixture) typeText(s string) {
	f.input.Chars = append(f.input.Chars, []rune(s)...)
	f.frame()
}

func (f *textInputFixture) tap(key ebiten.Key) {
	f.input.PressKey(key)
	f.frame()
	f.input.ReleaseKey(key)
}

func TestTextInputSystem_Focus(t *testing.T) {
	f := newTextInputFixture(0)

	f.typeText("ignored")
	if f.field.Text != "" {
		t.Errorf("未获得焦点时不应接收输入, Text = %q", f.field.Text)
	}

	f.focus()
	if !f.field.IsFocused || !f.field.CursorVisible {
		t.Fatalf("点击输入框应获得焦点并显示光标")
	}

	// 点击其他位置失去焦点
	f.input.PointerX, f.input.PointerY = 900, 600
	f.input.PointerPressed = true
	f.frame()
	if f.field.IsFocused {
		t.Error("点击输入框外应失去焦点")
	}

	f.focus()
	f.tap(ebiten.KeyEscape)
	if f.field.IsFocused {
		t.Error("Esc 应失去焦点")
	}
}

func TestTextInputSystem_EmailFilter(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  string
	}{
		{"普通邮箱", "dev@huly.io", "dev@huly.io"},
		{"过滤空格和符号", "de v!@hu#ly.io", "dev@huly.io"},
		{"保留加号下划线连字符", "a_b-c+d@x.io", "a_b-c+d@x.io"},
		{"过滤非 ASCII", "测试me@x.io", "me@x.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTextInputFixture(0)
			f.focus()
			f.typeText(tt.typed)

			if f.field.Text != tt.want {
				t.Errorf("Text = %q, want %q", f.field.Text, tt.want)
			}
			if f.field.CursorPosition != len([]rune(tt.want)) {
				t.Errorf("CursorPosition = %d, want %d", f.field.CursorPosition, len([]rune(tt.want)))
			}
		})
	}
}

// TestTextInputSystem_MaxLength 超出最大长度的输入被拒绝
func TestTextInputSystem_MaxLength(t *testing.T) {
	f := newTextInputFixture(6)
	f.focus()

	f.typeText("abc")
	f.typeText("defg")
	if f.field.Text != "abc" {
		t.Errorf("Text = %q, want \"abc\"", f.field.Text)
	}

	f.typeText("def")
	if f.field.Text != "abcdef" {
		t.Errorf("Text = %q, want \"abcdef\"", f.field.Text)
	}
}

// TestTextInputSystem_Editing 光标移动、退格、删除
func TestTextInputSystem_Editing(t *testing.T) {
	f := newTextInputFixture(0)
	f.focus()
	f.typeText("me@x.io")

	f.tap(ebiten.KeyBackspace)
	if f.field.Text != "me@x.i" {
		t.Fatalf("退格后 Text = %q", f.field.Text)
	}

	f.tap(ebiten.KeyHome)
	if f.field.CursorPosition != 0 {
		t.Fatalf("Home 后 CursorPosition = %d", f.field.CursorPosition)
	}
	f.tap(ebiten.KeyDelete)
	if f.field.Text != "e@x.i" {
		t.Fatalf("Delete 后 Text = %q", f.field.Text)
	}

	f.typeText("w")
	if f.field.Text != "we@x.i" || f.field.CursorPosition != 1 {
		t.Fatalf("插入后 Text = %q, CursorPosition = %d", f.field.Text, f.field.CursorPosition)
	}

	f.tap(ebiten.KeyArrowRight)
	f.tap(ebiten.KeyArrowLeft)
	f.tap(ebiten.KeyArrowLeft)
	f.tap(ebiten.KeyArrowLeft) // 已在开头
	if f.field.CursorPosition != 0 {
		t.Errorf("CursorPosition = %d, want 0", f.field.CursorPosition)
	}

	f.tap(ebiten.KeyEnd)
	if f.field.CursorPosition != 6 {
		t.Errorf("End 后 CursorPosition = %d, want 6", f.field.CursorPosition)
	}

	f.tap(ebiten.KeyBackspace)
	if f.field.Text != "we@x." {
		t.Errorf("Text = %q, want \"we@x.\"", f.field.Text)
	}
}

// TestTextInputSystem_CursorBlink 光标每 0.5s 切换一次
func TestTextInputSystem_CursorBlink(t *testing.T) {
	f := newTextInputFixture(0)
	f.focus()

	for i := 0; i < 31; i++ {
		f.frame()
	}
	if f.field.CursorVisible {
		t.Error("0.5s 后光标应隐藏")
	}

	f.typeText("a")
	if !f.field.CursorVisible {
		t.Error("输入时光标应保持可见")
	}
}
