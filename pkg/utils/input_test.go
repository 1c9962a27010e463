package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestScriptedInputFrameLifecycle(t *testing.T) {
	in := NewScriptedInput()
	in.WheelY = -3
	in.PointerPressed = true
	in.Chars = []rune("a@")
	in.PressKey(ebiten.KeyBackspace)

	if _, y := in.Wheel(); y != -3 {
		t.Errorf("Wheel y = %v, 期望 -3", y)
	}
	if !in.IsKeyJustPressed(ebiten.KeyBackspace) || in.KeyPressDuration(ebiten.KeyBackspace) != 1 {
		t.Error("按下的第一帧应该 JustPressed 且持续 1 帧")
	}
	if got := string(in.AppendInputChars(nil)); got != "a@" {
		t.Errorf("AppendInputChars = %q, 期望 a@", got)
	}

	in.EndFrame()

	if _, y := in.Wheel(); y != 0 {
		t.Error("EndFrame 后滚轮应该清零")
	}
	if in.IsPointerJustPressed() {
		t.Error("EndFrame 后点击应该清空")
	}
	if len(in.AppendInputChars(nil)) != 0 {
		t.Error("EndFrame 后字符应该清空")
	}
	if in.IsKeyJustPressed(ebiten.KeyBackspace) {
		t.Error("第二帧不应该再 JustPressed")
	}
	if in.KeyPressDuration(ebiten.KeyBackspace) != 2 {
		t.Errorf("KeyPressDuration = %d, 期望 2", in.KeyPressDuration(ebiten.KeyBackspace))
	}

	in.ReleaseKey(ebiten.KeyBackspace)
	if in.KeyPressDuration(ebiten.KeyBackspace) != 0 {
		t.Error("松开后持续帧数应该为 0")
	}
}

func TestEbitenInputImplementsInputSource(t *testing.T) {
	var _ InputSource = EbitenInput{}
	var _ InputSource = NewScriptedInput()
}
