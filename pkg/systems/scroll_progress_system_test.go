package systems

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/utils"
)

const testDT = 1.0 / 60.0

// newHeroLinked 构造与默认配置一致的首屏滚动曲线
func newHeroLinked() *components.ScrollLinkedComponent {
	return &components.ScrollLinkedComponent{
		OffsetY: utils.MustCurve([]float64{0, 1}, []utils.Value{utils.Percent(0), utils.Percent(100)}),
		Opacity: utils.MustCurve([]float64{0, 0.3}, []utils.Value{utils.Num(1), utils.Num(0)}),
		Scale:   utils.MustCurve([]float64{0, 0.5}, []utils.Value{utils.Num(1), utils.Num(0.8)}),
	}
}

type scrollFixture struct {
	em     *ecs.EntityManager
	input  *utils.ScriptedInput
	signal *game.ScrollSignal
	system *ScrollProgressSystem
	hero   ecs.EntityID
}

// newScrollFixture 视口高 720，页面高 1720（最大滚动 1000），首屏高 720
func newScrollFixture() *scrollFixture {
	em := ecs.NewEntityManager()
	input := utils.NewScriptedInput()
	signal := game.NewScrollSignal()
	cfg := config.ScrollConfig{WheelSpeed: 60, KeyStep: 80, PageStep: 0.9}

	sys := NewScrollProgressSystem(em, input, signal, cfg, 720)
	sys.SetPageHeight(1720)

	hero := em.CreateEntity()
	ecs.AddComponent(em, hero, &components.BoundsComponent{Rect: utils.Rect{Width: 1280, Height: 720}})
	ecs.AddComponent(em, hero, newHeroLinked())
	ecs.AddComponent(em, hero, components.NewVisualComponent())

	return &scrollFixture{em: em, input: input, signal: signal, system: sys, hero: hero}
}

func (f *scrollFixture) visual() *components.VisualComponent {
	v, _ := ecs.GetComponent[*components.VisualComponent](f.em, f.hero)
	return v
}

func TestMapScrollProgress(t *testing.T) {
	linked := newHeroLinked()

	tests := []struct {
		name        string
		progress    float64
		height      float64
		wantOffsetY float64
		wantOpacity float64
		wantScale   float64
	}{
		{"顶部", 0, 720, 0, 1, 1},
		{"进度 0.15 透明度过半", 0.15, 720, 108, 0.5, 0.94},
		{"进度 0.25", 0.25, 400, 100, 1 - 0.25/0.3, 0.9},
		{"进度 0.3 透明度曲线结束", 0.3, 720, 216, 0, 0.88},
		{"进度 0.5 缩放曲线结束", 0.5, 400, 200, 0, 0.8},
		{"进度 0.7", 0.7, 720, 504, 0, 0.8},
		{"底部", 1, 720, 720, 0, 0.8},
		{"负进度钳制到 0", -0.5, 720, 0, 1, 1},
		{"超过 1 钳制到 1", 1.5, 720, 720, 0, 0.8},
		{"NaN 视为 0", math.NaN(), 720, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapScrollProgress(linked, tt.progress, tt.height)
			if math.Abs(got.OffsetY-tt.wantOffsetY) > 1e-9 {
				t.Errorf("OffsetY = %v, want %v", got.OffsetY, tt.wantOffsetY)
			}
			if math.Abs(got.Opacity-tt.wantOpacity) > 1e-9 {
				t.Errorf("Opacity = %v, want %v", got.Opacity, tt.wantOpacity)
			}
			if math.Abs(got.Scale-tt.wantScale) > 1e-9 {
				t.Errorf("Scale = %v, want %v", got.Scale, tt.wantScale)
			}
		})
	}
}

// TestMapScrollProgressInterpolation 输出始终等于 a + p'(b − a)
func TestMapScrollProgressInterpolation(t *testing.T) {
	linked := &components.ScrollLinkedComponent{
		OffsetY: utils.MustCurve([]float64{0.2, 0.6}, []utils.Value{utils.Px(-40), utils.Px(160)}),
	}

	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		got := MapScrollProgress(linked, p, 0).OffsetY

		local := utils.Clamp01((p - 0.2) / 0.4)
		want := -40 + local*200
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("p=%.2f: OffsetY = %v, want %v", p, got, want)
		}
	}
}

// TestMapScrollProgressNilCurves 未配置的属性保持恒等
func TestMapScrollProgressNilCurves(t *testing.T) {
	got := MapScrollProgress(&components.ScrollLinkedComponent{}, 0.7, 720)
	if got != components.IdentityTransform {
		t.Errorf("没有曲线时应返回恒等变换, got %+v", got)
	}
}

func TestScrollProgressSystem_ScrollTo(t *testing.T) {
	tests := []struct {
		name         string
		target       float64
		wantScrollY  float64
		wantProgress float64
	}{
		{"中间位置", 700, 700, 0.7},
		{"顶部", 0, 0, 0},
		{"超出底部钳制", 5000, 1000, 1},
		{"负值钳制", -300, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScrollFixture()
			f.system.ScrollTo(tt.target)

			if f.system.ScrollY() != tt.wantScrollY {
				t.Errorf("ScrollY = %v, want %v", f.system.ScrollY(), tt.wantScrollY)
			}
			if math.Abs(f.signal.Progress()-tt.wantProgress) > 1e-9 {
				t.Errorf("Progress = %v, want %v", f.signal.Progress(), tt.wantProgress)
			}
			if f.signal.Offset() != tt.wantScrollY {
				t.Errorf("Offset = %v, want %v", f.signal.Offset(), tt.wantScrollY)
			}
		})
	}
}

// TestScrollProgressSystem_Update70Percent 滚动到 70% 时首屏下移 70% 高度、完全透明、缩放 0.8
func TestScrollProgressSystem_Update70Percent(t *testing.T) {
	f := newScrollFixture()
	f.system.ScrollTo(700)
	f.system.Update(testDT)

	got := f.visual().Scroll
	if math.Abs(got.OffsetY-504) > 1e-9 {
		t.Errorf("OffsetY = %v, want 504", got.OffsetY)
	}
	if got.Opacity != 0 {
		t.Errorf("Opacity = %v, want 0", got.Opacity)
	}
	if math.Abs(got.Scale-0.8) > 1e-9 {
		t.Errorf("Scale = %v, want 0.8", got.Scale)
	}

	linked, _ := ecs.GetComponent[*components.ScrollLinkedComponent](f.em, f.hero)
	if math.Abs(linked.LastProgress-0.7) > 1e-9 {
		t.Errorf("LastProgress = %v, want 0.7", linked.LastProgress)
	}
}

func TestScrollProgressSystem_Input(t *testing.T) {
	tests := []struct {
		name        string
		start       float64
		apply       func(in *utils.ScriptedInput)
		wantScrollY float64
	}{
		{"滚轮向下", 0, func(in *utils.ScriptedInput) { in.WheelY = -1 }, 60},
		{"滚轮向上", 300, func(in *utils.ScriptedInput) { in.WheelY = 2 }, 180},
		{"方向键向下", 0, func(in *utils.ScriptedInput) { in.PressKey(ebiten.KeyArrowDown) }, 80},
		{"方向键向上", 100, func(in *utils.ScriptedInput) { in.PressKey(ebiten.KeyArrowUp) }, 20},
		{"PageDown 翻一屏", 0, func(in *utils.ScriptedInput) { in.PressKey(ebiten.KeyPageDown) }, 648},
		{"空格翻一屏", 0, func(in *utils.ScriptedInput) { in.PressKey(ebiten.KeySpace) }, 648},
		{"PageUp 钳制到顶部", 300, func(in *utils.ScriptedInput) { in.PressKey(ebiten.KeyPageUp) }, 0},
		{"End 到底部", 120, func(in *utils.ScriptedInput) { in.PressKey(ebiten.KeyEnd) }, 1000},
		{"Home 回到顶部", 640, func(in *utils.ScriptedInput) { in.PressKey(ebiten.KeyHome) }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScrollFixture()
			f.system.ScrollTo(tt.start)
			tt.apply(f.input)
			f.system.Update(testDT)

			if f.system.ScrollY() != tt.wantScrollY {
				t.Errorf("ScrollY = %v, want %v", f.system.ScrollY(), tt.wantScrollY)
			}
		})
	}
}

// TestScrollProgressSystem_KeyRepeat 按住方向键：第 1 帧响应，之后第 30 帧起每 3 帧响应一次
func TestScrollProgressSystem_KeyRepeat(t *testing.T) {
	f := newScrollFixture()
	f.input.PressKey(ebiten.KeyArrowDown)

	for frame := 1; frame <= 35; frame++ {
		f.system.Update(testDT)
		f.input.EndFrame()
	}

	// 第 1、30、33 帧各滚动一次
	if f.system.ScrollY() != 240 {
		t.Errorf("ScrollY = %v, want 240", f.system.ScrollY())
	}
}

// TestScrollProgressSystem_FocusedInputCapturesKeys 输入框获得焦点时键盘不滚动页面
func TestScrollProgressSystem_FocusedInputCapturesKeys(t *testing.T) {
	f := newScrollFixture()
	field := f.em.CreateEntity()
	ecs.AddComponent(f.em, field, &components.TextInputComponent{IsFocused: true})

	f.input.PressKey(ebiten.KeySpace)
	f.system.Update(testDT)
	if f.system.ScrollY() != 0 {
		t.Errorf("焦点在输入框时空格不应滚动, ScrollY = %v", f.system.ScrollY())
	}

	// 滚轮不受影响
	f.input.EndFrame()
	f.input.WheelY = -1
	f.system.Update(testDT)
	if f.system.ScrollY() != 60 {
		t.Errorf("滚轮应该仍然生效, ScrollY = %v", f.system.ScrollY())
	}
}

// TestScrollProgressSystem_Detach 注销后不再响应输入，也不再写入
func TestScrollProgressSystem_Detach(t *testing.T) {
	f := newScrollFixture()
	f.system.ScrollTo(300)
	f.system.Update(testDT)

	f.system.Detach()
	f.system.Detach() // 重复注销是空操作

	before := *f.visual()
	f.input.WheelY = -5
	f.system.Update(testDT)
	f.system.ScrollTo(900)

	if f.system.ScrollY() != 300 {
		t.Errorf("注销后 ScrollY 不应变化, got %v", f.system.ScrollY())
	}
	if math.Abs(f.signal.Progress()-0.3) > 1e-9 {
		t.Errorf("注销后进度不应变化, got %v", f.signal.Progress())
	}
	if *f.visual() != before {
		t.Errorf("注销后不应写入 Scroll 通道")
	}
	if !f.signal.IsDetached() {
		t.Error("信号应该被注销")
	}
}

// TestScrollProgressSystem_ShortPage 页面不超过视口时进度恒为 0
func TestScrollProgressSystem_ShortPage(t *testing.T) {
	f := newScrollFixture()
	f.system.SetPageHeight(500)
	f.system.ScrollTo(200)

	if f.system.MaxScroll() != 0 {
		t.Errorf("MaxScroll = %v, want 0", f.system.MaxScroll())
	}
	if f.signal.Progress() != 0 {
		t.Errorf("Progress = %v, want 0", f.signal.Progress())
	}
}

// TestScrollProgressSystem_MissingComponents 缺少组件的实体被忽略
func TestScrollProgressSystem_MissingComponents(t *testing.T) {
	f := newScrollFixture()
	orphan := f.em.CreateEntity()
	ecs.AddComponent(f.em, orphan, newHeroLinked())

	f.system.ScrollTo(500)
	f.system.Update(testDT) // 不应 panic
}
