package systems

import (
	"math"
	"testing"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/utils"
)

func newBounceLoop() *components.LoopAnimationComponent {
	return &components.LoopAnimationComponent{
		Duration: 2.5,
		OffsetY:  utils.MustCurve([]float64{0, 0.5, 1}, []utils.Value{utils.Px(0), utils.Px(16), utils.Px(0)}),
		Opacity:  utils.MustCurve([]float64{0, 0.5, 1}, []utils.Value{utils.Num(1), utils.Num(0), utils.Num(1)}),
	}
}

func TestEvaluateLoop(t *testing.T) {
	tests := []struct {
		name        string
		elapsed     float64
		wantOffsetY float64
		wantOpacity float64
	}{
		{"起点", 0, 0, 1},
		{"四分之一", 0.625, 8, 0.5},
		{"中间关键帧", 1.25, 16, 0},
		{"第二轮中间关键帧", 3.75, 16, 0},
		{"一轮结束回到起点", 2.5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop := newBounceLoop()
			loop.Elapsed = tt.elapsed
			got := EvaluateLoop(loop)

			if math.Abs(got.OffsetY-tt.wantOffsetY) > 1e-9 {
				t.Errorf("OffsetY = %v, want %v", got.OffsetY, tt.wantOffsetY)
			}
			if math.Abs(got.Opacity-tt.wantOpacity) > 1e-9 {
				t.Errorf("Opacity = %v, want %v", got.Opacity, tt.wantOpacity)
			}
			if got.Scale != 1 {
				t.Errorf("Scale = %v, want 1", got.Scale)
			}
		})
	}
}

// TestEvaluateLoop_ZeroDuration 时长无效时返回恒等变换
func TestEvaluateLoop_ZeroDuration(t *testing.T) {
	loop := newBounceLoop()
	loop.Duration = 0
	loop.Elapsed = 1
	if got := EvaluateLoop(loop); got != components.IdentityTransform {
		t.Errorf("got %+v, want identity", got)
	}
}

func TestLoopAnimationSystem_Update(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewLoopAnimationSystem(em)

	id := em.CreateEntity()
	loop := newBounceLoop()
	visual := components.NewVisualComponent()
	ecs.AddComponent(em, id, loop)
	ecs.AddComponent(em, id, visual)

	// 1.25s = 75 帧
	for i := 0; i < 75; i++ {
		sys.Update(testDT)
	}

	if math.Abs(loop.Elapsed-1.25) > 1e-9 {
		t.Errorf("Elapsed = %v, want 1.25", loop.Elapsed)
	}
	if math.Abs(visual.Loop.OffsetY-16) > 1e-6 {
		t.Errorf("Loop.OffsetY = %v, want 16", visual.Loop.OffsetY)
	}
	if visual.Scroll != components.IdentityTransform {
		t.Error("循环动画不应写入 Scroll 通道")
	}
}
