package utils

import (
	"math"
	"testing"
)

// TestSpringConverges 弹簧最终收敛到目标
func TestSpringConverges(t *testing.T) {
	s := DefaultSpring
	pos, vel := 0.0, 0.0
	target := 300.0

	for i := 0; i < 60*5; i++ {
		pos, vel = s.Step(pos, vel, target, 1.0/60.0)
	}

	if math.Abs(pos-target) > 0.5 {
		t.Errorf("5 秒后位置 = %v, 期望接近 %v", pos, target)
	}
	if !s.AtRest(pos, vel, target, 0.5, 5) {
		t.Errorf("5 秒后弹簧应该静止, pos=%v vel=%v", pos, vel)
	}
}

// TestSpringOvershoots 低阻尼弹簧会越过目标
func TestSpringOvershoots(t *testing.T) {
	s := DefaultSpring
	pos, vel := 0.0, 0.0
	maxPos := 0.0

	for i := 0; i < 120; i++ {
		pos, vel = s.Step(pos, vel, 1, 1.0/60.0)
		maxPos = math.Max(maxPos, pos)
	}

	if maxPos <= 1 {
		t.Errorf("stiffness=100 damping=10 的弹簧应该过冲, max=%v", maxPos)
	}
}

// TestSpringZeroMass 质量为 0 时按 1 处理
func TestSpringZeroMass(t *testing.T) {
	a := Spring{Stiffness: 100, Damping: 10}
	b := Spring{Stiffness: 100, Damping: 10, Mass: 1}
	pa, va := a.Step(0, 0, 1, 1.0/60.0)
	pb, vb := b.Step(0, 0, 1, 1.0/60.0)
	if pa != pb || va != vb {
		t.Errorf("Mass=0 结果 (%v,%v) 应该等于 Mass=1 结果 (%v,%v)", pa, va, pb, vb)
	}
}
