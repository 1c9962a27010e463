package utils

import "math"

// Spring 阻尼弹簧参数（质量-弹簧-阻尼模型）
type Spring struct {
	Stiffness float64 // 刚度
	Damping   float64 // 阻尼
	Mass      float64 // 质量（0 视为 1）
}

// DefaultSpring 与常见动画库默认值一致：stiffness 100, damping 10, mass 1
var DefaultSpring = Spring{Stiffness: 100, Damping: 10, Mass: 1}

// springSubSteps 每次 Step 内部的积分子步数，保证 60Hz 下高刚度弹簧也稳定
const springSubSteps = 4

// Step 使用半隐式欧拉积分将弹簧推进 dt 秒
// 返回新的位置和速度
func (s Spring) Step(position, velocity, target, dt float64) (float64, float64) {
	mass := s.Mass
	if mass <= 0 {
		mass = 1
	}

	h := dt / springSubSteps
	for i := 0; i < springSubSteps; i++ {
		force := -s.Stiffness*(position-target) - s.Damping*velocity
		velocity += force / mass * h
		position += velocity * h
	}
	return position, velocity
}

// AtRest 判断弹簧是否已静止在目标附近
func (s Spring) AtRest(position, velocity, target, restDelta, restSpeed float64) bool {
	return math.Abs(target-position) <= restDelta && math.Abs(velocity) <= restSpeed
}
