package systems

import (
	"math"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
)

// FloatSystem 浮动几何体与星空闪烁
type FloatSystem struct {
	entityManager *ecs.EntityManager
	clock         *game.Clock
}

// NewFloatSystem 创建浮动系统
func NewFloatSystem(em *ecs.EntityManager, clock *game.Clock) *FloatSystem {
	return &FloatSystem{
		entityManager: em,
		clock:         clock,
	}
}

// Update 写入 Float 通道并更新星星亮度
func (s *FloatSystem) Update(deltaTime float64) {
	now := s.clock.Now()

	for _, id := range ecs.GetEntitiesWith2[*components.FloatingComponent, *components.VisualComponent](s.entityManager) {
		f, _ := ecs.GetComponent[*components.FloatingComponent](s.entityManager, id)
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)
		visual.Float = FloatTransform(f, now)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.StarFieldComponent](s.entityManager) {
		field, _ := ecs.GetComponent[*components.StarFieldComponent](s.entityManager, id)
		for i := range field.Stars {
			star := &field.Stars[i]
			star.Brightness = 0.55 + 0.45*math.Sin(now*star.Speed+star.Phase)
		}
	}
}

// FloatTransform 计算时刻 now 的漂浮变换
// 位置：sin(t·speed)·amplitude；旋转：X 轴 sin(t·speed)，Y 轴 sin(t·speed·0.5)
func FloatTransform(f *components.FloatingComponent, now float64) components.Transform {
	t := components.IdentityTransform
	wave := math.Sin(now*f.Speed + f.Phase)
	t.OffsetY = -wave * f.Amplitude // 屏幕 Y 轴向下
	t.RotateX = wave * f.RotationAmount
	t.RotateY = math.Sin(now*f.Speed*0.5+f.Phase) * f.RotationAmount * 0.66
	return t
}
