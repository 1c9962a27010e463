package systems

import (
	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// SpringFollowerSystem 弹簧光标系统：圆点以弹簧动力学追随指针
type SpringFollowerSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource
}

// NewSpringFollowerSystem 创建弹簧光标系统
func NewSpringFollowerSystem(em *ecs.EntityManager, input utils.InputSource) *SpringFollowerSystem {
	return &SpringFollowerSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 让每个跟随者向指针位置推进一步
func (s *SpringFollowerSystem) Update(deltaTime float64) {
	px, py := s.input.PointerPosition()

	for _, id := range ecs.GetEntitiesWith1[*components.SpringFollowerComponent](s.entityManager) {
		f, _ := ecs.GetComponent[*components.SpringFollowerComponent](s.entityManager, id)

		targetX := float64(px) + f.OffsetX
		targetY := float64(py) + f.OffsetY
		f.X, f.VX = f.Spring.Step(f.X, f.VX, targetX, deltaTime)
		f.Y, f.VY = f.Spring.Step(f.Y, f.VY, targetY, deltaTime)
	}
}
