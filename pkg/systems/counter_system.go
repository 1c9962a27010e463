package systems

import (
	"log"
	"math"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// CounterSystem 数字计数动画系统
//
// 计数器在门控元素显现后的第一个 tick 记录开始时间，之后每个 tick 按
// 已用时间比例更新显示值。开始后即使门控元素被销毁也会播放到结束。
type CounterSystem struct {
	entityManager *ecs.EntityManager
	clock         *game.Clock
}

// NewCounterSystem 创建计数动画系统
func NewCounterSystem(em *ecs.EntityManager, clock *game.Clock) *CounterSystem {
	return &CounterSystem{
		entityManager: em,
		clock:         clock,
	}
}

// Update 推进所有计数器
func (s *CounterSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.CounterComponent](s.entityManager)

	for _, id := range entities {
		counter, _ := ecs.GetComponent[*components.CounterComponent](s.entityManager, id)
		if counter.State == components.PresentationCompleted {
			continue
		}

		if counter.State == components.PresentationNotStarted && !s.gateOpen(id, counter) {
			continue
		}

		AdvanceCounter(counter, s.clock)

		if text, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
			text.Text = FormatCounter(counter)
		}
		if counter.State == components.PresentationCompleted {
			log.Printf("[CounterSystem] 实体 %d 计数完成: %s", id, FormatCounter(counter))
		}
	}
}

// gateOpen 门控元素是否已显现
func (s *CounterSystem) gateOpen(id ecs.EntityID, counter *components.CounterComponent) bool {
	gate := counter.Gate
	if gate == 0 {
		gate = id
	}
	reveal, ok := ecs.GetComponent[*components.RevealComponent](s.entityManager, gate)
	return ok && reveal.State == components.RevealRevealed
}

// AdvanceCounter 按时钟当前 tick 推进计数器（调用方负责门控检查）
// 已用时间由 tick 差得出，Duration 秒对应的 tick 上恰好完成。
func AdvanceCounter(counter *components.CounterComponent, clock *game.Clock) {
	if counter.State == components.PresentationCompleted {
		return
	}
	if !counter.HasStartTime {
		counter.StartTime = clock.Now()
		counter.StartTick = clock.Ticks()
		counter.HasStartTime = true
		counter.State = components.PresentationRunning
	}

	progress := 1.0
	if counter.Duration > 0 {
		elapsed := clock.Since(counter.StartTick, counter.StartTime)
		progress = utils.Clamp01(elapsed / counter.Duration)
	}

	counter.Value = CounterValue(counter.Target, progress)
	if progress >= 1 {
		counter.State = components.PresentationCompleted
	}
}

// CounterValue 计算进度对应的显示值
// progress == 1 时精确返回 target，避免浮点误差；否则取 floor(progress × target)。
func CounterValue(target, progress float64) float64 {
	if progress >= 1 {
		return target
	}
	if progress <= 0 {
		return 0
	}
	return math.Floor(progress * target)
}

// FormatCounter 格式化计数器显示文本（千分位 + 后缀）
func FormatCounter(counter *components.CounterComponent) string {
	return utils.FormatNumber(counter.Value) + counter.Suffix
}
