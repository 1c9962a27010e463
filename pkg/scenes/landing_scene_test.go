package scenes

import (
	"testing"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/utils"
)

const testDT = 1.0 / 60.0

func newTestScene(t *testing.T) (*LandingScene, *utils.ScriptedInput) {
	t.Helper()
	cfg, err := config.LoadLandingConfig("../../data/landing.yaml")
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	input := utils.NewScriptedInput()
	scene, err := NewHeadlessLandingScene(cfg, input)
	if err != nil {
		t.Fatalf("创建场景失败: %v", err)
	}
	return scene, input
}

func runFrames(scene *LandingScene, input *utils.ScriptedInput, n int) {
	for range n {
		scene.Update(testDT)
		input.EndFrame()
	}
}

func TestLandingSceneFlow(t *testing.T) {
	scene, input := newTestScene(t)
	em := scene.EntityManager()
	page := scene.Page()

	runFrames(scene, input, 180)

	t.Run("首屏入场元素全部显现", func(t *testing.T) {
		for _, id := range page.Hero.Entrance {
			reveal, _ := ecs.GetComponent[*components.RevealComponent](em, id)
			if reveal.State != components.RevealRevealed {
				t.Errorf("实体 %d 状态 = %v, 期望 Revealed", id, reveal.State)
			}
		}
	})

	t.Run("视口外的计数器保持为 0", func(t *testing.T) {
		for _, card := range page.Stats {
			counter, _ := ecs.GetComponent[*components.CounterComponent](em, card.Counter)
			if counter.State != components.PresentationNotStarted || counter.Value != 0 {
				t.Errorf("计数器 %d 在卡片可见前就开始了: %+v", card.Counter, counter)
			}
		}
	})

	scene.ScrollTo(600)
	runFrames(scene, input, 300)

	t.Run("滚动后计数器精确到达目标", func(t *testing.T) {
		for _, card := range page.Stats {
			counter, _ := ecs.GetComponent[*components.CounterComponent](em, card.Counter)
			if counter.State != components.PresentationCompleted {
				t.Errorf("计数器 %d 状态 = %v, 期望 Completed", card.Counter, counter.State)
			}
			if counter.Value != counter.Target {
				t.Errorf("计数器 %d = %v, 期望 %v", card.Counter, counter.Value, counter.Target)
			}
		}
	})

	t.Run("首屏内容随滚动淡出", func(t *testing.T) {
		if p := scene.ScrollSignal().Progress(); p <= 0 {
			t.Fatalf("滚动进度 = %v, 应大于 0", p)
		}
		visual, _ := ecs.GetComponent[*components.VisualComponent](em, page.Hero.Content)
		if visual.Scroll.Opacity >= 1 {
			t.Errorf("首屏透明度 = %v, 应小于 1", visual.Scroll.Opacity)
		}
	})

	t.Run("回滚到顶部不会重新隐藏", func(t *testing.T) {
		scene.ScrollTo(0)
		runFrames(scene, input, 30)
		reveal, _ := ecs.GetComponent[*components.RevealComponent](em, page.Stats[0].Card)
		if reveal.State != components.RevealRevealed {
			t.Errorf("卡片状态 = %v, 显现后不应回退", reveal.State)
		}
	})
}

func TestLandingSceneClose(t *testing.T) {
	scene, input := newTestScene(t)
	runFrames(scene, input, 10)

	scene.Close()

	if n := scene.EntityManager().EntityCount(); n != 0 {
		t.Errorf("关闭后实体数 = %d, 期望 0", n)
	}
	if !scene.ScrollSignal().IsDetached() {
		t.Error("关闭后滚动信号应已注销")
	}

	before := scene.Clock().Now()
	scene.ScrollTo(500)
	runFrames(scene, input, 10)
	if scene.Clock().Now() != before {
		t.Error("关闭后 Update 应为空操作")
	}
	if scene.ScrollSignal().Offset() != 0 {
		t.Errorf("关闭后滚动距离 = %v, 不应再被写入", scene.ScrollSignal().Offset())
	}

	// 重复关闭
	scene.Close()
}

func TestSceneManagerClosesLandingScene(t *testing.T) {
	first, _ := newTestScene(t)
	second, _ := newTestScene(t)

	sm := game.NewSceneManager()
	sm.SwitchTo(first)
	sm.SwitchTo(second)

	if !first.ScrollSignal().IsDetached() {
		t.Error("被替换的场景应被关闭")
	}
	if second.ScrollSignal().IsDetached() {
		t.Error("当前场景不应被关闭")
	}

	sm.Close()
	if !second.ScrollSignal().IsDetached() {
		t.Error("SceneManager.Close 应关闭当前场景")
	}
}
