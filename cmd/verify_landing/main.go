// Package main 落地页无窗口校验工具
//
// 不打开窗口，按场景脚本驱动滚动输入并推进固定帧数，
// 打印每一步之后的滚动进度、首屏透明度和计数器数值，最后检查场景期望。
// 各场景使用独立的页面实例，并发执行。
//
// Usage:
//
//	go run ./cmd/verify_landing [flags]
//
// Flags:
//
//	--config <path>      落地页配置（默认使用内置的 data/landing.yaml）
//	--scenarios <path>   场景文件（默认使用内置场景）
//	--parallel <n>       同时运行的场景数（默认 4）
//	--verbose            输出系统日志
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gonewx/huly-landing/data"
	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/embedded"
	"github.com/gonewx/huly-landing/pkg/scenes"
	"github.com/gonewx/huly-landing/pkg/systems"
	"github.com/gonewx/huly-landing/pkg/utils"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

const frameDT = 1.0 / 60.0

var (
	configFlag    = flag.String("config", "", "Landing page config path (default: embedded data/landing.yaml)")
	scenariosFlag = flag.String("scenarios", "", "Scenario yaml (default: built-in scenarios)")
	parallelFlag  = flag.Int("parallel", 4, "Number of scenarios run at the same time")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging")
)

// Result 一个场景的运行结果
type Result struct {
	Name     string
	Lines    []string
	Failures []string
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}
	scenarios, err := loadScenarios(*scenariosFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "场景加载失败: %v\n", err)
		os.Exit(1)
	}

	results := make([]Result, len(scenarios))
	var g errgroup.Group
	g.SetLimit(max(1, *parallelFlag))
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(cfg, sc)
			if err != nil {
				return fmt.Errorf("场景 %q: %w", sc.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, res := range results {
		fmt.Printf("=== %s\n", res.Name)
		for _, line := range res.Lines {
			fmt.Println("  " + line)
		}
		if len(res.Failures) == 0 {
			fmt.Println("  ✓ 通过")
			continue
		}
		failed++
		for _, f := range res.Failures {
			fmt.Println("  ✗ " + f)
		}
	}

	fmt.Printf("\n%d/%d 个场景通过\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}

// loadConfig 读取落地页配置，path 为空时使用内置配置
// 与运行目录无关，和桌面端入口的行为一致。
func loadConfig(path string) (*config.LandingConfig, error) {
	if path != "" {
		return config.LoadLandingConfig(path)
	}
	if !embedded.IsInitialized() {
		embedded.Init(data.FS)
	}
	return embedded.LoadLandingConfig()
}

// runScenario 在独立的页面实例上执行一个场景
func runScenario(cfg *config.LandingConfig, sc Scenario) (Result, error) {
	input := utils.NewScriptedInput()
	scene, err := scenes.NewHeadlessLandingScene(cfg, input)
	if err != nil {
		return Result{}, err
	}
	defer scene.Close()

	res := Result{Name: sc.Name}
	for i, st := range sc.Steps {
		for range max(1, st.Repeat) {
			applyStep(scene, input, st)
			for range max(1, st.Frames) {
				scene.Update(frameDT)
				input.EndFrame()
			}
			if key, ok := keyByName[st.Key]; ok {
				input.ReleaseKey(key)
			}
		}
		res.Lines = append(res.Lines, fmt.Sprintf("step %d: %s", i+1, snapshot(scene)))
	}

	res.Failures = check(scene, sc.Expect)
	return res, nil
}

// applyStep 写入这一步的输入
func applyStep(scene *scenes.LandingScene, input *utils.ScriptedInput, st Step) {
	if st.ScrollTo != nil {
		scene.ScrollTo(*st.ScrollTo)
	}
	input.WheelY = st.Wheel
	if key, ok := keyByName[st.Key]; ok {
		input.PressKey(key)
	}
}

// snapshot 当前页面状态的一行摘要
func snapshot(scene *scenes.LandingScene) string {
	em := scene.EntityManager()
	page := scene.Page()

	values := make([]string, 0, len(page.Stats))
	for _, card := range page.Stats {
		if counter, ok := ecs.GetComponent[*components.CounterComponent](em, card.Counter); ok {
			values = append(values, systems.FormatCounter(counter))
		}
	}
	return fmt.Sprintf("t=%.2fs scroll=%.0fpx progress=%.3f heroOpacity=%.3f counters=[%s]",
		scene.Clock().Now(),
		scene.ScrollSignal().Offset(),
		scene.ScrollSignal().Progress(),
		heroOpacity(scene),
		strings.Join(values, " "))
}

func heroOpacity(scene *scenes.LandingScene) float64 {
	visual, ok := ecs.GetComponent[*components.VisualComponent](scene.EntityManager(), scene.Page().Hero.Content)
	if !ok {
		return 0
	}
	return visual.Scroll.Opacity
}

// check 对比场景期望，返回不满足的项
func check(scene *scenes.LandingScene, want Expect) []string {
	var failures []string
	if want.MinProgress != nil {
		if p := scene.ScrollSignal().Progress(); p < *want.MinProgress-1e-9 {
			failures = append(failures, fmt.Sprintf("progress = %.3f, 期望 >= %.3f", p, *want.MinProgress))
		}
	}
	if want.HeroOpacity != nil {
		if o := heroOpacity(scene); o < *want.HeroOpacity-1e-6 || o > *want.HeroOpacity+1e-6 {
			failures = append(failures, fmt.Sprintf("heroOpacity = %.3f, 期望 %.3f", o, *want.HeroOpacity))
		}
	}
	if want.CountersCompleted != nil {
		em := scene.EntityManager()
		for _, card := range scene.Page().Stats {
			counter, ok := ecs.GetComponent[*components.CounterComponent](em, card.Counter)
			if !ok {
				continue
			}
			done := counter.State == components.PresentationCompleted && counter.Value == counter.Target
			if done != *want.CountersCompleted {
				failures = append(failures, fmt.Sprintf("计数器 %s 完成 = %v, 期望 %v",
					systems.FormatCounter(counter), done, *want.CountersCompleted))
			}
		}
	}
	return failures
}
