// Huly 落地页
//
// 用法:
//
//	huly-landing [--config path] [--verbose]
//
// 不指定 --config 时使用内置的 data/landing.yaml。
// 环境变量 HULY_VERBOSE / HULY_CONFIG / HULY_WINDOW_WIDTH / HULY_WINDOW_HEIGHT / HULY_TPS 可覆盖外壳设置。
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/huly-landing/data"
	"github.com/gonewx/huly-landing/pkg/app"
	"github.com/gonewx/huly-landing/pkg/config"
	"github.com/gonewx/huly-landing/pkg/embedded"
)

var (
	configFlag  = flag.String("config", "", "Path to a landing page yaml (default: embedded data/landing.yaml)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(data.FS)

	env, err := config.LoadEnvOverrides()
	if err != nil {
		log.Fatalf("环境变量错误: %v", err)
	}

	path := *configFlag
	if path == "" {
		path = env.ConfigPath
	}

	var landing *config.LandingConfig
	if path != "" {
		landing, err = config.LoadLandingConfig(path)
	} else {
		landing, err = embedded.LoadLandingConfig()
	}
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	env.Apply(landing)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verboseFlag || env.Verbose,
		Landing: landing,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(landing.Window.Width, landing.Window.Height)
	ebiten.SetWindowTitle(landing.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(landing.Window.TPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
