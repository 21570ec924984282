package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/motionkit/pkg/app"
	"github.com/decker502/motionkit/pkg/config"
	"github.com/decker502/motionkit/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "动画配置文件路径（默认使用嵌入的 data/motion.yaml）")
	physicsPath := flag.String("physics", "", "单独的物理参数文件（覆盖动画配置中的 physics 段）")
	verbose := flag.Bool("verbose", false, "输出详细日志")
	skipLoading := flag.Bool("skip-loading", false, "跳过启动画面")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		ConfigPath:       *configPath,
		PhysicsPath:      *physicsPath,
		SkipLoadingScene: *skipLoading,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被关闭
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Motion Portfolio")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
