// Tornado Simulator - 实时龙卷风粒子可视化
//
// 渲染一个风格化的龙卷风漏斗（云层、地面雾、碎片），
// 通过键盘在 EF0~EF5 六档强度之间切换。
//
// Controls:
//
//	SPACE / ENTER  - Cycle EF level
//	0-5            - Jump to EF level
//	F11            - Toggle fullscreen
//	ESC            - Quit
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/tornado/pkg/app"
	"github.com/gonewx/tornado/pkg/config"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	levelFlag      = flag.Int("level", -1, "Start at EF level 0-5 (default: last used level)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
	seedFlag       = flag.Int64("seed", 0, "Random seed for particle spawning (0 = time-based)")
)

func main() {
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Level:      *levelFlag,
		Fullscreen: *fullscreenFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetTPS(config.TargetTPS)

	// RunGame 驱动固定步长的 Update/Draw 循环直到窗口关闭。
	// ESC 路径返回 ebiten.Termination（正常退出，设置已保存）；
	// 窗口关闭按钮路径返回 nil，在这里补一次保存。
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatalf("Render loop failed: %v", err)
	}
	a.SaveOnExit()
}
