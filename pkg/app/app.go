// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：main 负责解析命令行参数和
// 启动 RunGame，App 负责装配设置存储、强度状态和场景。
package app

import (
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/tornado/pkg/config"
	"github.com/gonewx/tornado/pkg/game"
	"github.com/gonewx/tornado/pkg/scenes"
)

// gdata 存储使用的应用名
const storageAppName = "gonewx_tornado"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定启动时的 EF 级别 (0~5)，为负数时使用存档中的级别
	Level int
	// Fullscreen 强制以全屏启动（否则沿用存档中的设置）
	Fullscreen bool
	// Seed 粒子随机源种子，0 表示使用时间种子
	Seed int64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	intensity       *game.IntensityState
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	settingsSaved bool // 防止 ESC 路径和窗口关闭路径重复保存
}

// NewApp 创建并初始化应用
//
// 初始化顺序：日志 → 设置存储（gdata，可降级）→ 强度状态 → 场景。
// gdata 打开失败不是致命错误，设置会退化为仅内存模式。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化跨平台设置存储
	gdataManager, err := gdata.Open(gdata.Config{AppName: storageAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, err
	}
	settings := settingsManager.GetSettings()

	// 启动级别：命令行参数优先，其次是上次运行保存的级别
	startLevel := settings.StartLevel
	if cfg.Level >= config.MinLevel && cfg.Level <= config.MaxLevel {
		startLevel = cfg.Level
		log.Printf("[App] Level override from command line: EF%d", cfg.Level)
	}
	intensity := game.NewIntensityState(startLevel)

	// 全屏：命令行参数或存档设置
	if cfg.Fullscreen || settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
		log.Printf("[App] Using fixed random seed %d", cfg.Seed)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewStormScene(intensity, rng))

	log.Printf("[App] Starting at %s", intensity.Params().Name)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		intensity:       intensity,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（每秒 60 次）；收到场景的退出请求后
// 保存设置并返回 ebiten.Termination 结束主循环
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后恢复窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(config.FixedDeltaTime)

	if qr, ok := a.sceneManager.GetCurrentScene().(game.QuitRequester); ok && qr.ShouldQuit() {
		a.saveSettings()
		return ebiten.Termination
	}

	return nil
}

// saveSettings 把本次运行的最终状态写入设置存储
// 窗口关闭（非 ESC）路径下 RunGame 直接返回，保存同样会在
// main 的收尾中触发，见 SaveOnExit
func (a *App) saveSettings() {
	if a.settingsSaved {
		return
	}
	a.settingsSaved = true
	a.settingsManager.SetStartLevel(a.intensity.Current())
	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// SaveOnExit 在程序退出前保存设置
// 通过窗口关闭按钮退出时 Update 不会再被调用，由 main 显式调用此方法
func (a *App) SaveOnExit() {
	a.saveSettings()
}

// Draw 绘制画面，每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
