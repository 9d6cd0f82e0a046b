package config

// 窗口与场景布局常量
// 所有模拟和渲染使用的坐标都基于逻辑屏幕尺寸，Ebitengine 负责缩放到实际窗口

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Tornado Simulator"

	// TargetTPS 目标模拟帧率（每秒 Update 次数）
	TargetTPS = 60
)

// 场景布局（从窗口尺寸推导）
const (
	// CenterX 龙卷风中轴的 X 坐标
	CenterX = GameWindowWidth / 2

	// GroundY 地平线的 Y 坐标（屏幕高度的 85%）
	GroundY = GameWindowHeight * 85 / 100

	// FunnelHeight 漏斗云可见高度（屏幕高度的 75%）
	FunnelHeight = GameWindowHeight * 75 / 100
)

// FixedDeltaTime 固定时间步长（秒）
// 与 Ebitengine 的 tick 模型一致：Update 每 tick 调用一次
const FixedDeltaTime = 1.0 / 60.0
