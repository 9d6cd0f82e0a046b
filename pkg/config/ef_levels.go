package config

import "image/color"

// EF 级别参数表
// 每个增强藤田级别（EF0~EF5）对应一组视觉参数，
// 控制漏斗旋转速度、上升速度、底部半径、碎片密度和主体颜色。
// 级别本身只是视觉强度选择器，不是物理模拟输入。

// EFLevelParams 单个 EF 级别的视觉参数
type EFLevelParams struct {
	Name       string     // 级别名称，如 "EF2"
	Swirl      float64    // 旋转速度倍数（弧度/秒的基准系数）
	Lift       float64    // 粒子上升速度（像素/秒）
	BaseRadius float64    // 漏斗底部半径（像素）
	DebrisRate float64    // 每帧生成碎片的概率 [0,1]
	Color      color.RGBA // 漏斗主体颜色
}

// MinLevel 和 MaxLevel 定义合法的 EF 级别范围
const (
	MinLevel = 0
	MaxLevel = 5
	// LevelCount EF 级别总数
	LevelCount = MaxLevel - MinLevel + 1
)

// DefaultLevel 程序启动时的默认级别（EF2）
const DefaultLevel = 2

// EFLevels 按级别索引的参数表（索引 0 = EF0，索引 5 = EF5）
// 数值随级别单调递增：级别越高，旋转越快、抬升越强、漏斗越宽、碎片越多
var EFLevels = [LevelCount]EFLevelParams{
	{Name: "EF0", Swirl: 1.2, Lift: 120.0, BaseRadius: 130.0, DebrisRate: 0.12, Color: color.RGBA{R: 180, G: 200, B: 220, A: 255}},
	{Name: "EF1", Swirl: 1.6, Lift: 160.0, BaseRadius: 155.0, DebrisRate: 0.18, Color: color.RGBA{R: 190, G: 210, B: 230, A: 255}},
	{Name: "EF2", Swirl: 2.2, Lift: 200.0, BaseRadius: 180.0, DebrisRate: 0.26, Color: color.RGBA{R: 210, G: 220, B: 230, A: 255}},
	{Name: "EF3", Swirl: 2.9, Lift: 240.0, BaseRadius: 210.0, DebrisRate: 0.35, Color: color.RGBA{R: 230, G: 230, B: 235, A: 255}},
	{Name: "EF4", Swirl: 3.6, Lift: 300.0, BaseRadius: 240.0, DebrisRate: 0.47, Color: color.RGBA{R: 245, G: 240, B: 230, A: 255}},
	{Name: "EF5", Swirl: 4.5, Lift: 360.0, BaseRadius: 280.0, DebrisRate: 0.60, Color: color.RGBA{R: 255, G: 250, B: 220, A: 255}},
}

// 粒子容量基数与增量
// 各类别的容量上限 = 基数 + 增量 × 级别，级别越高粒子越多
const (
	// FunnelBaseCount 漏斗粒子容量基数
	FunnelBaseCount = 160
	// FunnelPerLevel 每级增加的漏斗粒子数
	FunnelPerLevel = 40

	// DebrisBaseCount 碎片粒子容量基数
	DebrisBaseCount = 30
	// DebrisPerLevel 每级增加的碎片粒子数
	DebrisPerLevel = 18

	// FogBaseCount 地面雾粒子容量基数
	FogBaseCount = 24
	// FogPerLevel 每级增加的雾粒子数
	FogPerLevel = 6

	// CloudBaseCount 云层粒子容量基数
	CloudBaseCount = 8
	// CloudPerLevel 每级增加的云层粒子数
	CloudPerLevel = 2
)

// FunnelCapacity 返回指定级别的漏斗粒子容量上限
func FunnelCapacity(level int) int {
	return FunnelBaseCount + FunnelPerLevel*clampLevel(level)
}

// DebrisCapacity 返回指定级别的碎片粒子容量上限
func DebrisCapacity(level int) int {
	return DebrisBaseCount + DebrisPerLevel*clampLevel(level)
}

// FogCapacity 返回指定级别的雾粒子容量上限
func FogCapacity(level int) int {
	return FogBaseCount + FogPerLevel*clampLevel(level)
}

// CloudCapacity 返回指定级别的云层粒子容量上限
func CloudCapacity(level int) int {
	return CloudBaseCount + CloudPerLevel*clampLevel(level)
}

// clampLevel 将级别限制在合法范围内
func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
