package config

import "image/color"

// 场景配色
// 天空和地面使用垂直渐变，雾层使用自下而上衰减的半透明色带

var (
	// SkyTop 天空渐变顶部颜色（深夜蓝）
	SkyTop = color.RGBA{R: 16, G: 24, B: 48, A: 255}
	// SkyBottom 天空渐变底部颜色（风暴前的亮蓝）
	SkyBottom = color.RGBA{R: 90, G: 140, B: 200, A: 255}

	// GroundTop 地面渐变顶部颜色
	GroundTop = color.RGBA{R: 40, G: 80, B: 30, A: 255}
	// GroundBottom 地面渐变底部颜色
	GroundBottom = color.RGBA{R: 12, G: 40, B: 18, A: 255}

	// FogColor 地面雾的基础色（透明度由渲染时的衰减曲线决定）
	FogColor = color.RGBA{R: 120, G: 140, B: 130, A: 255}

	// DebrisColor 碎片粒子的基础色（土黄）
	DebrisColor = color.RGBA{R: 200, G: 180, B: 120, A: 255}

	// DustGlowColor 地面接触点尘土光晕颜色
	DustGlowColor = color.RGBA{R: 100, G: 120, B: 130, A: 255}

	// FunnelDarkTone 漏斗粒子的暗端颜色（亮度插值的起点）
	FunnelDarkTone = color.RGBA{R: 60, G: 60, B: 70, A: 255}
)
