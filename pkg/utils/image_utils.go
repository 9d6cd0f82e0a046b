// Package utils 提供通用工具函数
package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// 程序化贴图生成
//
// 场景里没有任何外部图片资源，天空、地面、光晕和粒子贴图
// 全部在启动时生成一次，之后每帧复用。
// 注意：image.RGBA 的颜色值是 alpha 预乘的，半透明像素
// 必须先把 RGB 按 alpha 缩放再写入。

// LerpRGBA 在两个颜色之间线性插值
// t = 0 返回 a，t = 1 返回 b，t 超出 [0,1] 时被截断
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// NewVerticalGradient 生成一张从 top 渐变到 bottom 的竖直渐变图
// 用于天空和地面背景
func NewVerticalGradient(width, height int, top, bottom color.RGBA) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		c := LerpRGBA(top, bottom, t)
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return ebiten.NewImageFromImage(img)
}

// NewAlphaRamp 生成一张自上而下透明度衰减的色带
// maxAlpha 是顶部的透明度，底部衰减到 0，用于地面雾
func NewAlphaRamp(width, height int, base color.RGBA, maxAlpha uint8) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		a := float64(maxAlpha) * (1 - float64(y)/float64(height))
		c := premultiply(base, a/255)
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return ebiten.NewImageFromImage(img)
}

// NewRadialGlow 生成一张圆形光晕贴图，边长为 radius*2
// 透明度从中心的 maxAlpha 按二次曲线衰减到边缘的 0，
// 配合加法混合绘制发光效果
func NewRadialGlow(radius int, clr color.RGBA, maxAlpha uint8) *ebiten.Image {
	size := radius * 2
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - radius)
			dy := float64(y - radius)
			d := math.Sqrt(dx*dx+dy*dy) / float64(radius)
			if d >= 1 {
				continue
			}
			a := float64(maxAlpha) * (1 - d) * (1 - d)
			img.SetRGBA(x, y, premultiply(clr, a/255))
		}
	}
	return ebiten.NewImageFromImage(img)
}

// NewSoftDisc 生成一张白色软边圆形贴图，边长为 radius*2
// 内圈完全不透明，靠近边缘平滑过渡到透明；
// 渲染时通过顶点颜色着色，因此贴图本身保持纯白
func NewSoftDisc(radius int) *ebiten.Image {
	size := radius * 2
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x-radius) + 0.5
			dy := float64(y-radius) + 0.5
			d := math.Sqrt(dx*dx+dy*dy) / float64(radius)
			if d >= 1 {
				continue
			}
			a := 1.0
			if d > 0.6 {
				// 外圈 40% 平滑过渡
				a = 1 - (d-0.6)/0.4
			}
			img.SetRGBA(x, y, premultiply(color.RGBA{R: 255, G: 255, B: 255, A: 255}, a))
		}
	}
	return ebiten.NewImageFromImage(img)
}

// NewSoftEllipse 生成一张白色软边椭圆贴图
// 用于云带粒子，渲染时拉伸并着色
func NewSoftEllipse(width, height int) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cx := float64(width) / 2
	cy := float64(height) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nx := (float64(x) + 0.5 - cx) / cx
			ny := (float64(y) + 0.5 - cy) / cy
			d := nx*nx + ny*ny
			if d >= 1 {
				continue
			}
			a := 1 - d
			img.SetRGBA(x, y, premultiply(color.RGBA{R: 255, G: 255, B: 255, A: 255}, a))
		}
	}
	return ebiten.NewImageFromImage(img)
}

// premultiply 把非预乘颜色按比例 alpha ∈ [0,1] 转为预乘 RGBA
func premultiply(clr color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(clr.R) * alpha),
		G: uint8(float64(clr.G) * alpha),
		B: uint8(float64(clr.B) * alpha),
		A: uint8(255 * alpha),
	}
}
