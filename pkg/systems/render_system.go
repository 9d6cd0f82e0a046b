package systems

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/tornado/pkg/components"
	"github.com/gonewx/tornado/pkg/config"
	"github.com/gonewx/tornado/pkg/ecs"
	"github.com/gonewx/tornado/pkg/game"
	"github.com/gonewx/tornado/pkg/utils"
)

// 贴图尺寸常量
const (
	// discTextureRadius 粒子圆形贴图的半径（像素）
	// 粒子的逻辑尺寸通过 Scale 相对该值换算
	discTextureRadius = 8

	// cloudTextureWidth / cloudTextureHeight 云带椭圆贴图尺寸
	cloudTextureWidth  = 320
	cloudTextureHeight = 120

	// 光晕贴图半径
	coreGlowRadius = 220
	dustGlowRadius = 260

	// 漏斗主体的堆叠椭圆层数
	funnelBodyLayers = 40
	// 每层椭圆的高度（像素）
	funnelBodyLayerHeight = 60
)

// 加法混合模式（用于光晕等发光效果）
var additiveBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// RenderSystem 负责整个场景的分层绘制
//
// 固定的从后到前层级：
// 天空渐变 → 云带 → 漏斗光晕（加法层）→ 漏斗主体 → 漏斗粒子
// → 碎片 → 地面渐变 → 地面雾。
// 渲染只读取粒子池和强度状态，不修改任何模拟数据；
// 动画相位（云漂移、漏斗摆动）由调用方传入的累计时间驱动。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	intensity     *game.IntensityState

	// 启动时生成一次的程序化贴图
	skyImage     *ebiten.Image
	groundImage  *ebiten.Image
	fogRampImage *ebiten.Image
	discTexture  *ebiten.Image
	cloudTexture *ebiten.Image
	coreGlow     *ebiten.Image
	dustGlow     *ebiten.Image

	// 预分配的顶点缓冲，避免每帧分配（批量 DrawTriangles）
	particleVertices []ebiten.Vertex
	particleIndices  []uint16
}

// NewRenderSystem creates a new RenderSystem instance.
// 所有程序化贴图在此生成一次，之后每帧复用。
func NewRenderSystem(em *ecs.EntityManager, intensity *game.IntensityState) *RenderSystem {
	groundHeight := config.GameWindowHeight - config.GroundY

	return &RenderSystem{
		entityManager: em,
		intensity:     intensity,
		skyImage:      utils.NewVerticalGradient(config.GameWindowWidth, config.GameWindowHeight, config.SkyTop, config.SkyBottom),
		groundImage:   utils.NewVerticalGradient(config.GameWindowWidth, groundHeight, config.GroundTop, config.GroundBottom),
		fogRampImage:  utils.NewAlphaRamp(config.GameWindowWidth, groundHeight, config.FogColor, 120),
		discTexture:   utils.NewSoftDisc(discTextureRadius),
		cloudTexture:  utils.NewSoftEllipse(cloudTextureWidth, cloudTextureHeight),
		coreGlow:      utils.NewRadialGlow(coreGlowRadius, config.EFLevels[config.MaxLevel].Color, 55),
		dustGlow:      utils.NewRadialGlow(dustGlowRadius, config.DustGlowColor, 60),

		particleVertices: make([]ebiten.Vertex, 0, 2048),
		particleIndices:  make([]uint16, 0, 3072),
	}
}

// Draw 按固定层级绘制整个场景
// elapsed 是场景累计运行时间（秒），驱动漏斗摆动等动画相位
func (s *RenderSystem) Draw(screen *ebiten.Image, elapsed float64) {
	params := s.intensity.Params()

	screen.DrawImage(s.skyImage, nil)
	s.drawClouds(screen)
	s.drawFunnelGlow(screen, params)
	s.drawFunnelBody(screen, elapsed, params)
	s.drawParticleBatch(screen, components.CategoryFunnel, params)
	s.drawParticleBatch(screen, components.CategoryDebris, params)
	s.drawGround(screen)
	s.drawFog(screen)
}

// drawClouds 绘制顶部云带（按云带序号从低到高）
func (s *RenderSystem) drawClouds(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](s.entityManager)

	type cloud struct {
		particle *components.ParticleComponent
		pos      *components.PositionComponent
	}
	clouds := make([]cloud, 0, 16)
	for _, id := range entities {
		particle, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if !ok || particle.Category != components.CategoryCloud {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		clouds = append(clouds, cloud{particle: particle, pos: pos})
	}
	sort.Slice(clouds, func(i, j int) bool { return clouds[i].particle.Band < clouds[j].particle.Band })

	// 云带横跨整个屏幕并微微探出两侧
	scaleX := float64(config.GameWindowWidth+320) / cloudTextureWidth
	for _, c := range clouds {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scaleX, 1)
		op.GeoM.Translate(c.pos.X-scaleX*cloudTextureWidth/2, c.pos.Y-cloudTextureHeight/2)
		op.ColorScale.Scale(float32(c.particle.Red), float32(c.particle.Green), float32(c.particle.Blue), 1)
		op.ColorScale.ScaleAlpha(float32(c.particle.Alpha))
		screen.DrawImage(s.cloudTexture, op)
	}
}

// drawFunnelGlow 绘制漏斗的加法光晕层
// 中段一个按级别颜色着色的核心光晕，地面接触点一个尘土光晕
func (s *RenderSystem) drawFunnelGlow(screen *ebiten.Image, params config.EFLevelParams) {
	midY := float64(config.GroundY) - float64(config.FunnelHeight)/2

	op := &ebiten.DrawImageOptions{}
	op.Blend = additiveBlend
	op.GeoM.Translate(config.CenterX-coreGlowRadius, midY-coreGlowRadius)
	op.ColorScale.Scale(
		float32(params.Color.R)/255,
		float32(params.Color.G)/255,
		float32(params.Color.B)/255,
		1,
	)
	screen.DrawImage(s.coreGlow, op)

	op = &ebiten.DrawImageOptions{}
	op.Blend = additiveBlend
	op.GeoM.Translate(config.CenterX-dustGlowRadius, float64(config.GroundY)-dustGlowRadius)
	screen.DrawImage(s.dustGlow, op)
}

// drawFunnelBody 用堆叠的半透明椭圆绘制漏斗主体
// 每层半径随高度收窄，透明度随高度衰减，整体按旋转速度轻微摆动
func (s *RenderSystem) drawFunnelBody(screen *ebiten.Image, elapsed float64, params config.EFLevelParams) {
	discSize := float64(discTextureRadius * 2)

	for layer := 0; layer < funnelBodyLayers; layer++ {
		t := float64(layer) / funnelBodyLayers
		radius := FunnelRadius(1-t*0.85, params.BaseRadius, t)
		alpha := 100.0 / 255.0 * utils.EaseInQuad(1-t)
		y := float64(config.GroundY) - t*float64(config.FunnelHeight)

		// 摆动幅度随高度增大，频率随旋转速度加快
		wobble := math.Sin(elapsed*params.Swirl*1.5+t*5) * 12 * t

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(radius*2/discSize, funnelBodyLayerHeight/discSize)
		op.GeoM.Translate(config.CenterX+wobble-radius, y-funnelBodyLayerHeight/2)
		op.ColorScale.Scale(
			float32(params.Color.R)/255,
			float32(params.Color.G)/255,
			float32(params.Color.B)/255,
			1,
		)
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(s.discTexture, op)
	}
}

// drawParticleBatch 批量绘制指定类别的粒子
// 每个粒子生成 4 个顶点、2 个三角形，同一批次共享圆形贴图，
// 单次 DrawTriangles 提交（批量渲染减少绘制调用）
func (s *RenderSystem) drawParticleBatch(screen *ebiten.Image, category components.ParticleCategory, params config.EFLevelParams) {
	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](s.entityManager)

	s.particleVertices = s.particleVertices[:0]
	s.particleIndices = s.particleIndices[:0]

	for _, id := range entities {
		particle, hasParticle := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if !hasParticle || particle.Category != category {
			continue
		}
		pos, hasPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !hasPos {
			continue
		}

		baseIndex := uint16(len(s.particleVertices))
		s.particleVertices = appendParticleVertices(s.particleVertices, s.discTexture, particle, pos, params)
		s.particleIndices = append(s.particleIndices,
			baseIndex+0, baseIndex+1, baseIndex+2,
			baseIndex+1, baseIndex+3, baseIndex+2,
		)
	}

	if len(s.particleVertices) == 0 {
		return
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(s.particleVertices, s.particleIndices, s.discTexture, op)
}

// appendParticleVertices 为单个粒子追加 4 个顶点
// 漏斗粒子的颜色由亮度在暗色调和级别颜色之间插值得到，
// 其他类别使用粒子自带的 RGB；顶点颜色按 alpha 预乘
func appendParticleVertices(vertices []ebiten.Vertex, texture *ebiten.Image, particle *components.ParticleComponent, pos *components.PositionComponent, params config.EFLevelParams) []ebiten.Vertex {
	bounds := texture.Bounds()
	w := float64(bounds.Dx()) * particle.Scale
	h := float64(bounds.Dy()) * particle.Scale

	var r, g, b float64
	if particle.Category == components.CategoryFunnel {
		tone := utils.LerpRGBA(config.FunnelDarkTone, params.Color, particle.Brightness)
		r = float64(tone.R) / 255
		g = float64(tone.G) / 255
		b = float64(tone.B) / 255
	} else {
		r = particle.Red
		g = particle.Green
		b = particle.Blue
	}

	a := particle.Alpha
	colorR := float32(r * a)
	colorG := float32(g * a)
	colorB := float32(b * a)
	colorA := float32(a)

	srcX0 := float32(bounds.Min.X)
	srcY0 := float32(bounds.Min.Y)
	srcX1 := float32(bounds.Max.X)
	srcY1 := float32(bounds.Max.Y)

	x0 := float32(pos.X - w/2)
	y0 := float32(pos.Y - h/2)
	x1 := float32(pos.X + w/2)
	y1 := float32(pos.Y + h/2)

	return append(vertices,
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: srcX0, SrcY: srcY0, ColorR: colorR, ColorG: colorG, ColorB: colorB, ColorA: colorA}, // 左上
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: srcX1, SrcY: srcY0, ColorR: colorR, ColorG: colorG, ColorB: colorB, ColorA: colorA}, // 右上
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: srcX0, SrcY: srcY1, ColorR: colorR, ColorG: colorG, ColorB: colorB, ColorA: colorA}, // 左下
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: srcX1, SrcY: srcY1, ColorR: colorR, ColorG: colorG, ColorB: colorB, ColorA: colorA}, // 右下
	)
}

// drawGround 绘制地面渐变与固定雾带
func (s *RenderSystem) drawGround(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.GroundY)
	screen.DrawImage(s.groundImage, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.GroundY)
	screen.DrawImage(s.fogRampImage, op)
}

// drawFog 绘制漂移的雾粒子（最前景层）
func (s *RenderSystem) drawFog(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		particle, ok := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		if !ok || particle.Category != components.CategoryFog {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 雾粒子用扁平化的椭圆贴图，比圆形粒子柔和得多
		scaleX := particle.Scale
		scaleY := particle.Scale * 0.35
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(pos.X-scaleX*cloudTextureWidth/2, pos.Y-scaleY*cloudTextureHeight/2)
		op.ColorScale.Scale(float32(particle.Red), float32(particle.Green), float32(particle.Blue), 1)
		op.ColorScale.ScaleAlpha(float32(particle.Alpha))
		screen.DrawImage(s.cloudTexture, op)
	}
}
