package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/gonewx/tornado/pkg/components"
	"github.com/gonewx/tornado/pkg/config"
	"github.com/gonewx/tornado/pkg/ecs"
	"github.com/gonewx/tornado/pkg/game"
	"github.com/gonewx/tornado/pkg/utils"
)

// ParticleSystem manages all particle emitters and individual particles.
// It handles spawning particles from emitters, updating their kinematics each
// frame (position, age, alpha), and destroying particles when their lifetime
// expires or they leave the visible bounds.
//
// The system processes particles in two phases:
//  1. Update all emitters (spawn new particles up to the capacity implied by
//     the current intensity level, retire the excess after a level drop)
//  2. Update all particles (integrate velocity, spiral projection, fading)
//
// Follows ECS zero-coupling principle: communicates only through EntityManager.
type ParticleSystem struct {
	EntityManager *ecs.EntityManager
	Intensity     *game.IntensityState

	rng *rand.Rand
}

// 重力加速度（像素/秒²），只作用于碎片粒子
const debrisGravity = 220.0

// 漏斗粒子的生成速率相对容量的倍数
// 1.5 表示空池在约 2/3 秒内涨满，级别切换后的过渡肉眼可见但不突兀
const funnelFillRate = 1.5

// 雾粒子稳态寿命范围（秒）
const (
	fogLifetimeMin = 4.0
	fogLifetimeMax = 9.0
)

// NewParticleSystem creates a new ParticleSystem instance.
// rng 为 nil 时使用时间种子；测试传入固定种子即可复现生成序列。
func NewParticleSystem(em *ecs.EntityManager, intensity *game.IntensityState, rng *rand.Rand) *ParticleSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ParticleSystem{
		EntityManager: em,
		Intensity:     intensity,
		rng:           rng,
	}
}

// FunnelRadius 计算漏斗粒子在指定高度处的旋转半径
//
// seed 决定粒子在漏斗截面内的相对位置，heightRatio ∈ [0,1] 是距地高度占
// 漏斗总高的比例。半径随高度按幂曲线收窄，形成上宽下窄的漏斗颈
func FunnelRadius(seed, baseRadius, heightRatio float64) float64 {
	neckRatio := 0.05 + 0.35*(1-seed)
	width := baseRadius * math.Pow(1-heightRatio, 0.4+neckRatio)
	return width * (0.6 + 0.4*seed)
}

// Update processes all emitters and particles for the current frame.
// dt is the delta time in seconds since the last frame.
func (ps *ParticleSystem) Update(dt float64) {
	ps.updateEmitters(dt)
	ps.updateParticles(dt)
}

// CategoryCounts 返回当前各类别的存活粒子数量
// 供发射器限流和测试断言使用
func (ps *ParticleSystem) CategoryCounts() map[components.ParticleCategory]int {
	counts := make(map[components.ParticleCategory]int)
	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](ps.EntityManager)
	for _, id := range entities {
		particle, ok := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		if !ok {
			continue
		}
		counts[particle.Category]++
	}
	return counts
}

// capacityFor 返回类别在指定级别下的容量上限
func capacityFor(category components.ParticleCategory, level int) int {
	switch category {
	case components.CategoryFunnel:
		return config.FunnelCapacity(level)
	case components.CategoryDebris:
		return config.DebrisCapacity(level)
	case components.CategoryFog:
		return config.FogCapacity(level)
	case components.CategoryCloud:
		return config.CloudCapacity(level)
	default:
		return 0
	}
}

// updateEmitters processes all emitter entities, spawning new particles
// and retiring the excess when the intensity level has dropped.
func (ps *ParticleSystem) updateEmitters(dt float64) {
	emitterEntities := ecs.GetEntitiesWith1[*components.EmitterComponent](ps.EntityManager)
	if len(emitterEntities) == 0 {
		return
	}

	level := ps.Intensity.Current()
	params := ps.Intensity.Params()
	counts := ps.CategoryCounts()

	for _, emitterID := range emitterEntities {
		emitter, ok := ecs.GetComponent[*components.EmitterComponent](ps.EntityManager, emitterID)
		if !ok || !emitter.Active {
			continue
		}

		emitter.Age += dt
		capacity := capacityFor(emitter.Category, level)
		count := counts[emitter.Category]

		// 级别下降后容量变小，裁掉超出的粒子
		if count > capacity {
			ps.retireExcess(emitter.Category, count-capacity)
			count = capacity
		}

		switch emitter.Category {
		case components.CategoryFunnel:
			// 按速率补满：漏斗粒子循环使用，只在级别上升后需要补充
			rate := float64(capacity) * funnelFillRate
			for emitter.Age >= emitter.NextSpawnTime && count < capacity {
				ps.spawnFunnel(params.BaseRadius)
				emitter.TotalLaunched++
				count++
				emitter.NextSpawnTime += 1.0 / rate
			}
			if emitter.NextSpawnTime < emitter.Age {
				// 池满时不积欠生成额度
				emitter.NextSpawnTime = emitter.Age
			}

		case components.CategoryDebris:
			// 每帧按级别概率掷一次（容量满时静默跳过）
			if count < capacity && ps.rng.Float64() < params.DebrisRate {
				ps.spawnDebris()
				emitter.TotalLaunched++
			}

		case components.CategoryFog:
			// 稳态速率 ≈ 容量 / 平均寿命，雾粒子到期后自然轮换
			rate := float64(capacity) / ((fogLifetimeMin + fogLifetimeMax) / 2)
			for emitter.Age >= emitter.NextSpawnTime {
				if count < capacity {
					ps.spawnFog()
					emitter.TotalLaunched++
					count++
				}
				emitter.NextSpawnTime += 1.0 / rate
			}

		case components.CategoryCloud:
			// 云带常驻：缺多少立即补多少
			for count < capacity {
				ps.spawnCloud(count)
				emitter.TotalLaunched++
				count++
			}
		}

		counts[emitter.Category] = count
	}
}

// retireExcess 标记销毁 n 个指定类别的粒子
// 云带优先裁掉序号最大的（最顶部的附加云带），其他类别不保证顺序
func (ps *ParticleSystem) retireExcess(category components.ParticleCategory, n int) {
	if n <= 0 {
		return
	}
	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](ps.EntityManager)

	type candidate struct {
		id   ecs.EntityID
		band int
	}
	candidates := make([]candidate, 0, n)
	for _, id := range entities {
		particle, ok := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		if !ok || particle.Category != category {
			continue
		}
		candidates = append(candidates, candidate{id: id, band: particle.Band})
	}

	if category == components.CategoryCloud {
		// 简单选择：每轮挑出剩余云带中序号最大的
		for i := 0; i < n && len(candidates) > 0; i++ {
			maxIdx := 0
			for j, c := range candidates {
				if c.band > candidates[maxIdx].band {
					maxIdx = j
				}
			}
			ps.EntityManager.DestroyEntity(candidates[maxIdx].id)
			candidates = append(candidates[:maxIdx], candidates[maxIdx+1:]...)
		}
		return
	}

	for i := 0; i < n && i < len(candidates); i++ {
		ps.EntityManager.DestroyEntity(candidates[i].id)
	}
}

// updateParticles 推进所有粒子的运动学并淘汰过期粒子
func (ps *ParticleSystem) updateParticles(dt float64) {
	params := ps.Intensity.Params()
	entities := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](ps.EntityManager)

	for _, id := range entities {
		particle, hasParticle := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		pos, hasPos := ecs.GetComponent[*components.PositionComponent](ps.EntityManager, id)
		if !hasParticle || !hasPos {
			continue
		}

		particle.Age += dt
		if particle.Age >= particle.Lifetime {
			if particle.Loops {
				particle.Age = 0
			} else {
				ps.EntityManager.DestroyEntity(id)
				continue
			}
		}

		switch particle.Category {
		case components.CategoryFunnel:
			ps.updateFunnelParticle(particle, pos, dt, params)
		case components.CategoryDebris:
			ps.updateDebrisParticle(id, particle, pos, dt)
		case components.CategoryFog:
			ps.updateFogParticle(particle, pos, dt)
		case components.CategoryCloud:
			ps.updateCloudParticle(particle, pos)
		}
	}
}

// updateFunnelParticle 沿旋转螺旋推进漏斗粒子并投影到屏幕坐标
func (ps *ParticleSystem) updateFunnelParticle(particle *components.ParticleComponent, pos *components.PositionComponent, dt float64, params config.EFLevelParams) {
	particle.Angle += params.Swirl * particle.SwirlVariation * dt
	particle.Altitude += params.Lift * (0.4 + 0.6*particle.RadiusSeed) * dt

	// 到达漏斗顶部后回到底部并重新随机化（边界重生）
	if particle.Altitude > config.FunnelHeight {
		particle.Altitude -= config.FunnelHeight
		particle.Angle = ps.rng.Float64() * 2 * math.Pi
		particle.RadiusSeed = 0.2 + 0.8*ps.rng.Float64()
		particle.Brightness = 0.5 + 0.5*ps.rng.Float64()
		particle.Alpha = 220.0 / 255.0 * particle.Brightness
	}

	heightRatio := particle.Altitude / config.FunnelHeight
	radius := FunnelRadius(particle.RadiusSeed, params.BaseRadius, heightRatio)
	pos.X = config.CenterX + math.Cos(particle.Angle)*radius
	pos.Y = config.GroundY - particle.Altitude

	// 越靠近顶部粒子越小
	particle.Scale = (4*(1-heightRatio) + 1) / float64(discTextureRadius)
}

// updateDebrisParticle 对碎片施加重力并在落出屏幕或到期后淘汰
func (ps *ParticleSystem) updateDebrisParticle(id ecs.EntityID, particle *components.ParticleComponent, pos *components.PositionComponent, dt float64) {
	particle.VelocityY += debrisGravity * dt
	pos.X += particle.VelocityX * dt
	pos.Y += particle.VelocityY * dt

	remaining := particle.Lifetime - particle.Age

	// 剩余寿命越短碎片越暗，尺寸越大（贴近地面的翻滚感）
	alpha := math.Min(1.0, remaining+0.3)
	if alpha < 40.0/255.0 {
		alpha = 40.0 / 255.0
	}
	particle.Alpha = alpha
	size := 4 - remaining*2
	if size < 2 {
		size = 2
	}
	particle.Scale = size / float64(discTextureRadius)

	if pos.Y > config.GameWindowHeight || pos.X < -50 || pos.X > config.GameWindowWidth+50 {
		ps.EntityManager.DestroyEntity(id)
	}
}

// updateFogParticle 缓慢漂移雾粒子并按寿命包络淡入淡出
func (ps *ParticleSystem) updateFogParticle(particle *components.ParticleComponent, pos *components.PositionComponent, dt float64) {
	pos.X += particle.VelocityX * dt
	pos.Y = particle.BaseY + math.Sin(particle.Phase+particle.Age*0.5)*6

	// 横向回绕，雾带保持连续
	if pos.X < -120 {
		pos.X += config.GameWindowWidth + 240
	} else if pos.X > config.GameWindowWidth+120 {
		pos.X -= config.GameWindowWidth + 240
	}

	// 对称包络：生命周期两端透明，中段最浓
	t := particle.Age / particle.Lifetime
	if t > 0.5 {
		t = 1 - t
	}
	particle.Alpha = 0.35 * utils.EaseOutQuad(t*2)
}

// updateCloudParticle 按相位错开的正弦轨迹漂移云带
func (ps *ParticleSystem) updateCloudParticle(particle *components.ParticleComponent, pos *components.PositionComponent) {
	phase := particle.Phase + particle.Age*(0.2+float64(particle.Band)*0.03)
	pos.X = config.CenterX + math.Sin(phase)*40
	pos.Y = particle.BaseY + math.Cos(phase*0.7)*12
}

// spawnFunnel 在漏斗内随机高度生成一个螺旋粒子
func (ps *ParticleSystem) spawnFunnel(baseRadius float64) {
	em := ps.EntityManager
	id := em.CreateEntity()

	brightness := 0.5 + 0.5*ps.rng.Float64()
	particle := &components.ParticleComponent{
		Category:       components.CategoryFunnel,
		Age:            0,
		Lifetime:       math.MaxFloat64, // 循环使用，不按寿命淘汰
		Loops:          true,
		Angle:          ps.rng.Float64() * 2 * math.Pi,
		Altitude:       ps.rng.Float64() * config.FunnelHeight,
		RadiusSeed:     0.2 + 0.8*ps.rng.Float64(),
		SwirlVariation: 0.6 + 0.8*ps.rng.Float64(),
		Brightness:     brightness,
		Alpha:          220.0 / 255.0 * brightness,
		Scale:          1,
	}

	heightRatio := particle.Altitude / config.FunnelHeight
	radius := FunnelRadius(particle.RadiusSeed, baseRadius, heightRatio)
	pos := &components.PositionComponent{
		X: config.CenterX + math.Cos(particle.Angle)*radius,
		Y: config.GroundY - particle.Altitude,
	}

	em.AddComponent(id, particle)
	em.AddComponent(id, pos)
}

// spawnDebris 在漏斗底部附近抛出一个碎片
func (ps *ParticleSystem) spawnDebris() {
	em := ps.EntityManager
	id := em.CreateEntity()

	angle := ps.rng.Float64() * 2 * math.Pi
	speed := 80 + 140*ps.rng.Float64()

	particle := &components.ParticleComponent{
		Category:  components.CategoryDebris,
		Age:       0,
		Lifetime:  0.6 + 0.8*ps.rng.Float64(),
		VelocityX: math.Cos(angle) * speed,
		VelocityY: -(30 + 130*ps.rng.Float64()),
		Alpha:     1,
		Scale:     2 / float64(discTextureRadius),
		Red:       float64(config.DebrisColor.R) / 255,
		Green:     float64(config.DebrisColor.G) / 255,
		Blue:      float64(config.DebrisColor.B) / 255,
	}
	pos := &components.PositionComponent{
		X: config.CenterX + math.Cos(angle)*(10+70*ps.rng.Float64()),
		Y: config.GroundY - (5 + 15*ps.rng.Float64()),
	}

	em.AddComponent(id, particle)
	em.AddComponent(id, pos)
}

// spawnFog 在地面附近生成一缕雾
func (ps *ParticleSystem) spawnFog() {
	em := ps.EntityManager
	id := em.CreateEntity()

	baseY := config.GroundY - 30 + 70*ps.rng.Float64()
	drift := 10 + 20*ps.rng.Float64()
	if ps.rng.Float64() < 0.5 {
		drift = -drift
	}

	particle := &components.ParticleComponent{
		Category:  components.CategoryFog,
		Age:       0,
		Lifetime:  fogLifetimeMin + (fogLifetimeMax-fogLifetimeMin)*ps.rng.Float64(),
		VelocityX: drift,
		Alpha:     0,
		Scale:     0.5 + 0.6*ps.rng.Float64(),
		Phase:     ps.rng.Float64() * 2 * math.Pi,
		BaseY:     baseY,
		Red:       float64(config.FogColor.R) / 255,
		Green:     float64(config.FogColor.G) / 255,
		Blue:      float64(config.FogColor.B) / 255,
	}
	pos := &components.PositionComponent{
		X: ps.rng.Float64() * config.GameWindowWidth,
		Y: baseY,
	}

	em.AddComponent(id, particle)
	em.AddComponent(id, pos)
}

// spawnCloud 生成一条常驻云带
// band 决定云带的高度、颜色和漂移相位差
func (ps *ParticleSystem) spawnCloud(band int) {
	em := ps.EntityManager
	id := em.CreateEntity()

	baseY := 80 + float64(band)*18
	particle := &components.ParticleComponent{
		Category: components.CategoryCloud,
		Age:      0,
		Lifetime: math.MaxFloat64, // 常驻
		Loops:    true,
		Band:     band,
		Phase:    ps.rng.Float64() * 2 * math.Pi,
		BaseY:    baseY,
		Alpha:    (30 + float64(band)*8) / 255,
		Scale:    1,
		Red:      math.Min(1, (200+float64(band)*3)/255),
		Green:    math.Min(1, (210+float64(band)*4)/255),
		Blue:     math.Min(1, (220+float64(band)*5)/255),
	}
	pos := &components.PositionComponent{
		X: config.CenterX,
		Y: baseY,
	}

	em.AddComponent(id, particle)
	em.AddComponent(id, pos)
}
