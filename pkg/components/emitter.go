package components

// EmitterComponent represents a particle emitter that spawns and manages
// particles of a single category. The emitter tracks its own age and spawn
// timing; the ParticleSystem processes emitters each frame to spawn new
// particles up to the capacity implied by the current intensity level.
//
// This is a pure data component following ECS principles - it contains no methods.
type EmitterComponent struct {
	// Category 该发射器生成的粒子类别
	Category ParticleCategory

	// Active 是否正在生成粒子
	Active bool

	// Age 发射器已运行时间（秒）
	Age float64

	// NextSpawnTime 下一次按速率生成粒子的时间点（以发射器年龄计）
	// 仅用于按固定速率生成的类别（漏斗、雾、云）；
	// 碎片按概率生成，不使用该字段
	NextSpawnTime float64

	// TotalLaunched 累计生成的粒子数（用于测试和调试日志）
	TotalLaunched int
}
