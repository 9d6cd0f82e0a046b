package components

// ParticleCategory 粒子类别
// 类别集合固定且很小，用带标签的枚举而不是开放式类型分发：
// 每个粒子恰好属于一个类别，渲染层级也由类别决定（与粒子池顺序无关）
type ParticleCategory int

const (
	// CategoryFunnel 漏斗粒子：沿旋转螺旋路径上升，构成龙卷风主体
	CategoryFunnel ParticleCategory = iota
	// CategoryDebris 碎片粒子：在地面附近抛出，受重力影响
	CategoryDebris
	// CategoryFog 地面雾粒子：贴地缓慢漂移
	CategoryFog
	// CategoryCloud 云层粒子：顶部宽幅云带，相位错开的正弦漂移
	CategoryCloud
)

// String 返回类别名称（用于日志和测试输出）
func (c ParticleCategory) String() string {
	switch c {
	case CategoryFunnel:
		return "Funnel"
	case CategoryDebris:
		return "Debris"
	case CategoryFog:
		return "Fog"
	case CategoryCloud:
		return "Cloud"
	default:
		return "Unknown"
	}
}

// ParticleComponent represents a single particle instance in the particle system.
// It stores all the runtime state for an individual particle, including its
// velocity, visual properties, and lifecycle information.
//
// Particles are created and managed by the ParticleSystem, which updates their
// properties each frame and removes them when their lifetime expires.
//
// This is a pure data component following ECS principles - it contains no methods.
type ParticleComponent struct {
	// Category 粒子类别，决定运动学规则和渲染层级
	Category ParticleCategory

	// Velocity (速度, 像素/秒)
	// 漏斗粒子不用速度积分，位置由螺旋参数投影得到
	VelocityX float64
	VelocityY float64

	// Lifecycle (生命周期, 秒)
	Age      float64 // 已存活时间
	Lifetime float64 // 总寿命，超过后粒子被销毁
	Loops    bool    // 为 true 时到期重置 Age 而不是销毁（漏斗/云层粒子循环使用）

	// Visual (视觉属性)
	Scale      float64 // 缩放倍数（1.0 = 贴图原始尺寸）
	Alpha      float64 // 透明度 0~1
	Red        float64 // 红色通道乘数 0~1
	Green      float64 // 绿色通道乘数 0~1
	Blue       float64 // 蓝色通道乘数 0~1
	Brightness float64 // 亮度乘数，漏斗粒子用它在暗色调和级别颜色之间插值

	// Funnel spiral state (漏斗螺旋状态)
	// 漏斗粒子的位置不由速度积分决定，而是由下面的参数投影：
	//   x = CenterX + cos(Angle) * funnelRadius(RadiusSeed, baseRadius, 高度比)
	//   y = GroundY - Altitude
	Angle          float64 // 当前旋转角（弧度）
	Altitude       float64 // 距地面高度（像素），超过漏斗顶部后回绕
	RadiusSeed     float64 // 半径随机种子 [0.2, 1.0]，决定粒子在漏斗截面内的位置
	SwirlVariation float64 // 旋转速度的个体差异系数 [0.6, 1.4]

	// Cloud / fog drift state (云雾漂移状态)
	Band  int     // 云带序号（仅云层粒子使用）
	Phase float64 // 漂移正弦相位偏移
	BaseY float64 // 漂移基准 Y 坐标（雾/云围绕它摆动）
}
