package components

// PositionComponent 实体的屏幕坐标位置
// 这是一个纯数据组件，遵循 ECS 原则，不包含任何方法
type PositionComponent struct {
	X float64 // 屏幕 X 坐标（像素）
	Y float64 // 屏幕 Y 坐标（像素）
}
