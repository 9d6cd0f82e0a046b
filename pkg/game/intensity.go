package game

import (
	"log"

	"github.com/gonewx/tornado/pkg/config"
)

// IntensityState 持有当前的 EF 级别
//
// 级别是一个 [0,5] 区间内的整数，只能通过 Cycle（模 6 循环）
// 或 Jump（越界静默忽略）改变。状态对象被显式传入各系统，
// 不使用包级全局变量，便于在没有图形环境的情况下做单元测试。
type IntensityState struct {
	level int
}

// NewIntensityState 创建强度状态，初始级别会被限制到合法范围
func NewIntensityState(level int) *IntensityState {
	s := &IntensityState{level: config.DefaultLevel}
	if level >= config.MinLevel && level <= config.MaxLevel {
		s.level = level
	}
	return s
}

// Current 返回当前 EF 级别
func (s *IntensityState) Current() int {
	return s.level
}

// Cycle 切换到下一个级别，EF5 之后回到 EF0
func (s *IntensityState) Cycle() {
	s.level = (s.level + 1) % config.LevelCount
	log.Printf("[Intensity] 切换到 %s", s.Params().Name)
}

// Jump 直接跳到级别 n
// n 超出 [0,5] 时静默忽略（可视化工具对非法输入的容错优先于严格校验）
func (s *IntensityState) Jump(n int) {
	if n < config.MinLevel || n > config.MaxLevel {
		return
	}
	s.level = n
	log.Printf("[Intensity] 跳转到 %s", s.Params().Name)
}

// Params 返回当前级别的视觉参数
func (s *IntensityState) Params() config.EFLevelParams {
	return config.EFLevels[s.level]
}
