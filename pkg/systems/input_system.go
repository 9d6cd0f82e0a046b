package systems

import (
	"log"

	"github.com/gonewx/tornado/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action 输入映射出的离散动作
type Action int

const (
	// ActionNone 无动作（未映射的按键一律归入此类，静默忽略）
	ActionNone Action = iota
	// ActionCycle 循环切换 EF 级别（SPACE / ENTER）
	ActionCycle
	// ActionJump 直接跳转到某个 EF 级别（数字键 0~5）
	ActionJump
	// ActionQuit 请求退出程序（ESC）
	ActionQuit
)

// InputSystem 处理键盘输入，把按键事件映射为强度状态转换或退出请求
// 除映射表外不持有任何状态
type InputSystem struct {
	keys []ebiten.Key // 复用的按键缓冲，避免每帧分配
}

// NewInputSystem 创建一个新的输入系统
func NewInputSystem() *InputSystem {
	return &InputSystem{
		keys: make([]ebiten.Key, 0, 8),
	}
}

// MapKey 把单个按键映射为动作
// 返回动作和跳转目标级别（仅 ActionJump 时有意义）。
// 映射是纯函数，便于在没有键盘事件源的情况下测试。
func MapKey(key ebiten.Key) (Action, int) {
	switch key {
	case ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return ActionCycle, 0
	case ebiten.KeyEscape:
		return ActionQuit, 0
	}

	// 主键盘数字键 0~5
	if key >= ebiten.Key0 && key <= ebiten.Key5 {
		return ActionJump, int(key - ebiten.Key0)
	}

	// 小键盘数字键 0~5
	if key >= ebiten.KeyNumpad0 && key <= ebiten.KeyNumpad5 {
		return ActionJump, int(key - ebiten.KeyNumpad0)
	}

	return ActionNone, 0
}

// Update 处理当前帧的按键事件并应用到强度状态
// 每次调用消费一帧内刚按下的所有按键，返回生效的动作
// （退出请求优先于级别切换）
func (s *InputSystem) Update(intensity *game.IntensityState) Action {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])

	result := ActionNone
	for _, key := range s.keys {
		action, level := MapKey(key)
		switch action {
		case ActionQuit:
			log.Printf("[InputSystem] 收到退出请求 (ESC)")
			return ActionQuit
		case ActionCycle:
			intensity.Cycle()
			result = ActionCycle
		case ActionJump:
			intensity.Jump(level)
			result = ActionJump
		}
	}
	return result
}
