package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a presentation scene (e.g., the storm view).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// QuitRequester 是一个可选接口，场景通过它向主循环上报退出请求
//
// 实现此接口的场景在收到退出输入（ESC）后，ShouldQuit 返回 true，
// 主循环据此结束 RunGame 并走统一的关闭路径（保存设置、释放图形上下文）
type QuitRequester interface {
	// ShouldQuit 返回场景是否请求退出程序
	ShouldQuit() bool
}
