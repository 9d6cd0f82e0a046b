package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 布局常量
const (
	overlayX      = 20
	overlayY      = 20
	overlayWidth  = 320
	overlayHeight = 110
)

// overlayBackgroundColor HUD 面板背景（半透明深色）
var overlayBackgroundColor = color.RGBA{R: 10, G: 12, B: 18, A: 140}

// drawOverlay 绘制左上角的信息面板
// 显示当前 EF 级别、关键参数和按键提示
func (s *StormScene) drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(
		screen,
		overlayX, overlayY,
		overlayWidth, overlayHeight,
		overlayBackgroundColor,
		true,
	)

	params := s.intensity.Params()

	title := fmt.Sprintf("%s Tornado", params.Name)
	stats := fmt.Sprintf("Swirl %.1fx   Lift %.0fu/s   Debris %d%%",
		params.Swirl, params.Lift, int(params.DebrisRate*100))
	hint := "Press SPACE or 0-5 to change EF level"

	ebitenutil.DebugPrintAt(screen, title, overlayX+20, overlayY+20)
	ebitenutil.DebugPrintAt(screen, stats, overlayX+20, overlayY+50)
	ebitenutil.DebugPrintAt(screen, hint, overlayX+20, overlayY+75)
}
