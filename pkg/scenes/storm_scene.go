// Package scenes 包含风暴可视化的场景实现
package scenes

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/tornado/pkg/ecs"
	"github.com/gonewx/tornado/pkg/entities"
	"github.com/gonewx/tornado/pkg/game"
	"github.com/gonewx/tornado/pkg/systems"
)

// StormScene 是龙卷风可视化的主场景
//
// 场景拥有自己的 ECS 世界和全部系统，每帧按固定顺序执行：
// 输入 → 粒子更新 → 清理已标记实体 → 绘制。
// 强度状态由外部传入并在场景内被输入系统修改，
// 关闭时由 App 读取以持久化用户最后选择的级别。
type StormScene struct {
	entityManager  *ecs.EntityManager
	intensity      *game.IntensityState
	inputSystem    *systems.InputSystem
	particleSystem *systems.ParticleSystem
	renderSystem   *systems.RenderSystem

	// elapsed 场景累计运行时间（秒），驱动渲染动画相位
	elapsed float64

	// quitRequested 收到退出输入后置位，主循环据此终止
	quitRequested bool
}

// NewStormScene 创建风暴场景并初始化 ECS 世界
//
// 参数：
//   - intensity: 强度状态（由 App 创建，关闭时读取）
//   - rng: 粒子随机源，为 nil 时使用时间种子
func NewStormScene(intensity *game.IntensityState, rng *rand.Rand) *StormScene {
	em := ecs.NewEntityManager()

	scene := &StormScene{
		entityManager:  em,
		intensity:      intensity,
		inputSystem:    systems.NewInputSystem(),
		particleSystem: systems.NewParticleSystem(em, intensity, rng),
		renderSystem:   systems.NewRenderSystem(em, intensity),
	}

	entities.CreateStormEmitters(em)
	log.Printf("[StormScene] 场景初始化完成，起始级别 %s", intensity.Params().Name)
	return scene
}

// Update 推进一帧模拟
// deltaTime 是自上一帧经过的时间（秒）
func (s *StormScene) Update(deltaTime float64) {
	if s.quitRequested {
		return
	}

	if action := s.inputSystem.Update(s.intensity); action == systems.ActionQuit {
		s.quitRequested = true
		return
	}

	s.elapsed += deltaTime
	s.particleSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景和 HUD
func (s *StormScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen, s.elapsed)
	s.drawOverlay(screen)
}

// ShouldQuit 返回场景是否请求退出程序
// 实现 game.QuitRequester 接口
func (s *StormScene) ShouldQuit() bool {
	return s.quitRequested
}
