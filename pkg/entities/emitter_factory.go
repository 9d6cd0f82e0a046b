package entities

import (
	"log"

	"github.com/gonewx/tornado/pkg/components"
	"github.com/gonewx/tornado/pkg/ecs"
)

// CreateStormEmitters 创建风暴场景的四个粒子发射器实体
// 每个粒子类别（漏斗、碎片、雾、云）各一个，生成参数由
// ParticleSystem 根据当前 EF 级别在每帧计算，发射器本身只记录
// 类别和生成节奏状态。
//
// 返回创建的发射器实体 ID 列表（按类别顺序）。
func CreateStormEmitters(em *ecs.EntityManager) []ecs.EntityID {
	categories := []components.ParticleCategory{
		components.CategoryFunnel,
		components.CategoryDebris,
		components.CategoryFog,
		components.CategoryCloud,
	}

	ids := make([]ecs.EntityID, 0, len(categories))
	for _, category := range categories {
		id := em.CreateEntity()
		em.AddComponent(id, &components.EmitterComponent{
			Category: category,
			Active:   true,
		})
		ids = append(ids, id)
	}

	log.Printf("[Entities] 创建 %d 个风暴发射器", len(ids))
	return ids
}
