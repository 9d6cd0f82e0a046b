package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	// 获取组件
	comp, found := em.GetComponentByType(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Error("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 5, Y: 7})

	// 泛型入口应返回与 AddComponent 相同的实例
	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("GetComponent should find the component")
	}
	if pos.X != 5 || pos.Y != 7 {
		t.Errorf("Component data mismatch, expected (5, 7), got (%f, %f)", pos.X, pos.Y)
	}

	// 不存在的组件类型
	_, ok = GetComponent[*testVelocityComponent](em, id)
	if ok {
		t.Error("GetComponent should not find a component that was never added")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("HasComponent should return true for an added component")
	}
	if em.HasComponent(id, reflect.TypeOf(&testVelocityComponent{})) {
		t.Error("HasComponent should return false for a missing component")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.RemoveComponent(id, reflect.TypeOf(&testPositionComponent{}))

	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Component should be removed")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除后实体仍然存在，直到 RemoveMarkedEntities 被调用
	em.DestroyEntity(id)
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should survive until RemoveMarkedEntities is called")
	}

	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be gone after RemoveMarkedEntities")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount should be 0 after cleanup, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWithQueries(t *testing.T) {
	em := NewEntityManager()

	// 实体1: 只有位置
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})

	// 实体2: 位置 + 速度
	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id2, &testVelocityComponent{})

	withPos := GetEntitiesWith1[*testPositionComponent](em)
	if len(withPos) != 2 {
		t.Errorf("Expected 2 entities with position, got %d", len(withPos))
	}

	withBoth := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(withBoth) != 1 {
		t.Errorf("Expected 1 entity with position+velocity, got %d", len(withBoth))
	}
	if len(withBoth) == 1 && withBoth[0] != id2 {
		t.Errorf("Expected entity %d, got %d", id2, withBoth[0])
	}
}
