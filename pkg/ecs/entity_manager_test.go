package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBoundsComponent struct {
	X, Y, Width, Height float64
}

type testRevealComponent struct {
	Revealed bool
	Delay    float64
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

	bounds := &testBoundsComponent{X: 100, Y: 200, Width: 50, Height: 20}
	em.AddComponent(id, bounds)

	comp, found := em.GetComponent(id, reflect.TypeOf(&testBoundsComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testBoundsComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testRevealComponent{Delay: 0.8})

	reveal, ok := GetComponent[*testRevealComponent](em, id)
	if !ok {
		t.Fatal("泛型 GetComponent 应该找到组件")
	}
	if reveal.Delay != 0.8 {
		t.Errorf("Delay = %v, 期望 0.8", reveal.Delay)
	}

	// 泛型与反射版本共享同一存储
	if !em.HasComponent(id, reflect.TypeOf(&testRevealComponent{})) {
		t.Error("反射版本应该能看到泛型添加的组件")
	}

	if _, ok := GetComponent[*testBoundsComponent](em, id); ok {
		t.Error("未添加的组件不应该被找到")
	}

	RemoveComponent[*testRevealComponent](em, id)
	if HasComponent[*testRevealComponent](em, id) {
		t.Error("移除后组件不应该存在")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBoundsComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.IsAlive(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.IsAlive(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if _, ok := GetComponent[*testBoundsComponent](em, id); ok {
		t.Error("Component of removed entity should not be found")
	}

	// 重复删除是安全的空操作
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, 期望 0", em.EntityCount())
	}

	// 对已删除实体添加组件不会复活实体
	AddComponent(em, id, &testBoundsComponent{})
	if em.IsAlive(id) {
		t.Error("AddComponent 不应该复活已删除的实体")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testBoundsComponent{})
	AddComponent(em, id1, &testRevealComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testBoundsComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testRevealComponent{})

	entities := GetEntitiesWith2[*testBoundsComponent, *testRevealComponent](em)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Expected only id1, got %v", entities)
	}

	boundsEntities := GetEntitiesWith1[*testBoundsComponent](em)
	if len(boundsEntities) != 2 {
		t.Fatalf("Expected 2 entities with bounds, got %d", len(boundsEntities))
	}

	// 结果按ID升序，保证遍历顺序稳定
	if boundsEntities[0] != id1 || boundsEntities[1] != id2 {
		t.Errorf("Expected [%d %d], got %v", id1, id2, boundsEntities)
	}
}

// TestGetEntitiesWith_SortedAfterChurn 大量实体增删后结果仍按 ID 升序
func TestGetEntitiesWith_SortedAfterChurn(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 2000; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testBoundsComponent{})
		if i%3 == 0 {
			em.DestroyEntity(id)
		}
	}
	em.RemoveMarkedEntities()

	got := GetEntitiesWith1[*testBoundsComponent](em)
	if len(got) != em.EntityCount() {
		t.Fatalf("len = %d, 期望 %d", len(got), em.EntityCount())
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("结果未按升序排列: 位置 %d 处 %d >= %d", i, got[i-1], got[i])
		}
	}
}

func TestDestroyAll(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testBoundsComponent{})
	}

	em.DestroyAll()
	em.RemoveMarkedEntities()

	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, 期望 0", em.EntityCount())
	}
	if got := GetEntitiesWith1[*testBoundsComponent](em); len(got) != 0 {
		t.Errorf("Expected no entities, got %v", got)
	}
}

// BenchmarkGetEntitiesWith_Generic 测试泛型查询 1000 实体
func BenchmarkGetEntitiesWith_Generic(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 1000; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testBoundsComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testRevealComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testBoundsComponent, *testRevealComponent](em)
	}
}
