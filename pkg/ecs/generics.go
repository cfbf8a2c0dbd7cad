package ecs

import "reflect"

// 泛型 API
//
// 对反射接口的薄封装，调用方无需手写 reflect.TypeOf 和类型断言：
//
//	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
//	ids := ecs.GetEntitiesWith2[*components.OrbitComponent, *components.PositionComponent](em)

// typeOf 返回类型参数对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加组件（泛型版本）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[typeOf[T]()] = component
	}
}

// GetComponent 获取实体的特定类型组件（泛型版本）
// 组件不存在时返回零值和 false
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, found := em.GetComponent(id, typeOf[T]())
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 检查实体是否拥有特定类型组件（泛型版本）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent 移除实体的特定类型组件（泛型版本）
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有一种组件的实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有两种组件的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有三种组件的实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}
