package systems

import (
	"log"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/ecs"
	"github.com/gonewx/shaperave/pkg/game"
	"github.com/gonewx/shaperave/pkg/types"
)

// BindParameters 让参数变化立即作用到场景中已有的圆形
//
// 轨道速度和混合模式是"追溯生效"的参数：写入后所有圆形立刻更新。
// 其余参数只在下一次交互时读取，不需要推送。
//
// 返回:
//   - func(): 取消绑定（场景销毁时调用）
func BindParameters(em *ecs.EntityManager, params *game.ParameterStore, orbit *OrbitSystem) func() {
	return params.Subscribe(func(attr types.Attribute) {
		switch attr {
		case types.AttrRotationSpeed:
			orbit.ApplyRotationSpeed(params.RotationSpeed())
		case types.AttrBlendMode:
			ApplyBlendMode(em, params.BlendMode())
		}
	})
}

// ApplyBlendMode 把遮罩混合模式写入所有圆形
func ApplyBlendMode(em *ecs.EntityManager, mode types.BlendMode) {
	entities := ecs.GetEntitiesWith1[*components.CircleComponent](em)
	for _, id := range entities {
		circle, _ := ecs.GetComponent[*components.CircleComponent](em, id)
		circle.BlendMode = mode
	}
	log.Printf("[ParameterSync] Blend mode %v applied to %d circles", mode, len(entities))
}
