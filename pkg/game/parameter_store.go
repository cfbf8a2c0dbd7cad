package game

import (
	"log"
	"math"

	"github.com/gonewx/shaperave/pkg/config"
	"github.com/gonewx/shaperave/pkg/types"
)

// ParameterListener 参数变化回调
type ParameterListener func(attr types.Attribute)

// ParameterStore 场景可调参数存储
//
// 所有写入都经过夹取：超出范围的值贴到边界，NaN 按下限处理，
// 任何写入都不会返回错误。
//
// 订阅者在每次写入后收到通知（即使夹取后值没有变化）。
// 轨道速度和混合模式需要立即作用到所有圆形，由订阅者负责推送。
type ParameterStore struct {
	maxCircles          int
	propagationQuantity int
	rotationSpeed       float64
	knockbackDistance   float64
	knockbackTime       float64
	resizeVariation     float64
	blendMode           types.BlendMode

	listeners    []listenerEntry
	nextListener int
}

type listenerEntry struct {
	id int
	fn ParameterListener
}

// NewParameterStore 创建使用默认值的参数存储
func NewParameterStore() *ParameterStore {
	return &ParameterStore{
		maxCircles:          config.DefaultMaxCircles,
		propagationQuantity: config.DefaultPropagationQuantity,
		rotationSpeed:       config.DefaultRotationSpeed,
		knockbackDistance:   config.DefaultKnockbackDistance,
		knockbackTime:       config.DefaultKnockbackTime,
		resizeVariation:     config.DefaultResizeVariation,
		blendMode:           types.BlendScreen,
	}
}

// NewParameterStoreFromConfig 用启动配置初始化参数存储
// 配置中的值同样经过夹取
func NewParameterStoreFromConfig(cfg *config.SceneConfig) *ParameterStore {
	ps := NewParameterStore()
	if cfg == nil {
		return ps
	}
	// 圆形数量必须先设置，传播数量的上限依赖它
	ps.SetMaxCircles(cfg.MaxCircles)
	ps.SetPropagationQuantity(cfg.PropagationQuantity)
	ps.SetRotationSpeed(cfg.RotationSpeed)
	ps.SetKnockbackDistance(cfg.KnockbackDistance)
	ps.SetKnockbackTime(cfg.KnockbackTime)
	ps.SetResizeVariation(cfg.ResizeVariation)
	ps.SetBlendMode(cfg.BlendMode)

	log.Printf("[ParameterStore] Initialized: circles=%d quantity=%d speed=%.2f distance=%.2f time=%.2f resize=%.2f blend=%v",
		ps.maxCircles, ps.propagationQuantity, ps.rotationSpeed, ps.knockbackDistance,
		ps.knockbackTime, ps.resizeVariation, ps.blendMode)
	return ps
}

// Subscribe 注册参数变化回调
// 返回取消订阅函数（场景重建时旧场景用它解除绑定）
func (ps *ParameterStore) Subscribe(listener ParameterListener) func() {
	ps.nextListener++
	id := ps.nextListener
	ps.listeners = append(ps.listeners, listenerEntry{id: id, fn: listener})
	return func() {
		for i, l := range ps.listeners {
			if l.id == id {
				ps.listeners = append(ps.listeners[:i], ps.listeners[i+1:]...)
				return
			}
		}
	}
}

func (ps *ParameterStore) notify(attr types.Attribute) {
	for _, l := range ps.listeners {
		l.fn(attr)
	}
}

// MaxCircles 返回圆形数量
func (ps *ParameterStore) MaxCircles() int { return ps.maxCircles }

// PropagationQuantity 返回每批传播数量
func (ps *ParameterStore) PropagationQuantity() int { return ps.propagationQuantity }

// RotationSpeed 返回轨道速度倍率
func (ps *ParameterStore) RotationSpeed() float64 { return ps.rotationSpeed }

// KnockbackDistance 返回击退距离
func (ps *ParameterStore) KnockbackDistance() float64 { return ps.knockbackDistance }

// KnockbackTime 返回击退单程时长（秒）
func (ps *ParameterStore) KnockbackTime() float64 { return ps.knockbackTime }

// ResizeVariation 返回缩放峰值
func (ps *ParameterStore) ResizeVariation() float64 { return ps.resizeVariation }

// BlendMode 返回遮罩混合模式
func (ps *ParameterStore) BlendMode() types.BlendMode { return ps.blendMode }

// SetMaxCircles 设置圆形数量，范围 [1, 60]
//
// 圆形数量只在场景创建时读取，启动后修改不会增减圆形。
// 传播数量会被重新夹取，保证不超过圆形数量。
func (ps *ParameterStore) SetMaxCircles(n int) {
	ps.maxCircles = clampInt(n, config.MinCircles, config.MaxCirclesLimit)
	if ps.propagationQuantity > ps.maxCircles {
		ps.propagationQuantity = ps.maxCircles
	}
	ps.notify(types.AttrMaxCircles)
}

// SetPropagationQuantity 设置每批传播数量，范围 [1, MaxCircles]
func (ps *ParameterStore) SetPropagationQuantity(n int) {
	ps.propagationQuantity = clampInt(n, config.MinPropagationQuantity, ps.maxCircles)
	ps.notify(types.AttrPropagationQuantity)
}

// SetRotationSpeed 设置轨道速度倍率，范围 [0, 10]
func (ps *ParameterStore) SetRotationSpeed(v float64) {
	ps.rotationSpeed = clampFloat(v, 0, config.MaxRotationSpeed)
	ps.notify(types.AttrRotationSpeed)
}

// SetKnockbackDistance 设置击退距离，范围 [0, 60]
func (ps *ParameterStore) SetKnockbackDistance(v float64) {
	ps.knockbackDistance = clampFloat(v, 0, config.MaxKnockbackDistance)
	ps.notify(types.AttrKnockbackDistance)
}

// SetKnockbackTime 设置击退单程时长，范围 [0, 3] 秒
func (ps *ParameterStore) SetKnockbackTime(v float64) {
	ps.knockbackTime = clampFloat(v, 0, config.MaxKnockbackTime)
	ps.notify(types.AttrKnockbackTime)
}

// SetResizeVariation 设置缩放峰值，范围 [0, 1.5]
func (ps *ParameterStore) SetResizeVariation(v float64) {
	ps.resizeVariation = clampFloat(v, 0, config.MaxResizeVariation)
	ps.notify(types.AttrResizeVariation)
}

// SetBlendMode 设置遮罩混合模式
// 超出枚举范围的值贴到最近的合法模式
func (ps *ParameterStore) SetBlendMode(mode types.BlendMode) {
	ps.blendMode = types.BlendMode(clampInt(int(mode), int(types.BlendAlpha), int(types.BlendReplace)))
	ps.notify(types.AttrBlendMode)
}

// UpdateAttribute 以浮点数写入参数（面板滑块使用）
//
// 整数参数按截断取整（3.9 -> 3），与滑块回调的语义一致。
func (ps *ParameterStore) UpdateAttribute(attr types.Attribute, value float64) {
	switch attr {
	case types.AttrMaxCircles:
		ps.SetMaxCircles(truncate(value))
	case types.AttrPropagationQuantity:
		ps.SetPropagationQuantity(truncate(value))
	case types.AttrRotationSpeed:
		ps.SetRotationSpeed(value)
	case types.AttrKnockbackDistance:
		ps.SetKnockbackDistance(value)
	case types.AttrKnockbackTime:
		ps.SetKnockbackTime(value)
	case types.AttrResizeVariation:
		ps.SetResizeVariation(value)
	case types.AttrBlendMode:
		ps.SetBlendMode(types.BlendMode(truncate(value)))
	default:
		log.Printf("[ParameterStore] Warning: unknown attribute %d", attr)
	}
}

// Value 以浮点数读取参数
func (ps *ParameterStore) Value(attr types.Attribute) float64 {
	switch attr {
	case types.AttrMaxCircles:
		return float64(ps.maxCircles)
	case types.AttrPropagationQuantity:
		return float64(ps.propagationQuantity)
	case types.AttrRotationSpeed:
		return ps.rotationSpeed
	case types.AttrKnockbackDistance:
		return ps.knockbackDistance
	case types.AttrKnockbackTime:
		return ps.knockbackTime
	case types.AttrResizeVariation:
		return ps.resizeVariation
	case types.AttrBlendMode:
		return float64(ps.blendMode)
	default:
		return 0
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncate 向零取整，并把超出 int 表示范围的值先夹到安全区间
func truncate(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}
