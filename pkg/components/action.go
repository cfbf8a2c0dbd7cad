package components

import "fmt"

// LegKind 动作段类型
type LegKind int

const (
	// LegMove 线性移动到目标坐标
	LegMove LegKind = iota
	// LegScale 线性缩放到目标倍率
	LegScale
)

// ActionLeg 一段动作（顺序执行中的一步）
// 起始值在该段开始时才捕获，因此前一段的结果会成为下一段的起点
type ActionLeg struct {
	Kind     LegKind
	TargetX  float64
	TargetY  float64
	Target   float64 // LegScale 的目标倍率
	Duration float64

	Started bool
	Elapsed float64
	StartX  float64
	StartY  float64
	Start   float64
}

// MoveTo 创建移动段
func MoveTo(x, y, duration float64) ActionLeg {
	return ActionLeg{Kind: LegMove, TargetX: x, TargetY: y, Duration: duration}
}

// ScaleTo 创建缩放段
func ScaleTo(scale, duration float64) ActionLeg {
	return ActionLeg{Kind: LegScale, Target: scale, Duration: duration}
}

// Action 按顺序执行的一组动作段
type Action struct {
	// Key 动作键，空字符串表示匿名动作（可叠加）
	Key     string
	Legs    []ActionLeg
	Current int
}

// Done 是否所有段都已完成
func (a *Action) Done() bool {
	return a.Current >= len(a.Legs)
}

// ActionComponent 实体上正在运行的动作列表
type ActionComponent struct {
	Actions []*Action
}

// Run 添加一个动作；如果 key 非空且已存在同名动作，旧动作被替换
func (c *ActionComponent) Run(key string, legs ...ActionLeg) {
	action := &Action{Key: key, Legs: legs}
	if key != "" {
		for i, existing := range c.Actions {
			if existing.Key == key {
				c.Actions[i] = action
				return
			}
		}
	}
	c.Actions = append(c.Actions, action)
}

// Has 是否存在指定键的动作
func (c *ActionComponent) Has(key string) bool {
	for _, a := range c.Actions {
		if a.Key == key {
			return true
		}
	}
	return false
}

// Remove 移除指定键的动作，返回是否移除成功
func (c *ActionComponent) Remove(key string) bool {
	for i, a := range c.Actions {
		if a.Key == key {
			c.Actions = append(c.Actions[:i], c.Actions[i+1:]...)
			return true
		}
	}
	return false
}

// KnockbackActionKey 返回第 n 个叠加击退动作的键
func KnockbackActionKey(n int) string {
	return fmt.Sprintf("knockback%d", n)
}
