package entities

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/shaperave/pkg/config"
)

// Placement 单个圆形的初始布局
type Placement struct {
	X      float64
	Y      float64
	Radius float64
}

// Bounds 场景尺寸
type Bounds struct {
	Width  float64
	Height float64
}

// SizeRange 半径范围
type SizeRange struct {
	Min float64
	Max float64
}

// PlaceElements 随机布局圆形并做分离松弛
//
// 每个圆心在场景内缩 sizes.Max 的区域中均匀随机，半径在 sizes 内均匀随机。
// 随后执行 count/3 轮 Separate。这是廉价的松弛而非求解器，
// 有限轮次后残留的重叠是可以接受的。
//
// 参数:
//   - count: 圆形数量
//   - bounds: 场景尺寸
//   - sizes: 半径范围
//   - rng: 随机源
//
// 返回:
//   - []Placement: 长度为 count 的布局
func PlaceElements(count int, bounds Bounds, sizes SizeRange, rng *rand.Rand) []Placement {
	if count <= 0 {
		return nil
	}

	placements := make([]Placement, count)
	for i := range placements {
		placements[i] = Placement{
			X:      randomBetween(rng, sizes.Max, bounds.Width-sizes.Max),
			Y:      randomBetween(rng, sizes.Max, bounds.Height-sizes.Max),
			Radius: randomBetween(rng, sizes.Min, sizes.Max),
		}
	}

	passes := count / 3
	for i := 0; i < passes; i++ {
		Separate(placements, bounds, sizes.Max)
	}

	log.Printf("[Layout] Placed %d circles with %d separation passes", count, passes)
	return placements
}

// Separate 对所有无序圆对执行一轮分离
//
// 当两圆心距离小于 r1+r2+SeparationMargin 时，沿连线方向各推开重叠量的一半。
// 圆心完全重合时沿水平方向推开固定的 SeparationNudge。
// 每次推开后圆心被限制在 [inset, bound-inset] 内。
func Separate(placements []Placement, bounds Bounds, inset float64) {
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a := &placements[i]
			b := &placements[j]

			dx := a.X - b.X
			dy := a.Y - b.Y
			dist := math.Hypot(dx, dy)
			want := a.Radius + b.Radius + config.SeparationMargin
			if dist >= want {
				continue
			}

			if dist == 0 {
				a.X += config.SeparationNudge / 2
				b.X -= config.SeparationNudge / 2
			} else {
				percent := (want - dist) / dist / 2
				a.X += dx * percent
				a.Y += dy * percent
				b.X -= dx * percent
				b.Y -= dy * percent
			}

			clampPlacement(a, bounds, inset)
			clampPlacement(b, bounds, inset)
		}
	}
}

func clampPlacement(p *Placement, bounds Bounds, inset float64) {
	p.X = math.Max(inset, math.Min(bounds.Width-inset, p.X))
	p.Y = math.Max(inset, math.Min(bounds.Height-inset, p.Y))
}

func randomBetween(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
