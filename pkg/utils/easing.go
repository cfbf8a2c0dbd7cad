package utils

// 动作插值
//
// 所有缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 击退和缩放动作使用线性时间曲线，面板透明度使用二次缓出。

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
