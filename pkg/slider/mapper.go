package slider

import "math"

// StepsFor 把指针位移换算成步数
//
// 返回 round(|displacement| / stepWidth)，总是非负，方向由调用方决定。
// stepWidth <= 0（或结果非有限）视为无法移动，返回 0。
func StepsFor(displacement, stepWidth float64) int {
	if stepWidth <= 0 || math.IsNaN(stepWidth) || math.IsInf(stepWidth, 0) {
		return 0
	}
	steps := math.Round(math.Abs(displacement) / stepWidth)
	switch {
	case math.IsNaN(steps):
		return 0
	case steps > math.MaxInt32:
		// 极大位移直接交给 Clamp 推到端点
		return math.MaxInt32
	}
	return int(steps)
}

// Clamp 把 candidate 限制在 [lo, hi] 内
func Clamp(candidate, lo, hi int) int {
	return min(max(candidate, lo), hi)
}
