package components

// PulseComponent 标记需要推进脉冲动画的滑动条
type PulseComponent struct {
	// Paused 暂停时脉冲停在当前帧
	Paused bool
	// TimeScale 动画速度倍率，0 视为 1
	TimeScale float64
}
