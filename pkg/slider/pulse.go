package slider

import (
	"math"
	"time"
)

// PulsePeriod 脉冲动画周期
const PulsePeriod = 2 * time.Second

// PulseSample 某一时刻的脉冲动画状态
type PulseSample struct {
	Scale   float64 // 0 → 1
	Opacity float64 // 1 → 0
}

// SamplePulse 计算经过 elapsed 后的动画状态
// 缩放和透明度都是线性插值，周期结束后从头开始，无限循环
func SamplePulse(elapsed, period time.Duration) PulseSample {
	if period <= 0 {
		return PulseSample{Scale: 1, Opacity: 0}
	}
	if elapsed < 0 {
		elapsed = 0
	}
	phase := float64(elapsed%period) / float64(period)
	return PulseSample{
		Scale:   lerp(0, 1, phase),
		Opacity: lerp(1, 0, phase),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Pulse 挂在滑块上的循环脉冲动画
//
// 与交互状态机和数值无关，只由宿主的帧调度器推进。
type Pulse struct {
	elapsed time.Duration
	period  time.Duration
}

// NewPulse 创建一个周期为 PulsePeriod 的脉冲
func NewPulse() *Pulse {
	return &Pulse{period: PulsePeriod}
}

// Advance 推进动画时间
// elapsed 只保留一个周期内的余数，长时间运行也不会溢出
func (p *Pulse) Advance(dt time.Duration) {
	if dt <= 0 || p.period <= 0 {
		return
	}
	p.elapsed = (p.elapsed + dt) % p.period
}

// AdvanceSeconds 以秒为单位推进（ebiten 系统使用 float64 deltaTime）
func (p *Pulse) AdvanceSeconds(seconds float64) {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return
	}
	p.Advance(time.Duration(seconds * float64(time.Second)))
}

// Elapsed 返回当前周期内已经过的时间
func (p *Pulse) Elapsed() time.Duration {
	return p.elapsed
}

// Period 返回周期
func (p *Pulse) Period() time.Duration {
	return p.period
}

// Sample 返回当前动画状态
func (p *Pulse) Sample() PulseSample {
	return SamplePulse(p.elapsed, p.period)
}
