package feedback

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate beep speaker 的采样率
const DefaultSampleRate = beep.SampleRate(48000)

// BeepClicker 通过 beep speaker 播放咔哒声
// 所有咔哒声混入同一个 Mixer，speaker 只初始化一次
type BeepClicker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
}

// NewBeepClicker 创建播放器，调用 Init 之前 Click 不发声
func NewBeepClicker(volume float64) *BeepClicker {
	return &BeepClicker{
		rate:    DefaultSampleRate,
		mixer:   &beep.Mixer{},
		volume:  clampUnit(volume),
		enabled: true,
	}
}

// Init 打开音频设备
func (b *BeepClicker) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(b.rate, b.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	log.Printf("[BeepClicker] Speaker initialized at %d Hz", b.rate)
	return nil
}

// SetEnabled 打开或关闭提示音
func (b *BeepClicker) SetEnabled(enabled bool) {
	b.mu.Lock()
	b.enabled = enabled
	b.mu.Unlock()
}

// SetVolume 设置音量 0.0 ~ 1.0
func (b *BeepClicker) SetVolume(volume float64) {
	b.mu.Lock()
	b.volume = clampUnit(volume)
	b.mu.Unlock()
}

// Click 播放一次咔哒声
// 返回 false 表示未初始化、已禁用或音量为 0
func (b *BeepClicker) Click() bool {
	b.mu.Lock()
	if !b.initialized || !b.enabled || b.volume == 0 {
		b.mu.Unlock()
		return false
	}
	s := withVolume(NewClickStreamer(b.rate), b.volume)
	b.mu.Unlock()

	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Close 停止播放并释放设备
func (b *BeepClicker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

// withVolume 把线性音量换算成 effects.Volume 的以 2 为底的对数刻度
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
