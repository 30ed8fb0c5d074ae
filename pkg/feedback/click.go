// Package feedback 合成滑块步进时的"咔哒"提示音
//
// 同一个波形有两种输出：
//   - TickPCM：16 位小端立体声 PCM，交给 ebiten audio 播放（GUI 前端）
//   - ClickStreamer：beep.Streamer，交给 beep speaker 播放（终端前端）
package feedback

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	// ClickFrequency 咔哒声的正弦频率（Hz）
	ClickFrequency = 1200.0
	// ClickDuration 咔哒声时长
	ClickDuration = 30 * time.Millisecond
	// ClickDecay 指数衰减速率（每秒）
	ClickDecay = 120.0
	// ClickAmplitude 峰值幅度，留出余量避免削波
	ClickAmplitude = 0.6
)

// clickSample 返回第 i 个采样点的幅度，范围 [-ClickAmplitude, ClickAmplitude]
func clickSample(i int, rate int) float64 {
	t := float64(i) / float64(rate)
	envelope := ClickAmplitude * math.Exp(-t*ClickDecay)
	return envelope * math.Sin(2*math.Pi*ClickFrequency*t)
}

// clickLength 咔哒声在给定采样率下的采样点数
func clickLength(rate int) int {
	if rate <= 0 {
		return 0
	}
	return int(math.Round(float64(rate) * ClickDuration.Seconds()))
}

// TickPCM 生成咔哒声的 PCM 数据
// 格式与 ebiten audio 一致：16 位有符号小端、双声道交错
func TickPCM(sampleRate int) []byte {
	n := clickLength(sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := int16(math.Round(clickSample(i, sampleRate) * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// ClickStreamer 以 beep.Streamer 形式输出一次咔哒声
type ClickStreamer struct {
	rate   beep.SampleRate
	length int
	pos    int
}

// NewClickStreamer 创建一次性的咔哒声流
func NewClickStreamer(sr beep.SampleRate) *ClickStreamer {
	return &ClickStreamer{
		rate:   sr,
		length: clickLength(int(sr)),
	}
}

// Len 总采样点数
func (c *ClickStreamer) Len() int {
	return c.length
}

func (c *ClickStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.length {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.length {
			return i, true
		}
		v := clickSample(c.pos, int(c.rate))
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *ClickStreamer) Err() error { return nil }
