package game

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// SynthesizeNoise 生成一段指数衰减的白噪声（点击音效）
//
// 输出格式与 ebiten audio 播放器一致：16 位有符号小端、双声道。
//
// 参数:
//   - sampleRate: 采样率
//   - duration: 时长（秒）
//   - decay: 指数衰减系数，越大衰减越快
//   - rng: 随机源（测试中传入固定种子）
//
// 返回:
//   - []byte: PCM 数据，长度 = 帧数 * 4
func SynthesizeNoise(sampleRate int, duration, decay float64, rng *rand.Rand) []byte {
	frames := int(float64(sampleRate) * duration)
	if frames <= 0 {
		return nil
	}
	pcm := make([]byte, frames*4)

	// 一阶低通让噪声不那么刺耳
	var prev float64
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-decay * t)
		white := rng.Float64()*2 - 1
		prev = prev*0.6 + white*0.4
		v := int16(prev * env * math.MaxInt16 * 0.8)

		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(v))
	}
	return pcm
}
