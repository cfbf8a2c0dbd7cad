package systems

import (
	"image/color"
	"testing"

	"github.com/gonewx/shaperave/pkg/components"
	"github.com/gonewx/shaperave/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestBlendFor(t *testing.T) {
	tests := []struct {
		mode types.BlendMode
		want ebiten.Blend
	}{
		{types.BlendAlpha, ebiten.BlendSourceOver},
		{types.BlendAdd, ebiten.BlendLighter},
		{types.BlendReplace, ebiten.BlendSourceOver},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := BlendFor(tt.mode); got != tt.want {
				t.Errorf("BlendFor(%v) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestMaskAlpha(t *testing.T) {
	tests := []struct {
		name string
		mode types.BlendMode
		want float64
	}{
		{"沿用起点透明度", types.BlendAdd, 0.65},
		{"Replace 不透明", types.BlendReplace, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circle := &components.CircleComponent{Alpha: 0.9, MaskAlpha: 0.65, BlendMode: tt.mode}
			if got := MaskAlpha(circle); got != tt.want {
				t.Errorf("MaskAlpha = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestBlendFor_TransparentSourceKeepsDestination 圆外透明像素不改变目标
//
// 用混合因子在 CPU 上模拟一次混合：源 (0,0,0,0)，目标任意。
func TestBlendFor_TransparentSourceKeepsDestination(t *testing.T) {
	dst := [4]float64{0.3, 0.6, 0.9, 1}
	src := [4]float64{0, 0, 0, 0}

	for mode := types.BlendAlpha; mode < types.BlendModeCount; mode++ {
		t.Run(mode.String(), func(t *testing.T) {
			b := BlendFor(mode)
			for c := 0; c < 3; c++ {
				got := blendChannel(b.BlendFactorSourceRGB, b.BlendFactorDestinationRGB, b.BlendOperationRGB, src, dst, c)
				if !almostEqual(got, dst[c]) {
					t.Errorf("channel %d = %v, want unchanged %v", c, got, dst[c])
				}
			}
			gotA := blendChannel(b.BlendFactorSourceAlpha, b.BlendFactorDestinationAlpha, b.BlendOperationAlpha, src, dst, 3)
			if !almostEqual(gotA, dst[3]) {
				t.Errorf("alpha = %v, want unchanged %v", gotA, dst[3])
			}
		})
	}
}

func blendFactor(f ebiten.BlendFactor, src, dst [4]float64, c int) float64 {
	switch f {
	case ebiten.BlendFactorZero:
		return 0
	case ebiten.BlendFactorOne:
		return 1
	case ebiten.BlendFactorSourceColor:
		return src[c]
	case ebiten.BlendFactorOneMinusSourceColor:
		return 1 - src[c]
	case ebiten.BlendFactorSourceAlpha:
		return src[3]
	case ebiten.BlendFactorOneMinusSourceAlpha:
		return 1 - src[3]
	case ebiten.BlendFactorDestinationColor:
		return dst[c]
	case ebiten.BlendFactorOneMinusDestinationColor:
		return 1 - dst[c]
	case ebiten.BlendFactorDestinationAlpha:
		return dst[3]
	case ebiten.BlendFactorOneMinusDestinationAlpha:
		return 1 - dst[3]
	}
	return 0
}

func blendChannel(fs, fd ebiten.BlendFactor, op ebiten.BlendOperation, src, dst [4]float64, c int) float64 {
	s := src[c] * blendFactor(fs, src, dst, c)
	d := dst[c] * blendFactor(fd, src, dst, c)
	switch op {
	case ebiten.BlendOperationSubtract:
		return s - d
	case ebiten.BlendOperationReverseSubtract:
		return d - s
	default:
		return s + d
	}
}

func TestScaleAlpha(t *testing.T) {
	got := scaleAlpha(color.RGBA{R: 200, G: 100, B: 50, A: 200}, 0.5)
	want := color.RGBA{R: 100, G: 50, B: 25, A: 100}
	if got != want {
		t.Errorf("scaleAlpha = %v, want %v", got, want)
	}
	if got := scaleAlpha(color.RGBA{R: 10, A: 10}, 3); got.A != 10 {
		t.Errorf("alpha factor should clamp to 1, got %v", got)
	}
}

func TestLighten(t *testing.T) {
	got := lighten(color.RGBA{R: 40, G: 180, B: 200, A: 204}, 20)
	want := color.RGBA{R: 60, G: 200, B: 204, A: 204}
	if got != want {
		t.Errorf("lighten = %v, want %v", got, want)
	}
}
