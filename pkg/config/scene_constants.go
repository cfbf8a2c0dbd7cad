package config

import "image/color"

// 场景尺寸（逻辑像素）
const (
	SceneWidth  = 500
	SceneHeight = 450
)

// 圆形尺寸范围（半径）
const (
	MinCircleSize = 15.0
	MaxCircleSize = 45.0
)

// 圆形底色层透明度范围
const (
	MinCircleAlpha = 0.6
	MaxCircleAlpha = 0.9
)

// 轨道参数
const (
	// OrbitRadiusX 轨道椭圆水平半轴
	OrbitRadiusX = 13.0
	// OrbitRadiusY 轨道椭圆垂直半轴
	OrbitRadiusY = 8.0
	// MinCycleTime 最短一圈时间（秒）
	MinCycleTime = 3.0
	// MaxCycleTime 最长一圈时间（秒）
	MaxCycleTime = 5.0
)

// 布局分离参数
const (
	// SeparationMargin 两个圆之间期望的最小空隙
	SeparationMargin = 25.0
	// SeparationNudge 两个圆心完全重合时的固定推开距离
	SeparationNudge = 1.0
)

// PropagationTickInterval 传播波次每批之间的调度周期（秒）
// 实际效果等价于"下一帧"
const PropagationTickInterval = 0.0001

// 参数范围
const (
	MinCircles             = 1
	MaxCirclesLimit        = 60
	MinPropagationQuantity = 1
	MaxRotationSpeed       = 10.0
	MaxKnockbackDistance   = 60.0
	MaxKnockbackTime       = 3.0
	MaxResizeVariation     = 1.5
)

// 参数默认值
const (
	DefaultMaxCircles          = 60
	DefaultPropagationQuantity = 5
	DefaultRotationSpeed       = 1.0
	DefaultKnockbackDistance   = 20.0
	DefaultKnockbackTime       = 0.3
	DefaultResizeVariation     = 1.1
)

// CirclePalette 圆形可选的基础颜色
var CirclePalette = []color.RGBA{
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, // 绿
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // 红
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // 蓝
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // 黄
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff}, // 青
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff}, // 品红
}

// BackgroundColor 场景背景色
var BackgroundColor = color.RGBA{R: 0x0d, G: 0x0d, B: 0x12, A: 0xff}

// 参数面板布局
const (
	PanelX            = 30.0
	PanelY            = 35.0
	PanelWidth        = SceneWidth - 60.0
	PanelHeight       = SceneHeight - 90.0
	PanelColumnLeft   = 20.0
	PanelColumnRight  = PanelWidth - 210.0
	PanelFirstRowY    = 40.0
	PanelRowHeight    = 90.0
	PanelCheckboxY    = 300.0
	PanelSlotWidth    = 180.0
	PanelSlotHeight   = 6.0
	PanelKnobSize     = 16.0
	PanelCheckboxSize = 18.0
	PanelLabelSize    = 14.0

	// 面板弹簧参数
	PanelSpringFrequency = 6.0
	PanelSpringDamping   = 0.8
)

// 菜单按钮（屏幕底部居中）
const (
	MenuButtonWidth  = 60.0
	MenuButtonHeight = 50.0
	MenuButtonX      = SceneWidth/2 - MenuButtonWidth/2
	MenuButtonY      = SceneHeight - 55.0
)

// PanelBackgroundColor 面板和菜单按钮背景（50,50,50 @ 80%，预乘）
var PanelBackgroundColor = color.RGBA{R: 40, G: 40, B: 40, A: 204}

// 面板控件配色
var (
	PanelTextColor   = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	PanelSlotColor   = color.RGBA{R: 0x70, G: 0x70, B: 0x78, A: 0xff}
	PanelAccentColor = color.RGBA{R: 0xff, G: 0x4f, B: 0xa3, A: 0xff}
)

// DiscTextureRadius 圆形共用纹理的半径（像素），渲染时按实际半径缩放
const DiscTextureRadius = 64

// 自动运动：每 tick 当 int(elapsed*10) % AutoMotionModulo == 0 时随机命中一次
const AutoMotionModulo = 3

// 噪音音效参数
const (
	NoiseSoundID       = "noise"
	NoiseDuration      = 0.12 // 秒
	NoiseDecay         = 30.0 // 指数衰减系数
	AudioSampleRate    = 48000
	DefaultMusicVolume = 0.6
	DefaultSoundVolume = 0.35
)
