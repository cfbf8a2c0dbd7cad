// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// BlendMode 定义遮罩层与背景的混合方式
type BlendMode int

const (
	// BlendAlpha 普通 alpha 混合
	BlendAlpha BlendMode = iota
	// BlendAdd 加法混合（颜色叠加变亮）
	BlendAdd
	// BlendSubtract 减法混合
	BlendSubtract
	// BlendMultiply 正片叠底
	BlendMultiply
	// BlendMultiplyX2 双倍正片叠底
	BlendMultiplyX2
	// BlendScreen 滤色（默认）
	BlendScreen
	// BlendReplace 直接替换目标像素
	BlendReplace
)

// BlendModeCount 混合模式总数
const BlendModeCount = 7

var blendModeNames = [BlendModeCount]string{
	"Alpha",
	"Add",
	"Subtract",
	"Multiply",
	"MultiplyX2",
	"Screen",
	"Replace",
}

// String 返回混合模式的名称
func (b BlendMode) String() string {
	if !b.Valid() {
		return "Unknown"
	}
	return blendModeNames[b]
}

// Valid 检查混合模式是否在枚举范围内
func (b BlendMode) Valid() bool {
	return b >= BlendAlpha && b <= BlendReplace
}

// BlendModeNames 按枚举顺序返回所有混合模式名称（面板滑块使用）
func BlendModeNames() []string {
	names := make([]string, BlendModeCount)
	copy(names, blendModeNames[:])
	return names
}

// ParseBlendMode 将名称解析为混合模式（大小写不敏感）
func ParseBlendMode(name string) (BlendMode, error) {
	for i, n := range blendModeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return BlendMode(i), nil
		}
	}
	return BlendScreen, fmt.Errorf("unknown blend mode %q", name)
}

// UnmarshalText 允许在 YAML 配置中直接写混合模式名称
func (b *BlendMode) UnmarshalText(text []byte) error {
	mode, err := ParseBlendMode(string(text))
	if err != nil {
		return err
	}
	*b = mode
	return nil
}

// MarshalText 以名称形式序列化
func (b BlendMode) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
