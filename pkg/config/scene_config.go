package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/shaperave/pkg/types"
)

// SceneConfig 场景启动配置
//
// 包含七个可调参数的初始值、随机种子、自动运动开关和背景音乐路径。
// 参数值在交给参数存储时会被夹取到合法范围，因此这里只拒绝
// 结构上无法解释的配置（如负数圆形数量以外的非法枚举）。
//
// 配置文件位置: data/scene.yaml
type SceneConfig struct {
	// MaxCircles 圆形数量（启动后锁定）
	MaxCircles int `yaml:"maxCircles"`

	// PropagationQuantity 每批传播的圆形数量
	PropagationQuantity int `yaml:"propagationQuantity"`

	// RotationSpeed 轨道速度倍率
	RotationSpeed float64 `yaml:"rotationSpeed"`

	// KnockbackDistance 击退距离
	KnockbackDistance float64 `yaml:"knockbackDistance"`

	// KnockbackTime 击退单程时长（秒）
	KnockbackTime float64 `yaml:"knockbackTime"`

	// ResizeVariation 缩放峰值
	ResizeVariation float64 `yaml:"resizeVariation"`

	// BlendMode 遮罩混合模式（名称，如 "Screen"）
	BlendMode types.BlendMode `yaml:"blendMode"`

	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	// AutomaticMotion 启动时是否打开自动运动
	AutomaticMotion bool `yaml:"automaticMotion"`

	// Music 背景音乐文件路径
	Music string `yaml:"music"`
}

// DefaultSceneConfig 返回与内置默认值一致的配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		MaxCircles:          DefaultMaxCircles,
		PropagationQuantity: DefaultPropagationQuantity,
		RotationSpeed:       DefaultRotationSpeed,
		KnockbackDistance:   DefaultKnockbackDistance,
		KnockbackTime:       DefaultKnockbackTime,
		ResizeVariation:     DefaultResizeVariation,
		BlendMode:           types.BlendScreen,
	}
}

// LoadSceneConfig 从磁盘加载场景配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *SceneConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return ParseSceneConfig(data)
}

// ParseSceneConfig 解析 YAML 格式的场景配置
//
// 文件中未出现的字段保留默认值。
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	config := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	// 验证配置
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 数值参数不在这里检查范围（由参数存储夹取），只检查：
//   - 混合模式必须是已知枚举
//   - 圆形数量不能为负数
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *SceneConfig) Validate() error {
	if !c.BlendMode.Valid() {
		return fmt.Errorf("blend mode out of range: %d", c.BlendMode)
	}
	if c.MaxCircles < 0 {
		return fmt.Errorf("maxCircles should be >= 0, got %d", c.MaxCircles)
	}
	return nil
}
