package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/gonewx/tddown/pkg/types"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// 定义了关卡地图、生命值、敌人波次和可用建筑数量
type LevelConfig struct {
	ID          string `yaml:"id"`          // 关卡ID，如 "level1"
	Name        string `yaml:"name"`        // 关卡名称
	Description string `yaml:"description"` // 关卡描述（可选）

	Health int   `yaml:"health"` // 初始生命值，默认 DefaultHealth
	Seed   int64 `yaml:"seed"`   // 随机种子，0 表示按时间生成

	Enemies []SpawnSpanConfig `yaml:"enemies"` // 敌人波次（按顺序执行）
	Towers  TowerBudget       `yaml:"towers"`  // 可放置的建筑数量

	// 地图二选一：字符布局或彩色像素图
	Layout []string `yaml:"layout"` // 每行一个字符串，字符含义见 types.TileTypeFromRune
	Image  string   `yaml:"image"`  // PNG 地图路径（每个像素一个格子）
}

// SpawnSpanConfig 一个波次阶段：在 Time 秒内生成 Count 个敌人
// count <= 0 或 time <= 0 的阶段不会报错，而是在构建生成器时被过滤
type SpawnSpanConfig struct {
	Time  float64 `yaml:"time"`
	Count int     `yaml:"count"`
}

// TowerBudget 每种建筑在本关可放置的数量
type TowerBudget struct {
	BlockerDown int `yaml:"blockerDown"`
	BlockerUp   int `yaml:"blockerUp"`
	Lava        int `yaml:"lava"`
}

// Budget 返回指定建筑类型的数量
func (b TowerBudget) Budget(kind types.TowerType) int {
	switch kind {
	case types.TowerBlockerDown:
		return b.BlockerDown
	case types.TowerBlockerUp:
		return b.BlockerUp
	case types.TowerLava:
		return b.Lava
	}
	return 0
}

// TotalEnemies 返回所有有效阶段的敌人总数
func (c *LevelConfig) TotalEnemies() int {
	total := 0
	for _, span := range c.Enemies {
		if span.Count > 0 && span.Time > 0 {
			total += span.Count
		}
	}
	return total
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}
	return parseLevelConfig(data, filepath)
}

// LoadLevelConfigFS 从文件系统（如嵌入的 data/ 目录）加载关卡配置
func LoadLevelConfigFS(fsys fs.FS, path string) (*LevelConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}
	return parseLevelConfig(data, path)
}

// ParseLevelConfig 解析内存中的 YAML 关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	return parseLevelConfig(data, "<memory>")
}

func parseLevelConfig(data []byte, source string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", source, err)
	}

	// 应用默认值
	applyDefaults(&levelConfig)

	// 验证必填字段
	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", source, err)
	}

	return &levelConfig, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.Health == 0 {
		config.Health = DefaultHealth
	}
	if config.Name == "" {
		config.Name = config.ID
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level ID is required")
	}

	if config.Health < 0 {
		return fmt.Errorf("health cannot be negative, got %d", config.Health)
	}

	if config.Towers.BlockerDown < 0 || config.Towers.BlockerUp < 0 || config.Towers.Lava < 0 {
		return fmt.Errorf("tower budgets cannot be negative: %+v", config.Towers)
	}

	hasLayout := len(config.Layout) > 0
	hasImage := config.Image != ""
	switch {
	case !hasLayout && !hasImage:
		return fmt.Errorf("either layout or image is required")
	case hasLayout && hasImage:
		return fmt.Errorf("layout and image are mutually exclusive")
	}

	if hasLayout {
		width := len([]rune(config.Layout[0]))
		if width == 0 {
			return fmt.Errorf("layout row 0 is empty")
		}
		for y, row := range config.Layout {
			runes := []rune(row)
			if len(runes) != width {
				return fmt.Errorf("layout row %d: width %d, expected %d", y, len(runes), width)
			}
			for x, r := range runes {
				if _, ok := types.TileTypeFromRune(r); !ok {
					return fmt.Errorf("layout row %d, column %d: unknown tile %q", y, x, r)
				}
			}
		}
	}

	return nil
}
