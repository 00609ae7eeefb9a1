package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/types"
)

// ErrNoSpawnTiles 关卡中没有任何出生点
var ErrNoSpawnTiles = errors.New("level has no spawn tiles")

// Level 一个已加载的关卡：配置加上解析好的网格
type Level struct {
	Config *config.LevelConfig
	Grid   *Grid
}

// NewLevel 根据配置构建关卡
// 配置使用 image 时，图片路径相对于 fsys 的根目录解析
func NewLevel(cfg *config.LevelConfig, fsys fs.FS) (*Level, error) {
	var grid *Grid
	switch {
	case len(cfg.Layout) > 0:
		grid = GridFromLayout(cfg.Layout)
	case cfg.Image != "":
		if fsys == nil {
			return nil, fmt.Errorf("level %s: no filesystem to read image %s", cfg.ID, cfg.Image)
		}
		f, err := fsys.Open(cfg.Image)
		if err != nil {
			return nil, fmt.Errorf("level %s: failed to open image: %w", cfg.ID, err)
		}
		defer f.Close()
		grid, err = DecodeLevelImage(f)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", cfg.ID, err)
		}
	default:
		return nil, fmt.Errorf("level %s: no map", cfg.ID)
	}

	if len(grid.Spawns()) == 0 {
		return nil, fmt.Errorf("level %s: %w", cfg.ID, ErrNoSpawnTiles)
	}

	log.Printf("[Level] 关卡 %s 加载完成: %dx%d, 出生点 %d 个", cfg.ID, grid.Width(), grid.Height(), len(grid.Spawns()))
	return &Level{Config: cfg, Grid: grid}, nil
}

// LoadLevel 从文件系统加载 YAML 关卡文件，image 路径相对于该文件所在目录
func LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	cfg, err := config.LoadLevelConfigFS(fsys, levelPath)
	if err != nil {
		return nil, err
	}
	dir := path.Dir(levelPath)
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open level directory %s: %w", dir, err)
	}
	return NewLevel(cfg, sub)
}

// GridFromLayout 把已校验的 layout 字符行转换为网格
// 未知字符按空格子处理（配置加载时已经拒绝未知字符）
func GridFromLayout(rows []string) *Grid {
	if len(rows) == 0 {
		return &Grid{}
	}
	width := len([]rune(rows[0]))
	kinds := make([]types.TileType, 0, width*len(rows))
	for _, row := range rows {
		for _, r := range []rune(row) {
			kind, _ := types.TileTypeFromRune(r)
			kinds = append(kinds, kind)
		}
	}
	return NewGrid(width, kinds)
}

// ListLevels 列出目录下所有 .yaml/.yml 关卡文件（按文件名排序）
func ListLevels(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels in %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, path.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
