package game

import (
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// Tile 地图中的一个静态格子
// 碰撞矩形固定为格子所在的 32x32 像素区域
type Tile struct {
	kind types.TileType
	pos  utils.GridPos
	rect utils.Rect
}

// NewTile 创建位于 (x, y) 的格子
func NewTile(kind types.TileType, x, y int) Tile {
	pos := utils.GridPos{X: x, Y: y}
	return Tile{kind: kind, pos: pos, rect: utils.GridCellRect(pos)}
}

// Kind 返回格子类型
func (t Tile) Kind() types.TileType { return t.kind }

// GridPos 返回格子坐标
func (t Tile) GridPos() utils.GridPos { return t.pos }

// Rect 返回格子的像素矩形
func (t Tile) Rect() utils.Rect { return t.rect }

// Passable 是否可以穿过（只有空格子可以）
func (t Tile) Passable() bool { return t.kind.Passable() }

// Collide 检测矩形是否与该格子发生碰撞
// 可穿过的格子永远不碰撞
func (t Tile) Collide(r utils.Rect) bool {
	if t.Passable() {
		return false
	}
	return t.rect.Intersecting(r)
}

// Grid 行主序存储的格子网格，加载后只读
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid 根据行主序的格子类型列表创建网格
// len(kinds) 必须是 width 的整数倍，多余的格子被丢弃
func NewGrid(width int, kinds []types.TileType) *Grid {
	if width <= 0 {
		return &Grid{}
	}
	height := len(kinds) / width
	tiles := make([]Tile, 0, width*height)
	for i := 0; i < width*height; i++ {
		x, y := utils.IndexToXY(width, i)
		tiles = append(tiles, NewTile(kinds[i], x, y))
	}
	return &Grid{width: width, height: height, tiles: tiles}
}

// Width 网格列数
func (g *Grid) Width() int { return g.width }

// Height 网格行数
func (g *Grid) Height() int { return g.height }

// PixelWidth 网格总像素宽度
func (g *Grid) PixelWidth() int { return g.width * utils.TileSize }

// PixelHeight 网格总像素高度
func (g *Grid) PixelHeight() int { return g.height * utils.TileSize }

// InBounds 坐标是否在网格范围内
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// GetTile 返回 (x, y) 处的格子，越界（包括负坐标）时返回 false
func (g *Grid) GetTile(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Tile{}, false
	}
	return g.tiles[utils.XYToIndex(g.width, x, y)], true
}

// Tiles 按行主序返回所有格子（只读副本）
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Spawns 按行主序返回所有出生点格子
func (g *Grid) Spawns() []Tile {
	var spawns []Tile
	for _, t := range g.tiles {
		if t.kind == types.TileSpawn {
			spawns = append(spawns, t)
		}
	}
	return spawns
}
