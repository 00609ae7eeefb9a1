package utils

import "math"

// TileSize 每个网格单元的边长（像素）
const TileSize = 32

// GridPos 网格坐标（列, 行）
type GridPos struct {
	X int
	Y int
}

// PosToGridPos 将像素坐标转换为所在的网格坐标
// 负坐标向下取整，保证 -1 落在第 -1 列而不是第 0 列
func PosToGridPos(p Point) GridPos {
	return GridPos{X: floorDiv(p.X, TileSize), Y: floorDiv(p.Y, TileSize)}
}

// GridPosToPos 返回网格单元左上角的像素坐标
func GridPosToPos(g GridPos) Point {
	return Point{X: g.X * TileSize, Y: g.Y * TileSize}
}

// GridCellRect 返回网格单元覆盖的像素矩形
func GridCellRect(g GridPos) Rect {
	p := GridPosToPos(g)
	return NewRect(p.X, p.Y, p.X+TileSize, p.Y+TileSize)
}

// XYToIndex 行主序索引: index = y*width + x
func XYToIndex(width, x, y int) int {
	return y*width + x
}

// IndexToXY XYToIndex 的逆运算
func IndexToXY(width, i int) (x, y int) {
	return i % width, i / width
}

// ScreenToGrid 将屏幕坐标（已考虑相机平移和缩放）转换为网格坐标
// 参数:
//   - screenX, screenY: 屏幕坐标
//   - scrollX, scrollY: 相机平移（世界像素）
//   - zoom: 缩放倍数
//   - width, height: 网格尺寸（列数, 行数）
//
// 返回:
//   - GridPos: 网格坐标
//   - bool: 是否落在网格范围内
func ScreenToGrid(screenX, screenY, scrollX, scrollY, zoom float64, width, height int) (GridPos, bool) {
	if zoom <= 0 {
		return GridPos{}, false
	}
	worldX := screenX/zoom - scrollX
	worldY := screenY/zoom - scrollY
	if worldX < 0 || worldY < 0 {
		return GridPos{}, false
	}
	col := int(math.Floor(worldX / TileSize))
	row := int(math.Floor(worldY / TileSize))
	if col >= width || row >= height {
		return GridPos{}, false
	}
	return GridPos{X: col, Y: row}, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
