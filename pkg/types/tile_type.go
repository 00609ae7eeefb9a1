// Package types 定义共享的基础类型
package types

// TileType 定义地图格子的类型
type TileType int

const (
	TileEmpty TileType = iota

	// 边框
	TileBorderTop
	TileBorderTopLeft
	TileBorderTopRight
	TileBorderLeft
	TileBorderRight
	TileBorderBottom
	TileBorderBottomLeft
	TileBorderBottomRight

	// 可建造格子（塔朝上或朝下放置）
	TileBuildUp
	TileBuildDown

	TileSpawn // 敌人出生点
	TileGoal  // 终点，敌人到达即扣血

	// 地形
	TileTerrainUp
	TileTerrainCenter
	TileTerrainDown

	// 已被建筑占用的格子
	TileBlockerUp
	TileBlockerDown
	TileTurretUp
	TileTurretDown
)

var tileTypeStringMap = map[TileType]string{
	TileEmpty:             "empty",
	TileBorderTop:         "border_top",
	TileBorderTopLeft:     "border_top_left",
	TileBorderTopRight:    "border_top_right",
	TileBorderLeft:        "border_left",
	TileBorderRight:       "border_right",
	TileBorderBottom:      "border_bottom",
	TileBorderBottomLeft:  "border_bottom_left",
	TileBorderBottomRight: "border_bottom_right",
	TileBuildUp:           "build_up",
	TileBuildDown:         "build_down",
	TileSpawn:             "spawn",
	TileGoal:              "goal",
	TileTerrainUp:         "terrain_up",
	TileTerrainCenter:     "terrain_center",
	TileTerrainDown:       "terrain_down",
	TileBlockerUp:         "blocker_up",
	TileBlockerDown:       "blocker_down",
	TileTurretUp:          "turret_up",
	TileTurretDown:        "turret_down",
}

// 关卡 layout 中每个字符对应的格子类型
// 边框使用小键盘方位: 7 8 9 / 4 6 / 1 2 3
var tileTypeRuneMap = map[rune]TileType{
	'.': TileEmpty,
	'8': TileBorderTop,
	'7': TileBorderTopLeft,
	'9': TileBorderTopRight,
	'4': TileBorderLeft,
	'6': TileBorderRight,
	'2': TileBorderBottom,
	'1': TileBorderBottomLeft,
	'3': TileBorderBottomRight,
	'u': TileBuildUp,
	'd': TileBuildDown,
	'S': TileSpawn,
	'G': TileGoal,
	'^': TileTerrainUp,
	'#': TileTerrainCenter,
	'v': TileTerrainDown,
	'b': TileBlockerUp,
	'B': TileBlockerDown,
	't': TileTurretUp,
	'T': TileTurretDown,
}

var runeTileTypeMap map[TileType]rune

func init() {
	runeTileTypeMap = make(map[TileType]rune, len(tileTypeRuneMap))
	for r, tt := range tileTypeRuneMap {
		runeTileTypeMap[tt] = r
	}
}

// String 返回格子类型的字符串表示
func (t TileType) String() string {
	if s, ok := tileTypeStringMap[t]; ok {
		return s
	}
	return "unknown"
}

// Passable 只有空格子可以被穿过
func (t TileType) Passable() bool {
	return t == TileEmpty
}

// Rune 返回格子类型在 layout 中使用的字符
func (t TileType) Rune() rune {
	if r, ok := runeTileTypeMap[t]; ok {
		return r
	}
	return '?'
}

// TileTypeFromRune 将 layout 字符转换为格子类型
func TileTypeFromRune(r rune) (TileType, bool) {
	tt, ok := tileTypeRuneMap[r]
	return tt, ok
}
