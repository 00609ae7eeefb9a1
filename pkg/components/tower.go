package components

import (
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// TowerComponent 玩家放置的建筑
// Rect 是建筑在世界中的碰撞区域，可能覆盖放置格之外的格子
type TowerComponent struct {
	Kind      types.TowerType
	GridPos   utils.GridPos // 放置格
	Direction types.Dir
	Rect      utils.Rect
}

// Blocks 是否阻挡敌人移动
func (t *TowerComponent) Blocks() bool {
	return t.Kind.Blocks()
}
