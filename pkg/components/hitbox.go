package components

import "github.com/gonewx/tddown/pkg/utils"

// HitboxComponent 实体的碰撞盒
// Offset 是相对于像素位置的静态偏移矩形，Rect 是放置到当前位置后的世界矩形
type HitboxComponent struct {
	Offset utils.Rect
	Rect   utils.Rect
}
