package components

import "github.com/gonewx/tddown/pkg/utils"

// RenderComponent 渲染所需的静态信息
// DrawRect 是相对于像素位置的绘制区域
type RenderComponent struct {
	DrawRect utils.Rect
	Visible  bool
}
