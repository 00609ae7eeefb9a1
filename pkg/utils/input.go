package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标左键）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	// 检查触摸按下
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标按下
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// DragTracker 跟踪按住拖拽，把每帧的指针位置转换为位移
type DragTracker struct {
	dragging bool
	lastX    int
	lastY    int
}

// Update 输入本帧的按下状态和指针位置，返回相对上一帧的位移
// 刚按下的那一帧位移为 0
func (d *DragTracker) Update(pressed bool, x, y int) (dx, dy int) {
	if !pressed {
		d.dragging = false
		return 0, 0
	}
	if d.dragging {
		dx, dy = x-d.lastX, y-d.lastY
	}
	d.dragging = true
	d.lastX, d.lastY = x, y
	return dx, dy
}

// IsDragging 是否正在拖拽
func (d *DragTracker) IsDragging() bool {
	return d.dragging
}
