package utils

import "fmt"

// Rect 轴对齐整数矩形（像素单位）
//
// 四条边都是包含关系：两个仅仅边缘接触的矩形也视为相交，
// 这样逐像素移动的实体无法穿过一像素宽的缝隙。
// 不变量: Left <= Right, Top <= Bottom
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRect 根据四条边创建矩形
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width 返回矩形宽度
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height 返回矩形高度
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// TopLeft 返回左上角坐标
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// BottomRight 返回右下角坐标
func (r Rect) BottomRight() Point {
	return Point{X: r.Right, Y: r.Bottom}
}

// Offset 返回平移 (dx, dy) 后的新矩形
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// At 把相对偏移矩形（如碰撞盒）放置到像素位置 p
func (r Rect) At(p Point) Rect {
	return r.Offset(p.X, p.Y)
}

// Intersecting 检测两个矩形是否相交（边缘接触也算相交）
func (r Rect) Intersecting(other Rect) bool {
	return r.Left <= other.Right &&
		r.Right >= other.Left &&
		r.Top <= other.Bottom &&
		r.Bottom >= other.Top
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Point 整数像素坐标
type Point struct {
	X int
	Y int
}
