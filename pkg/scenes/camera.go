package scenes

import (
	"math"

	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/utils"
)

// Camera 关卡视图的平移与缩放
//
// 屏幕坐标 = (世界坐标 + 平移) * 缩放
type Camera struct {
	ScrollX float64
	ScrollY float64
	Zoom    float64
}

// NewCamera 创建缩放为 1 的相机
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// SnapZoom 把缩放值吸附到可用档位：小于 0.75 为 0.5，否则取整，并限制在 [MinZoom, MaxZoom]
func SnapZoom(z float64) float64 {
	if z < 0.75 {
		z = 0.5
	} else {
		z = math.Round(z)
	}
	return math.Max(config.MinZoom, math.Min(config.MaxZoom, z))
}

// Pan 按屏幕像素平移
func (c *Camera) Pan(dx, dy float64) {
	c.ScrollX += dx / c.Zoom
	c.ScrollY += dy / c.Zoom
}

// ZoomAt 以屏幕点 (sx, sy) 为中心缩放 steps 档，该点下的世界坐标保持不变
func (c *Camera) ZoomAt(steps, sx, sy float64) {
	if steps == 0 {
		return
	}
	wx, wy := c.ScreenToWorld(sx, sy)

	next := c.Zoom + steps
	if steps > 0 && c.Zoom < 1 {
		next = 1
	}
	c.Zoom = SnapZoom(next)

	c.ScrollX = sx/c.Zoom - wx
	c.ScrollY = sy/c.Zoom - wy
}

// CenterOn 让宽高为 worldW x worldH 的关卡在屏幕中居中
func (c *Camera) CenterOn(worldW, worldH, screenW, screenH float64) {
	c.ScrollX = (screenW/c.Zoom - worldW) / 2
	c.ScrollY = (screenH/c.Zoom - worldH) / 2
}

// WorldToScreen 世界坐标转屏幕坐标
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return (x + c.ScrollX) * c.Zoom, (y + c.ScrollY) * c.Zoom
}

// ScreenToWorld 屏幕坐标转世界坐标
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx/c.Zoom - c.ScrollX, sy/c.Zoom - c.ScrollY
}

// ScreenToGrid 屏幕坐标转网格坐标，第二个返回值表示是否落在网格内
func (c *Camera) ScreenToGrid(sx, sy float64, width, height int) (utils.GridPos, bool) {
	return utils.ScreenToGrid(sx, sy, c.ScrollX, c.ScrollY, c.Zoom, width, height)
}

// ScreenRect 把世界矩形转换为屏幕上的 (x, y, w, h)
func (c *Camera) ScreenRect(r utils.Rect) (x, y, w, h float32) {
	sx, sy := c.WorldToScreen(float64(r.Left), float64(r.Top))
	return float32(sx), float32(sy), float32(float64(r.Width()) * c.Zoom), float32(float64(r.Height()) * c.Zoom)
}
