package scenes

import (
	"math"
	"testing"

	"github.com/gonewx/tddown/pkg/utils"
)

func TestSnapZoom(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.1, 0.5},
		{0.74, 0.5},
		{0.75, 1},
		{1.4, 1},
		{1.5, 2},
		{2.6, 3},
		{7, 3},
	}
	for _, tt := range tests {
		if got := SnapZoom(tt.in); got != tt.want {
			t.Errorf("SnapZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestCameraZoomKeepsCursorPoint 缩放前后光标下的世界坐标不变
func TestCameraZoomKeepsCursorPoint(t *testing.T) {
	c := NewCamera()
	c.Pan(40, 20)
	wx, wy := c.ScreenToWorld(300, 200)

	zooms := []float64{2, 3, 3, 2, 1, 0.5, 0.5, 1}
	steps := []float64{1, 1, 1, -1, -1, -1, -1, 1}
	for i, step := range steps {
		c.ZoomAt(step, 300, 200)
		if c.Zoom != zooms[i] {
			t.Fatalf("step %d: Zoom = %v, want %v", i, c.Zoom, zooms[i])
		}
		gx, gy := c.ScreenToWorld(300, 200)
		if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
			t.Errorf("step %d: world point moved from (%v,%v) to (%v,%v)", i, wx, wy, gx, gy)
		}
	}
}

func TestCameraScreenToGrid(t *testing.T) {
	c := NewCamera()
	c.Zoom = 2
	c.ScrollX = 10

	// 屏幕 (100, 70) -> 世界 (40, 35) -> 格子 (1, 1)
	gp, ok := c.ScreenToGrid(100, 70, 5, 5)
	if !ok || gp != (utils.GridPos{X: 1, Y: 1}) {
		t.Errorf("ScreenToGrid = %+v, %v", gp, ok)
	}
	if _, ok := c.ScreenToGrid(0, 0, 5, 5); ok {
		t.Error("point left of the grid should be outside")
	}

	x, y, w, h := c.ScreenRect(utils.NewRect(0, 0, 32, 32))
	if x != 20 || y != 0 || w != 64 || h != 64 {
		t.Errorf("ScreenRect = (%v,%v,%v,%v)", x, y, w, h)
	}
}

func TestCameraCenterOn(t *testing.T) {
	c := NewCamera()
	c.CenterOn(320, 160, 800, 600)
	sx, sy := c.WorldToScreen(160, 80)
	if sx != 400 || sy != 300 {
		t.Errorf("level center drawn at (%v,%v), want (400,300)", sx, sy)
	}
}
