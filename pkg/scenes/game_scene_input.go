package scenes

import (
	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 建筑选择键，顺序与 types.AllTowerTypes 一致
var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// handleInput 读取键盘和鼠标，翻译成场景命令
//
// 按键：
//   - 1/2/3 选择建筑，Tab 轮换
//   - 左键放置，右键拆除
//   - 方向键/WASD 或中键拖拽平移，滚轮缩放，C 居中
//   - F 切换速度，Space 生成一个敌人，R 重开，F3 显示碰撞盒
//   - N / PageDown 下一关，P / PageUp 上一关
func (s *GameScene) handleInput(deltaTime float64) {
	for i, key := range towerKeys {
		if i < len(types.AllTowerTypes) && inpututil.IsKeyJustPressed(key) {
			s.SelectTower(types.AllTowerTypes[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.SelectTower(types.AllTowerTypes[(int(s.selected)+1)%len(types.AllTowerTypes)])
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		s.CycleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.SpawnEnemy()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		s.ToggleDebug()
	case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		s.NextLevel(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.NextLevel(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.centerCamera()
	}

	s.handleMouse()
	s.handleCameraKeys(deltaTime)
}

func (s *GameScene) handleMouse() {
	cx, cy := utils.GetPointerPosition()
	grid := s.sim.Grid()

	// 左键或触摸放置
	if pressed, px, py := utils.IsPointerJustPressed(); pressed {
		if gp, ok := s.camera.ScreenToGrid(float64(px), float64(py), grid.Width(), grid.Height()); ok {
			s.PlaceSelected(gp)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if gp, ok := s.camera.ScreenToGrid(float64(cx), float64(cy), grid.Width(), grid.Height()); ok {
			s.RemoveAt(gp)
		}
	}

	// 中键拖拽平移
	if dx, dy := s.drag.Update(ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle), cx, cy); dx != 0 || dy != 0 {
		s.camera.Pan(float64(dx), float64(dy))
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		step := 1.0
		if wy < 0 {
			step = -1
		}
		s.camera.ZoomAt(step, float64(cx), float64(cy))
	}
}

func (s *GameScene) handleCameraKeys(deltaTime float64) {
	d := config.CameraPanSpeed * deltaTime
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx += d
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx -= d
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy += d
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy -= d
	}
	if dx != 0 || dy != 0 {
		s.camera.Pan(dx, dy)
	}
}
