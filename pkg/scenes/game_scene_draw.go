package scenes

import (
	"fmt"
	"image/color"

	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 28, B: 44, A: 255}
	fallbackTile    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	enemyColor      = color.RGBA{R: 170, G: 60, B: 200, A: 255}
	enemyEyeColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	lavaColor       = color.RGBA{R: 255, G: 110, B: 20, A: 255}
	lavaGlowColor   = color.RGBA{R: 255, G: 190, B: 60, A: 255}
	blockerColor    = color.RGBA{R: 90, G: 110, B: 140, A: 230}
	validCellColor  = color.RGBA{R: 80, G: 220, B: 80, A: 255}
	invalidCell     = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	hitboxColor     = color.RGBA{R: 255, G: 255, B: 0, A: 200}
	towerRectColor  = color.RGBA{R: 0, G: 255, B: 255, A: 200}
	overlayColor    = color.RGBA{A: 160}
)

// tileColor 格子的绘制颜色，与关卡图片调色板一致
func tileColor(kind types.TileType) color.Color {
	if c, ok := game.ColorForTileType(kind); ok {
		return c
	}
	return fallbackTile
}

func (s *GameScene) fillRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	x, y, w, h := s.camera.ScreenRect(r)
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
}

func (s *GameScene) strokeRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	x, y, w, h := s.camera.ScreenRect(r)
	vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
}

func (s *GameScene) drawTiles(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	for _, tile := range s.sim.Grid().Tiles() {
		if tile.Passable() {
			continue
		}
		s.fillRect(screen, tile.Rect(), tileColor(tile.Kind()))
	}

	// 光标所在格子：能放置当前建筑时绿色，否则红色
	if s.state != StatePlaying {
		return
	}
	cx, cy := ebiten.CursorPosition()
	grid := s.sim.Grid()
	if gp, ok := s.camera.ScreenToGrid(float64(cx), float64(cy), grid.Width(), grid.Height()); ok {
		clr := validCellColor
		if s.sim.TowerSystem().CanPlace(s.selected, gp) != nil {
			clr = invalidCell
		}
		s.strokeRect(screen, utils.GridCellRect(gp), clr)
	}
}

func (s *GameScene) drawTowers(screen *ebiten.Image) {
	for _, t := range s.sim.Towers() {
		switch t.Kind {
		case types.TowerLava:
			clr := lavaColor
			if t.Frame%2 == 1 {
				clr = lavaGlowColor
			}
			s.fillRect(screen, t.DrawRect, clr)
		default:
			s.fillRect(screen, t.DrawRect, blockerColor)
		}
	}
}

func (s *GameScene) drawEffects(screen *ebiten.Image) {
	for _, e := range s.sim.Effects() {
		switch e.Kind {
		case types.EffectLavaDrop:
			s.fillRect(screen, e.DrawRect, lavaColor)
		case types.EffectLavaSplash:
			// 飞溅逐帧变淡
			alpha := uint8(255 - 50*e.Frame)
			s.fillRect(screen, e.DrawRect, color.RGBA{R: lavaGlowColor.R, G: lavaGlowColor.G, B: lavaGlowColor.B, A: alpha})
		}
	}
}

func (s *GameScene) drawEnemies(screen *ebiten.Image) {
	for _, e := range s.sim.Enemies() {
		s.fillRect(screen, e.DrawRect, enemyColor)

		// 朝向一侧画眼睛
		eyeX := e.DrawRect.Left + 4
		if e.Facing == types.FacingRight {
			eyeX = e.DrawRect.Right - 8
		}
		s.fillRect(screen, utils.NewRect(eyeX, e.DrawRect.Top+4, eyeX+4, e.DrawRect.Top+8), enemyEyeColor)
	}
}

// drawDebug 绘制碰撞盒和建筑阻挡区域
func (s *GameScene) drawDebug(screen *ebiten.Image) {
	for _, t := range s.sim.Towers() {
		s.strokeRect(screen, t.Rect, towerRectColor)
	}
	for _, e := range s.sim.Effects() {
		s.strokeRect(screen, e.Hitbox, hitboxColor)
	}
	for _, e := range s.sim.Enemies() {
		s.strokeRect(screen, e.Hitbox, hitboxColor)
	}
}

// hudLines 返回 HUD 文本（每行一条）
func (s *GameScene) hudLines() []string {
	w := s.sim.World()
	lines := []string{
		fmt.Sprintf("%s   health: %d   speed: x%g   frame: %d", s.sim.Level().Config.Name, w.Health, w.Speed(), w.Frame),
		fmt.Sprintf("tower [1-3]: %s (%d left)", s.selected, s.sim.TowerSystem().Remaining(s.selected)),
		s.sim.Spawner().Status(),
	}
	if s.message != "" {
		lines = append(lines, s.message)
	}
	switch s.state {
	case StateLost:
		lines = append(lines, "GAME OVER - press R to restart")
	case StateWon:
		lines = append(lines, "LEVEL CLEAR - press N for the next level")
	}
	return lines
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	lines := s.hudLines()
	vector.DrawFilledRect(screen, 0, 0, 420, float32(16*len(lines)+8), overlayColor, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, 4+16*i)
	}
}
