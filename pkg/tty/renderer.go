// Package tty 在终端中绘制模拟（每个格子一个字符）
package tty

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/tddown/pkg/systems"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTerrain = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBuild   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleSpawn   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGoal    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
	styleBlocker = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleLava    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// 终端字符
const (
	GlyphEnemyLeft   = '<'
	GlyphEnemyRight  = '>'
	GlyphLavaDrop    = '\''
	GlyphLavaSplash  = '*'
	GlyphLavaTower   = 'L'
	GlyphBlockerDown = '|'
	GlyphBlockerUp   = '!'
)

// tileGlyph 格子对应的字符和样式
func tileGlyph(kind types.TileType) (rune, tcell.Style) {
	switch kind {
	case types.TileEmpty:
		return ' ', styleDefault
	case types.TileSpawn:
		return 'S', styleSpawn
	case types.TileGoal:
		return 'G', styleGoal
	case types.TileBuildUp:
		return 'u', styleBuild
	case types.TileBuildDown:
		return 'd', styleBuild
	case types.TileTerrainUp, types.TileTerrainCenter, types.TileTerrainDown:
		return '#', styleTerrain
	}
	return '=', styleBorder
}

// Renderer 把模拟快照画到 tcell 屏幕上
type Renderer struct {
	screen tcell.Screen

	// 以下字段由调用方维护，只用于显示
	Cursor   utils.GridPos
	Selected types.TowerType
	Message  string
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw 绘制一帧：地图、建筑、效果、敌人、光标和状态栏
func (r *Renderer) Draw(sim *systems.Simulation) {
	r.screen.Clear()
	grid := sim.Grid()

	for _, tile := range grid.Tiles() {
		gp := tile.GridPos()
		ch, style := tileGlyph(tile.Kind())
		r.screen.SetContent(gp.X, gp.Y, ch, nil, style)
	}

	for _, t := range sim.Towers() {
		switch t.Kind {
		case types.TowerLava:
			r.screen.SetContent(t.GridPos.X, t.GridPos.Y, GlyphLavaTower, nil, styleLava)
		case types.TowerBlockerDown:
			r.fillCells(t.Rect, GlyphBlockerDown, styleBlocker)
		case types.TowerBlockerUp:
			r.fillCells(t.Rect, GlyphBlockerUp, styleBlocker)
		}
	}

	for _, e := range sim.Effects() {
		gp := cellOf(e.Hitbox)
		ch := GlyphLavaDrop
		if e.Kind == types.EffectLavaSplash {
			ch = GlyphLavaSplash
		}
		r.screen.SetContent(gp.X, gp.Y, ch, nil, styleLava)
	}

	for _, e := range sim.Enemies() {
		gp := cellOf(e.Hitbox)
		ch := GlyphEnemyLeft
		if e.Facing == types.FacingRight {
			ch = GlyphEnemyRight
		}
		r.screen.SetContent(gp.X, gp.Y, ch, nil, styleEnemy)
	}

	// 光标：反色显示当前格子
	if grid.InBounds(r.Cursor.X, r.Cursor.Y) {
		ch, _, style, _ := r.screen.GetContent(r.Cursor.X, r.Cursor.Y)
		r.screen.SetContent(r.Cursor.X, r.Cursor.Y, ch, nil, style.Reverse(true))
	}

	for i, line := range r.statusLines(sim) {
		r.drawText(0, grid.Height()+1+i, line, styleHUD)
	}
	r.screen.Show()
}

// statusLines 地图下方的状态栏
func (r *Renderer) statusLines(sim *systems.Simulation) []string {
	w := sim.World()
	lines := []string{
		fmt.Sprintf("%s  health %d  speed x%g  frame %d", sim.Level().Config.Name, w.Health, w.Speed(), w.Frame),
		fmt.Sprintf("tower [1-3]: %s (%d left)  cursor (%d,%d)", r.Selected, sim.TowerSystem().Remaining(r.Selected), r.Cursor.X, r.Cursor.Y),
		sim.Spawner().Status(),
	}
	if r.Message != "" {
		lines = append(lines, r.Message)
	}
	return lines
}

// fillCells 用字符填充矩形覆盖的所有格子
func (r *Renderer) fillCells(rect utils.Rect, ch rune, style tcell.Style) {
	tl := utils.PosToGridPos(rect.TopLeft())
	br := utils.PosToGridPos(utils.Point{X: rect.Right - 1, Y: rect.Bottom - 1})
	for y := tl.Y; y <= br.Y; y++ {
		for x := tl.X; x <= br.X; x++ {
			if x >= 0 && y >= 0 {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// cellOf 碰撞盒中心所在的格子
func cellOf(hitbox utils.Rect) utils.GridPos {
	return utils.PosToGridPos(utils.Point{
		X: (hitbox.Left + hitbox.Right) / 2,
		Y: (hitbox.Top + hitbox.Bottom) / 2,
	})
}
