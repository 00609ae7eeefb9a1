package scenes

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/systems"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameState 关卡场景的状态
type GameState int

const (
	StatePlaying GameState = iota
	StateWon               // 所有敌人已生成并离场
	StateLost              // 生命值耗尽
)

func (s GameState) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "playing"
}

// GameScene 关卡场景：持有一局模拟，处理输入并绘制
//
// 模拟逻辑全部在 systems.Simulation 中，场景只负责把输入翻译成命令、
// 把模拟快照画到屏幕上。
type GameScene struct {
	fsys      fs.FS
	levelPath string
	levels    []string // 可切换的关卡列表（按文件名排序）
	seed      int64

	sim    *systems.Simulation
	camera *Camera
	state  GameState

	selected  types.TowerType
	showDebug bool
	message   string // 最近一次操作的提示（如放置失败原因）

	pendingLevel string

	drag         utils.DragTracker // 中键拖拽平移
	screenWidth  int
	screenHeight int
}

// NewGameScene 从文件系统加载关卡并创建场景
// levels 为可通过按键切换的关卡列表，可以为空
func NewGameScene(fsys fs.FS, levelPath string, levels []string, seed int64) (*GameScene, error) {
	level, err := game.LoadLevel(fsys, levelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}
	sim, err := systems.NewSimulation(level, seed)
	if err != nil {
		return nil, err
	}

	s := &GameScene{
		fsys:         fsys,
		levelPath:    levelPath,
		levels:       levels,
		seed:         seed,
		sim:          sim,
		camera:       NewCamera(),
		selected:     types.TowerBlockerDown,
		screenWidth:  config.GameWindowWidth,
		screenHeight: config.GameWindowHeight,
	}
	s.centerCamera()

	log.Printf("[GameScene] 关卡 %s (%s) 已加载, 种子 %d", level.Config.ID, levelPath, sim.Seed())
	return s, nil
}

// Simulation 当前模拟
func (s *GameScene) Simulation() *systems.Simulation { return s.sim }

// State 当前场景状态
func (s *GameScene) State() GameState { return s.state }

// Selected 当前选中的建筑类型
func (s *GameScene) Selected() types.TowerType { return s.selected }

// Message 最近一次操作提示
func (s *GameScene) Message() string { return s.message }

// PendingLevel 实现 game.LevelNavigator：返回并清除待切换的关卡
func (s *GameScene) PendingLevel() string {
	next := s.pendingLevel
	s.pendingLevel = ""
	return next
}

// Update 处理输入并推进一帧模拟
func (s *GameScene) Update(deltaTime float64) {
	s.handleInput(deltaTime)
	s.step(deltaTime)
}

// step 推进模拟并更新胜负状态
func (s *GameScene) step(deltaTime float64) {
	if s.state != StatePlaying {
		return
	}
	s.sim.Tick(deltaTime)

	switch {
	case !s.sim.World().IsRunning():
		s.state = StateLost
		log.Printf("[GameScene] 生命值耗尽，关卡失败 (帧 %d)", s.sim.World().Frame)
	case s.sim.Finished():
		s.state = StateWon
		log.Printf("[GameScene] 关卡完成，剩余生命 %d", s.sim.World().Health)
	}
}

// SelectTower 选择要放置的建筑类型
func (s *GameScene) SelectTower(kind types.TowerType) {
	s.selected = kind
	s.message = fmt.Sprintf("selected %s", kind)
}

// PlaceSelected 在格子上放置当前选中的建筑
func (s *GameScene) PlaceSelected(gridPos utils.GridPos) {
	if s.state != StatePlaying {
		return
	}
	if err := s.sim.PlaceTower(s.selected, gridPos); err != nil {
		s.message = placementMessage(err)
		log.Printf("[GameScene] 放置失败: %v", err)
		return
	}
	s.message = fmt.Sprintf("placed %s", s.selected)
}

// RemoveAt 拆除格子上的建筑
func (s *GameScene) RemoveAt(gridPos utils.GridPos) {
	if s.state != StatePlaying {
		return
	}
	if err := s.sim.RemoveTower(gridPos); err != nil {
		s.message = placementMessage(err)
		return
	}
	s.message = "tower removed"
}

// CycleSpeed 切换游戏速度
func (s *GameScene) CycleSpeed() {
	s.sim.World().CycleSpeed()
	s.message = fmt.Sprintf("speed x%g", s.sim.World().Speed())
}

// SpawnEnemy 调试：立即在随机出生点生成一个敌人
func (s *GameScene) SpawnEnemy() {
	if _, err := s.sim.SpawnEnemy(); err != nil {
		log.Printf("[GameScene] 调试生成敌人失败: %v", err)
	}
}

// Restart 用相同的种子重新开始当前关卡
func (s *GameScene) Restart() {
	s.pendingLevel = s.levelPath
}

// NextLevel 切换到关卡列表中的相邻关卡（delta 为 1 或 -1）
func (s *GameScene) NextLevel(delta int) {
	if len(s.levels) == 0 {
		return
	}
	current := -1
	for i, p := range s.levels {
		if p == s.levelPath {
			current = i
			break
		}
	}
	next := (current + delta + len(s.levels)) % len(s.levels)
	if current < 0 && delta < 0 {
		next = len(s.levels) - 1
	}
	s.pendingLevel = s.levels[next]
}

// ToggleDebug 显示/隐藏碰撞盒
func (s *GameScene) ToggleDebug() {
	s.showDebug = !s.showDebug
}

func (s *GameScene) centerCamera() {
	grid := s.sim.Grid()
	s.camera.CenterOn(float64(grid.PixelWidth()), float64(grid.PixelHeight()),
		float64(s.screenWidth), float64(s.screenHeight))
}

// placementMessage 把放置错误转换为 HUD 提示
func placementMessage(err error) string {
	switch {
	case errors.Is(err, systems.ErrOutOfBounds):
		return "outside the map"
	case errors.Is(err, systems.ErrNotBuildable):
		return "can't build here"
	case errors.Is(err, systems.ErrWrongDirection):
		return "wrong direction for this tower"
	case errors.Is(err, systems.ErrCellOccupied):
		return "tile already has a tower"
	case errors.Is(err, systems.ErrNoTowersLeft):
		return "no towers of this kind left"
	case errors.Is(err, systems.ErrNoTower):
		return "no tower here"
	}
	return err.Error()
}

// Draw 绘制关卡、实体和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawTiles(screen)
	s.drawTowers(screen)
	s.drawEffects(screen)
	s.drawEnemies(screen)
	if s.showDebug {
		s.drawDebug(screen)
	}
	s.drawHUD(screen)
}
