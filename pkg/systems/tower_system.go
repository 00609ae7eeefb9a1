package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/entities"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// 建筑放置错误
var (
	ErrOutOfBounds    = errors.New("grid position out of bounds")
	ErrNotBuildable   = errors.New("tile is not buildable")
	ErrWrongDirection = errors.New("tower direction does not match tile")
	ErrCellOccupied   = errors.New("tile already has a tower")
	ErrNoTowersLeft   = errors.New("no towers of this kind left")
	ErrNoTower        = errors.New("no tower at grid position")
)

// TowerSystem 管理玩家建筑
//
// 职责：
//   - 放置/拆除建筑，维护每个格子的占用表和剩余数量
//   - 为移动系统提供建筑碰撞查询（实现 StructureQuery）
//   - 推进建筑上的发射器，返回需要生成的效果
type TowerSystem struct {
	entityManager *ecs.EntityManager
	grid          *game.Grid

	occupancy map[utils.GridPos]ecs.EntityID
	remaining map[types.TowerType]int
}

// NewTowerSystem 创建建筑系统
// budget 为本关每种建筑可放置的数量
func NewTowerSystem(em *ecs.EntityManager, grid *game.Grid, budget config.TowerBudget) *TowerSystem {
	remaining := make(map[types.TowerType]int, len(types.AllTowerTypes))
	for _, kind := range types.AllTowerTypes {
		remaining[kind] = budget.Budget(kind)
	}
	return &TowerSystem{
		entityManager: em,
		grid:          grid,
		occupancy:     make(map[utils.GridPos]ecs.EntityID),
		remaining:     remaining,
	}
}

// CanPlace 检查建筑能否放在指定格子，不修改任何状态
func (s *TowerSystem) CanPlace(kind types.TowerType, gridPos utils.GridPos) error {
	tile, ok := s.grid.GetTile(gridPos.X, gridPos.Y)
	if !ok {
		return ErrOutOfBounds
	}

	var tileDir types.Dir
	switch tile.Kind() {
	case types.TileBuildUp:
		tileDir = types.DirUp
	case types.TileBuildDown:
		tileDir = types.DirDown
	default:
		return ErrNotBuildable
	}
	if kind.Direction() != tileDir {
		return ErrWrongDirection
	}
	if s.IsOccupied(gridPos) {
		return ErrCellOccupied
	}
	if s.remaining[kind] <= 0 {
		return ErrNoTowersLeft
	}
	return nil
}

// Place 在格子上放置建筑
func (s *TowerSystem) Place(kind types.TowerType, gridPos utils.GridPos) (ecs.EntityID, error) {
	if err := s.CanPlace(kind, gridPos); err != nil {
		return 0, fmt.Errorf("cannot place %s at (%d, %d): %w", kind, gridPos.X, gridPos.Y, err)
	}

	id, err := entities.NewTower(s.entityManager, kind, gridPos)
	if err != nil {
		return 0, err
	}
	s.occupancy[gridPos] = id
	s.remaining[kind]--

	log.Printf("[TowerSystem] 放置 %s 于 (%d, %d), 剩余 %d", kind, gridPos.X, gridPos.Y, s.remaining[kind])
	return id, nil
}

// Remove 拆除格子上的建筑并返还数量
func (s *TowerSystem) Remove(gridPos utils.GridPos) error {
	id, ok := s.occupancy[gridPos]
	if !ok {
		return fmt.Errorf("cannot remove tower at (%d, %d): %w", gridPos.X, gridPos.Y, ErrNoTower)
	}
	if tower, ok := ecs.GetComponent[*components.TowerComponent](s.entityManager, id); ok {
		s.remaining[tower.Kind]++
	}
	delete(s.occupancy, gridPos)
	s.entityManager.DestroyEntity(id)

	log.Printf("[TowerSystem] 拆除 (%d, %d) 的建筑 %d", gridPos.X, gridPos.Y, id)
	return nil
}

// IsOccupied 格子上是否已有建筑
func (s *TowerSystem) IsOccupied(gridPos utils.GridPos) bool {
	_, ok := s.occupancy[gridPos]
	return ok
}

// TowerAt 返回格子上的建筑实体
func (s *TowerSystem) TowerAt(gridPos utils.GridPos) (ecs.EntityID, bool) {
	id, ok := s.occupancy[gridPos]
	return id, ok
}

// Remaining 某种建筑的剩余可放置数量
func (s *TowerSystem) Remaining(kind types.TowerType) int {
	return s.remaining[kind]
}

// GetCollidedTower 返回第一个与矩形相交且会阻挡移动的建筑
// 按建筑创建顺序检查，结果是确定的
func (s *TowerSystem) GetCollidedTower(r utils.Rect) (*components.TowerComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.TowerComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, id)
		if tower.Blocks() && tower.Rect.Intersecting(r) {
			return tower, true
		}
	}
	return nil, false
}

// Update 推进所有发射器
// 计时器减到 0 及以下时重置为周期，并返回一个生成请求
func (s *TowerSystem) Update(w *game.World) []SpawnRequest {
	var requests []SpawnRequest
	for _, id := range ecs.GetEntitiesWith2[*components.TowerComponent, *components.EmitterComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		emitter, _ := ecs.GetComponent[*components.EmitterComponent](s.entityManager, id)
		emitter.Timer -= w.DT
		if emitter.Timer <= 0 {
			emitter.Timer = emitter.Period
			requests = append(requests, SpawnRequest{Kind: emitter.Kind, GridPos: emitter.Target})
		}
	}
	return requests
}
