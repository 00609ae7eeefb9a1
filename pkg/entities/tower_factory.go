package entities

import (
	"fmt"

	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// TowerRect 返回建筑在世界中的碰撞区域
//   - BlockerDown: 放置格下方两格
//   - BlockerUp:   放置格上方两格
//   - Lava:        放置格下方一格（不阻挡，仅用于调试显示）
func TowerRect(kind types.TowerType, gridPos utils.GridPos) utils.Rect {
	p := utils.GridPosToPos(gridPos)
	switch kind {
	case types.TowerBlockerDown:
		return utils.NewRect(p.X, p.Y+utils.TileSize, p.X+utils.TileSize, p.Y+3*utils.TileSize)
	case types.TowerBlockerUp:
		return utils.NewRect(p.X, p.Y-2*utils.TileSize, p.X+utils.TileSize, p.Y)
	default:
		return utils.NewRect(p.X, p.Y+utils.TileSize, p.X+utils.TileSize, p.Y+2*utils.TileSize)
	}
}

// towerDrawRect 相对于放置格左上角的绘制区域
func towerDrawRect(kind types.TowerType) utils.Rect {
	switch kind {
	case types.TowerBlockerDown:
		return utils.NewRect(0, utils.TileSize, utils.TileSize, 3*utils.TileSize)
	case types.TowerBlockerUp:
		return utils.NewRect(0, -2*utils.TileSize, utils.TileSize, 0)
	default:
		return utils.NewRect(0, 20, utils.TileSize, utils.TileSize+20)
	}
}

// NewTower 在格子 gridPos 创建一个建筑
// 放置合法性（格子类型、占用、数量）由 TowerSystem 检查，这里只负责组装组件
func NewTower(em *ecs.EntityManager, kind types.TowerType, gridPos utils.GridPos) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	switch kind {
	case types.TowerBlockerDown, types.TowerBlockerUp, types.TowerLava:
	default:
		return 0, fmt.Errorf("unknown tower kind %d", kind)
	}

	p := utils.GridPosToPos(gridPos)
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		FracX: float64(p.X),
		FracY: float64(p.Y),
		X:     p.X,
		Y:     p.Y,
		GridX: gridPos.X,
		GridY: gridPos.Y,
	})
	ecs.AddComponent(em, entityID, &components.TowerComponent{
		Kind:      kind,
		GridPos:   gridPos,
		Direction: kind.Direction(),
		Rect:      TowerRect(kind, gridPos),
	})
	ecs.AddComponent(em, entityID, &components.RenderComponent{
		DrawRect: towerDrawRect(kind),
		Visible:  true,
	})

	if kind == types.TowerLava {
		ecs.AddComponent(em, entityID, &components.EmitterComponent{
			Kind:   types.EffectLavaDrop,
			Target: utils.GridPos{X: gridPos.X, Y: gridPos.Y + 1},
			Timer:  config.LavaFirstEmitDelay,
			Period: config.LavaEmitPeriod,
		})
		ecs.AddComponent(em, entityID, &components.AnimationComponent{
			FrameCount: config.LavaTowerFrameCount,
			FrameTime:  config.LavaTowerFrameTime,
			Timer:      config.LavaTowerFrameTime,
			Loop:       true,
		})
	}

	return entityID, nil
}
