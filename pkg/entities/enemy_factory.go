package entities

import (
	"fmt"
	"log"

	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// EnemyHitbox 敌人碰撞盒（相对于像素位置）
var EnemyHitbox = utils.NewRect(config.EnemyHitboxLeft, config.EnemyHitboxTop, config.EnemyHitboxRight, config.EnemyHitboxBottom)

// NewEnemy 在出生点格子创建一个敌人
// 敌人出生时朝左，处于下落状态，由 EnemyMovementSystem 驱动
//
// 参数:
//   - em: 实体管理器
//   - spawn: 出生点格子坐标
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID
//   - error: em 为 nil 时返回错误
func NewEnemy(em *ecs.EntityManager, spawn utils.GridPos) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	p := utils.GridPosToPos(spawn)
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		FracX: float64(p.X),
		FracY: float64(p.Y),
		X:     p.X,
		Y:     p.Y,
		GridX: spawn.X,
		GridY: spawn.Y,
	})
	ecs.AddComponent(em, entityID, &components.HitboxComponent{
		Offset: EnemyHitbox,
		Rect:   EnemyHitbox.At(p),
	})
	ecs.AddComponent(em, entityID, &components.EnemyComponent{
		Facing:  types.FacingLeft,
		Falling: true,
	})
	ecs.AddComponent(em, entityID, &components.RenderComponent{
		DrawRect: EnemyHitbox,
		Visible:  true,
	})

	log.Printf("[EnemyFactory] 创建敌人 %d 于格子 (%d, %d)", entityID, spawn.X, spawn.Y)
	return entityID, nil
}
