package systems

import (
	"log"
	"math"

	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// EnemyMovementSystem 敌人移动积分器
//
// 每帧先处理垂直方向（重力下落），只有落地后才处理水平方向（按朝向行走）。
// 两个方向都逐像素推进并在每个中间像素检测碰撞，高速或低帧率下也不会穿过薄墙。
type EnemyMovementSystem struct {
	entityManager *ecs.EntityManager
	tiles         TileQuery
	structures    StructureQuery
}

// NewEnemyMovementSystem 创建敌人移动系统
func NewEnemyMovementSystem(em *ecs.EntityManager, tiles TileQuery, structures StructureQuery) *EnemyMovementSystem {
	return &EnemyMovementSystem{
		entityManager: em,
		tiles:         tiles,
		structures:    structures,
	}
}

// Advance 推进单个敌人一帧
func (s *EnemyMovementSystem) Advance(w *game.World, id ecs.EntityID) TickReport {
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	hb, ok2 := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)
	enemy, ok3 := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok1 || !ok2 || !ok3 {
		return TickReport{Keep: true}
	}

	res := s.moveY(w, pos, hb)
	if res.Outcome == OutcomeSettled {
		res = s.moveX(w, pos, hb, enemy)
	}
	enemy.Falling = res.Outcome == OutcomeFalling

	if res.Outcome == OutcomeRemoved {
		log.Printf("[EnemyMovementSystem] 敌人 %d 被移除: %s", id, res.Reason)
		return TickReport{Keep: false}
	}

	syncHitbox(pos, hb)
	return TickReport{Keep: true}
}

// moveY 垂直方向：下方三列的格子和建筑都参与碰撞，碰到终点扣血并移除
func (s *EnemyMovementSystem) moveY(w *game.World, pos *components.PositionComponent, hb *components.HitboxComponent) MoveResult {
	return stepFall(w, pos, hb, fallRules{
		tiles:       s.tiles,
		structures:  s.structures,
		columns:     enemyColumns,
		goalIsFatal: true,
	})
}

// moveX 水平方向：按朝向逐像素行走
// 碰到建筑或不可通过的格子时累加器对齐回当前像素并掉头，本帧停止行走，
// 因此每帧最多掉头一次；前方格子是终点时扣血并移除，位置不再前进。
func (s *EnemyMovementSystem) moveX(w *game.World, pos *components.PositionComponent, hb *components.HitboxComponent, enemy *components.EnemyComponent) MoveResult {
	dir := enemy.Facing.Sign()
	pos.FracX += float64(dir) * w.WalkDistance()

	for math.Abs(pos.FracX-float64(pos.X)) >= 1 {
		probe := hb.Offset.At(utils.Point{X: pos.X + dir, Y: pos.Y})

		if _, hit := s.structures.GetCollidedTower(probe); hit {
			s.reverse(pos, enemy)
			return MoveResult{Outcome: OutcomeReversed, Reason: ReasonStructure}
		}

		cell := utils.PosToGridPos(probe.TopLeft())
		if next, ok := s.tiles.GetTile(cell.X+dir, cell.Y); ok && next.Collide(probe) {
			if next.Kind() == types.TileGoal {
				w.Damage(1)
				return MoveResult{Outcome: OutcomeRemoved, Reason: ReasonGoal}
			}
			s.reverse(pos, enemy)
			return MoveResult{Outcome: OutcomeReversed, Reason: ReasonTile}
		}

		pos.X += dir
		pos.GridX = utils.PosToGridPos(utils.Point{X: pos.X, Y: pos.Y}).X
	}
	return MoveResult{Outcome: OutcomeWalking}
}

func (s *EnemyMovementSystem) reverse(pos *components.PositionComponent, enemy *components.EnemyComponent) {
	pos.FracX = float64(pos.X)
	enemy.Facing = enemy.Facing.Reverse()
}
