package systems

import (
	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// EffectSystem 推进临时效果
//   - 岩浆滴：按重力下落，只检查自己所在的列，不检查建筑；落地时请求一个飞溅并移除自己
//   - 飞溅：播放一次性帧动画，播放到最后一帧时移除
type EffectSystem struct {
	entityManager *ecs.EntityManager
	tiles         TileQuery
}

// NewEffectSystem 创建效果系统
func NewEffectSystem(em *ecs.EntityManager, tiles TileQuery) *EffectSystem {
	return &EffectSystem{
		entityManager: em,
		tiles:         tiles,
	}
}

// Advance 推进单个效果一帧
func (s *EffectSystem) Advance(w *game.World, id ecs.EntityID) TickReport {
	effect, ok := ecs.GetComponent[*components.EffectComponent](s.entityManager, id)
	if !ok {
		return TickReport{Keep: true}
	}

	switch effect.Kind {
	case types.EffectLavaDrop:
		return s.advanceLavaDrop(w, id)
	case types.EffectLavaSplash:
		return s.advanceLavaSplash(w, id)
	}
	return TickReport{Keep: false}
}

func (s *EffectSystem) advanceLavaDrop(w *game.World, id ecs.EntityID) TickReport {
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	hb, ok2 := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)
	if !ok1 || !ok2 {
		return TickReport{Keep: false}
	}

	res := stepFall(w, pos, hb, fallRules{
		tiles:   s.tiles,
		columns: ownColumn,
	})
	syncHitbox(pos, hb)

	switch res.Outcome {
	case OutcomeSettled:
		// 落点取岩浆滴最下面一行像素所在的格子
		landing := utils.PosToGridPos(utils.Point{X: hb.Rect.Left, Y: hb.Rect.Bottom - 1})
		return TickReport{
			Keep:  false,
			Spawn: &SpawnRequest{Kind: types.EffectLavaSplash, GridPos: landing},
		}
	case OutcomeRemoved:
		return TickReport{Keep: false}
	}
	return TickReport{Keep: true}
}

func (s *EffectSystem) advanceLavaSplash(w *game.World, id ecs.EntityID) TickReport {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
	if !ok {
		return TickReport{Keep: false}
	}
	AdvanceAnimation(anim, w.DT)
	return TickReport{Keep: !anim.Finished}
}
