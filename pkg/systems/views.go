package systems

import (
	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// 渲染层读取的只读快照，矩形都是世界像素坐标

// EnemyView 敌人快照
type EnemyView struct {
	ID       ecs.EntityID
	Pos      utils.Point
	GridPos  utils.GridPos
	Hitbox   utils.Rect
	DrawRect utils.Rect
	Facing   types.Facing
	Falling  bool
}

// EffectView 效果快照
type EffectView struct {
	ID       ecs.EntityID
	Kind     types.EffectKind
	Pos      utils.Point
	Hitbox   utils.Rect
	DrawRect utils.Rect
	Frame    int
}

// TowerView 建筑快照
type TowerView struct {
	ID       ecs.EntityID
	Kind     types.TowerType
	GridPos  utils.GridPos
	Rect     utils.Rect
	DrawRect utils.Rect
	Frame    int
}

// Enemies 按创建顺序返回所有敌人
func (s *Simulation) Enemies() []EnemyView {
	em := s.entityManager
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.HitboxComponent](em)
	views := make([]EnemyView, 0, len(ids))
	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		hb, _ := ecs.GetComponent[*components.HitboxComponent](em, id)
		p := utils.Point{X: pos.X, Y: pos.Y}
		views = append(views, EnemyView{
			ID:       id,
			Pos:      p,
			GridPos:  utils.GridPos{X: pos.GridX, Y: pos.GridY},
			Hitbox:   hb.Rect,
			DrawRect: drawRect(em, id, p, hb.Rect),
			Facing:   enemy.Facing,
			Falling:  enemy.Falling,
		})
	}
	return views
}

// Effects 按创建顺序返回所有效果
func (s *Simulation) Effects() []EffectView {
	em := s.entityManager
	ids := ecs.GetEntitiesWith3[*components.EffectComponent, *components.PositionComponent, *components.HitboxComponent](em)
	views := make([]EffectView, 0, len(ids))
	for _, id := range ids {
		effect, _ := ecs.GetComponent[*components.EffectComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		hb, _ := ecs.GetComponent[*components.HitboxComponent](em, id)
		p := utils.Point{X: pos.X, Y: pos.Y}
		v := EffectView{
			ID:       id,
			Kind:     effect.Kind,
			Pos:      p,
			Hitbox:   hb.Rect,
			DrawRect: drawRect(em, id, p, hb.Rect),
		}
		if anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id); ok {
			v.Frame = anim.Frame
		}
		views = append(views, v)
	}
	return views
}

// Towers 按放置顺序返回所有建筑
func (s *Simulation) Towers() []TowerView {
	em := s.entityManager
	ids := ecs.GetEntitiesWith1[*components.TowerComponent](em)
	views := make([]TowerView, 0, len(ids))
	for _, id := range ids {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		tower, _ := ecs.GetComponent[*components.TowerComponent](em, id)
		p := utils.GridPosToPos(tower.GridPos)
		v := TowerView{
			ID:       id,
			Kind:     tower.Kind,
			GridPos:  tower.GridPos,
			Rect:     tower.Rect,
			DrawRect: drawRect(em, id, p, tower.Rect),
		}
		if anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id); ok {
			v.Frame = anim.Frame
		}
		views = append(views, v)
	}
	return views
}

func drawRect(em *ecs.EntityManager, id ecs.EntityID, p utils.Point, fallback utils.Rect) utils.Rect {
	if render, ok := ecs.GetComponent[*components.RenderComponent](em, id); ok {
		return render.DrawRect.At(p)
	}
	return fallback
}
