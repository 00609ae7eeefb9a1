package systems

import (
	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/game"
)

// AnimationSystem 推进建筑的待机动画
// 效果的动画由 EffectSystem 在推进效果时一并处理
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update 推进所有建筑动画
func (s *AnimationSystem) Update(w *game.World) {
	for _, id := range ecs.GetEntitiesWith2[*components.TowerComponent, *components.AnimationComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		AdvanceAnimation(anim, w.DT)
	}
}

// AdvanceAnimation 推进帧动画
//
// 计时器减到 0 及以下时切换到下一帧并重置计时器；
// 循环动画回到第 0 帧，非循环动画停在最后一帧并标记 Finished。
func AdvanceAnimation(anim *components.AnimationComponent, dt float64) {
	if anim.FrameCount <= 0 {
		anim.Finished = true
		return
	}

	anim.Timer -= dt
	if anim.Timer <= 0 {
		anim.Timer = anim.FrameTime
		if anim.Loop {
			anim.Frame = (anim.Frame + 1) % anim.FrameCount
		} else if anim.Frame < anim.FrameCount-1 {
			anim.Frame++
		}
	}
	anim.Finished = !anim.Loop && anim.Frame >= anim.FrameCount-1
}
