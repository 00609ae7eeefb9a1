package entities

import (
	"fmt"

	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// 效果的碰撞盒占满一个格子，绘制区域各不相同
var (
	effectHitbox       = utils.NewRect(0, 0, utils.TileSize, utils.TileSize)
	lavaDropDrawRect   = utils.NewRect(8, 10, 24, 38)
	lavaSplashDrawRect = utils.NewRect(0, 13, 32, 45)
)

// NewEffect 在格子 gridPos 创建一个临时效果
//
// 岩浆滴没有动画，由 EffectSystem 按重力下落；
// 飞溅带有一次性帧动画，播放到最后一帧后被移除。
func NewEffect(em *ecs.EntityManager, kind types.EffectKind, gridPos utils.GridPos) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	var drawRect utils.Rect
	switch kind {
	case types.EffectLavaDrop:
		drawRect = lavaDropDrawRect
	case types.EffectLavaSplash:
		drawRect = lavaSplashDrawRect
	default:
		return 0, fmt.Errorf("unknown effect kind %d", kind)
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
	ecs.AddComponent(em, entityID, &components.HitboxComponent{
		Offset: effectHitbox,
		Rect:   effectHitbox.At(p),
	})
	ecs.AddComponent(em, entityID, &components.EffectComponent{Kind: kind})
	ecs.AddComponent(em, entityID, &components.RenderComponent{
		DrawRect: drawRect,
		Visible:  true,
	})

	if kind == types.EffectLavaSplash {
		ecs.AddComponent(em, entityID, &components.AnimationComponent{
			FrameCount: config.LavaSplashFrameCount,
			FrameTime:  config.LavaSplashFrameTime,
			Timer:      config.LavaSplashFrameTime,
		})
	}

	return entityID, nil
}
