package components

import (
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// EmitterComponent 周期性生成效果的发射器（挂在建筑实体上）
// Timer 递减到 0 时生成一个 Kind 效果到 Target 格子，并重置为 Period
type EmitterComponent struct {
	Kind   types.EffectKind
	Target utils.GridPos
	Timer  float64 // 距离下次发射的剩余时间（秒）
	Period float64 // 发射周期（秒）
}
