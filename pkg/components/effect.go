package components

import "github.com/gonewx/tddown/pkg/types"

// EffectComponent 临时效果（岩浆滴、飞溅）
type EffectComponent struct {
	Kind types.EffectKind
}
