package components

import "github.com/gonewx/tddown/pkg/types"

// EnemyComponent 敌人的行为状态
type EnemyComponent struct {
	Facing  types.Facing // 当前朝向，落地后按朝向行走
	Falling bool         // 上一帧是否处于下落状态
}
