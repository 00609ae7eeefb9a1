package game

import (
	"github.com/gonewx/tddown/pkg/config"
)

// World 每帧在各系统之间共享的可变状态
//
// 显式传入每个系统的 Update，不使用全局单例，
// 这样模拟可以脱离渲染环境单独测试。
type World struct {
	// DT 本帧的模拟时间步长（秒），已乘以速度倍率
	DT float64
	// Frame 已执行的帧数
	Frame uint64
	// Health 剩余生命值，敌人到达终点时减少
	Health int

	speedIndex    int
	scaledGravity float64
}

// NewWorld 创建初始生命值为 health 的世界状态
func NewWorld(health int) *World {
	return &World{Health: health}
}

// BeginTick 开始新的一帧
// 原始时间步长先被限制在 MaxDeltaTime 内，再乘以速度倍率
func (w *World) BeginTick(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	w.DT = deltaTime * w.Speed()
	w.scaledGravity = config.Gravity * config.GravityScale * w.DT
	w.Frame++
}

// ScaledGravity 本帧的下落距离（像素）
func (w *World) ScaledGravity() float64 {
	return w.scaledGravity
}

// WalkDistance 本帧的水平行走距离（像素）
func (w *World) WalkDistance() float64 {
	return config.WalkingSpeed * w.DT
}

// Damage 扣除生命值
func (w *World) Damage(amount int) {
	w.Health -= amount
}

// IsRunning 生命值耗尽后模拟停止
func (w *World) IsRunning() bool {
	return w.Health > 0
}

// Speed 当前速度倍率
func (w *World) Speed() float64 {
	return config.GameSpeeds[w.speedIndex]
}

// CycleSpeed 切换到下一个速度档位（x1 -> x2 -> x3 -> x1）
func (w *World) CycleSpeed() float64 {
	w.speedIndex = (w.speedIndex + 1) % len(config.GameSpeeds)
	return w.Speed()
}
