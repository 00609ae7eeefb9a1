package utils

import (
	"math/rand"
	"time"
)

// PRNG 可设定种子的随机数源
// 出生点选择等随机行为都通过它进行，固定种子即可复现整局模拟
type PRNG struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNG 创建随机数源；seed 为 0 时使用当前时间
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed 返回实际使用的种子（便于日志中复现）
func (p *PRNG) Seed() int64 {
	return p.seed
}

// Intn 返回 [0, n) 内的随机整数
func (p *PRNG) Intn(n int) int {
	return p.rng.Intn(n)
}

// Float64 返回 [0.0, 1.0) 内的随机浮点数
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}
