package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/tddown/pkg/config"
)

// SpawnSpan 波次中的一个阶段：在 Time 秒内均匀生成 Count 个敌人
//
// 每隔 Time/Count 秒生成一个；生成数达到 Count 后阶段结束，之后不再生成。
type SpawnSpan struct {
	time    float64
	count   int
	spawned int
	timer   float64
}

// SpanStep 阶段推进一次的结果
type SpanStep struct {
	Spawn    bool // 本次是否生成一个敌人
	Finished bool // 阶段是否已经完成（每次都会重新计算）
}

// NewSpawnSpan 创建阶段；调用方保证 time > 0 且 count > 0（见 NewSpawner 的过滤）
func NewSpawnSpan(time float64, count int) *SpawnSpan {
	return &SpawnSpan{time: time, count: count}
}

// Interval 两次生成之间的间隔（秒）
func (s *SpawnSpan) Interval() float64 {
	return s.time / float64(s.count)
}

// Rate 每秒生成的敌人数
func (s *SpawnSpan) Rate() float64 {
	return float64(s.count) / s.time
}

// Count 阶段需要生成的敌人总数
func (s *SpawnSpan) Count() int { return s.count }

// Spawned 阶段已生成的敌人数
func (s *SpawnSpan) Spawned() int { return s.spawned }

// Advance 推进阶段计时器
func (s *SpawnSpan) Advance(dt float64) SpanStep {
	if s.spawned >= s.count {
		return SpanStep{Finished: true}
	}

	var step SpanStep
	s.timer += dt
	if s.timer >= s.Interval() {
		s.timer = 0
		s.spawned++
		step.Spawn = true
	}
	step.Finished = s.spawned >= s.count
	return step
}

// Spawner 按顺序执行各个阶段的敌人生成调度器
//
// currentSpan 只增不减，等于阶段数时调度器进入终止状态。
// spawned/totalToSpawn 只用于显示进度，不参与控制流程。
type Spawner struct {
	spans        []*SpawnSpan
	currentSpan  int
	spawned      int
	totalToSpawn int
}

// NewSpawner 根据关卡配置创建调度器
// count <= 0 或 time <= 0 的阶段会被丢弃（避免除零）
func NewSpawner(spans []config.SpawnSpanConfig) *Spawner {
	s := &Spawner{}
	for i, sc := range spans {
		if sc.Count <= 0 || sc.Time <= 0 {
			log.Printf("[Spawner] 忽略无效阶段 %d: time=%.2f count=%d", i, sc.Time, sc.Count)
			continue
		}
		s.spans = append(s.spans, NewSpawnSpan(sc.Time, sc.Count))
		s.totalToSpawn += sc.Count
	}
	log.Printf("[Spawner] 共 %d 个阶段, %d 个敌人", len(s.spans), s.totalToSpawn)
	return s
}

// Advance 推进当前阶段，返回本帧是否应生成一个敌人
func (s *Spawner) Advance(dt float64) bool {
	if s.Done() {
		return false
	}

	step := s.spans[s.currentSpan].Advance(dt)
	if step.Spawn {
		s.spawned++
	}
	if step.Finished {
		s.currentSpan++
		log.Printf("[Spawner] 阶段完成，进入阶段 %d/%d", s.currentSpan, len(s.spans))
	}
	return step.Spawn
}

// Done 所有阶段是否都已完成
func (s *Spawner) Done() bool {
	return s.currentSpan >= len(s.spans)
}

// Spawned 已生成的敌人总数
func (s *Spawner) Spawned() int { return s.spawned }

// TotalToSpawn 所有有效阶段的敌人总数
func (s *Spawner) TotalToSpawn() int { return s.totalToSpawn }

// CurrentSpan 当前阶段索引（终止时等于阶段数）
func (s *Spawner) CurrentSpan() int { return s.currentSpan }

// SpanCount 有效阶段数
func (s *Spawner) SpanCount() int { return len(s.spans) }

// CurrentRate 当前阶段的生成速率（个/秒），终止后为 0
func (s *Spawner) CurrentRate() float64 {
	if s.Done() {
		return 0
	}
	return s.spans[s.currentSpan].Rate()
}

// Status 进度文本，如 "spawned 3/10 (2.00/sec)"
func (s *Spawner) Status() string {
	return fmt.Sprintf("spawned %d/%d (%.2f/sec)", s.spawned, s.totalToSpawn, s.CurrentRate())
}
