package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/entities"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// TickSummary 一帧模拟的统计
type TickSummary struct {
	Frame          uint64
	EnemiesSpawned int
	EnemiesRemoved int
	EffectsSpawned int
	EffectsRemoved int
	HealthLost     int
}

// Simulation 模拟核心：把调度器、建筑、敌人和效果按固定顺序串起来
//
// 每帧 Tick 的顺序：
//  1. 推进调度器，需要时在随机出生点生成敌人
//  2. 推进建筑发射器（和待机动画），收集生成请求
//  3. 推进所有敌人，标记需要移除的敌人
//  4. 推进所有效果，标记需要移除的效果并收集后继效果请求
//  5. 按请求生成新效果
//  6. 清理所有被标记的实体
//
// 模拟不依赖渲染环境，完全由 Tick 驱动，单线程执行。
type Simulation struct {
	entityManager *ecs.EntityManager
	level         *game.Level
	world         *game.World
	rng           *utils.PRNG
	spawnPoints   []utils.GridPos

	spawner    *Spawner
	towers     *TowerSystem
	enemies    *EnemyMovementSystem
	effects    *EffectSystem
	animations *AnimationSystem
}

// NewSimulation 为关卡创建模拟
// seed 非 0 时覆盖关卡配置中的种子；两者都为 0 时按时间生成
func NewSimulation(level *game.Level, seed int64) (*Simulation, error) {
	if level == nil || level.Grid == nil || level.Config == nil {
		return nil, fmt.Errorf("simulation requires a loaded level")
	}
	spawnTiles := level.Grid.Spawns()
	if len(spawnTiles) == 0 {
		return nil, fmt.Errorf("level %s: %w", level.Config.ID, game.ErrNoSpawnTiles)
	}
	if seed == 0 {
		seed = level.Config.Seed
	}

	em := ecs.NewEntityManager()
	towers := NewTowerSystem(em, level.Grid, level.Config.Towers)

	sim := &Simulation{
		entityManager: em,
		level:         level,
		world:         game.NewWorld(level.Config.Health),
		rng:           utils.NewPRNG(seed),
		spawner:       NewSpawner(level.Config.Enemies),
		towers:        towers,
		enemies:       NewEnemyMovementSystem(em, level.Grid, towers),
		effects:       NewEffectSystem(em, level.Grid),
		animations:    NewAnimationSystem(em),
	}
	for _, t := range spawnTiles {
		sim.spawnPoints = append(sim.spawnPoints, t.GridPos())
	}

	log.Printf("[Simulation] 关卡 %s 就绪: 生命 %d, 种子 %d", level.Config.ID, sim.world.Health, sim.rng.Seed())
	return sim, nil
}

// Tick 执行一帧模拟
func (s *Simulation) Tick(deltaTime float64) TickSummary {
	w := s.world
	w.BeginTick(deltaTime)
	summary := TickSummary{Frame: w.Frame}
	healthBefore := w.Health

	// 1. 调度器
	if s.spawner.Advance(w.DT) {
		if _, err := s.SpawnEnemy(); err != nil {
			log.Printf("[Simulation] 生成敌人失败: %v", err)
		} else {
			summary.EnemiesSpawned++
		}
	}

	// 2. 建筑发射器
	requests := s.towers.Update(w)
	s.animations.Update(w)

	// 3. 敌人
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		report := s.enemies.Advance(w, id)
		if !report.Keep {
			s.entityManager.DestroyEntity(id)
			summary.EnemiesRemoved++
		}
		if report.Spawn != nil {
			requests = append(requests, *report.Spawn)
		}
	}

	// 4. 效果
	for _, id := range ecs.GetEntitiesWith1[*components.EffectComponent](s.entityManager) {
		report := s.effects.Advance(w, id)
		if !report.Keep {
			s.entityManager.DestroyEntity(id)
			summary.EffectsRemoved++
		}
		if report.Spawn != nil {
			requests = append(requests, *report.Spawn)
		}
	}

	// 5. 生成新效果
	for _, req := range requests {
		if _, err := entities.NewEffect(s.entityManager, req.Kind, req.GridPos); err != nil {
			log.Printf("[Simulation] 生成效果 %s 失败: %v", req.Kind, err)
			continue
		}
		summary.EffectsSpawned++
	}

	// 6. 清理
	s.entityManager.RemoveMarkedEntities()

	summary.HealthLost = healthBefore - w.Health
	return summary
}

// SpawnEnemy 在随机出生点生成一个敌人（调度器和调试按键共用）
func (s *Simulation) SpawnEnemy() (ecs.EntityID, error) {
	spawn := s.spawnPoints[s.rng.Intn(len(s.spawnPoints))]
	return entities.NewEnemy(s.entityManager, spawn)
}

// PlaceTower 在格子上放置建筑
func (s *Simulation) PlaceTower(kind types.TowerType, gridPos utils.GridPos) error {
	_, err := s.towers.Place(kind, gridPos)
	return err
}

// RemoveTower 拆除格子上的建筑，在下一帧结束时真正移除
func (s *Simulation) RemoveTower(gridPos utils.GridPos) error {
	return s.towers.Remove(gridPos)
}

// World 共享世界状态（生命值、速度、帧数）
func (s *Simulation) World() *game.World { return s.world }

// Level 当前关卡
func (s *Simulation) Level() *game.Level { return s.level }

// Grid 关卡网格
func (s *Simulation) Grid() *game.Grid { return s.level.Grid }

// Spawner 敌人调度器（只读使用）
func (s *Simulation) Spawner() *Spawner { return s.spawner }

// TowerSystem 建筑系统
func (s *Simulation) TowerSystem() *TowerSystem { return s.towers }

// EntityManager 实体管理器
func (s *Simulation) EntityManager() *ecs.EntityManager { return s.entityManager }

// Seed 实际使用的随机种子
func (s *Simulation) Seed() int64 { return s.rng.Seed() }

// Finished 所有敌人都已生成并离场
func (s *Simulation) Finished() bool {
	return s.spawner.Done() && len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)) == 0
}
