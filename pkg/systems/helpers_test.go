package systems

import (
	"testing"

	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/utils"
)

// newTickWorld 创建一个已开始一帧（DT=0.1）的世界
func newTickWorld(health int) *game.World {
	w := game.NewWorld(health)
	w.BeginTick(0.1)
	return w
}

// noStructures 没有任何建筑
type noStructures struct{}

func (noStructures) GetCollidedTower(utils.Rect) (*components.TowerComponent, bool) {
	return nil, false
}

// rectStructures 由固定矩形组成的阻挡建筑
type rectStructures struct {
	rects []utils.Rect
}

func (r rectStructures) GetCollidedTower(probe utils.Rect) (*components.TowerComponent, bool) {
	for _, rect := range r.rects {
		if rect.Intersecting(probe) {
			return &components.TowerComponent{Rect: rect}, true
		}
	}
	return nil, false
}

func mustPosition(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return pos
}

func mustHitbox(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.HitboxComponent {
	t.Helper()
	hb, ok := ecs.GetComponent[*components.HitboxComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no HitboxComponent", id)
	}
	return hb
}

func mustEnemy(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.EnemyComponent {
	t.Helper()
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no EnemyComponent", id)
	}
	return enemy
}

// newTestLevel 从 YAML 文本构建关卡
func newTestLevel(t *testing.T, yamlText string) *game.Level {
	t.Helper()
	cfg, err := config.ParseLevelConfig([]byte(yamlText))
	if err != nil {
		t.Fatalf("ParseLevelConfig() failed: %v", err)
	}
	level, err := game.NewLevel(cfg, nil)
	if err != nil {
		t.Fatalf("NewLevel() failed: %v", err)
	}
	return level
}
