package systems

import (
	"errors"
	"testing"

	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

func newTowerFixture(budget config.TowerBudget) (*ecs.EntityManager, *TowerSystem) {
	em := ecs.NewEntityManager()
	grid := game.GridFromLayout([]string{
		"d.u",
		"d#u",
		"...",
	})
	return em, NewTowerSystem(em, grid, budget)
}

func TestTowerPlacement(t *testing.T) {
	tests := []struct {
		name    string
		kind    types.TowerType
		pos     utils.GridPos
		wantErr error
	}{
		{"blocker down on build down", types.TowerBlockerDown, utils.GridPos{X: 0, Y: 0}, nil},
		{"lava on build down", types.TowerLava, utils.GridPos{X: 0, Y: 1}, nil},
		{"blocker up on build up", types.TowerBlockerUp, utils.GridPos{X: 2, Y: 0}, nil},
		{"blocker up on build down", types.TowerBlockerUp, utils.GridPos{X: 0, Y: 0}, ErrWrongDirection},
		{"blocker down on build up", types.TowerBlockerDown, utils.GridPos{X: 2, Y: 1}, ErrWrongDirection},
		{"empty tile", types.TowerLava, utils.GridPos{X: 1, Y: 0}, ErrNotBuildable},
		{"terrain tile", types.TowerLava, utils.GridPos{X: 1, Y: 1}, ErrNotBuildable},
		{"out of bounds", types.TowerLava, utils.GridPos{X: -1, Y: 0}, ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, towers := newTowerFixture(config.TowerBudget{BlockerDown: 1, BlockerUp: 1, Lava: 1})
			_, err := towers.Place(tt.kind, tt.pos)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Place() failed: %v", err)
				}
				if !towers.IsOccupied(tt.pos) {
					t.Error("cell should be occupied after placement")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Place() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTowerBudgetAndOccupancy(t *testing.T) {
	em, towers := newTowerFixture(config.TowerBudget{BlockerDown: 1, Lava: 2})
	pos := utils.GridPos{X: 0, Y: 0}

	if _, err := towers.Place(types.TowerBlockerDown, pos); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if towers.Remaining(types.TowerBlockerDown) != 0 {
		t.Errorf("Remaining = %d, want 0", towers.Remaining(types.TowerBlockerDown))
	}

	// 一个格子只能放一个建筑
	if _, err := towers.Place(types.TowerLava, pos); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("error = %v, want ErrCellOccupied", err)
	}
	// 数量用完
	if _, err := towers.Place(types.TowerBlockerDown, utils.GridPos{X: 0, Y: 1}); !errors.Is(err, ErrNoTowersLeft) {
		t.Errorf("error = %v, want ErrNoTowersLeft", err)
	}

	// 拆除后返还数量，格子可再次使用
	if err := towers.Remove(pos); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	em.RemoveMarkedEntities()
	if towers.Remaining(types.TowerBlockerDown) != 1 {
		t.Errorf("Remaining after remove = %d, want 1", towers.Remaining(types.TowerBlockerDown))
	}
	if towers.IsOccupied(pos) {
		t.Error("cell should be free after removal")
	}
	if err := towers.Remove(pos); !errors.Is(err, ErrNoTower) {
		t.Errorf("second Remove() error = %v, want ErrNoTower", err)
	}
}

func TestGetCollidedTower(t *testing.T) {
	_, towers := newTowerFixture(config.TowerBudget{BlockerDown: 1, Lava: 1})
	towers.Place(types.TowerBlockerDown, utils.GridPos{X: 0, Y: 0}) // 阻挡 (0,32)-(32,96)
	towers.Place(types.TowerLava, utils.GridPos{X: 0, Y: 1})        // 不阻挡

	tower, ok := towers.GetCollidedTower(utils.NewRect(20, 40, 40, 50))
	if !ok || tower.Kind != types.TowerBlockerDown {
		t.Fatalf("expected blocker hit, got %+v ok=%v", tower, ok)
	}

	if _, ok := towers.GetCollidedTower(utils.NewRect(40, 0, 60, 20)); ok {
		t.Error("rect away from blockers should not collide")
	}

	// 边缘接触也算碰撞
	if _, ok := towers.GetCollidedTower(utils.NewRect(32, 96, 40, 100)); !ok {
		t.Error("corner-touching rect should collide")
	}

	// 拆除阻挡墙后只剩岩浆塔，岩浆塔从不阻挡
	towers.Remove(utils.GridPos{X: 0, Y: 0})
	if _, ok := towers.GetCollidedTower(utils.NewRect(10, 70, 20, 80)); ok {
		t.Error("removed blocker and lava tower should not collide")
	}
}

// TestTowerEmitter 岩浆塔 1 秒后第一次发射，之后每 3 秒一次
func TestTowerEmitter(t *testing.T) {
	_, towers := newTowerFixture(config.TowerBudget{Lava: 1})
	if _, err := towers.Place(types.TowerLava, utils.GridPos{X: 0, Y: 0}); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}

	w := game.NewWorld(10)
	w.DT = 0.5

	var emittedAt []int
	for tick := 1; tick <= 16; tick++ {
		requests := towers.Update(w)
		for _, req := range requests {
			if req.Kind != types.EffectLavaDrop || req.GridPos != (utils.GridPos{X: 0, Y: 1}) {
				t.Errorf("unexpected request %+v", req)
			}
			emittedAt = append(emittedAt, tick)
		}
	}

	// 0.5s/帧：第 2 帧 (1s)，第 8 帧 (4s)，第 14 帧 (7s)
	want := []int{2, 8, 14}
	if len(emittedAt) != len(want) {
		t.Fatalf("emitted at ticks %v, want %v", emittedAt, want)
	}
	for i := range want {
		if emittedAt[i] != want[i] {
			t.Errorf("emission %d at tick %d, want %d", i, emittedAt[i], want[i])
		}
	}
}

func TestBlockerHasNoEmitter(t *testing.T) {
	_, towers := newTowerFixture(config.TowerBudget{BlockerDown: 1})
	towers.Place(types.TowerBlockerDown, utils.GridPos{X: 0, Y: 0})
	w := game.NewWorld(10)
	w.DT = 10
	if requests := towers.Update(w); len(requests) != 0 {
		t.Errorf("blocker must never emit, got %v", requests)
	}
}
