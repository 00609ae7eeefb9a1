package entities

import (
	"testing"

	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/ecs"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

func TestTowerRect(t *testing.T) {
	gp := utils.GridPos{X: 2, Y: 3} // 像素 (64, 96)
	tests := []struct {
		kind types.TowerType
		want utils.Rect
	}{
		{types.TowerBlockerDown, utils.NewRect(64, 128, 96, 192)},
		{types.TowerBlockerUp, utils.NewRect(64, 32, 96, 96)},
		{types.TowerLava, utils.NewRect(64, 128, 96, 160)},
	}
	for _, tt := range tests {
		if got := TowerRect(tt.kind, gp); got != tt.want {
			t.Errorf("TowerRect(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestNewTower(t *testing.T) {
	em := ecs.NewEntityManager()

	blocker, err := NewTower(em, types.TowerBlockerUp, utils.GridPos{X: 1, Y: 4})
	if err != nil {
		t.Fatalf("NewTower(blockerUp) failed: %v", err)
	}
	tower, ok := ecs.GetComponent[*components.TowerComponent](em, blocker)
	if !ok {
		t.Fatal("tower should have TowerComponent")
	}
	if tower.Direction != types.DirUp || !tower.Blocks() {
		t.Errorf("blockerUp = %+v", tower)
	}
	if ecs.HasComponent[*components.EmitterComponent](em, blocker) {
		t.Error("blocker should not emit")
	}

	lava, err := NewTower(em, types.TowerLava, utils.GridPos{X: 5, Y: 2})
	if err != nil {
		t.Fatalf("NewTower(lava) failed: %v", err)
	}
	emitter, ok := ecs.GetComponent[*components.EmitterComponent](em, lava)
	if !ok {
		t.Fatal("lava tower should have EmitterComponent")
	}
	if emitter.Kind != types.EffectLavaDrop || emitter.Target != (utils.GridPos{X: 5, Y: 3}) {
		t.Errorf("emitter = %+v", emitter)
	}
	if emitter.Timer != config.LavaFirstEmitDelay || emitter.Period != config.LavaEmitPeriod {
		t.Errorf("emitter timing = %v/%v", emitter.Timer, emitter.Period)
	}
	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, lava)
	if !ok || !anim.Loop || anim.FrameCount != config.LavaTowerFrameCount {
		t.Errorf("lava idle animation = %+v, ok=%v", anim, ok)
	}
	lavaTower, _ := ecs.GetComponent[*components.TowerComponent](em, lava)
	if lavaTower.Blocks() {
		t.Error("lava tower must not block")
	}

	if _, err := NewTower(em, types.TowerType(42), utils.GridPos{}); err == nil {
		t.Error("expected error for unknown tower kind")
	}
}
