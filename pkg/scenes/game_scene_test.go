package scenes

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

const sceneLevelA = `
id: a
name: Level A
health: 1
enemies:
  - time: 1
    count: 1
towers:
  blockerDown: 1
layout:
  - ".S."
  - "..."
  - "d.."
  - "#G#"
`

const sceneLevelB = `
id: b
layout:
  - "S.."
  - "###"
`

func newTestScene(t *testing.T) *GameScene {
	t.Helper()
	fsys := fstest.MapFS{
		"levels/a.yaml": {Data: []byte(sceneLevelA)},
		"levels/b.yaml": {Data: []byte(sceneLevelB)},
	}
	levels, err := game.ListLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("ListLevels() failed: %v", err)
	}
	scene, err := NewGameScene(fsys, "levels/a.yaml", levels, 1)
	if err != nil {
		t.Fatalf("NewGameScene() failed: %v", err)
	}
	return scene
}

func TestGameSceneImplementsInterfaces(t *testing.T) {
	var _ game.Scene = (*GameScene)(nil)
	var _ game.LevelNavigator = (*GameScene)(nil)
}

func TestNewGameSceneMissingLevel(t *testing.T) {
	if _, err := NewGameScene(fstest.MapFS{}, "levels/none.yaml", nil, 1); err == nil {
		t.Error("missing level should fail")
	}
}

func TestGameScenePlacement(t *testing.T) {
	scene := newTestScene(t)

	scene.PlaceSelected(utils.GridPos{X: 0, Y: 0})
	if scene.Message() != "can't build here" {
		t.Errorf("message = %q", scene.Message())
	}

	scene.SelectTower(types.TowerBlockerUp)
	scene.PlaceSelected(utils.GridPos{X: 0, Y: 2})
	if scene.Message() != "wrong direction for this tower" {
		t.Errorf("message = %q", scene.Message())
	}

	scene.SelectTower(types.TowerBlockerDown)
	scene.PlaceSelected(utils.GridPos{X: 0, Y: 2})
	if len(scene.Simulation().Towers()) != 1 {
		t.Fatal("tower should be placed")
	}

	scene.RemoveAt(utils.GridPos{X: 0, Y: 2})
	scene.RemoveAt(utils.GridPos{X: 0, Y: 2})
	if scene.Message() != "no tower here" {
		t.Errorf("message = %q", scene.Message())
	}
}

// TestGameSceneLoses 生命值为 1 的关卡，敌人落入终点后场景进入失败状态
func TestGameSceneLoses(t *testing.T) {
	scene := newTestScene(t)
	for i := 0; i < 200 && scene.State() == StatePlaying; i++ {
		scene.step(0.1)
	}
	if scene.State() != StateLost {
		t.Fatalf("state = %s, want lost", scene.State())
	}

	// 失败后模拟停止推进
	frame := scene.Simulation().World().Frame
	scene.step(0.1)
	if scene.Simulation().World().Frame != frame {
		t.Error("simulation should not advance after losing")
	}

	found := false
	for _, line := range scene.hudLines() {
		if strings.Contains(line, "GAME OVER") {
			found = true
		}
	}
	if !found {
		t.Errorf("HUD should announce game over: %v", scene.hudLines())
	}
}

func TestGameSceneNavigation(t *testing.T) {
	scene := newTestScene(t)

	if next := scene.PendingLevel(); next != "" {
		t.Errorf("no level should be pending, got %q", next)
	}

	scene.Restart()
	if next := scene.PendingLevel(); next != "levels/a.yaml" {
		t.Errorf("restart pending = %q", next)
	}
	if scene.PendingLevel() != "" {
		t.Error("PendingLevel should clear after being read")
	}

	scene.NextLevel(1)
	if next := scene.PendingLevel(); next != "levels/b.yaml" {
		t.Errorf("next pending = %q", next)
	}
	scene.NextLevel(-1)
	if next := scene.PendingLevel(); next != "levels/b.yaml" {
		t.Errorf("previous level should wrap around, got %q", next)
	}
}

func TestGameSceneSpeedAndHUD(t *testing.T) {
	scene := newTestScene(t)
	scene.CycleSpeed()
	if scene.Simulation().World().Speed() != 2 {
		t.Errorf("speed = %v, want 2", scene.Simulation().World().Speed())
	}

	lines := scene.hudLines()
	if !strings.Contains(lines[0], "Level A") || !strings.Contains(lines[0], "speed: x2") {
		t.Errorf("HUD header = %q", lines[0])
	}
	if lines[2] != "spawned 0/1 (1.00/sec)" {
		t.Errorf("HUD spawner line = %q", lines[2])
	}
}
