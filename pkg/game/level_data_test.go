package game

import (
	"os"
	"testing"
)

// TestShippedLevels 检查 data/levels 下的所有关卡都能加载
func TestShippedLevels(t *testing.T) {
	fsys := os.DirFS("../..")
	paths, err := ListLevels(fsys, "data/levels")
	if err != nil {
		t.Fatalf("ListLevels() failed: %v", err)
	}
	if len(paths) < 3 {
		t.Fatalf("expected at least 3 shipped levels, got %v", paths)
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			level, err := LoadLevel(fsys, p)
			if err != nil {
				t.Fatalf("LoadLevel() failed: %v", err)
			}
			if level.Config.TotalEnemies() == 0 {
				t.Error("level has no enemies")
			}
			goals := 0
			for _, tile := range level.Grid.Tiles() {
				if tile.Kind().String() == "goal" {
					goals++
				}
			}
			if goals == 0 {
				t.Error("level has no goal tiles")
			}
		})
	}
}
