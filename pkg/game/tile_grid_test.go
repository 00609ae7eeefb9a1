package game

import (
	"testing"

	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

func TestGridGetTile(t *testing.T) {
	grid := GridFromLayout([]string{
		"S..",
		"#G#",
	})

	if grid.Width() != 3 || grid.Height() != 2 {
		t.Fatalf("grid size = %dx%d, want 3x2", grid.Width(), grid.Height())
	}

	tests := []struct {
		name     string
		x, y     int
		wantOK   bool
		wantKind types.TileType
	}{
		{"origin", 0, 0, true, types.TileSpawn},
		{"goal", 1, 1, true, types.TileGoal},
		{"last", 2, 1, true, types.TileTerrainCenter},
		{"negative x", -1, 0, false, 0},
		{"negative y", 0, -1, false, 0},
		{"x past width", 3, 0, false, 0},
		{"y past height", 0, 2, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile, ok := grid.GetTile(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("GetTile(%d,%d) ok = %v, want %v", tt.x, tt.y, ok, tt.wantOK)
			}
			if ok && tile.Kind() != tt.wantKind {
				t.Errorf("GetTile(%d,%d) kind = %v, want %v", tt.x, tt.y, tile.Kind(), tt.wantKind)
			}
			if ok && (tile.GridPos() != utils.GridPos{X: tt.x, Y: tt.y}) {
				t.Errorf("GridPos = %v", tile.GridPos())
			}
		})
	}
}

func TestTileRectAndCollide(t *testing.T) {
	wall := NewTile(types.TileTerrainCenter, 2, 1)
	want := utils.NewRect(64, 32, 96, 64)
	if wall.Rect() != want {
		t.Errorf("Rect() = %v, want %v", wall.Rect(), want)
	}

	// 边缘接触也算碰撞
	if !wall.Collide(utils.NewRect(30, 0, 64, 32)) {
		t.Error("corner-touching rect should collide with wall")
	}
	if wall.Collide(utils.NewRect(0, 0, 63, 31)) {
		t.Error("separated rect should not collide")
	}

	// 空格子永远不碰撞
	empty := NewTile(types.TileEmpty, 2, 1)
	if empty.Collide(want) {
		t.Error("empty tile must never collide")
	}
}

func TestGridSpawns(t *testing.T) {
	grid := GridFromLayout([]string{
		".S.S",
		"S...",
		"####",
	})
	spawns := grid.Spawns()
	want := []utils.GridPos{{X: 1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}}
	if len(spawns) != len(want) {
		t.Fatalf("got %d spawns, want %d", len(spawns), len(want))
	}
	for i, s := range spawns {
		if s.GridPos() != want[i] {
			t.Errorf("spawn %d = %v, want %v", i, s.GridPos(), want[i])
		}
	}
}

func TestNewGridDegenerate(t *testing.T) {
	grid := NewGrid(0, []types.TileType{types.TileSpawn})
	if _, ok := grid.GetTile(0, 0); ok {
		t.Error("zero width grid should have no tiles")
	}

	// 不完整的最后一行被丢弃
	grid = NewGrid(2, []types.TileType{types.TileEmpty, types.TileEmpty, types.TileSpawn})
	if grid.Height() != 1 {
		t.Errorf("Height() = %d, want 1", grid.Height())
	}
}
