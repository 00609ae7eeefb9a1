package types

import "testing"

func TestTileTypeRuneRoundTrip(t *testing.T) {
	for r, tt := range tileTypeRuneMap {
		got, ok := TileTypeFromRune(r)
		if !ok || got != tt {
			t.Errorf("TileTypeFromRune(%q) = %v, %v", r, got, ok)
		}
		if tt.Rune() != r {
			t.Errorf("%v.Rune() = %q, want %q", tt, tt.Rune(), r)
		}
	}
	if _, ok := TileTypeFromRune('x'); ok {
		t.Error("unknown rune should not map to a tile type")
	}
}

func TestTileTypePassable(t *testing.T) {
	for tt := range tileTypeStringMap {
		if got, want := tt.Passable(), tt == TileEmpty; got != want {
			t.Errorf("%v.Passable() = %v, want %v", tt, got, want)
		}
	}
}

func TestTowerTypeProperties(t *testing.T) {
	tests := []struct {
		kind   TowerType
		dir    Dir
		blocks bool
	}{
		{TowerBlockerDown, DirDown, true},
		{TowerBlockerUp, DirUp, true},
		{TowerLava, DirDown, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if tt.kind.Direction() != tt.dir {
				t.Errorf("Direction() = %v, want %v", tt.kind.Direction(), tt.dir)
			}
			if tt.kind.Blocks() != tt.blocks {
				t.Errorf("Blocks() = %v, want %v", tt.kind.Blocks(), tt.blocks)
			}
			parsed, ok := TowerTypeFromString(tt.kind.String())
			if !ok || parsed != tt.kind {
				t.Errorf("TowerTypeFromString(%q) = %v, %v", tt.kind.String(), parsed, ok)
			}
		})
	}
}

func TestFacingReverse(t *testing.T) {
	if FacingLeft.Reverse() != FacingRight || FacingRight.Reverse() != FacingLeft {
		t.Error("Reverse() should swap left and right")
	}
	if FacingLeft.Sign() != -1 || FacingRight.Sign() != 1 {
		t.Error("Sign() should be -1 for left and 1 for right")
	}
}
