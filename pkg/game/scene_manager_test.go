package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	pending      string
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// PendingLevel implements LevelNavigator.
func (m *MockScene) PendingLevel() string {
	return m.pending
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(800, 600))
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(800, 600))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerLoadLevel(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.LoadLevel("data/levels/level1.yaml"); err == nil {
		t.Error("expected error without a scene factory")
	}

	created := map[string]*MockScene{}
	sm.SetSceneFactory(func(levelPath string) (Scene, error) {
		if levelPath == "broken" {
			return nil, errors.New("boom")
		}
		s := &MockScene{}
		created[levelPath] = s
		return s, nil
	})

	if err := sm.LoadLevel("a"); err != nil {
		t.Fatalf("LoadLevel(a) failed: %v", err)
	}
	if sm.GetCurrentScene() != created["a"] {
		t.Error("current scene should be the one created for a")
	}

	// 创建失败时保留当前场景
	if err := sm.LoadLevel("broken"); err == nil {
		t.Error("expected error from factory")
	}
	if sm.GetCurrentScene() != created["a"] {
		t.Error("failed load must keep the previous scene")
	}
}

// TestSceneManagerPendingLevel 场景请求切换关卡后，下一次 Update 完成切换
func TestSceneManagerPendingLevel(t *testing.T) {
	sm := NewSceneManager()
	var loaded []string
	sm.SetSceneFactory(func(levelPath string) (Scene, error) {
		loaded = append(loaded, levelPath)
		return &MockScene{}, nil
	})

	first := &MockScene{pending: "level2"}
	sm.SwitchTo(first)
	sm.Update(0.016)

	if len(loaded) != 1 || loaded[0] != "level2" {
		t.Fatalf("expected level2 to be loaded, got %v", loaded)
	}
	if sm.GetCurrentScene() == first {
		t.Error("scene should have been replaced")
	}
}
