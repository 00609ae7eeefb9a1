package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定关卡的场景，避免 game 包依赖 scenes 包
type SceneFactory func(levelPath string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 加载指定路径的关卡场景
// 创建失败时保留当前场景
func (sm *SceneManager) LoadLevel(levelPath string) error {
	log.Printf("[SceneManager] 加载关卡: %s", levelPath)

	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	newScene, err := sm.sceneFactory(levelPath)
	if err != nil {
		return fmt.Errorf("failed to create scene for %s: %w", levelPath, err)
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 成功切换到关卡: %s", levelPath)
	return nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Update(deltaTime)

	if nav, ok := sm.currentScene.(LevelNavigator); ok {
		if next := nav.PendingLevel(); next != "" {
			if err := sm.LoadLevel(next); err != nil {
				log.Printf("[SceneManager] 错误: %v", err)
			}
		}
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
