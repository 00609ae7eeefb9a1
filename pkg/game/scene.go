package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., the level being played).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// LevelNavigator 是一个可选接口，场景通过它请求切换关卡
//
// SceneManager 每帧 Update 之后检查当前场景是否请求了重开或下一关
type LevelNavigator interface {
	// PendingLevel 返回场景请求加载的关卡路径，空字符串表示没有请求
	PendingLevel() string
}
