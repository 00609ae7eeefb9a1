// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析参数和初始化嵌入资源。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultLevelDir 关卡目录（相对于文件系统根目录）
const DefaultLevelDir = "data/levels"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 要加载的关卡文件路径，为空则加载关卡目录中的第一个
	Level string
	// Seed 随机种子，0 表示使用关卡配置中的种子
	Seed int64
	// FS 关卡所在的文件系统（嵌入资源或磁盘目录）
	FS fs.FS
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.FS == nil {
		return nil, fmt.Errorf("no level filesystem configured")
	}

	levels, err := game.ListLevels(cfg.FS, DefaultLevelDir)
	if err != nil {
		log.Printf("[App] 无法列出关卡目录: %v", err)
	}

	levelToLoad := cfg.Level
	if levelToLoad == "" {
		if len(levels) == 0 {
			return nil, fmt.Errorf("no levels found in %s", DefaultLevelDir)
		}
		levelToLoad = levels[0]
	}
	log.Printf("[App] Starting level: %s", levelToLoad)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(levelPath string) (game.Scene, error) {
		return scenes.NewGameScene(cfg.FS, levelPath, levels, cfg.Seed)
	})
	if err := sceneManager.LoadLevel(levelToLoad); err != nil {
		return nil, fmt.Errorf("关卡加载失败: %w", err)
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
