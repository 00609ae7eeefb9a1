package tty

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/tddown/pkg/systems"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// FrameInterval 终端视图的刷新间隔
const FrameInterval = time.Second / 30

// Loader 创建（或重新创建）一局模拟
type Loader func() (*systems.Simulation, error)

// Viewer 终端视图的主循环：读取按键、推进模拟、重绘
type Viewer struct {
	screen   tcell.Screen
	renderer *Renderer
	load     Loader
	sim      *systems.Simulation
	paused   bool
}

// NewViewer 创建终端视图并加载第一局模拟
func NewViewer(screen tcell.Screen, load Loader) (*Viewer, error) {
	sim, err := load()
	if err != nil {
		return nil, err
	}
	return &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen),
		load:     load,
		sim:      sim,
	}, nil
}

// Simulation 当前模拟
func (v *Viewer) Simulation() *systems.Simulation { return v.sim }

// Renderer 终端渲染器
func (v *Viewer) Renderer() *Renderer { return v.renderer }

// Paused 是否暂停
func (v *Viewer) Paused() bool { return v.paused }

// Run 运行主循环直到按下退出键或 ctx 被取消
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	v.renderer.Draw(v.sim)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.HandleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}

		case <-ticker.C:
			v.Step(FrameInterval.Seconds())
			v.renderer.Draw(v.sim)
		}
	}
}

// Step 推进一帧；暂停、失败或完成后不再推进
func (v *Viewer) Step(deltaTime float64) {
	if v.paused || !v.sim.World().IsRunning() || v.sim.Finished() {
		return
	}
	v.sim.Tick(deltaTime)

	switch {
	case !v.sim.World().IsRunning():
		v.renderer.Message = "GAME OVER - press r to restart"
	case v.sim.Finished():
		v.renderer.Message = "LEVEL CLEAR"
	}
}

// HandleKey 处理一次按键，返回 false 表示退出
//
// 方向键移动光标，1/2/3 选择建筑，Enter 放置，x/Backspace 拆除，
// 空格生成敌人，f 切换速度，p 暂停，r 重开，q/Esc 退出。
func (v *Viewer) HandleKey(key tcell.Key, ch rune) bool {
	grid := v.sim.Grid()
	cursor := &v.renderer.Cursor

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		cursor.Y = max(0, cursor.Y-1)
	case tcell.KeyDown:
		cursor.Y = min(grid.Height()-1, cursor.Y+1)
	case tcell.KeyLeft:
		cursor.X = max(0, cursor.X-1)
	case tcell.KeyRight:
		cursor.X = min(grid.Width()-1, cursor.X+1)
	case tcell.KeyEnter:
		v.place()
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		v.remove()
	case tcell.KeyRune:
		return v.handleRune(ch)
	}
	return true
}

func (v *Viewer) handleRune(ch rune) bool {
	switch ch {
	case 'q':
		return false
	case '1', '2', '3':
		v.renderer.Selected = types.AllTowerTypes[ch-'1']
		v.renderer.Message = fmt.Sprintf("selected %s", v.renderer.Selected)
	case 'x':
		v.remove()
	case ' ':
		if _, err := v.sim.SpawnEnemy(); err != nil {
			log.Printf("[Viewer] 生成敌人失败: %v", err)
		}
	case 'f':
		v.renderer.Message = fmt.Sprintf("speed x%g", v.sim.World().CycleSpeed())
	case 'p':
		v.paused = !v.paused
	case 'r':
		v.restart()
	}
	return true
}

func (v *Viewer) place() {
	if err := v.sim.PlaceTower(v.renderer.Selected, v.renderer.Cursor); err != nil {
		v.renderer.Message = err.Error()
		return
	}
	v.renderer.Message = fmt.Sprintf("placed %s", v.renderer.Selected)
}

func (v *Viewer) remove() {
	if err := v.sim.RemoveTower(v.renderer.Cursor); err != nil {
		v.renderer.Message = err.Error()
		return
	}
	v.renderer.Message = "tower removed"
}

func (v *Viewer) restart() {
	sim, err := v.load()
	if err != nil {
		v.renderer.Message = fmt.Sprintf("restart failed: %v", err)
		return
	}
	v.sim = sim
	v.paused = false
	v.renderer.Cursor = utils.GridPos{}
	v.renderer.Message = "restarted"
}
