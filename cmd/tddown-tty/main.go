// tddown-tty 在终端中运行关卡（不需要图形环境）
//
// 用法：
//
//	go run ./cmd/tddown-tty -level data/levels/level1.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/systems"
	"github.com/gonewx/tddown/pkg/tty"
)

var (
	levelPath = flag.String("level", "data/levels/level1.yaml", "关卡文件路径（相对于 -dir）")
	dir       = flag.String("dir", ".", "关卡文件所在的根目录")
	seed      = flag.Int64("seed", 0, "随机种子（0 = 关卡配置或当前时间）")
	logFile   = flag.String("log", "", "日志输出文件（终端界面运行时不能写 stderr）")
)

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法创建日志文件: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	fsys := os.DirFS(*dir)
	load := func() (*systems.Simulation, error) {
		level, err := game.LoadLevel(fsys, *levelPath)
		if err != nil {
			return nil, err
		}
		return systems.NewSimulation(level, *seed)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	viewer, err := tty.NewViewer(screen, load)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = viewer.Run(ctx)
	screen.Fini()
	if err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
