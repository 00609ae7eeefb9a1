package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/gonewx/tddown/pkg/app"
	"github.com/gonewx/tddown/pkg/config"
	"github.com/gonewx/tddown/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	level := flag.String("level", "", "Level file to load (e.g. data/levels/level2.yaml)")
	seed := flag.Int64("seed", 0, "Random seed for spawn selection (0 = level seed or time)")
	dir := flag.String("dir", "", "Load levels from this project root (containing data/levels) instead of the embedded data")
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	var fsys fs.FS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	} else {
		var err error
		if fsys, err = embedded.FS(); err != nil {
			log.Fatal(err)
		}
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *level,
		Seed:    *seed,
		FS:      fsys,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("tddown")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
