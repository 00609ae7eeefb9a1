// validate_levels 检查关卡目录下所有 YAML 关卡能否加载并开始模拟
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/systems"
)

var (
	dir      = flag.String("dir", ".", "项目根目录")
	levelDir = flag.String("levels", "data/levels", "关卡目录（相对于 -dir）")
	verbose  = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	fsys := os.DirFS(*dir)
	paths, err := game.ListLevels(fsys, *levelDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Printf("❌ %s 中没有关卡文件\n", *levelDir)
		os.Exit(1)
	}

	failed := 0
	for _, p := range paths {
		level, err := game.LoadLevel(fsys, p)
		if err == nil {
			_, err = systems.NewSimulation(level, 1)
		}
		if err != nil {
			fmt.Printf("❌ %s: %v\n", p, err)
			failed++
			continue
		}
		cfg := level.Config
		fmt.Printf("✅ %s: id=%s %dx%d spawns=%d enemies=%d health=%d towers=%+v\n",
			p, cfg.ID, level.Grid.Width(), level.Grid.Height(), len(level.Grid.Spawns()),
			cfg.TotalEnemies(), cfg.Health, cfg.Towers)
	}

	if failed > 0 {
		fmt.Printf("❌ %d/%d 个关卡无效\n", failed, len(paths))
		os.Exit(1)
	}
	fmt.Printf("✅ 全部 %d 个关卡有效\n", len(paths))
}
