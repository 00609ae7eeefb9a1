// verify_simulation 无界面运行一个关卡，打印每秒的统计
//
// 用于检查关卡节奏和确定性：相同的 -seed 必须输出完全相同的结果。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/systems"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

var (
	dir       = flag.String("dir", ".", "项目根目录")
	levelPath = flag.String("level", "data/levels/level1.yaml", "关卡文件路径（相对于 -dir）")
	seed      = flag.Int64("seed", 1, "随机种子")
	seconds   = flag.Float64("seconds", 60, "模拟时长（秒）")
	fps       = flag.Int("fps", 60, "模拟帧率")
	lava      = flag.String("lava", "", "放置岩浆塔的格子，如 \"6,7\"")
	verbose   = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	level, err := game.LoadLevel(os.DirFS(*dir), *levelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载关卡失败: %v\n", err)
		os.Exit(1)
	}
	sim, err := systems.NewSimulation(level, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建模拟失败: %v\n", err)
		os.Exit(1)
	}

	if *lava != "" {
		var gp utils.GridPos
		if _, err := fmt.Sscanf(*lava, "%d,%d", &gp.X, &gp.Y); err != nil {
			fmt.Fprintf(os.Stderr, "无效的格子坐标 %q: %v\n", *lava, err)
			os.Exit(1)
		}
		if err := sim.PlaceTower(types.TowerLava, gp); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	dt := 1.0 / float64(*fps)
	frames := int(*seconds * float64(*fps))
	var total systems.TickSummary
	for i := 1; i <= frames; i++ {
		s := sim.Tick(dt)
		total.EnemiesSpawned += s.EnemiesSpawned
		total.EnemiesRemoved += s.EnemiesRemoved
		total.EffectsSpawned += s.EffectsSpawned
		total.EffectsRemoved += s.EffectsRemoved
		total.HealthLost += s.HealthLost

		if i%*fps == 0 {
			fmt.Printf("t=%3ds health=%2d enemies=%3d effects=%2d %s\n",
				i / *fps, sim.World().Health, len(sim.Enemies()), len(sim.Effects()), sim.Spawner().Status())
		}
		if !sim.World().IsRunning() || sim.Finished() {
			break
		}
	}

	fmt.Printf("seed=%d spawned=%d removed=%d effects=%d/%d health lost=%d finished=%v\n",
		sim.Seed(), total.EnemiesSpawned, total.EnemiesRemoved,
		total.EffectsSpawned, total.EffectsRemoved, total.HealthLost, sim.Finished())
}
