package systems

import (
	"github.com/gonewx/tddown/pkg/components"
	"github.com/gonewx/tddown/pkg/game"
	"github.com/gonewx/tddown/pkg/types"
	"github.com/gonewx/tddown/pkg/utils"
)

// TileQuery 只读的格子查询（由 *game.Grid 实现）
type TileQuery interface {
	GetTile(x, y int) (game.Tile, bool)
}

// StructureQuery 建筑碰撞查询（由 *TowerSystem 实现）
// 只返回会阻挡移动的建筑
type StructureQuery interface {
	GetCollidedTower(r utils.Rect) (*components.TowerComponent, bool)
}

// pixelBounds 可选接口：网格提供像素高度时，掉出世界底部的实体会被移除
type pixelBounds interface {
	PixelHeight() int
}

// MoveOutcome 单次移动的结果
type MoveOutcome int

const (
	OutcomeFalling  MoveOutcome = iota // 仍在下落
	OutcomeSettled                     // 落地（或站在地面上）
	OutcomeWalking                     // 水平移动中，未发生碰撞
	OutcomeReversed                    // 水平碰撞，已掉头
	OutcomeRemoved                     // 实体应被移除
)

func (o MoveOutcome) String() string {
	switch o {
	case OutcomeFalling:
		return "falling"
	case OutcomeSettled:
		return "settled"
	case OutcomeWalking:
		return "walking"
	case OutcomeReversed:
		return "reversed"
	case OutcomeRemoved:
		return "removed"
	}
	return "unknown"
}

// 移除原因
const (
	ReasonGoal       = "goal"
	ReasonOutOfWorld = "out_of_world"
	ReasonStructure  = "structure"
	ReasonTile       = "tile"
	ReasonLanded     = "landed"
	ReasonAnimDone   = "animation_done"
)

// MoveResult 移动结果及原因
type MoveResult struct {
	Outcome MoveOutcome
	Reason  string
}

// SpawnRequest 请求在格子 GridPos 生成一个 Kind 效果
type SpawnRequest struct {
	Kind    types.EffectKind
	GridPos utils.GridPos
}

// TickReport 单个实体本帧的推进结果
type TickReport struct {
	Keep  bool          // false 表示本帧结束时移除
	Spawn *SpawnRequest // 需要生成的后继效果
}

// fallRules 垂直下落时的碰撞规则
type fallRules struct {
	tiles       TileQuery
	structures  StructureQuery // nil 表示不检查建筑
	columns     []int          // 检查下方哪些列（相对于碰撞盒左上角所在列）
	goalIsFatal bool           // 碰到终点格是否扣血并移除
}

var (
	// 敌人检查下方三列，容忍水平方向的亚格子偏移
	enemyColumns = []int{-1, 0, 1}
	// 岩浆滴只检查自己所在的列
	ownColumn = []int{0}
)

// stepFall 按重力推进亚像素累加器，再逐像素向下移动并检测碰撞
//
// 每次先构造向下一像素的探测矩形：碰到阻挡建筑或不可通过的格子即落地，
// 累加器对齐回当前像素；碰到终点格（goalIsFatal 时）扣 1 点生命并移除。
// 即使累加不足一像素也会探测一次，保证任意帧率下站在地面上的实体都报告落地。
func stepFall(w *game.World, pos *components.PositionComponent, hb *components.HitboxComponent, rules fallRules) MoveResult {
	pos.FracY += w.ScaledGravity()

	for {
		probe := hb.Offset.At(utils.Point{X: pos.X, Y: pos.Y + 1})

		if rules.structures != nil {
			if _, hit := rules.structures.GetCollidedTower(probe); hit {
				pos.FracY = float64(pos.Y)
				return MoveResult{Outcome: OutcomeSettled, Reason: ReasonStructure}
			}
		}

		below := utils.PosToGridPos(probe.TopLeft())
		landed := false
		for _, offset := range rules.columns {
			tile, ok := rules.tiles.GetTile(below.X+offset, below.Y+1)
			if !ok || !tile.Collide(probe) {
				continue
			}
			if rules.goalIsFatal && tile.Kind() == types.TileGoal {
				w.Damage(1)
				return MoveResult{Outcome: OutcomeRemoved, Reason: ReasonGoal}
			}
			landed = true
		}
		if landed {
			pos.FracY = float64(pos.Y)
			return MoveResult{Outcome: OutcomeSettled, Reason: ReasonTile}
		}

		if float64(pos.Y+1) > pos.FracY {
			break
		}
		pos.Y++
		pos.GridY = utils.PosToGridPos(utils.Point{X: pos.X, Y: pos.Y}).Y
	}

	if b, ok := rules.tiles.(pixelBounds); ok && pos.Y > b.PixelHeight() {
		return MoveResult{Outcome: OutcomeRemoved, Reason: ReasonOutOfWorld}
	}
	return MoveResult{Outcome: OutcomeFalling}
}

// syncHitbox 把碰撞盒放到当前像素位置
func syncHitbox(pos *components.PositionComponent, hb *components.HitboxComponent) {
	hb.Rect = hb.Offset.At(utils.Point{X: pos.X, Y: pos.Y})
}
