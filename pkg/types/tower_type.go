package types

// TowerType 玩家可放置的建筑类型
type TowerType int

const (
	TowerBlockerDown TowerType = iota // 向下延伸两格的阻挡墙
	TowerBlockerUp                    // 向上延伸两格的阻挡墙
	TowerLava                         // 周期性滴落岩浆，不阻挡
)

// AllTowerTypes 按界面顺序列出所有建筑类型
var AllTowerTypes = []TowerType{TowerBlockerDown, TowerBlockerUp, TowerLava}

// Dir 建筑的放置方向
type Dir int

const (
	DirUp Dir = iota
	DirDown
)

var towerTypeStringMap = map[TowerType]string{
	TowerBlockerDown: "blockerDown",
	TowerBlockerUp:   "blockerUp",
	TowerLava:        "lava",
}

// String 返回建筑类型的配置字符串表示（与关卡 YAML 中的键一致）
func (t TowerType) String() string {
	if s, ok := towerTypeStringMap[t]; ok {
		return s
	}
	return "unknown"
}

// Direction 返回建筑需要的放置方向
func (t TowerType) Direction() Dir {
	if t == TowerBlockerUp {
		return DirUp
	}
	return DirDown
}

// Blocks 该类型的建筑是否阻挡敌人移动
func (t TowerType) Blocks() bool {
	return t == TowerBlockerDown || t == TowerBlockerUp
}

// TowerTypeFromString 将配置字符串转换为建筑类型
func TowerTypeFromString(s string) (TowerType, bool) {
	for t, name := range towerTypeStringMap {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

func (d Dir) String() string {
	if d == DirUp {
		return "up"
	}
	return "down"
}
