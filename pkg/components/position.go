package components

// PositionComponent 实体在世界中的位置
//
// FracX/FracY 是亚像素累加器，每帧按速度累加；X/Y 是当前所在的整数像素，
// 移动系统逐像素把 X/Y 推进到累加器的位置。GridX/GridY 由系统在每次移动后同步。
type PositionComponent struct {
	FracX float64 // 亚像素X（像素）
	FracY float64 // 亚像素Y（像素）
	X     int     // 像素X
	Y     int     // 像素Y
	GridX int     // 所在格子列
	GridY int     // 所在格子行
}
