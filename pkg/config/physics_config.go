package config

// 物理与模拟常量
// 重力和行走速度都以"像素/秒"为单位调校，因此积分器必须逐像素检测碰撞
const (
	// Gravity 基础重力常数
	Gravity = 9.87

	// GravityScale 重力到像素速度的换算系数（一格 32 像素 / 4）
	GravityScale = 32.0 / 4.0

	// WalkingSpeed 敌人水平行走速度（像素/秒）
	WalkingSpeed = 32.0

	// MaxDeltaTime 单帧允许的最大时间步长（秒），防止卡顿后一次跳过太多
	MaxDeltaTime = 0.1

	// DefaultHealth 关卡未配置生命值时的默认值
	DefaultHealth = 10
)

// 游戏速度档位（x1 / x2 / x3）
var GameSpeeds = []float64{1, 2, 3}

// 敌人碰撞盒和绘制区域（相对于像素位置的偏移）
const (
	EnemyHitboxLeft   = 3
	EnemyHitboxTop    = 12
	EnemyHitboxRight  = 27
	EnemyHitboxBottom = 32
)

// 效果与建筑的时间参数（秒）
const (
	// LavaEmitPeriod 岩浆塔两次滴落之间的间隔
	LavaEmitPeriod = 3.0

	// LavaFirstEmitDelay 岩浆塔放置后第一次滴落的延迟
	LavaFirstEmitDelay = 1.0

	// LavaSplashFrameTime 飞溅动画每帧时长
	LavaSplashFrameTime = 0.1

	// LavaSplashFrameCount 飞溅动画帧数
	LavaSplashFrameCount = 4

	// LavaTowerFrameTime 岩浆塔待机动画每帧时长
	LavaTowerFrameTime = 0.4

	// LavaTowerFrameCount 岩浆塔待机动画帧数
	LavaTowerFrameCount = 2
)

// 窗口配置
const (
	GameWindowWidth  = 1600
	GameWindowHeight = 900

	// CameraPanSpeed 键盘平移相机的速度（像素/秒）
	CameraPanSpeed = 300.0

	// 缩放范围
	MinZoom = 0.5
	MaxZoom = 3.0
)
