package components

// AnimationComponent 基于帧序号的动画状态
// 渲染层只读取 Frame，具体帧画面由渲染层根据实体类型决定
type AnimationComponent struct {
	Frame      int     // 当前帧索引(0-based)
	FrameCount int     // 总帧数
	FrameTime  float64 // 每帧时长（秒）
	Timer      float64 // 距离切换到下一帧的剩余时间（秒）
	Loop       bool    // 是否循环播放
	Finished   bool    // 非循环动画是否已经播放到最后一帧
}
