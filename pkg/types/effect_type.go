package types

// EffectKind 临时效果的种类（封闭集合）
type EffectKind int

const (
	EffectLavaDrop   EffectKind = iota // 下落的岩浆滴
	EffectLavaSplash                   // 岩浆滴落地后的飞溅动画
)

func (k EffectKind) String() string {
	switch k {
	case EffectLavaDrop:
		return "lava_drop"
	case EffectLavaSplash:
		return "lava_splash"
	}
	return "unknown"
}

// Facing 敌人的朝向
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Reverse 返回相反朝向
func (f Facing) Reverse() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// Sign 返回朝向对应的水平步进方向 (-1 或 1)
func (f Facing) Sign() int {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}
