package components

// FloatingComponent 浮动几何体的漂浮参数
type FloatingComponent struct {
	Speed          float64 // 角速度倍率
	Amplitude      float64 // 上下漂浮幅度（像素）
	RotationAmount float64 // 旋转幅度（度）
	Phase          float64 // 初始相位（弧度）
}

// Star 星空中的一颗星
type Star struct {
	X, Y       float64 // 相对所属元素左上角的位置
	Size       float64
	Phase      float64
	Speed      float64
	Brightness float64 // 由 FloatSystem 每帧更新（0.0 - 1.0）
}

// StarFieldComponent 星空/闪光粒子
type StarFieldComponent struct {
	Stars []Star
}
