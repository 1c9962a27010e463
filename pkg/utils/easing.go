package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值（通常也在 [0, 1]）。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// 与 CSS 同名关键字一致的三次贝塞尔曲线
var (
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

// CubicBezier 返回由控制点 (x1,y1)、(x2,y2) 定义的缓动函数
// 端点固定为 (0,0) 和 (1,1)，与 CSS cubic-bezier() 相同。
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	sample := func(a1, a2, s float64) float64 {
		// B(s) = 3(1-s)²s·a1 + 3(1-s)s²·a2 + s³
		inv := 1 - s
		return 3*inv*inv*s*a1 + 3*inv*s*s*a2 + s*s*s
	}
	slope := func(a1, a2, s float64) float64 {
		inv := 1 - s
		return 3*inv*inv*a1 + 6*inv*s*(a2-a1) + 3*s*s*(1-a2)
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// 先用牛顿迭代求解 x(s) = t，失败时退回二分
		s := t
		for i := 0; i < 8; i++ {
			dx := sample(x1, x2, s) - t
			if math.Abs(dx) < 1e-7 {
				return sample(y1, y2, s)
			}
			d := slope(x1, x2, s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}

		lo, hi := 0.0, 1.0
		s = t
		for i := 0; i < 32; i++ {
			x := sample(x1, x2, s)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return sample(y1, y2, s)
	}
}

// EasingByName 根据配置中的名字查找缓动函数
// 支持：linear, easeIn, easeOut, easeInOut, easeOutCubic, easeInOutCubic
func EasingByName(name string) (EasingFunc, bool) {
	switch name {
	case "", "linear":
		return EaseLinear, true
	case "easeIn":
		return EaseIn, true
	case "easeOut":
		return EaseOut, true
	case "easeInOut":
		return EaseInOut, true
	case "easeOutCubic":
		return EaseOutCubic, true
	case "easeInOutCubic":
		return EaseInOutCubic, true
	}
	return nil, false
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 将 v 限制在 [0, 1]，NaN 视为 0
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}
