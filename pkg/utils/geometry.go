package utils

// Rect 轴对齐矩形（页面坐标或屏幕坐标）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX 中心X坐标
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY 中心Y坐标
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Intersects 判断两个矩形是否有重叠部分（仅接触边界不算相交）
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains 判断点是否在矩形内
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Offset 平移矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// ScaleAroundCenter 以中心为基准缩放矩形
func (r Rect) ScaleAroundCenter(s float64) Rect {
	return r.ScaleAround(r.CenterX(), r.CenterY(), s)
}

// ScaleAround 以 (cx, cy) 为基准缩放矩形
func (r Rect) ScaleAround(cx, cy, s float64) Rect {
	return Rect{
		X:      cx + (r.X-cx)*s,
		Y:      cy + (r.Y-cy)*s,
		Width:  r.Width * s,
		Height: r.Height * s,
	}
}

// ScaleAxes 以中心为基准分别缩放宽和高
func (r Rect) ScaleAxes(sx, sy float64) Rect {
	w, h := r.Width*sx, r.Height*sy
	return Rect{X: r.CenterX() - w/2, Y: r.CenterY() - h/2, Width: w, Height: h}
}
