package game

// Clock 页面时钟，由场景在每个 tick 推进
// 所有基于时间的动画（计数器、显现延迟、循环动画）都读它，而不是读系统时间。
//
// 时钟按整数 tick 计数，时间由 tick 数乘步长得出，不做浮点累加：
// 60Hz 下 120 个 tick 恰好是 2.0 秒。
type Clock struct {
	ticks int64
	step  float64
	// 当前步长开始生效时的 tick 数与时间
	segTick int64
	segTime float64
}

// NewClock 创建从 0 开始的时钟
func NewClock() *Clock {
	return &Clock{}
}

// Advance 推进一个 dt 秒的 tick（非正值被忽略）
// 步长变化时开启新的计时段。
func (c *Clock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	if dt != c.step {
		c.segTime = c.Now()
		c.segTick = c.ticks
		c.step = dt
	}
	c.ticks++
}

// Now 返回当前时间（秒）
func (c *Clock) Now() float64 {
	return c.segTime + float64(c.ticks-c.segTick)*c.step
}

// Ticks 返回已推进的 tick 数
func (c *Clock) Ticks() int64 {
	return c.ticks
}

// Since 返回从第 tick 个 tick（当时时间为 at）到现在经过的秒数
// tick 落在当前计时段内时按 tick 差精确计算，否则退回时间差。
func (c *Clock) Since(tick int64, at float64) float64 {
	if tick >= c.segTick {
		return float64(c.ticks-tick) * c.step
	}
	return c.Now() - at
}
