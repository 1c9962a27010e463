package utils

import "fmt"

// Breakpoint 分段线性曲线上的一个 (输入, 输出) 控制点
type Breakpoint struct {
	Input  float64
	Output Value
}

// Curve 分段线性动画曲线
//
// 输入在相邻控制点之间线性插值，超出定义域时钳制到首/尾控制点。
// 构造后不可变，可以被多个读者同时使用。
type Curve struct {
	points []Breakpoint
	unit   Unit
	ease   EasingFunc
}

// NewCurve 根据控制点创建曲线
// 要求至少一个控制点、输入严格递增、所有输出单位一致。
func NewCurve(points []Breakpoint) (*Curve, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("曲线至少需要一个控制点")
	}

	unit := points[0].Output.Unit
	for i := 1; i < len(points); i++ {
		if points[i].Input <= points[i-1].Input {
			return nil, fmt.Errorf("控制点输入必须严格递增: [%d]=%v, [%d]=%v",
				i-1, points[i-1].Input, i, points[i].Input)
		}
		if points[i].Output.Unit != unit {
			return nil, fmt.Errorf("控制点单位不一致: %q 与 %q", unit, points[i].Output.Unit)
		}
	}

	copied := make([]Breakpoint, len(points))
	copy(copied, points)
	return &Curve{points: copied, unit: unit, ease: EaseLinear}, nil
}

// NewCurveFromRanges 用两组等长的输入/输出创建曲线，写法与配置文件一致
//
//	NewCurveFromRanges([]float64{0, 0.3}, []Value{Num(1), Num(0)})
func NewCurveFromRanges(inputs []float64, outputs []Value) (*Curve, error) {
	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("输入(%d)与输出(%d)数量不一致", len(inputs), len(outputs))
	}
	points := make([]Breakpoint, len(inputs))
	for i := range inputs {
		points[i] = Breakpoint{Input: inputs[i], Output: outputs[i]}
	}
	return NewCurve(points)
}

// MustCurve 与 NewCurveFromRanges 相同，出错时 panic，仅用于内置常量曲线
func MustCurve(inputs []float64, outputs []Value) *Curve {
	c, err := NewCurveFromRanges(inputs, outputs)
	if err != nil {
		panic(err)
	}
	return c
}

// WithEasing 返回在每一段内部使用 ease 的新曲线（原曲线不变）
func (c *Curve) WithEasing(ease EasingFunc) *Curve {
	if ease == nil {
		ease = EaseLinear
	}
	return &Curve{points: c.points, unit: c.unit, ease: ease}
}

// Domain 返回曲线的输入范围
func (c *Curve) Domain() (float64, float64) {
	return c.points[0].Input, c.points[len(c.points)-1].Input
}

// Unit 返回曲线输出的单位
func (c *Curve) Unit() Unit {
	return c.unit
}

// Evaluate 计算输入 x 对应的输出
func (c *Curve) Evaluate(x float64) Value {
	first := c.points[0]
	last := c.points[len(c.points)-1]

	if x <= first.Input {
		return first.Output
	}
	if x >= last.Input {
		return last.Output
	}

	for i := 0; i < len(c.points)-1; i++ {
		a, b := c.points[i], c.points[i+1]
		if x > b.Input {
			continue
		}
		t := c.ease((x - a.Input) / (b.Input - a.Input))
		return Value{Amount: Lerp(a.Output.Amount, b.Output.Amount, t), Unit: c.unit}
	}
	return last.Output
}

// EvaluateFloat 计算输出并按 reference 换算百分比
func (c *Curve) EvaluateFloat(x, reference float64) float64 {
	return c.Evaluate(x).Resolve(reference)
}
