package utils

import (
	"math"
	"testing"
)

// TestCurveTwoPointLinear 对 [(0,a),(1,b)] 曲线，输出等于 a + p·(b−a)
func TestCurveTwoPointLinear(t *testing.T) {
	pairs := []struct{ a, b float64 }{
		{0, 1}, {1, 0}, {100, 0}, {-20, 35.5}, {1, 0.8},
	}

	for _, pair := range pairs {
		c := MustCurve([]float64{0, 1}, []Value{Num(pair.a), Num(pair.b)})
		for p := 0.0; p <= 1.0; p += 0.05 {
			got := c.Evaluate(p).Amount
			want := pair.a + p*(pair.b-pair.a)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("[(0,%v),(1,%v)] at p=%v = %v, 期望 %v", pair.a, pair.b, p, got, want)
			}
		}
	}
}

// TestCurvePercentScenario 对应 [(0,"100%"),(1,"0%")] 在 p=0.3 时得到 "70%"
func TestCurvePercentScenario(t *testing.T) {
	c := MustCurve([]float64{0, 1}, []Value{Percent(100), Percent(0)})

	got := c.Evaluate(0.3)
	if got.String() != "70%" {
		t.Errorf("Evaluate(0.3) = %s, 期望 70%%", got)
	}
	if got.Unit != UnitPercent {
		t.Errorf("Unit = %q, 期望 %%", got.Unit)
	}

	// 百分比按元素高度换算
	if px := c.EvaluateFloat(0.3, 200); math.Abs(px-140) > 1e-9 {
		t.Errorf("EvaluateFloat(0.3, 200) = %v, 期望 140", px)
	}
}

// TestCurveClampsOutsideDomain 超出定义域时钳制到首尾控制点
func TestCurveClampsOutsideDomain(t *testing.T) {
	opacity := MustCurve([]float64{0, 0.3}, []Value{Num(1), Num(0)})

	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"低于定义域", -0.5, 1},
		{"起点", 0, 1},
		{"段内", 0.15, 0.5},
		{"终点", 0.3, 0},
		{"超出曲线定义域但在[0,1]内", 0.8, 0},
		{"高于1", 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := opacity.Evaluate(tt.input).Amount
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%v) = %v, 期望 %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestCurveMultiSegment 多段曲线在每段内独立插值
func TestCurveMultiSegment(t *testing.T) {
	bounce := MustCurve([]float64{0, 0.5, 1}, []Value{Px(0), Px(15), Px(0)})

	tests := []struct {
		input float64
		want  float64
	}{
		{0, 0}, {0.25, 7.5}, {0.5, 15}, {0.75, 7.5}, {1, 0},
	}
	for _, tt := range tests {
		if got := bounce.Evaluate(tt.input).Amount; math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(%v) = %v, 期望 %v", tt.input, got, tt.want)
		}
	}

	// 加缓动后中点与端点不变，段内不再线性
	eased := bounce.WithEasing(EaseInOut)
	if got := eased.Evaluate(0.5).Amount; got != 15 {
		t.Errorf("eased Evaluate(0.5) = %v, 期望 15", got)
	}
	if got := eased.Evaluate(0.05).Amount; got >= 1.5 {
		t.Errorf("easeInOut 段首应该慢于线性, got %v", got)
	}
	if got := bounce.Evaluate(0.05).Amount; math.Abs(got-1.5) > 1e-9 {
		t.Errorf("WithEasing 不应该修改原曲线, got %v", got)
	}
}

// TestCurveSinglePoint 单点曲线是常量
func TestCurveSinglePoint(t *testing.T) {
	c, err := NewCurve([]Breakpoint{{Input: 0.5, Output: Num(3)}})
	if err != nil {
		t.Fatalf("NewCurve 失败: %v", err)
	}
	for _, x := range []float64{-1, 0.5, 2} {
		if c.Evaluate(x).Amount != 3 {
			t.Errorf("Evaluate(%v) = %v, 期望 3", x, c.Evaluate(x).Amount)
		}
	}
}

// TestNewCurveValidation 构造时校验控制点
func TestNewCurveValidation(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []float64
		outputs []Value
	}{
		{"空曲线", nil, nil},
		{"输入不递增", []float64{0, 0}, []Value{Num(0), Num(1)}},
		{"输入递减", []float64{1, 0}, []Value{Num(0), Num(1)}},
		{"单位不一致", []float64{0, 1}, []Value{Percent(0), Px(1)}},
		{"数量不一致", []float64{0, 1}, []Value{Num(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCurveFromRanges(tt.inputs, tt.outputs); err == nil {
				t.Error("期望返回错误")
			}
		})
	}
}

// TestCurveImmutable 修改传入切片不影响曲线
func TestCurveImmutable(t *testing.T) {
	points := []Breakpoint{{Input: 0, Output: Num(0)}, {Input: 1, Output: Num(10)}}
	c, err := NewCurve(points)
	if err != nil {
		t.Fatal(err)
	}
	points[1].Output = Num(99)
	if got := c.Evaluate(1).Amount; got != 10 {
		t.Errorf("曲线被外部修改: Evaluate(1) = %v", got)
	}
}
