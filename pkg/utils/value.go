package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit 动画输出值的单位
type Unit string

const (
	UnitNone    Unit = ""
	UnitPx      Unit = "px"
	UnitPercent Unit = "%"
	UnitDeg     Unit = "deg"
)

// Value 带单位的数值，例如 "100%"、"15px"、"0.8"
type Value struct {
	Amount float64
	Unit   Unit
}

// Num 构造无单位数值
func Num(amount float64) Value {
	return Value{Amount: amount}
}

// Percent 构造百分比数值
func Percent(amount float64) Value {
	return Value{Amount: amount, Unit: UnitPercent}
}

// Px 构造像素数值
func Px(amount float64) Value {
	return Value{Amount: amount, Unit: UnitPx}
}

// ParseValue 解析配置中的数值字符串
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("空数值")
	}

	unit := UnitNone
	for _, u := range []Unit{UnitPercent, UnitPx, UnitDeg} {
		if strings.HasSuffix(s, string(u)) {
			unit = u
			s = strings.TrimSpace(strings.TrimSuffix(s, string(u)))
			break
		}
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("无法解析数值 %q: %w", s, err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Value{}, fmt.Errorf("数值必须是有限数: %q", s)
	}
	return Value{Amount: amount, Unit: unit}, nil
}

// Resolve 将数值换算为像素（或无单位量）
// 百分比相对 reference 计算，其他单位原样返回
func (v Value) Resolve(reference float64) float64 {
	if v.Unit == UnitPercent {
		return v.Amount / 100 * reference
	}
	return v.Amount
}

// String 格式化为配置中的写法，保留最多 4 位小数
func (v Value) String() string {
	rounded := math.Round(v.Amount*1e4) / 1e4
	if rounded == 0 {
		rounded = 0 // 去掉 -0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64) + string(v.Unit)
}
