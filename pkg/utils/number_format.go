package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberPrinter 计数器使用英文千分位格式（50,000,000 / 99.99）
var numberPrinter = message.NewPrinter(language.English)

// FormatNumber 按本地化规则格式化数字，最多保留 3 位小数
func FormatNumber(v float64) string {
	return numberPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}
