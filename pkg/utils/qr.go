package utils

import (
	"fmt"
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// NewQRImage 生成指定内容的二维码图片（正方形，边长 size 像素）
func NewQRImage(content string, size int, fg, bg color.Color) (image.Image, error) {
	if content == "" {
		return nil, fmt.Errorf("二维码内容为空")
	}
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("生成二维码失败: %w", err)
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg
	q.DisableBorder = true
	return q.Image(size), nil
}
