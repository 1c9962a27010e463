package utils

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSet 页面使用的字体源（常规 + 粗体）
type FontSet struct {
	Regular *text.GoTextFaceSource
	Bold    *text.GoTextFaceSource
}

// LoadFontSet 从内置 Go 字体创建字体源
func LoadFontSet() (*FontSet, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("无法创建常规字体源: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("无法创建粗体字体源: %w", err)
	}
	return &FontSet{Regular: regular, Bold: bold}, nil
}

// Face 返回指定字号的字体 face
func (fs *FontSet) Face(size float64, bold bool) *text.GoTextFace {
	src := fs.Regular
	if bold {
		src = fs.Bold
	}
	return &text.GoTextFace{
		Source:    src,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
}
