package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本（可以包含显式换行符）
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行，空段落保留为空行）
//
// 换行规则:
//   - 在单词之间的空格处断行
//   - 如果单词太长超过最大宽度，按字符强制断行
//   - font 为 nil 或 maxWidth <= 0 时只按显式换行符拆分
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	paragraphs := strings.Split(textStr, "\n")
	if font == nil || maxWidth <= 0 {
		return paragraphs
	}

	var lines []string
	for _, paragraph := range paragraphs {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		currentLine := ""
		for _, word := range words {
			testLine := word
			if currentLine != "" {
				testLine = currentLine + " " + word
			}
			if measureTextWidth(testLine, font) <= maxWidth {
				currentLine = testLine
				continue
			}

			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			// 单词本身超宽，按字符拆开
			for measureTextWidth(word, font) > maxWidth {
				head := breakWord(word, font, maxWidth)
				lines = append(lines, head)
				word = word[len(head):]
			}
			currentLine = word
		}
		lines = append(lines, currentLine)
	}
	return lines
}

// breakWord 返回 word 中不超过 maxWidth 的最长前缀（至少一个字符）
func breakWord(word string, font text.Face, maxWidth float64) string {
	_, size := utf8.DecodeRuneInString(word)
	end := size
	for end < len(word) {
		_, next := utf8.DecodeRuneInString(word[end:])
		if measureTextWidth(word[:end+next], font) > maxWidth {
			break
		}
		end += next
	}
	return word[:end]
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	return text.Advance(textStr, font)
}
