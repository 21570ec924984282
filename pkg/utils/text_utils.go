package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 返回一行文本的像素宽度
type MeasureFunc func(s string) float64

// WrapText 按字体把文本折成不超过 maxWidth 的多行
//
// font 为 nil 或 maxWidth <= 0 时原样返回一行。
func WrapText(s string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil {
		return []string{s}
	}
	return WrapWords(s, maxWidth, func(line string) float64 {
		w, _ := text.Measure(line, font, 0)
		return w
	})
}

// WrapWords 在空白处断行
//
// 参数:
//   - s: 文本，连续空白视为一个分隔
//   - maxWidth: 最大行宽（像素）
//   - measure: 宽度测量函数
//
// 返回:
//   - []string: 各行文本；单个词超宽时按字符强制断开
func WrapWords(s string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(s)
	if len(words) == 0 || maxWidth <= 0 {
		return []string{s}
	}

	var lines []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}

		if line != "" {
			lines = append(lines, line)
		}
		if measure(word) <= maxWidth {
			line = word
			continue
		}

		// 超长单词逐字符切分，最后一段留给后续单词拼接
		pieces := splitRunes(word, maxWidth, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		line = pieces[len(pieces)-1]
	}
	return append(lines, line)
}

// splitRunes 把 word 切成宽度不超过 maxWidth 的片段，每段至少一个字符
func splitRunes(word string, maxWidth float64, measure MeasureFunc) []string {
	var pieces []string
	piece := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]
		if piece != "" && measure(piece+string(r)) > maxWidth {
			pieces = append(pieces, piece)
			piece = ""
		}
		piece += string(r)
	}
	return append(pieces, piece)
}
