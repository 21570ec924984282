package utils

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

// 每个字符 10 像素
func monoMeasure(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 10
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{"短文本不换行", "spring tween", 200, []string{"spring tween"}},
		{"在空格处断行", "ease in out cubic", 80, []string{"ease in", "out", "cubic"}},
		{"连续空白", "  a   b  ", 100, []string{"a b"}},
		{"超长单词强制断开", "cubicBezier x", 50, []string{"cubic", "Bezie", "r x"}},
		{"多字节字符", "缓动曲线 动画", 30, []string{"缓动曲", "线", "动画"}},
		{"空文本", "", 100, []string{""}},
		{"非法宽度", "a b", 0, []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapWords(tt.input, tt.maxWidth, monoMeasure)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapWords(%q, %v) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			for _, line := range got {
				if tt.maxWidth > 0 && monoMeasure(line) > tt.maxWidth && utf8.RuneCountInString(line) > 1 {
					t.Errorf("line %q exceeds %v", line, tt.maxWidth)
				}
			}
		})
	}
}

func TestWrapTextNilFont(t *testing.T) {
	got := WrapText("hello world", nil, 10)
	if len(got) != 1 || got[0] != "hello world" {
		t.Errorf("WrapText with nil font = %q", got)
	}
}
