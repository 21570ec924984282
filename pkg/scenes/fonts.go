package scenes

import (
	"bytes"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSourceOnce sync.Once
	fontSource     *text.GoTextFaceSource
)

// fontFace 返回指定字号的 Go Regular 字体，加载失败时返回 nil
func fontFace(size float64) *text.GoTextFace {
	fontSourceOnce.Do(func() {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("[Fonts] Failed to load Go Regular: %v", err)
			return
		}
		fontSource = source
	})
	if fontSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: fontSource, Size: size}
}

// drawCenteredText 以 geoM 变换后的原点为中心绘制文本
//
// 参数:
//   - face: 字体，为 nil 时退回调试文本（不支持缩放和透明度）
//   - geoM: 文本中心的变换
//   - alpha: 透明度 0.0 ~ 1.0
func drawCenteredText(screen *ebiten.Image, msg string, face *text.GoTextFace, geoM ebiten.GeoM, clr color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}

	if face == nil {
		x, y := geoM.Apply(0, 0)
		ebitenutil.DebugPrintAt(screen, msg, int(x)-len(msg)*3, int(y)-8)
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM = geoM
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, msg, face, op)
}
