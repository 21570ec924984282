package scenes

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/decker502/motionkit/pkg/config"
	"github.com/decker502/motionkit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 配色
var (
	backgroundColor = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	cardColor       = color.RGBA{R: 51, G: 65, B: 85, A: 255}
	cardBorderColor = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	accentColor     = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	ballColor       = color.RGBA{R: 251, G: 146, B: 60, A: 255}
	textColor       = color.RGBA{R: 226, G: 232, B: 240, A: 255}
	dimTextColor    = color.RGBA{R: 148, G: 163, B: 184, A: 255}
)

// About 区块的介绍文字
const (
	aboutSection        = 1
	aboutText           = "Every card below is driven by a named motion variant. Springs settle by physics, tweens follow an easing curve, and looping states pause when reduced motion is on. Press R to toggle it."
	paragraphWidth      = 560.0
	paragraphLineHeight = 24.0
)

const (
	starsPerLayer = 40
	starSeed      = 42

	// 闪烁噪声的时间频率（每秒）
	twinkleRate = 0.6
)

// star 背景视差层上的一个点（屏幕坐标，纵向循环）
type star struct {
	x, y   float64
	radius float32
}

// generateStars 固定种子生成背景星点，每次启动位置相同
func generateStars() [config.ParallaxLayers][]star {
	rng := rand.New(rand.NewPCG(7, starSeed))
	var layers [config.ParallaxLayers][]star
	for layer := range layers {
		stars := make([]star, starsPerLayer)
		for i := range stars {
			stars[i] = star{
				x:      rng.Float64() * float64(config.ScreenWidth),
				y:      rng.Float64() * float64(config.ScreenHeight),
				radius: float32(layer+1) * 0.8,
			}
		}
		layers[layer] = stars
	}
	return layers
}

// starAlpha 星点亮度：层越近越亮，再按噪声在 50%~100% 之间闪烁
func (s *PortfolioScene) starAlpha(layer int, st star) uint8 {
	base := 80.0 + 60.0*float64(layer)
	n := s.twinkle.Eval3(st.x*0.05, st.y*0.05, s.clock*twinkleRate)
	return uint8(base * (0.5 + 0.5*n))
}

// wrapY 把 y 收敛到 [0, ScreenHeight)
func wrapY(y float64) float64 {
	h := float64(config.ScreenHeight)
	y = math.Mod(y, h)
	if y < 0 {
		y += h
	}
	return y
}

// Draw 绘制展示页
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	s.ensureResources()

	screen.Fill(backgroundColor)
	s.drawStars(screen)
	s.drawSections(screen)
	s.drawHeroTitle(screen)
	for _, c := range s.cards {
		s.drawCard(screen, c)
	}
	s.drawBall(screen)
	s.drawHeader(screen)
	s.drawStatus(screen)
}

// ensureResources 首次绘制时创建图像和字体（游戏循环开始前不能创建图像）
func (s *PortfolioScene) ensureResources() {
	if s.cardImage == nil {
		w, h := int(config.CardWidth), int(config.CardHeight)
		s.cardImage = ebiten.NewImage(w, h)
		vector.DrawFilledRect(s.cardImage, 0, 0, float32(w), float32(h), cardColor, false)
		vector.StrokeRect(s.cardImage, 1, 1, float32(w-2), float32(h-2), 2, cardBorderColor, false)
	}
	if s.titleFace == nil {
		s.titleFace = fontFace(48)
		s.cardFace = fontFace(16)
		s.headerFace = fontFace(18)
	}
}

func (s *PortfolioScene) drawStars(screen *ebiten.Image) {
	for layer, stars := range s.stars {
		offset := s.layerOffset(layer)
		for _, st := range stars {
			y := wrapY(st.y - offset)
			clr := color.NRGBA{R: 255, G: 255, B: 255, A: s.starAlpha(layer, st)}
			vector.DrawFilledCircle(screen, float32(st.x), float32(y), st.radius, clr, true)
		}
	}
}

func (s *PortfolioScene) drawSections(screen *ebiten.Image) {
	for i, title := range config.SectionTitles {
		top := float64(i)*config.SectionHeight - s.scrollY
		if top+config.SectionHeight < 0 || top > float64(config.ScreenHeight) {
			continue
		}
		if i == 0 {
			continue // 英雄区由 drawHeroTitle 绘制
		}
		var g ebiten.GeoM
		g.Translate(float64(config.ScreenWidth)/2, top+config.HeaderHeight+40)
		drawCenteredText(screen, title, s.headerFace, g, dimTextColor, 1)

		if i == aboutSection {
			s.drawParagraph(screen, aboutText, top+config.HeaderHeight+90)
		}
	}
}

// drawParagraph 在画面中部按宽度折行绘制一段文字
func (s *PortfolioScene) drawParagraph(screen *ebiten.Image, msg string, y float64) {
	for _, line := range utils.WrapText(msg, s.cardFace, paragraphWidth) {
		var g ebiten.GeoM
		g.Translate(float64(config.ScreenWidth)/2, y)
		drawCenteredText(screen, line, s.cardFace, g, textColor, 1)
		y += paragraphLineHeight
	}
}

func (s *PortfolioScene) drawHeroTitle(screen *ebiten.Image) {
	c := s.title
	pose := poseOf(c.player)
	scroll := s.heroScale()
	pose.ScaleX *= scroll
	pose.ScaleY *= scroll

	cx := c.x + c.width/2
	cy := c.y + c.height/2 - s.scrollY
	drawCenteredText(screen, heroTitle, s.titleFace, pose.centerGeoM(cx, cy), textColor, pose.Alpha)
}

func (s *PortfolioScene) drawCard(screen *ebiten.Image, c *variantCard) {
	if !c.inView(s.scrollY) {
		return
	}
	pose := poseOf(c.player)
	if pose.Alpha <= 0 {
		return
	}

	center := pose.centerGeoM(c.x+c.width/2, c.y+c.height/2-s.scrollY)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-c.width/2, -c.height/2)
	op.GeoM.Concat(center)
	op.ColorScale.ScaleAlpha(float32(pose.Alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.cardImage, op)

	var label ebiten.GeoM
	label.Translate(0, -14)
	label.Concat(center)
	drawCenteredText(screen, c.name, s.cardFace, label, textColor, pose.Alpha)

	var sub ebiten.GeoM
	sub.Translate(0, 16)
	sub.Concat(center)
	drawCenteredText(screen, c.current, s.cardFace, sub, accentColor, pose.Alpha)
}

func (s *PortfolioScene) drawBall(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(s.ball.X), float32(s.ball.Y), config.BallRadius, ballColor, true)
}

func (s *PortfolioScene) drawHeader(screen *ebiten.Image) {
	alpha := s.headerAlpha()
	if alpha <= 0 {
		return
	}
	bar := color.NRGBA{R: 30, G: 41, B: 59, A: uint8(220 * alpha)}
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.HeaderHeight), bar, false)

	current := s.CurrentSection()
	step := float64(config.ScreenWidth) / float64(config.SectionCount()+1)
	for i, title := range config.SectionTitles {
		clr := dimTextColor
		if i == current {
			clr = accentColor
		}
		var g ebiten.GeoM
		g.Translate(step*float64(i+1), config.HeaderHeight/2)
		drawCenteredText(screen, fmt.Sprintf("%d %s", i+1, title), s.headerFace, g, clr, alpha)
	}
}

func (s *PortfolioScene) drawStatus(screen *ebiten.Image) {
	prefs := s.prefs.Get()
	hint := "[wheel] scroll [1-5] jump [D] drop [R] reduce"
	if utils.IsMobile() {
		hint = "[drag] scroll [tap] press"
	}
	msg := fmt.Sprintf("scroll %.0f  section %d/%d  reduced motion %v  %s",
		s.scrollY, s.CurrentSection()+1, config.SectionCount(), prefs.ReducedMotion, hint)
	ebitenutil.DebugPrintAt(screen, msg, 8, config.ScreenHeight-20)
}
