package scenes

import (
	"log"
	"math"
	"sort"

	"github.com/decker502/motionkit/pkg/config"
	"github.com/decker502/motionkit/pkg/game"
	"github.com/decker502/motionkit/pkg/systems"
	"github.com/decker502/motionkit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// 数字键 1~5 跳转区块
var sectionKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}

// 英雄区标题
const (
	heroTitle       = "Motion Portfolio"
	heroTitleWidth  = 520.0
	heroTitleHeight = 96.0
	heroTitleY      = 220.0
)

// scrollTween 数字键跳转时的平滑滚动
type scrollTween struct {
	from, to float64
	elapsed  float64
	active   bool
}

// PortfolioScene 作品集展示页
//
// 每个变体一张卡片，各由一个 MotionPlayer 驱动。
// 滚轮滚动驱动背景视差、标题栏淡出和英雄区标题缩放；
// 右键或 D 键在鼠标位置投下一个受物理参数控制的小球；
// R 键切换减少动态效果。
type PortfolioScene struct {
	cfg   *config.MotionConfig
	prefs *game.PreferencesManager

	title *variantCard
	cards []*variantCard

	scrollY float64
	scroll  scrollTween

	ball *systems.DropBody

	stars   [config.ParallaxLayers][]star
	twinkle opensimplex.Noise
	pointer *utils.PointerTracker
	clock   float64 // 星点闪烁时钟，减少动态效果时暂停

	cardImage  *ebiten.Image
	titleFace  *text.GoTextFace
	cardFace   *text.GoTextFace
	headerFace *text.GoTextFace
}

// NewPortfolioScene 创建展示页
//
// 参数:
//   - cfg: 动画配置，变体表取 cfg.Variants()
//   - prefs: 观看者偏好，滚动位置从 LastSection 恢复
func NewPortfolioScene(cfg *config.MotionConfig, prefs *game.PreferencesManager) *PortfolioScene {
	variants := cfg.Variants()
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	s := &PortfolioScene{
		cfg:     cfg,
		prefs:   prefs,
		ball:    systems.NewDropBody(float64(config.ScreenWidth)-120, -config.BallRadius),
		stars:   generateStars(),
		twinkle: opensimplex.NewNormalized(starSeed),
		pointer: utils.NewPointerTracker(),
	}
	s.ball.Drop(s.ball.X, s.ball.Y, -80)

	s.title = newVariantCard(config.VariantDroppingText, variants[config.VariantDroppingText],
		(float64(config.ScreenWidth)-heroTitleWidth)/2, heroTitleY, heroTitleWidth, heroTitleHeight)

	for i, name := range names {
		x, y := config.CardOrigin(i)
		s.cards = append(s.cards, newVariantCard(name, variants[name], x, y, config.CardWidth, config.CardHeight))
	}

	last := prefs.Get().LastSection
	if last >= config.SectionCount() {
		last = config.SectionCount() - 1
	}
	s.scrollY = float64(last) * config.SectionHeight

	log.Printf("[PortfolioScene] %d variant cards, starting at section %d", len(s.cards), last)
	return s
}

// Update 处理输入并推进动画
func (s *PortfolioScene) Update(deltaTime float64) {
	s.handleInput()
	s.advance(deltaTime)
}

func (s *PortfolioScene) handleInput() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.scrollBy(-wy * config.WheelStep)
	}
	for i, key := range sectionKeys {
		if i < config.SectionCount() && inpututil.IsKeyJustPressed(key) {
			s.jumpToSection(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.setReducedMotion(!s.prefs.Get().ReducedMotion)
	}

	ptr := s.pointer.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.dropBall(float64(ptr.X))
	}
	s.handlePointer(ptr)
}

// handlePointer 悬停、按压卡片；触摸拖动时滚动页面
func (s *PortfolioScene) handlePointer(ptr utils.PointerState) {
	if ptr.Touch && ptr.Pressed && !ptr.JustPressed && ptr.DY != 0 {
		s.scrollBy(-float64(ptr.DY))
	}

	if ptr.Hovering {
		s.pointerMoved(float64(ptr.X), float64(ptr.Y))
	}
	if ptr.JustPressed {
		s.pointerDown()
	}
	if ptr.JustReleased {
		s.pointerUp()
		if ptr.Touch {
			s.pointerLeft()
		}
	}
}

func (s *PortfolioScene) reduced() bool {
	return s.prefs.Get().ReducedMotion
}

func (s *PortfolioScene) allCards() []*variantCard {
	return append([]*variantCard{s.title}, s.cards...)
}

// advance 推进滚动、卡片动画和小球
func (s *PortfolioScene) advance(dt float64) {
	s.updateScroll(dt)

	reduced := s.reduced()
	if !reduced {
		s.clock += dt
	}
	for _, c := range s.allCards() {
		if !c.revealed && c.inView(s.scrollY) {
			c.reveal(reduced)
		}
		c.player.Update(dt)
	}

	s.updateBall(dt)
}

// scrollBy 滚动 dy 像素，取消正在进行的平滑滚动
func (s *PortfolioScene) scrollBy(dy float64) {
	s.scroll.active = false
	s.setScroll(s.scrollY + dy)
}

// jumpToSection 平滑滚动到第 index 个区块
func (s *PortfolioScene) jumpToSection(index int) {
	if index < 0 || index >= config.SectionCount() {
		return
	}
	s.scroll = scrollTween{
		from:   s.scrollY,
		to:     float64(index) * config.SectionHeight,
		active: true,
	}
}

func (s *PortfolioScene) updateScroll(dt float64) {
	if !s.scroll.active {
		return
	}
	s.scroll.elapsed += dt
	progress := math.Min(1, s.scroll.elapsed/config.SectionScrollDuration)
	s.setScroll(utils.Lerp(s.scroll.from, s.scroll.to, utils.EaseInOutCubic(progress)))
	if progress >= 1 {
		s.scroll.active = false
	}
}

func (s *PortfolioScene) setScroll(y float64) {
	s.scrollY = math.Max(0, math.Min(config.MaxScroll(), y))
	if section := s.CurrentSection(); section != s.prefs.Get().LastSection {
		s.prefs.SetLastSection(section)
	}
}

// CurrentSection 返回视口所在区块
func (s *PortfolioScene) CurrentSection() int {
	section := int(math.Round(s.scrollY / config.SectionHeight))
	return max(0, min(section, config.SectionCount()-1))
}

// ScrollY 当前滚动距离
func (s *PortfolioScene) ScrollY() float64 {
	return s.scrollY
}

// setReducedMotion 切换减少动态效果；开启时停下所有循环动画，关闭时重新播放
func (s *PortfolioScene) setReducedMotion(on bool) {
	s.prefs.SetReducedMotion(on)
	for _, c := range s.allCards() {
		state, ok := c.variant.State(c.current)
		if !ok || !isLooping(state) {
			continue
		}
		c.play(c.current, on)
	}
	log.Printf("[PortfolioScene] Reduced motion: %v", on)
}

// pointerMoved 鼠标移动（屏幕坐标）
func (s *PortfolioScene) pointerMoved(px, py float64) {
	reduced := s.reduced()
	for _, c := range s.cards {
		c.setHovered(c.revealed && c.contains(px, py+s.scrollY), reduced)
	}
}

// pointerLeft 指针离开画面（触摸抬起）时取消所有悬停
func (s *PortfolioScene) pointerLeft() {
	reduced := s.reduced()
	for _, c := range s.cards {
		c.setHovered(false, reduced)
	}
}

func (s *PortfolioScene) pointerDown() {
	reduced := s.reduced()
	for _, c := range s.cards {
		if c.hovered {
			c.press(reduced)
		}
	}
}

func (s *PortfolioScene) pointerUp() {
	reduced := s.reduced()
	for _, c := range s.cards {
		c.release(reduced)
	}
}

// dropBall 在屏幕上方 x 处重新投下小球
func (s *PortfolioScene) dropBall(x float64) {
	x = math.Max(config.BallRadius, math.Min(float64(config.ScreenWidth)-config.BallRadius, x))
	s.ball.Drop(x, -config.BallRadius, 0)
}

func (s *PortfolioScene) updateBall(dt float64) {
	floor := float64(config.ScreenHeight) - config.BallRadius
	s.ball.Step(s.cfg.Physics, dt, floor)

	// 左右边界反弹
	left, right := config.BallRadius, float64(config.ScreenWidth)-config.BallRadius
	if s.ball.X < left {
		s.ball.X = left
		s.ball.VX = math.Abs(s.ball.VX) * s.cfg.Physics.Bounce
	} else if s.ball.X > right {
		s.ball.X = right
		s.ball.VX = -math.Abs(s.ball.VX) * s.cfg.Physics.Bounce
	}
}

// scrollMapping 当前生效的滚动映射参数（默认值来自配置文件，可被观看者偏好覆盖）
func (s *PortfolioScene) scrollMapping() config.ScrollConfig {
	p := s.prefs.Get()
	return config.ScrollConfig{
		ParallaxSpeed:  p.ParallaxSpeed,
		FadeThreshold:  p.FadeThreshold,
		ScaleThreshold: p.ScaleThreshold,
	}
}

// headerAlpha 标题栏透明度
func (s *PortfolioScene) headerAlpha() float64 {
	return s.scrollMapping().Fade(s.scrollY)
}

// heroScale 英雄区标题的滚动缩放
func (s *PortfolioScene) heroScale() float64 {
	return s.scrollMapping().Scale(s.scrollY)
}

// layerOffset 第 layer 层背景的视差偏移，越靠前的层越快
func (s *PortfolioScene) layerOffset(layer int) float64 {
	sc := s.scrollMapping()
	sc.ParallaxSpeed *= float64(layer+1) / config.ParallaxLayers
	return sc.Parallax(s.scrollY)
}

// SaveOnExit 保存偏好（包括当前区块）
func (s *PortfolioScene) SaveOnExit() bool {
	if err := s.prefs.Save(); err != nil {
		log.Printf("[PortfolioScene] Failed to save preferences: %v", err)
		return false
	}
	return true
}

// cardByName 按变体名查找卡片
func (s *PortfolioScene) cardByName(name string) *variantCard {
	for _, c := range s.cards {
		if c.name == name {
			return c
		}
	}
	return nil
}
