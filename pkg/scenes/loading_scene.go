package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/motionkit/pkg/components"
	"github.com/decker502/motionkit/pkg/config"
	"github.com/decker502/motionkit/pkg/game"
	"github.com/decker502/motionkit/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 启动画面遮罩颜色
var loadingOverlayColor = color.RGBA{R: 15, G: 23, B: 42, A: 255}

// LoadingScene 启动画面
//
// 标题缩放淡入，停留 config.LoadingDuration 秒后遮罩淡出，
// 淡出期间下一个场景已经在遮罩下运行，淡出结束后切换过去。
// 点击、触摸或按空格可以提前开始淡出。
type LoadingScene struct {
	sceneManager *game.SceneManager
	nextName     string

	elapsed float64
	caption *systems.MotionPlayer // opacity + scale
	overlay *systems.MotionPlayer // opacity

	next        game.Scene // 淡出开始时创建
	fadeStarted bool
	done        bool

	face *text.GoTextFace
}

// NewLoadingScene 创建启动画面
//
// 参数:
//   - sm: 场景管理器，nextName 必须已注册
//   - nextName: 启动画面结束后切换到的场景
func NewLoadingScene(sm *game.SceneManager, nextName string) *LoadingScene {
	s := &LoadingScene{
		sceneManager: sm,
		nextName:     nextName,
		caption: systems.NewMotionPlayer(map[string]float64{
			"opacity": 0,
			"scale":   config.LoadingCaptionStartScale,
		}),
		overlay: systems.NewMotionPlayer(map[string]float64{"opacity": 1}),
	}

	err := s.caption.Play(components.VariantState{
		Properties: map[string]components.PropertyValue{
			"opacity": components.Scalar(1),
			"scale":   components.Scalar(1),
		},
		Transition: components.TweenTransition{
			Duration: config.LoadingCaptionDuration,
			Ease:     components.NamedEase(config.LoadingCaptionEase),
		},
	})
	if err != nil {
		log.Printf("[LoadingScene] Failed to start caption animation: %v", err)
	}
	return s
}

// Update 处理输入并推进动画
func (s *LoadingScene) Update(deltaTime float64) {
	tapped := len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	if tapped || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.skip()
	}
	s.advance(deltaTime)
}

// skip 提前开始淡出
func (s *LoadingScene) skip() {
	if s.elapsed < config.LoadingDuration {
		s.elapsed = config.LoadingDuration
	}
}

func (s *LoadingScene) advance(dt float64) {
	if s.done {
		return
	}

	s.elapsed += dt
	s.caption.Update(dt)

	if !s.fadeStarted && s.elapsed >= config.LoadingDuration {
		s.startFadeOut()
	}
	if !s.fadeStarted {
		return
	}

	s.overlay.Update(dt)
	if s.next != nil {
		s.next.Update(dt)
	}

	if !s.overlay.IsAnimating() {
		s.done = true
		if s.next != nil {
			s.sceneManager.Activate(s.nextName, s.next)
		}
	}
}

func (s *LoadingScene) startFadeOut() {
	s.fadeStarted = true

	next, err := s.sceneManager.Build(s.nextName)
	if err != nil {
		log.Printf("[LoadingScene] Failed to build next scene: %v", err)
	}
	s.next = next

	err = s.overlay.Play(components.VariantState{
		Properties: map[string]components.PropertyValue{"opacity": components.Scalar(0)},
		Transition: components.TweenTransition{Duration: config.LoadingFadeOutDuration},
	})
	if err != nil {
		log.Printf("[LoadingScene] Failed to start fade out: %v", err)
	}
	log.Printf("[LoadingScene] Fading out to %s", s.nextName)
}

// Elapsed 返回启动画面已显示的时间（秒）
func (s *LoadingScene) Elapsed() float64 { return s.elapsed }

// Done 淡出是否结束
func (s *LoadingScene) Done() bool { return s.done }

// CaptionScale 标题当前缩放
func (s *LoadingScene) CaptionScale() float64 { return s.caption.ValueOr("scale") }

// CaptionAlpha 标题当前透明度（含遮罩淡出）
func (s *LoadingScene) CaptionAlpha() float64 {
	return s.caption.ValueOr("opacity") * s.OverlayAlpha()
}

// OverlayAlpha 遮罩当前透明度
func (s *LoadingScene) OverlayAlpha() float64 { return s.overlay.ValueOr("opacity") }

// Draw 绘制下一个场景、遮罩和标题
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	if s.next != nil {
		s.next.Draw(screen)
	}

	alpha := s.OverlayAlpha()
	if alpha <= 0 {
		return
	}

	overlay := color.NRGBA{
		R: loadingOverlayColor.R,
		G: loadingOverlayColor.G,
		B: loadingOverlayColor.B,
		A: uint8(alpha * 255),
	}
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), overlay, false)

	if s.face == nil {
		s.face = fontFace(config.LoadingTextFontSize)
	}
	var geoM ebiten.GeoM
	geoM.Scale(s.CaptionScale(), s.CaptionScale())
	geoM.Translate(float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2)
	drawCenteredText(screen, config.LoadingCaption, s.face, geoM, color.White, s.CaptionAlpha())
}
