package config

// 展示页布局常量
// 所有坐标使用"页面坐标系"：页面顶端为 0，向下滚动时 scrollY 增大

const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 960

	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 640

	// SectionHeight 每个区块的高度，与屏幕等高
	SectionHeight = float64(ScreenHeight)

	// HeaderHeight 顶部标题栏高度
	HeaderHeight = 48.0

	// CardWidth 变体卡片宽度
	CardWidth = 200.0

	// CardHeight 变体卡片高度
	CardHeight = 120.0

	// CardGap 卡片间距
	CardGap = 40.0

	// CardColumns 每行卡片数
	CardColumns = 3

	// CardDepthScale z 属性到额外缩放的换算：scale *= 1 + z/CardDepthScale
	CardDepthScale = 400.0

	// WheelStep 滚轮每格滚动的像素
	WheelStep = 60.0

	// SectionScrollDuration 数字键跳转区块的滚动时长（秒）
	SectionScrollDuration = 0.6

	// BallRadius 下落小球半径
	BallRadius = 14.0

	// ParallaxLayers 背景视差层数；第 i 层速度为 speed * (i+1) / ParallaxLayers
	ParallaxLayers = 3
)

// SectionTitles 区块标题，数字键 1~N 依次跳转
var SectionTitles = []string{"Hero", "About", "Projects", "Skills", "Contact"}

// SectionCount 区块数量
func SectionCount() int {
	return len(SectionTitles)
}

// MaxScroll 页面最大滚动距离
func MaxScroll() float64 {
	return float64(SectionCount()-1) * SectionHeight
}

// CardOrigin 返回第 index 张卡片在页面坐标系中的左上角
//
// 卡片从 Projects 区块开始按 CardColumns 列排布，超出一屏后顺延到下一区块。
func CardOrigin(index int) (float64, float64) {
	col := index % CardColumns
	row := index / CardColumns

	rowWidth := float64(CardColumns)*CardWidth + float64(CardColumns-1)*CardGap
	startX := (float64(ScreenWidth) - rowWidth) / 2
	startY := 2*SectionHeight + HeaderHeight + 80

	x := startX + float64(col)*(CardWidth+CardGap)
	y := startY + float64(row)*(CardHeight+CardGap*2)
	return x, y
}
