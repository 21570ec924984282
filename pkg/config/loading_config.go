package config

// 启动画面配置常量

const (
	// LoadingDuration 启动画面停留时长（秒），之后开始淡出
	LoadingDuration float64 = 2.0

	// LoadingFadeOutDuration 遮罩淡出时长（秒）
	LoadingFadeOutDuration float64 = 1.0

	// LoadingCaptionDuration 标题缩放淡入时长（秒）
	LoadingCaptionDuration float64 = 0.8

	// LoadingCaptionEase 标题缩放淡入的缓动曲线
	LoadingCaptionEase = "easeOut"

	// LoadingCaptionStartScale 标题初始缩放
	LoadingCaptionStartScale float64 = 0.5

	// LoadingCaption 启动画面标题
	LoadingCaption = "Loading Portfolio..."

	// LoadingTextFontSize 标题字号
	LoadingTextFontSize float64 = 24
)
