//go:build !mobile

package utils

import "os"

// IsMobile 是否按移动端方式运行
// 桌面端默认返回 false，设置 MOTIONKIT_MOBILE_EMULATE=1 可在本地模拟移动端
func IsMobile() bool {
	return os.Getenv("MOTIONKIT_MOBILE_EMULATE") == "1"
}
