//go:build mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// TouchScale 触摸设备上放大控件，方便手指操作
func TouchScale() float64 {
	return 1.5
}
