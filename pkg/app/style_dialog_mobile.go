//go:build mobile

package app

import "errors"

// selectStyleFile 移动端没有文件选择框
func selectStyleFile() (string, error) {
	return "", errors.New("style file dialog is not available on mobile")
}
