//go:build !mobile

package app

import (
	"errors"

	"github.com/ncruces/zenity"
)

// selectStyleFile 弹出系统文件选择框，取消时返回空路径
func selectStyleFile() (string, error) {
	p, err := zenity.SelectFile(
		zenity.Title("Load Slider Style"),
		zenity.FileFilters{{
			Name:     "Slider style",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return p, nil
}
