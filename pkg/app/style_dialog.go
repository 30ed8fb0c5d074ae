package app

import "log"

// dialogResult 文件选择的结果，Path 为空表示取消
type dialogResult struct {
	Path string
	Err  error
}

// styleDialog 在后台 goroutine 中运行阻塞的文件选择框
// 结果通过通道交回主循环，同一时刻最多一个对话框
type styleDialog struct {
	results chan dialogResult
	open    bool
	choose  func() (string, error)
}

func newStyleDialog() *styleDialog {
	return &styleDialog{
		results: make(chan dialogResult, 1),
		choose:  selectStyleFile,
	}
}

// Open 对话框是否正在显示
func (d *styleDialog) Open() bool {
	return d.open
}

// Start 打开对话框，已打开时返回 false
func (d *styleDialog) Start() bool {
	if d.open {
		return false
	}
	d.open = true
	go func() {
		p, err := d.choose()
		d.results <- dialogResult{Path: p, Err: err}
	}()
	return true
}

// Poll 非阻塞地取出结果
func (d *styleDialog) Poll() (dialogResult, bool) {
	select {
	case r := <-d.results:
		d.open = false
		return r, true
	default:
		return dialogResult{}, false
	}
}

func (a *App) openStyleDialog() {
	if a.dialog.Start() {
		log.Printf("[App] Opening style file dialog")
	}
}

func (a *App) drainDialog() {
	r, ok := a.dialog.Poll()
	if !ok {
		return
	}
	switch {
	case r.Err != nil:
		log.Printf("[App] Warning: Style dialog failed: %v", r.Err)
	case r.Path == "":
		log.Printf("[App] Style dialog cancelled")
	default:
		if err := a.LoadStyle(r.Path); err != nil {
			log.Printf("[App] Warning: Failed to load style %s: %v", r.Path, err)
		}
	}
}
