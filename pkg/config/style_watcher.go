package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// StyleUpdate 样式文件变化后的重新加载结果
type StyleUpdate struct {
	Path  string
	Style *StyleConfig
	Err   error
}

// StyleWatcher 监听样式文件变化并重新加载
//
// 监听的是文件所在目录（编辑器常用"写临时文件再重命名"的方式保存），
// 只关心目标文件名。重新加载的结果通过 Updates() 通道投递，
// 由游戏主循环在自己的线程上取出并应用，watcher 本身不接触控件。
type StyleWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan StyleUpdate
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewStyleWatcher 开始监听 path
func NewStyleWatcher(path string) (*StyleWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve style path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	sw := &StyleWatcher{
		path:    abs,
		watcher: w,
		updates: make(chan StyleUpdate, 4),
		done:    make(chan struct{}),
	}
	sw.wg.Add(1)
	go sw.loop()
	return sw, nil
}

// Path 返回被监听文件的绝对路径
func (sw *StyleWatcher) Path() string {
	return sw.path
}

// Updates 返回重新加载结果的通道
func (sw *StyleWatcher) Updates() <-chan StyleUpdate {
	return sw.updates
}

// Close 停止监听，可重复调用
func (sw *StyleWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.done)
		err = sw.watcher.Close()
		sw.wg.Wait()
	})
	return err
}

func (sw *StyleWatcher) loop() {
	defer sw.wg.Done()
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != sw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			style, err := LoadStyleConfig(sw.path)
			sw.publish(StyleUpdate{Path: sw.path, Style: style, Err: err})
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[StyleWatcher] Warning: watch error: %v", err)
		}
	}
}

// publish 投递结果；通道已满时丢弃最旧的一条，保证主循环拿到的是最新内容
func (sw *StyleWatcher) publish(u StyleUpdate) {
	for {
		select {
		case sw.updates <- u:
			return
		case <-sw.done:
			return
		default:
		}
		select {
		case <-sw.updates:
		default:
		}
	}
}
