package xtype

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce 是默认防抖时间。
const defaultDebounce = 100 * time.Millisecond

// WatchCallback 在类型定义文件变更并重载后调用，err 表示重载是否成功。
type WatchCallback func(r *Registry, err error)

// WatchOption 监视器配置选项。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
}

// WithDebounce 设置防抖时间，窗口内的多次变更只触发一次重载。默认 100ms。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// Watcher 监视类型定义文件并自动重载 [Registry]。
type Watcher struct {
	reg      *Registry
	watcher  *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	ctx      context.Context
	cancel   context.CancelFunc

	mu      sync.Mutex
	running bool
	timer   *time.Timer
	done    chan struct{}
}

// Watch 创建 r 的文件监视器。调用 StartAsync 开始监视，Stop 停止。
//
// 监视的是文件所在目录：编辑器保存时可能先删除再创建，或写临时文件后 rename。
func Watch(r *Registry, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if r == nil || r.path == "" {
		return nil, fmt.Errorf("%w: registry has no file", ErrLoadFailed)
	}
	o := watchOptions{debounce: defaultDebounce}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xtype: failed to create watcher: %w", err)
	}
	dir := filepath.Dir(r.path)
	if err := fw.Add(dir); err != nil {
		return nil, errors.Join(
			fmt.Errorf("xtype: failed to watch directory %s: %w", dir, err),
			fw.Close(),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		reg:      r,
		watcher:  fw,
		callback: callback,
		debounce: o.debounce,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// StartAsync 在后台 goroutine 中开始监视，立即返回。重复调用是 no-op。
func (w *Watcher) StartAsync() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.ctx.Err() != nil {
		return
	}
	w.running = true
	w.done = make(chan struct{})
	go w.run(w.done)
}

// Stop 停止监视并等待后台 goroutine 退出。可重复调用。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.ctx.Err() != nil {
		w.mu.Unlock()
		return nil
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.cancel()
	done := w.done
	w.running = false
	w.mu.Unlock()

	err := w.watcher.Close()
	if done != nil {
		<-done
	}
	return err
}

func (w *Watcher) run(done chan struct{}) {
	defer close(done)
	filename := filepath.Base(w.reg.path)
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.callback != nil {
				w.callback(w.reg, fmt.Errorf("xtype: watch error: %w", err))
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if w.ctx.Err() != nil {
			return
		}
		err := w.reg.Reload()
		if w.callback != nil {
			w.callback(w.reg, err)
		}
	})
}
