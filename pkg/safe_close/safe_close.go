// Package safe_close 协调多个后台组件的优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose 关闭协调器
// 每个需要优雅关闭的组件通过 Attach 挂载；任何一处调用 SendCloseSignal
// 后所有组件收到关闭信号，WaitClosed 等待全部退出
type SafeClose struct {
	closeSignal chan struct{}
	wg          sync.WaitGroup

	once sync.Once
	mu   sync.Mutex
	err  error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach mounts a component; f must call done() when fully stopped
// Attach 挂载一个组件；组件完全停止后必须调用 done()
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	go f(s.wg.Done, s.closeSignal)
}

// SendCloseSignal broadcasts the close signal; the first non-nil error wins
// SendCloseSignal 广播关闭信号；记录第一个非 nil 错误
func (s *SafeClose) SendCloseSignal(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.closeSignal)
	})
}

// CloseSignal 返回关闭信号通道
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}

// WaitClosed blocks until every attached component called done()
// WaitClosed 阻塞直到所有已挂载组件退出
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
