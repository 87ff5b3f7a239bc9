package safe_close

import (
	"errors"
	"testing"
	"time"
)

func TestAttachAndWaitClosed(t *testing.T) {
	sc := NewSafeClose()

	stopped := make(chan struct{})
	sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		<-closeSignal
		close(stopped)
	})

	sc.SendCloseSignal(nil)

	if err := sc.WaitClosed(); err != nil {
		t.Fatalf("WaitClosed() = %v, want nil", err)
	}
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("attached component did not receive close signal")
	}
}

func TestCloseSignalBroadcast(t *testing.T) {
	sc := NewSafeClose()

	// 未发送关闭信号前通道保持打开
	select {
	case <-sc.CloseSignal():
		t.Fatal("close signal fired before SendCloseSignal")
	default:
	}

	sc.SendCloseSignal(nil)

	select {
	case <-sc.CloseSignal():
	case <-time.After(time.Second):
		t.Fatal("close signal not broadcast")
	}
}

func TestSendCloseSignalKeepsFirstError(t *testing.T) {
	sc := NewSafeClose()

	first := errors.New("boom")
	sc.SendCloseSignal(first)
	// 重复发送不覆盖首个错误，也不会重复关闭通道
	sc.SendCloseSignal(errors.New("later"))

	if err := sc.WaitClosed(); !errors.Is(err, first) {
		t.Fatalf("WaitClosed() = %v, want %v", err, first)
	}
}
