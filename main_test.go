package xeui

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain 验证测试结束后没有泄漏的 goroutine。
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
