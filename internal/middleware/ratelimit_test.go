package middleware

import (
	"context"
	"testing"

	"github.com/Rudra-Tiwari-codes/Calendar-test/config"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestAllowChat(t *testing.T) {
	mw := New(&mockLogger{}, config.RateLimitConfig{RequestsPerMinute: 60, Burst: 3})

	t.Run("Burst then deny", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if !mw.AllowChat(100) {
				t.Fatalf("expected request %d within burst to pass", i+1)
			}
		}
		if mw.AllowChat(100) {
			t.Errorf("expected request beyond burst to be denied")
		}
	})

	t.Run("Chats are independent", func(t *testing.T) {
		if !mw.AllowChat(200) {
			t.Errorf("expected fresh chat to have its own allowance")
		}
	})
}
