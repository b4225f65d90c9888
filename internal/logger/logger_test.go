package logger

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer là bytes.Buffer an toàn khi ghi từ goroutine của hook
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAsyncHook_WritesAllEntriesOnClose(t *testing.T) {
	out := &syncBuffer{}
	hook := NewAsyncHookWithWriters([]io.Writer{out}, 100)

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(&bytes.Buffer{})
	log.AddHook(hook)

	for i := 0; i < 10; i++ {
		log.WithField("i", i).Info("hello")
	}
	require.NoError(t, hook.Close())

	assert.Equal(t, 10, strings.Count(out.String(), `"msg":"hello"`))
	assert.Zero(t, hook.Dropped())

	// Sau khi đóng vẫn ghi trực tiếp
	log.Info("after close")
	assert.Contains(t, out.String(), "after close")
}

func TestAsyncHook_CloseIsIdempotent(t *testing.T) {
	hook := NewAsyncHookWithWriters([]io.Writer{&syncBuffer{}}, 1)
	assert.NoError(t, hook.Close())
	assert.NoError(t, hook.Close())
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_OUTPUT", "stdout")
	t.Setenv("LOG_MAX_SIZE", "20")
	t.Setenv("LOG_COMPRESS", "false")

	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "json", cfg.Format, "production mặc định dùng json")
	assert.Equal(t, "stdout", cfg.Output)
	assert.Equal(t, 20, cfg.MaxSize)
	assert.False(t, cfg.Compress)
	assert.Equal(t, 7, cfg.MaxBackups)
	assert.Equal(t, "./logs", cfg.LogPath)
	assert.Equal(t, 1000, cfg.BufferSize)
}

func TestDefaultConfig_Development(t *testing.T) {
	for _, key := range []string{"GO_ENV", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "LOG_MAX_SIZE"} {
		t.Setenv(key, "") // khôi phục giá trị cũ sau test
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := DefaultConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "both", cfg.Output)
	assert.Equal(t, 100, cfg.MaxSize)
}

func TestDefaultConfig_InvalidValueFallsBack(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_MAX_SIZE", "abc")

	cfg := DefaultConfig()
	assert.Equal(t, 100, cfg.MaxSize)
	assert.Equal(t, "info", cfg.Level, "override bị bỏ qua khi có giá trị sai")
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 7, cfg.MaxAge)
}

func TestGetLogger_ReusesInstance(t *testing.T) {
	require.NoError(t, Init(&LogConfig{Level: "debug", Format: "text", Output: "stdout", BufferSize: 10}))
	t.Cleanup(Shutdown)

	a := GetLogger("app")
	b := GetAppLogger()
	assert.Same(t, a, b)
	assert.Equal(t, logrus.DebugLevel, a.GetLevel())
	assert.NotSame(t, a, GetAuditLogger())
}

func TestGetLogFilePath(t *testing.T) {
	require.NoError(t, Init(&LogConfig{Output: "stdout", LogPath: "/var/log/techtv", AppFile: "app.log", AuditFile: "audit.log", ErrorFile: "error.log"}))
	t.Cleanup(Shutdown)

	assert.Equal(t, "/var/log/techtv/audit.log", getLogFilePath("audit"))
	assert.Equal(t, "/var/log/techtv/seed.log", getLogFilePath("seed"))
}
