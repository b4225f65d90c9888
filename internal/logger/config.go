package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// LogConfig chứa cấu hình cho hệ thống logging.
// Level và Format không có envDefault: giá trị mặc định phụ thuộc GO_ENV (xem DefaultConfig).
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL"`

	// Log Format: json, text
	Format string `env:"LOG_FORMAT"`

	// Log Output: file, stdout, both, none
	Output string `env:"LOG_OUTPUT" envDefault:"both"`

	// Log Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"`  // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"` // Số file cũ giữ lại
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"`     // Số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"` // Nén file cũ

	// Log Paths
	LogPath   string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile   string `env:"LOG_APP_FILE" envDefault:"app.log"`
	AuditFile string `env:"LOG_AUDIT_FILE" envDefault:"audit.log"`
	ErrorFile string `env:"LOG_ERROR_FILE" envDefault:"error.log"`

	// Kích thước buffer của async hook
	BufferSize int `env:"LOG_BUFFER_SIZE" envDefault:"1000"`
}

// DefaultConfig trả về cấu hình đọc từ biến môi trường LOG_*.
// Biến sai định dạng thì bỏ qua toàn bộ override và dùng giá trị mặc định.
func DefaultConfig() *LogConfig {
	cfg := baseConfig()
	if err := env.Parse(cfg); err != nil {
		// Sử dụng fmt.Printf vì logger chưa sẵn sàng
		fmt.Printf("Cấu hình log không hợp lệ, dùng mặc định: %v\n", err)
		cfg = baseConfig()
		_ = env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}})
	}

	cfg.Level = strings.ToLower(cfg.Level)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Output = strings.ToLower(cfg.Output)
	return cfg
}

// baseConfig đặt Level và Format theo GO_ENV (mặc định development)
func baseConfig() *LogConfig {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" || goEnv == "development" {
		return &LogConfig{Level: "debug", Format: "text"}
	}
	return &LogConfig{Level: "info", Format: "json"}
}
