package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/infrastructure/config"
)

// ServiceName is attached to every log line
const ServiceName = "stayflow-web"

// NewLogger builds a zap logger writing to stdout in the configured format
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	return newLogger(cfg, os.Stdout), nil
}

// ParseLevel returns the zap level for s, falling back to info
func ParseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func newLogger(cfg *config.LogConfig, out io.Writer) *zap.Logger {
	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(out), ParseLevel(cfg.Level))

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", ServiceName))
}

// newEncoder returns a console encoder with colored levels for local runs,
// and JSON lines otherwise.
func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.MillisDurationEncoder

	if format == "console" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(ec)
	}
	return zapcore.NewJSONEncoder(ec)
}
