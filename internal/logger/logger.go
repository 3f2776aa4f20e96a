package logger

import (
	"os"

	"github.com/smite-community/smite-go/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init builds a zap SugaredLogger from config. With log_file set the stream
// goes to a size-capped rolling file, otherwise stdout. The caller owns the
// lifecycle: the returned close function flushes and releases the sink.
func Init(cfg *config.Config) (*zap.SugaredLogger, func() error, error) {
	var level zapcore.Level
	switch cfg.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer
	closeSink := func() error { return nil }
	if cfg.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxSize:  cfg.LogMaxSizeMB,
		}
		sink = zapcore.AddSync(lj)
		closeSink = lj.Close
	} else {
		sink = zapcore.Lock(os.Stdout)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	sugar := logger.Sugar()
	closer := func() error {
		_ = sugar.Sync()
		return closeSink()
	}
	return sugar, closer, nil
}
