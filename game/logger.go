package game

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 是全局可用的 SugaredLogger；InitLogger 之前为空实现，库代码与测试可直接使用
var Log = zap.NewNop().Sugar()

// 滚动策略：10MB 每文件，保留 3 个备份，最多 7 天
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 7
)

// InitLogger 初始化 zap 日志到本地滚动文件。终端被游戏画面占用，日志只能落盘。
// filePath 如 "snake.log"；level 为 debug/info/warn/error
func InitLogger(filePath, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	})

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(logEncoderConfig()), sink, lvl)
	Log = zap.New(core, zap.AddCaller()).Named("snake").Sugar()
	return nil
}

// logEncoderConfig 控制台风格：ISO8601 时间、大写级别、短调用者
func logEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.StacktraceKey = "stack"
	return cfg
}

// SyncLogger 清理和同步缓冲
func SyncLogger() {
	_ = Log.Sync()
}
